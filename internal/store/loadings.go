package store

import (
	"gcoop/precargadas-csv/internal/loading"
)

// LoadingStore persists card loading documents to a YAML file.
type LoadingStore struct {
	file string
}

type loadingFile struct {
	Loadings []*loading.CardLoading `yaml:"loadings"`
}

// NewLoadingStore creates a store over the given YAML file.
func NewLoadingStore(file string) *LoadingStore {
	return &LoadingStore{file: file}
}

// Load returns all loading documents in the file.
func (s *LoadingStore) Load() ([]*loading.CardLoading, error) {
	var f loadingFile
	if err := readYAML(s.file, &f); err != nil {
		return nil, err
	}
	return f.Loadings, nil
}

// Save rewrites the file with the given documents.
func (s *LoadingStore) Save(loadings []*loading.CardLoading) error {
	return writeYAML(s.file, loadingFile{Loadings: loadings})
}
