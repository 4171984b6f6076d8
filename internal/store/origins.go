package store

import (
	"time"

	"gcoop/precargadas-csv/internal/models"
)

// OriginStore records imported origins in a YAML file so a re-import of the
// same export produces no duplicates. Implements statement.OriginLookup.
type OriginStore struct {
	file string
}

type originFile struct {
	Origins []models.Origin `yaml:"origins"`
}

// NewOriginStore creates a store over the given YAML file.
func NewOriginStore(file string) *OriginStore {
	return &OriginStore{file: file}
}

// Load returns all recorded origins.
func (s *OriginStore) Load() ([]models.Origin, error) {
	var f originFile
	if err := readYAML(s.file, &f); err != nil {
		return nil, err
	}
	return f.Origins, nil
}

// Exists reports whether an origin is already recorded for the
// (date, number) pair.
func (s *OriginStore) Exists(date time.Time, number string) (bool, error) {
	origins, err := s.Load()
	if err != nil {
		return false, err
	}
	for _, origin := range origins {
		if origin.Number == number && sameDay(origin.Date, date) {
			return true, nil
		}
	}
	return false, nil
}

// Append records newly imported origins.
func (s *OriginStore) Append(origins []models.Origin) error {
	existing, err := s.Load()
	if err != nil {
		return err
	}
	return writeYAML(s.file, originFile{Origins: append(existing, origins...)})
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
