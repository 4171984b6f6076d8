package store

import (
	"gcoop/precargadas-csv/internal/models"
)

// MoveStore persists ledger moves to a YAML file. Implements
// loading.MoveStore.
type MoveStore struct {
	file string
}

type moveFile struct {
	Moves []*models.LedgerMove `yaml:"moves"`
}

// NewMoveStore creates a store over the given YAML file.
func NewMoveStore(file string) *MoveStore {
	return &MoveStore{file: file}
}

// Load returns all persisted moves.
func (s *MoveStore) Load() ([]*models.LedgerMove, error) {
	var f moveFile
	if err := readYAML(s.file, &f); err != nil {
		return nil, err
	}
	return f.Moves, nil
}

// Save upserts the given moves by identifier and rewrites the file.
func (s *MoveStore) Save(moves []*models.LedgerMove) error {
	existing, err := s.Load()
	if err != nil {
		return err
	}

	index := make(map[string]int, len(existing))
	for i, move := range existing {
		index[move.ID] = i
	}
	for _, move := range moves {
		if i, ok := index[move.ID]; ok {
			existing[i] = move
		} else {
			index[move.ID] = len(existing)
			existing = append(existing, move)
		}
	}
	return writeYAML(s.file, moveFile{Moves: existing})
}

// Post marks the moves as posted and persists them.
func (s *MoveStore) Post(moves []*models.LedgerMove) error {
	for _, move := range moves {
		move.Status = models.MoveStatusPosted
	}
	return s.Save(moves)
}
