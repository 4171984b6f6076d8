// Package store provides YAML-file-backed implementations of the lookup and
// persistence interfaces consumed by the statement and loading packages.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"gcoop/precargadas-csv/internal/logging"
	"gcoop/precargadas-csv/internal/models"
)

var log = logging.NewLogrusAdapter("info", "text")

// SetLogger replaces the package logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// readYAML unmarshals a YAML file into out. A missing file is not an error;
// the caller gets the zero value.
func readYAML(filePath string, out interface{}) error {
	data, err := os.ReadFile(filePath) // #nosec G304 -- store files are operator-configured paths
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("Store file not found", logging.Field{Key: "file", Value: filePath})
			return nil
		}
		return fmt.Errorf("error reading %s: %w", filePath, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("error parsing %s: %w", filePath, err)
	}
	return nil
}

// writeYAML marshals in to a YAML file, creating parent directories.
func writeYAML(filePath string, in interface{}) error {
	data, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("error marshalling %s: %w", filePath, err)
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return fmt.Errorf("error creating directory for %s: %w", filePath, err)
	}
	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return fmt.Errorf("error writing %s: %w", filePath, err)
	}
	return nil
}

// JournalStore looks up statement journals from a YAML configuration file.
type JournalStore struct {
	file string
}

type journalFile struct {
	Journals []models.StatementJournal `yaml:"journals"`
}

// NewJournalStore creates a store over the given YAML file.
func NewJournalStore(file string) *JournalStore {
	return &JournalStore{file: file}
}

// Load returns all configured journals.
func (s *JournalStore) Load() ([]models.StatementJournal, error) {
	var f journalFile
	if err := readYAML(s.file, &f); err != nil {
		return nil, err
	}
	return f.Journals, nil
}

// ByCardNumber returns the journal configured for a card number, or nil when
// there is none. Implements statement.JournalLookup.
func (s *JournalStore) ByCardNumber(cardNumber string) (*models.StatementJournal, error) {
	journals, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range journals {
		if journals[i].CardNumber == cardNumber {
			return &journals[i], nil
		}
	}
	return nil, nil
}

// ByName returns the journal with the given name, or nil when there is none.
func (s *JournalStore) ByName(name string) (*models.StatementJournal, error) {
	journals, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range journals {
		if journals[i].Name == name {
			return &journals[i], nil
		}
	}
	return nil, nil
}

// IdentifierStore looks up party identifiers from a YAML configuration file.
type IdentifierStore struct {
	file string
}

type identifierFile struct {
	Identifiers []models.Identifier `yaml:"identifiers"`
}

// NewIdentifierStore creates a store over the given YAML file.
func NewIdentifierStore(file string) *IdentifierStore {
	return &IdentifierStore{file: file}
}

// Load returns all configured identifiers.
func (s *IdentifierStore) Load() ([]models.Identifier, error) {
	var f identifierFile
	if err := readYAML(s.file, &f); err != nil {
		return nil, err
	}
	return f.Identifiers, nil
}

// FindByIdentifier resolves a party by identifier type and code. It returns
// nil unless exactly one identifier matches. Implements
// statement.PartyLookup.
func (s *IdentifierStore) FindByIdentifier(identifierType, code string) (*models.Party, error) {
	identifiers, err := s.Load()
	if err != nil {
		return nil, err
	}
	var matches []models.Identifier
	for _, id := range identifiers {
		if id.Type == identifierType && id.Code == code {
			matches = append(matches, id)
		}
	}
	if len(matches) != 1 {
		if len(matches) > 1 {
			log.Warn("Ambiguous identifier lookup",
				logging.Field{Key: "type", Value: identifierType},
				logging.Field{Key: "code", Value: code},
				logging.Field{Key: "matches", Value: len(matches)})
		}
		return nil, nil
	}
	party := matches[0].Party
	return &party, nil
}
