// Package common provides shared CSV plumbing used by the commands.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"gcoop/precargadas-csv/internal/logging"
)

var log = logging.NewLogrusAdapter("info", "text")

// Delimiter is the CSV output delimiter, configurable via config.
var Delimiter rune = ','

// SetDelimiter sets the delimiter used for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger replaces the package logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TRow is the struct type that maps to the CSV columns.
func ReadCSVFile[TRow any](filePath string) ([]TRow, error) {
	log.Debug("Reading CSV file", logging.Field{Key: "file", Value: filePath})

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []TRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.Debug("Read CSV data", logging.Field{Key: "count", Value: len(rows)})
	return rows, nil
}

// WriteCSVFile writes a slice of structs to a CSV file using gocsv, creating
// parent directories as needed.
func WriteCSVFile[TRow any](records []TRow, csvFile string) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to CSV")
	}

	log.Info("Writing CSV file",
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "count", Value: len(records)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool requires user-provided output paths
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	writer := csv.NewWriter(file)
	writer.Comma = Delimiter
	if err := gocsv.MarshalCSV(&records, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}
