// Package parsererror defines the typed errors returned by the statement
// parser and the import pipeline.
package parsererror

import "fmt"

// ParseError represents a failure to parse a single field of the input file.
// Any ParseError rejects the whole file; there is no row-level recovery.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ShortRowError represents a row with fewer columns than the layout requires.
type ShortRowError struct {
	Parser string
	Line   int
	Want   int
	Got    int
}

func (e *ShortRowError) Error() string {
	return fmt.Sprintf("%s: row %d has %d columns, layout requires at least %d",
		e.Parser, e.Line, e.Got, e.Want)
}

// ValidationError represents a validation failure
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// InvalidFormatError represents an input file that does not conform to the
// expected export format.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// MissingJournalError indicates that no statement journal is configured for a
// card number. This is a configuration precondition of the import, so the
// whole file is rejected.
type MissingJournalError struct {
	CardNumber string
}

func (e *MissingJournalError) Error() string {
	return fmt.Sprintf("to import the statement, you must create a journal for account %q",
		e.CardNumber)
}
