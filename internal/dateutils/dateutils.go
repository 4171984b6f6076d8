// Package dateutils provides the date operations shared by the parser and the
// ledger side of the application.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date format constants used throughout the application
const (
	// DateLayoutStatement is the DD/MM/YYYY layout of the bank export.
	DateLayoutStatement = "02/01/2006"
	// DateLayoutISO is used for generated file names and YAML documents.
	DateLayoutISO = "2006-01-02"
)

// ParseStatementDate parses a DD/MM/YYYY value from the bank export.
// Surrounding whitespace is ignored; anything else is an error.
func ParseStatementDate(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	t, err := time.Parse(DateLayoutStatement, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", value, err)
	}
	return t, nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// MonthStart returns the first day of the month the date falls in.
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// MonthEnd returns the last day of the month the date falls in.
func MonthEnd(date time.Time) time.Time {
	return MonthStart(date).AddDate(0, 1, -1)
}

// SameMonth reports whether two dates fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
