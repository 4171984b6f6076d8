package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("bad date")
	err := &ParseError{Parser: "Precargadas", Field: "date", Value: "99/99/2024", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "date")
	assert.Contains(t, err.Error(), "99/99/2024")
}

func TestShortRowError(t *testing.T) {
	err := &ShortRowError{Parser: "Precargadas", Line: 9, Want: 13, Got: 4}
	assert.Contains(t, err.Error(), "row 9")
	assert.Contains(t, err.Error(), "13")
}

func TestMissingJournalError(t *testing.T) {
	err := &MissingJournalError{CardNumber: "0000123456"}
	assert.Contains(t, err.Error(), "0000123456")
	assert.Contains(t, err.Error(), "journal")
}
