package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatementDate(t *testing.T) {
	date, err := ParseStatementDate("05/03/2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, time.March, date.Month())
	assert.Equal(t, 5, date.Day())
}

func TestParseStatementDate_Whitespace(t *testing.T) {
	date, err := ParseStatementDate("  31/12/2023 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), date)
}

func TestParseStatementDate_Invalid(t *testing.T) {
	_, err := ParseStatementDate("2024-03-05")
	assert.Error(t, err)

	_, err = ParseStatementDate("32/01/2024")
	assert.Error(t, err)
}

func TestMonthBounds(t *testing.T) {
	date := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), MonthStart(date))
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), MonthEnd(date))
}

func TestSameMonth(t *testing.T) {
	a := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)
	c := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, SameMonth(a, b))
	assert.False(t, SameMonth(a, c))
}
