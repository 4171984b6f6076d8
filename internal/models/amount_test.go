package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"thousands and decimal separator", "1.234,56", "1234.56"},
		{"zero", "0,00", "0"},
		{"no thousands separator", "500,00", "500"},
		{"millions", "2.345.678,90", "2345678.9"},
		{"empty field", "", "0"},
		{"surrounding whitespace", "  12,50  ", "12.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			require.NoError(t, err)
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %s, want %s", got, want)
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	_, err := ParseAmount("no es un monto")
	assert.Error(t, err)
}
