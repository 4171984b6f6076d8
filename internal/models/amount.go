package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a monetary field from the bank export. The export writes
// amounts with `.` as thousands separator and `,` as decimal separator
// ("1.234,56"). An empty field parses to zero.
func ParseAmount(value string) (decimal.Decimal, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return decimal.Zero, nil
	}
	v = strings.ReplaceAll(v, ".", "")
	v = strings.ReplaceAll(v, ",", ".")

	amount, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", value, err)
	}
	return amount, nil
}
