package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MoveStatus indicates the state of a ledger move.
type MoveStatus string

const (
	// MoveStatusDraft marks a move that has been built but not posted.
	MoveStatusDraft MoveStatus = "draft"
	// MoveStatusPosted marks a move that has been posted to the ledger.
	MoveStatusPosted MoveStatus = "posted"
)

// LedgerMove is a balanced journal entry of the ledger. It is distinct from
// the parser's Move row type.
type LedgerMove struct {
	ID          string     `yaml:"id"`
	Journal     string     `yaml:"journal"`
	Period      string     `yaml:"period"`
	Date        time.Time  `yaml:"date"`
	Origin      string     `yaml:"origin,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Status      MoveStatus `yaml:"status"`
	Lines       []MoveLine `yaml:"lines"`
}

// NewLedgerMove creates a draft move with a generated identifier.
func NewLedgerMove(journal, period string, date time.Time) *LedgerMove {
	return &LedgerMove{
		ID:      uuid.New().String(),
		Journal: journal,
		Period:  period,
		Date:    date,
		Status:  MoveStatusDraft,
	}
}

// Balance returns the signed sum of the move's lines (debit minus credit).
// A balanced move returns zero.
func (m *LedgerMove) Balance() decimal.Decimal {
	balance := decimal.Zero
	for _, line := range m.Lines {
		balance = balance.Add(line.Debit).Sub(line.Credit)
	}
	return balance
}

// Reversal builds the cancelling move: same journal, period and accounts,
// with debit and credit swapped on every line.
func (m *LedgerMove) Reversal() *LedgerMove {
	reversal := NewLedgerMove(m.Journal, m.Period, m.Date)
	reversal.Origin = m.Origin
	reversal.Description = m.Description
	for _, line := range m.Lines {
		reversed := line
		reversed.Debit, reversed.Credit = line.Credit, line.Debit
		reversal.Lines = append(reversal.Lines, reversed)
	}
	return reversal
}

// MoveLine is one leg of a ledger move.
type MoveLine struct {
	Account              string              `yaml:"account"`
	Debit                decimal.Decimal     `yaml:"debit"`
	Credit               decimal.Decimal     `yaml:"credit"`
	Party                string              `yaml:"party,omitempty"`
	Description          string              `yaml:"description,omitempty"`
	MaturityDate         *time.Time          `yaml:"maturity_date,omitempty"`
	SecondCurrency       string              `yaml:"second_currency,omitempty"`
	AmountSecondCurrency decimal.NullDecimal `yaml:"amount_second_currency,omitempty"`
}

// Period is an accounting period covering one calendar month.
type Period struct {
	ID        string    `yaml:"id"`
	StartDate time.Time `yaml:"start_date"`
	EndDate   time.Time `yaml:"end_date"`
}

// PeriodLookup resolves the accounting period containing a date.
type PeriodLookup interface {
	Find(date time.Time) (Period, error)
}
