package loading

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gcoop/precargadas-csv/internal/models"
)

// CardLoading is one loading document: it debits each card holder's account
// and credits the bank account for the total in a single balanced move.
type CardLoading struct {
	ID            string             `yaml:"id"`
	Date          time.Time          `yaml:"date"`
	Description   string             `yaml:"description,omitempty"`
	Journal       string             `yaml:"journal"`
	CreditAccount string             `yaml:"credit_account"`
	DebitAccount  string             `yaml:"debit_account"`
	Lines         []Line             `yaml:"lines"`
	State         State              `yaml:"state"`
	Move          *models.LedgerMove `yaml:"move,omitempty"`
	CancelMove    *models.LedgerMove `yaml:"cancel_move,omitempty"`
}

// Line is one card holder's share of a loading.
type Line struct {
	Party      string          `yaml:"party"`
	CardNumber string          `yaml:"card_number,omitempty"`
	Amount     decimal.Decimal `yaml:"amount"`
}

// New creates a draft loading for the given date.
func New(date time.Time, journal, creditAccount, debitAccount string) *CardLoading {
	return &CardLoading{
		ID:            uuid.New().String(),
		Date:          date,
		Journal:       journal,
		CreditAccount: creditAccount,
		DebitAccount:  debitAccount,
		State:         StateDraft,
	}
}

// TotalAmount is the sum of the line amounts.
func (c *CardLoading) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Amount)
	}
	return total
}

// buildMove builds the loading's ledger move: one debit line per loading
// line plus a single credit counter-line for the total.
func (c *CardLoading) buildMove(period models.Period) *models.LedgerMove {
	move := models.NewLedgerMove(c.Journal, period.ID, c.Date)
	move.Origin = c.ID
	move.Description = c.Description

	maturity := c.Date
	for _, line := range c.Lines {
		move.Lines = append(move.Lines, models.MoveLine{
			Account:      c.DebitAccount,
			Debit:        line.Amount,
			Credit:       decimal.Zero,
			Party:        line.Party,
			MaturityDate: &maturity,
			Description:  c.Description,
		})
	}
	move.Lines = append(move.Lines, models.MoveLine{
		Account:      c.CreditAccount,
		Debit:        decimal.Zero,
		Credit:       c.TotalAmount(),
		MaturityDate: &maturity,
		Description:  c.Description,
	})
	return move
}

// SeedLines builds zero-amount lines for every active party holding a
// preloaded-card identifier. Used to pre-populate a fresh document; existing
// lines are the caller's to keep.
func SeedLines(identifiers []models.Identifier) []Line {
	var lines []Line
	for _, id := range identifiers {
		if id.Type != models.IdentifierTypePreloadedCard || !id.Party.Active {
			continue
		}
		lines = append(lines, Line{
			Party:      id.Party.Code,
			CardNumber: id.Code,
			Amount:     decimal.Zero,
		})
	}
	return lines
}
