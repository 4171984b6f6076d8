package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InformationKeyCardNumber is the origin metadata key carrying the card
// number of the source export.
const InformationKeyCardNumber = "credicoop_precargadas_card_number"

// Statement is the accounting statement derived from one parsed batch. Its
// balances carry the negative sum of the imported debits: a debit on the card
// statement is a liability decrease, so it is sign-flipped into the ledger.
type Statement struct {
	Name          string          `yaml:"name"`
	Journal       string          `yaml:"journal"`
	StartBalance  decimal.Decimal `yaml:"start_balance"`
	EndBalance    decimal.Decimal `yaml:"end_balance"`
	TotalAmount   decimal.Decimal `yaml:"total_amount"`
	NumberOfLines int             `yaml:"number_of_lines"`
	Origins       []Origin        `yaml:"origins"`
}

// Origin is a reconciliation-ready entry derived from one imported move,
// prior to being folded into a ledger move. Party is empty when the
// identifier lookup was ambiguous or found nothing; those origins are left
// for manual reconciliation.
type Origin struct {
	Number      string            `yaml:"number"`
	Date        time.Time         `yaml:"date"`
	Amount      decimal.Decimal   `yaml:"amount"`
	Party       string            `yaml:"party,omitempty"`
	Description string            `yaml:"description"`
	Information map[string]string `yaml:"information,omitempty"`
}

// StatementLine is a reconciled statement line ready to be folded into a
// ledger move.
type StatementLine struct {
	Account              string              `yaml:"account"`
	Date                 time.Time           `yaml:"date"`
	Amount               decimal.Decimal     `yaml:"amount"`
	Party                string              `yaml:"party,omitempty"`
	Description          string              `yaml:"description,omitempty"`
	SecondCurrency       string              `yaml:"second_currency,omitempty"`
	AmountSecondCurrency decimal.NullDecimal `yaml:"amount_second_currency,omitempty"`
}

// MoveLine converts the statement line into its ledger move line. A positive
// amount debits the line's account, a negative amount credits it.
func (l StatementLine) MoveLine() MoveLine {
	line := MoveLine{
		Account:              l.Account,
		Party:                l.Party,
		Description:          l.Description,
		SecondCurrency:       l.SecondCurrency,
		AmountSecondCurrency: l.AmountSecondCurrency,
	}
	if l.Amount.Sign() >= 0 {
		line.Debit = l.Amount
	} else {
		line.Credit = l.Amount.Neg()
	}
	return line
}
