// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"gcoop/precargadas-csv/internal/dateutils"
)

// Batch is one parsed group of header metadata plus move rows from the
// preloaded-card export file. It is finalized by the parser and never
// mutated afterwards.
type Batch struct {
	Receiver    string          `yaml:"receiver"`
	CardNumber  string          `yaml:"card_number"`
	DateFrom    time.Time       `yaml:"date_from"`
	DateTo      time.Time       `yaml:"date_to"`
	DebitTotal  decimal.Decimal `yaml:"debit_total"`
	CreditTotal decimal.Decimal `yaml:"credit_total"`
	Moves       []Move          `yaml:"moves"`
}

// Name derives the statement name from the batch header.
func (b *Batch) Name() string {
	return fmt.Sprintf("%s-%s@(%s/%s)", b.Receiver, b.CardNumber,
		dateutils.ToISODate(b.DateFrom), dateutils.ToISODate(b.DateTo))
}

// Move is one parsed transaction row of the export file. Only debit rows are
// imported downstream, but both amounts are kept for the batch totals.
type Move struct {
	Date         time.Time       `yaml:"date"`
	OpNumber     string          `yaml:"op_number"`
	Name         string          `yaml:"name"`
	Description1 string          `yaml:"description1"`
	Description2 string          `yaml:"description2"`
	Debit        decimal.Decimal `yaml:"debit"`
	Credit       decimal.Decimal `yaml:"credit"`
}

// Description joins the two description columns for display.
func (m Move) Description() string {
	if m.Description1 != "" {
		return m.Description1 + " - " + m.Description2
	}
	return m.Description2
}

// ExportRow is the normalized CSV row written by the convert command.
type ExportRow struct {
	Date        string          `csv:"Date"`
	OpNumber    string          `csv:"OpNumber"`
	Name        string          `csv:"Name"`
	Description string          `csv:"Description"`
	Debit       decimal.Decimal `csv:"Debit"`
	Credit      decimal.Decimal `csv:"Credit"`
	CardNumber  string          `csv:"CardNumber"`
	Receiver    string          `csv:"Receiver"`
}

// NewExportRow builds the CSV row for one move of a batch.
func NewExportRow(batch *Batch, move Move) ExportRow {
	return ExportRow{
		Date:        dateutils.ToISODate(move.Date),
		OpNumber:    move.OpNumber,
		Name:        move.Name,
		Description: move.Description(),
		Debit:       move.Debit,
		Credit:      move.Credit,
		CardNumber:  batch.CardNumber,
		Receiver:    batch.Receiver,
	}
}
