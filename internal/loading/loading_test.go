package loading

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcoop/precargadas-csv/internal/models"
)

func TestNew(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	doc := New(date, "CAJA", "1.1.01", "2.1.01")

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, StateDraft, doc.State)
	assert.Equal(t, date, doc.Date)
	assert.True(t, doc.TotalAmount().IsZero())
}

func TestTotalAmount(t *testing.T) {
	doc := New(time.Now(), "CAJA", "1.1.01", "2.1.01")
	doc.Lines = []Line{
		{Party: "P-001", Amount: decimal.RequireFromString("100.50")},
		{Party: "P-002", Amount: decimal.RequireFromString("200")},
	}
	assert.True(t, doc.TotalAmount().Equal(decimal.RequireFromString("300.50")))
}

func TestStateTransitions(t *testing.T) {
	assert.True(t, StateDraft.CanTransition(StatePosted))
	assert.True(t, StatePosted.CanTransition(StateCancelled))

	assert.False(t, StateDraft.CanTransition(StateCancelled))
	assert.False(t, StatePosted.CanTransition(StateDraft))
	assert.False(t, StateCancelled.CanTransition(StateDraft))
	assert.False(t, StateCancelled.CanTransition(StatePosted))
}

func TestBuildMove(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	doc := New(date, "CAJA", "1.1.01", "2.1.01")
	doc.Description = "Carga marzo"
	doc.Lines = []Line{
		{Party: "P-001", CardNumber: "0000123456", Amount: decimal.RequireFromString("100")},
		{Party: "P-002", CardNumber: "0000123457", Amount: decimal.RequireFromString("50")},
	}

	period := models.Period{ID: "2024-03"}
	move := doc.buildMove(period)

	assert.Equal(t, "CAJA", move.Journal)
	assert.Equal(t, "2024-03", move.Period)
	assert.Equal(t, date, move.Date)
	assert.Equal(t, doc.ID, move.Origin)
	assert.Equal(t, "Carga marzo", move.Description)
	assert.True(t, move.Balance().IsZero())

	require.Len(t, move.Lines, 3)
	first := move.Lines[0]
	assert.Equal(t, "2.1.01", first.Account)
	assert.Equal(t, "P-001", first.Party)
	assert.True(t, first.Debit.Equal(decimal.RequireFromString("100")))
	require.NotNil(t, first.MaturityDate)
	assert.Equal(t, date, *first.MaturityDate)

	counter := move.Lines[2]
	assert.Equal(t, "1.1.01", counter.Account)
	assert.True(t, counter.Credit.Equal(decimal.RequireFromString("150")))
}

func TestSeedLines(t *testing.T) {
	identifiers := []models.Identifier{
		{
			Type:  models.IdentifierTypePreloadedCard,
			Code:  "0000123456",
			Party: models.Party{Code: "P-001", Active: true},
		},
		{
			Type:  models.IdentifierTypePreloadedCard,
			Code:  "0000123457",
			Party: models.Party{Code: "P-002", Active: false},
		},
		{
			Type:  "ar_cuit",
			Code:  "20-12345678-9",
			Party: models.Party{Code: "P-003", Active: true},
		},
	}

	lines := SeedLines(identifiers)
	require.Len(t, lines, 1)
	assert.Equal(t, "P-001", lines[0].Party)
	assert.Equal(t, "0000123456", lines[0].CardNumber)
	assert.True(t, lines[0].Amount.IsZero())
}
