package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcoop/precargadas-csv/internal/models"
)

func testMove() *models.LedgerMove {
	move := models.NewLedgerMove("CAJA", "2024-03", time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
	move.Lines = []models.MoveLine{
		{Account: "5.1.01", Debit: decimal.NewFromInt(100)},
		{Account: "2.1.01", Credit: decimal.NewFromInt(100)},
	}
	return move
}

func TestMoveStore_SaveUpserts(t *testing.T) {
	store := NewMoveStore(filepath.Join(t.TempDir(), "moves.yaml"))

	move := testMove()
	require.NoError(t, store.Save([]*models.LedgerMove{move}))

	move.Description = "actualizado"
	require.NoError(t, store.Save([]*models.LedgerMove{move, testMove()}))

	moves, err := store.Load()
	require.NoError(t, err)
	require.Len(t, moves, 2)
	assert.Equal(t, move.ID, moves[0].ID)
	assert.Equal(t, "actualizado", moves[0].Description)
}

func TestMoveStore_Post(t *testing.T) {
	store := NewMoveStore(filepath.Join(t.TempDir(), "moves.yaml"))

	move := testMove()
	require.NoError(t, store.Save([]*models.LedgerMove{move}))
	require.NoError(t, store.Post([]*models.LedgerMove{move}))

	assert.Equal(t, models.MoveStatusPosted, move.Status)

	moves, err := store.Load()
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, models.MoveStatusPosted, moves[0].Status)
	assert.True(t, moves[0].Balance().IsZero())
}

func TestCalendarPeriods(t *testing.T) {
	period, err := CalendarPeriods{}.Find(time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2024-02", period.ID)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), period.StartDate)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), period.EndDate)
}
