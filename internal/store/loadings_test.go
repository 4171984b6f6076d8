package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcoop/precargadas-csv/internal/loading"
)

func TestLoadingStore(t *testing.T) {
	store := NewLoadingStore(filepath.Join(t.TempDir(), "loadings.yaml"))

	loadings, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loadings)

	doc := loading.New(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), "CAJA", "1.1.01", "2.1.01")
	doc.Lines = []loading.Line{
		{Party: "P-001", CardNumber: "0000123456", Amount: decimal.RequireFromString("100")},
	}
	require.NoError(t, store.Save([]*loading.CardLoading{doc}))

	loadings, err = store.Load()
	require.NoError(t, err)
	require.Len(t, loadings, 1)
	assert.Equal(t, doc.ID, loadings[0].ID)
	assert.Equal(t, loading.StateDraft, loadings[0].State)
	require.Len(t, loadings[0].Lines, 1)
	assert.Equal(t, "0000123456", loadings[0].Lines[0].CardNumber)
	assert.True(t, loadings[0].TotalAmount().Equal(decimal.RequireFromString("100")))
}
