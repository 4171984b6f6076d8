package loading

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcoop/precargadas-csv/internal/dateutils"
	"gcoop/precargadas-csv/internal/models"
)

type fakePeriods struct{}

func (fakePeriods) Find(date time.Time) (models.Period, error) {
	return models.Period{
		ID:        date.Format("2006-01"),
		StartDate: dateutils.MonthStart(date),
		EndDate:   dateutils.MonthEnd(date),
	}, nil
}

type fakeMoveStore struct {
	saved  []*models.LedgerMove
	posted []*models.LedgerMove
}

func (f *fakeMoveStore) Save(moves []*models.LedgerMove) error {
	f.saved = append(f.saved, moves...)
	return nil
}

func (f *fakeMoveStore) Post(moves []*models.LedgerMove) error {
	for _, move := range moves {
		move.Status = models.MoveStatusPosted
	}
	f.posted = append(f.posted, moves...)
	return nil
}

func draftLoading(day int) *CardLoading {
	doc := New(time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC), "CAJA", "1.1.01", "2.1.01")
	doc.Lines = []Line{
		{Party: "P-001", Amount: decimal.RequireFromString("100")},
	}
	return doc
}

func TestServicePost(t *testing.T) {
	store := &fakeMoveStore{}
	svc := NewService(fakePeriods{}, store, nil)

	loadings := []*CardLoading{draftLoading(5), draftLoading(10)}
	require.NoError(t, svc.Post(loadings))

	require.Len(t, store.saved, 2)
	require.Len(t, store.posted, 2)
	for _, doc := range loadings {
		assert.Equal(t, StatePosted, doc.State)
		require.NotNil(t, doc.Move)
		assert.Equal(t, "2024-03", doc.Move.Period)
		assert.Equal(t, models.MoveStatusPosted, doc.Move.Status)
		assert.True(t, doc.Move.Balance().IsZero())
	}
}

func TestServicePost_RejectsPosted(t *testing.T) {
	store := &fakeMoveStore{}
	svc := NewService(fakePeriods{}, store, nil)

	posted := draftLoading(5)
	posted.State = StatePosted

	err := svc.Post([]*CardLoading{draftLoading(10), posted})
	require.Error(t, err)

	var transition *TransitionError
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, StatePosted, transition.From)

	// Nothing was written when any loading fails validation.
	assert.Empty(t, store.saved)
}

func TestServiceCancel(t *testing.T) {
	store := &fakeMoveStore{}
	svc := NewService(fakePeriods{}, store, nil)

	doc := draftLoading(5)
	require.NoError(t, svc.Post([]*CardLoading{doc}))
	store.saved = nil
	store.posted = nil

	require.NoError(t, svc.Cancel([]*CardLoading{doc}))
	assert.Equal(t, StateCancelled, doc.State)
	require.NotNil(t, doc.CancelMove)
	require.Len(t, store.posted, 1)

	// The cancel move mirrors the original with debit and credit swapped.
	require.Len(t, doc.CancelMove.Lines, len(doc.Move.Lines))
	assert.True(t, doc.CancelMove.Lines[0].Credit.Equal(doc.Move.Lines[0].Debit))
	assert.True(t, doc.CancelMove.Balance().IsZero())
}

func TestServiceCancel_RejectsDraft(t *testing.T) {
	svc := NewService(fakePeriods{}, &fakeMoveStore{}, nil)

	err := svc.Cancel([]*CardLoading{draftLoading(5)})
	require.Error(t, err)

	var transition *TransitionError
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, StateDraft, transition.From)
}

func TestServiceCheckDelete(t *testing.T) {
	store := &fakeMoveStore{}
	svc := NewService(fakePeriods{}, store, nil)

	draft := draftLoading(5)
	assert.NoError(t, svc.CheckDelete([]*CardLoading{draft}))

	posted := draftLoading(10)
	require.NoError(t, svc.Post([]*CardLoading{posted}))

	err := svc.CheckDelete([]*CardLoading{draft, posted})
	require.Error(t, err)

	var deleteErr *DeleteError
	require.ErrorAs(t, err, &deleteErr)
	assert.Equal(t, StatePosted, deleteErr.State)
}
