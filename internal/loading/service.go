package loading

import (
	"gcoop/precargadas-csv/internal/logging"
	"gcoop/precargadas-csv/internal/models"
)

// MoveStore persists and posts ledger moves.
type MoveStore interface {
	Save(moves []*models.LedgerMove) error
	Post(moves []*models.LedgerMove) error
}

// Service runs the workflow transitions of card loading documents.
type Service struct {
	periods models.PeriodLookup
	moves   MoveStore
	log     logging.Logger
}

// NewService creates a Service over the given period lookup and move store.
func NewService(periods models.PeriodLookup, moves MoveStore, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Service{
		periods: periods,
		moves:   moves,
		log:     logger,
	}
}

// Post transitions the loadings to posted. One move is built per loading;
// all moves are saved and posted as a single batch, so either every loading
// in the call gets its move or none does.
func (s *Service) Post(loadings []*CardLoading) error {
	for _, l := range loadings {
		if !l.State.CanTransition(StatePosted) {
			return &TransitionError{From: l.State, To: StatePosted}
		}
	}

	var moves []*models.LedgerMove
	for _, l := range loadings {
		period, err := s.periods.Find(l.Date)
		if err != nil {
			return err
		}
		move := l.buildMove(period)
		l.Move = move
		moves = append(moves, move)
	}

	if len(moves) > 0 {
		if err := s.moves.Save(moves); err != nil {
			return err
		}
		if err := s.moves.Post(moves); err != nil {
			return err
		}
	}

	for _, l := range loadings {
		l.State = StatePosted
	}
	s.log.Info("Posted card loadings",
		logging.Field{Key: "count", Value: len(loadings)})
	return nil
}

// Cancel transitions the loadings to cancelled, generating and posting the
// reversing move of each loading that actually carries a posted move.
func (s *Service) Cancel(loadings []*CardLoading) error {
	for _, l := range loadings {
		if !l.State.CanTransition(StateCancelled) {
			return &TransitionError{From: l.State, To: StateCancelled}
		}
	}

	var cancelMoves []*models.LedgerMove
	for _, l := range loadings {
		if l.Move == nil {
			continue
		}
		cancel := l.Move.Reversal()
		l.CancelMove = cancel
		cancelMoves = append(cancelMoves, cancel)
	}

	if len(cancelMoves) > 0 {
		if err := s.moves.Save(cancelMoves); err != nil {
			return err
		}
		if err := s.moves.Post(cancelMoves); err != nil {
			return err
		}
	}

	for _, l := range loadings {
		l.State = StateCancelled
	}
	s.log.Info("Cancelled card loadings",
		logging.Field{Key: "count", Value: len(loadings)})
	return nil
}

// CheckDelete validates that every loading may be deleted. Only drafts can
// be deleted; the actual removal is the caller's.
func (s *Service) CheckDelete(loadings []*CardLoading) error {
	for _, l := range loadings {
		if l.State != StateDraft {
			return &DeleteError{State: l.State}
		}
	}
	return nil
}
