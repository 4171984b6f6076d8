// Package loading implements the preloaded-card loading document: a manually
// entered batch crediting preloaded cards, with a draft/posted/cancelled
// lifecycle and ledger move generation.
package loading

import "fmt"

// State is the lifecycle state of a card loading document.
type State string

const (
	// StateDraft is the initial, editable state.
	StateDraft State = "draft"
	// StatePosted means the document's move has been posted to the ledger.
	StatePosted State = "posted"
	// StateCancelled means the posted move has been reversed. Terminal.
	StateCancelled State = "cancelled"
)

// transitions is the legal-transition table. Posted and cancelled are
// terminal except for posted→cancelled; there is no path back to draft.
var transitions = map[State][]State{
	StateDraft:  {StatePosted},
	StatePosted: {StateCancelled},
}

// CanTransition reports whether moving from s to the target state is legal.
func (s State) CanTransition(to State) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionError reports an illegal state transition on a loading document.
type TransitionError struct {
	From State
	To   State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("card loading cannot go from state %q to %q", e.From, e.To)
}

// DeleteError reports an attempt to delete a loading that left draft.
type DeleteError struct {
	State State
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("card loadings can only be deleted in draft state, not %q", e.State)
}
