// Package statement derives accounting statements and ledger moves from
// parsed preloaded-card batches. Persistence is injected through the small
// lookup interfaces below.
package statement

import (
	"time"

	"gcoop/precargadas-csv/internal/models"
)

// JournalLookup resolves the statement journal configured for a card number.
// A nil journal with a nil error means no journal is configured.
type JournalLookup interface {
	ByCardNumber(cardNumber string) (*models.StatementJournal, error)
}

// OriginLookup answers whether an origin was already recorded for a
// (date, operation number) pair. It is the import's only defense against
// double-booking.
type OriginLookup interface {
	Exists(date time.Time, number string) (bool, error)
}

// PartyLookup resolves a party by identifier type and code. It returns nil
// when the lookup matches no party or more than one; the caller leaves the
// origin without a party in that case.
type PartyLookup interface {
	FindByIdentifier(identifierType, code string) (*models.Party, error)
}
