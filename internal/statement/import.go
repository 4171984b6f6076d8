package statement

import (
	"github.com/shopspring/decimal"

	"gcoop/precargadas-csv/internal/logging"
	"gcoop/precargadas-csv/internal/models"
	"gcoop/precargadas-csv/internal/parsererror"
)

// Importer turns parsed batches into statements with origin lines.
type Importer struct {
	journals JournalLookup
	origins  OriginLookup
	parties  PartyLookup
	log      logging.Logger
}

// NewImporter creates an Importer over the given lookups.
func NewImporter(journals JournalLookup, origins OriginLookup, parties PartyLookup, logger logging.Logger) *Importer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Importer{
		journals: journals,
		origins:  origins,
		parties:  parties,
		log:      logger,
	}
}

// Build derives one statement from a parsed batch. Only debit rows are
// imported; rows whose (date, operation number) pair already has an origin
// are skipped, so re-importing the same file produces no new origins.
//
// A missing journal for the batch's card number rejects the whole import.
func (imp *Importer) Build(batch *models.Batch) (*models.Statement, error) {
	journal, err := imp.journals.ByCardNumber(batch.CardNumber)
	if err != nil {
		return nil, err
	}
	if journal == nil {
		return nil, &parsererror.MissingJournalError{CardNumber: batch.CardNumber}
	}

	stmt := &models.Statement{
		Name:         batch.Name(),
		Journal:      journal.Name,
		StartBalance: decimal.Zero,
	}

	debitTotal := decimal.Zero
	for _, move := range batch.Moves {
		if move.Debit.IsZero() {
			continue
		}
		exists, err := imp.origins.Exists(move.Date, move.OpNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			imp.log.Debug("Skipping already imported move",
				logging.Field{Key: "number", Value: move.OpNumber},
				logging.Field{Key: "date", Value: move.Date})
			continue
		}

		origin, err := imp.buildOrigin(batch, move)
		if err != nil {
			return nil, err
		}
		stmt.Origins = append(stmt.Origins, origin)
		debitTotal = debitTotal.Sub(move.Debit)
	}

	stmt.EndBalance = debitTotal
	stmt.TotalAmount = debitTotal
	stmt.NumberOfLines = len(stmt.Origins)

	imp.log.Info("Built statement",
		logging.Field{Key: "name", Value: stmt.Name},
		logging.Field{Key: "origins", Value: stmt.NumberOfLines})
	return stmt, nil
}

func (imp *Importer) buildOrigin(batch *models.Batch, move models.Move) (models.Origin, error) {
	origin := models.Origin{
		Number:      move.OpNumber,
		Date:        move.Date,
		Amount:      move.Debit.Neg(),
		Description: move.Description(),
	}
	if batch.CardNumber != "" {
		origin.Information = map[string]string{
			models.InformationKeyCardNumber: batch.CardNumber,
		}
	}

	party, err := imp.parties.FindByIdentifier(models.IdentifierTypePreloadedCard, batch.CardNumber)
	if err != nil {
		return models.Origin{}, err
	}
	if party != nil {
		origin.Party = party.Code
	}
	return origin, nil
}
