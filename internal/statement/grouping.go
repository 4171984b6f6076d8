package statement

import (
	"time"

	"github.com/shopspring/decimal"

	"gcoop/precargadas-csv/internal/logging"
	"gcoop/precargadas-csv/internal/models"
)

// groupKey partitions statement lines by account and calendar month.
type groupKey struct {
	Account string
	Year    int
	Month   time.Month
}

type lineGroup struct {
	Key   groupKey
	Lines []models.StatementLine
}

// BuildMoves constructs the ledger moves for a set of reconciled statement
// lines, honoring the journal's grouping policy. With GroupMovesByAccount
// off, each line becomes its own move dated at the line's date. With it on,
// lines are partitioned by (account, month); each partition becomes one move
// dated at the period's end date, described with the journal's name.
//
// Every move carries one balancing counter-line on the journal's account.
func BuildMoves(journal *models.StatementJournal, lines []models.StatementLine, periods models.PeriodLookup, logger logging.Logger) ([]*models.LedgerMove, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	party := linesParty(lines)

	var moves []*models.LedgerMove
	if journal.GroupMovesByAccount {
		for _, group := range groupByAccountPeriod(lines) {
			period, err := periods.Find(time.Date(group.Key.Year, group.Key.Month, 1, 0, 0, 0, 0, time.UTC))
			if err != nil {
				return nil, err
			}
			move := buildMove(journal, period, period.EndDate, journal.Name, group.Lines, party)
			moves = append(moves, move)
		}
	} else {
		for _, line := range lines {
			period, err := periods.Find(line.Date)
			if err != nil {
				return nil, err
			}
			move := buildMove(journal, period, line.Date, line.Description, []models.StatementLine{line}, party)
			moves = append(moves, move)
		}
	}

	logger.Info("Built ledger moves",
		logging.Field{Key: "journal", Value: journal.Name},
		logging.Field{Key: "lines", Value: len(lines)},
		logging.Field{Key: "moves", Value: len(moves)})
	return moves, nil
}

// groupByAccountPeriod partitions lines by (account, month). Groups are
// ordered by first occurrence, lines keep their input order within a group.
func groupByAccountPeriod(lines []models.StatementLine) []lineGroup {
	var groups []lineGroup
	index := make(map[groupKey]int)
	for _, line := range lines {
		key := groupKey{
			Account: line.Account,
			Year:    line.Date.Year(),
			Month:   line.Date.Month(),
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, lineGroup{Key: key})
		}
		groups[i].Lines = append(groups[i].Lines, line)
	}
	return groups
}

// buildMove builds one ledger move from a group of statement lines plus its
// balancing counter-line. The counter amount is the signed sum of the group's
// debits minus credits; the second-currency amount is only set when at least
// one line carries one.
func buildMove(journal *models.StatementJournal, period models.Period, date time.Time, description string, group []models.StatementLine, party string) *models.LedgerMove {
	move := models.NewLedgerMove(journal.Journal, period.ID, date)
	move.Description = description

	amount := decimal.Zero
	secondAmount := decimal.Zero
	secondCurrency := ""
	haveSecond := false
	for _, line := range group {
		moveLine := line.MoveLine()
		amount = amount.Add(moveLine.Debit).Sub(moveLine.Credit)
		if moveLine.AmountSecondCurrency.Valid {
			secondAmount = secondAmount.Add(moveLine.AmountSecondCurrency.Decimal)
			haveSecond = true
			if secondCurrency == "" {
				secondCurrency = moveLine.SecondCurrency
			}
		}
		move.Lines = append(move.Lines, moveLine)
	}

	counter := models.MoveLine{Account: journal.Account.Code}
	if amount.Sign() >= 0 {
		counter.Credit = amount
	} else {
		counter.Debit = amount.Neg()
	}
	if haveSecond {
		counter.AmountSecondCurrency = decimal.NewNullDecimal(secondAmount)
		counter.SecondCurrency = secondCurrency
	}
	if journal.Account.PartyRequired {
		counter.Party = party
	}
	move.Lines = append(move.Lines, counter)
	return move
}

// linesParty returns the single distinct party shared by all lines that
// carry one. With more than one distinct party no choice is made: picking an
// arbitrary party would put the counter-line on the wrong account.
func linesParty(lines []models.StatementLine) string {
	distinct := ""
	for _, line := range lines {
		if line.Party == "" {
			continue
		}
		if distinct == "" {
			distinct = line.Party
			continue
		}
		if line.Party != distinct {
			return ""
		}
	}
	return distinct
}
