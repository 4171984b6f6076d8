// Package precargadas parses the Banco Credicoop "tarjetas precargadas"
// statement export: a comma-delimited file with a fixed 8-line header block
// followed by one move row per line.
package precargadas

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"gcoop/precargadas-csv/internal/common"
	"gcoop/precargadas-csv/internal/dateutils"
	"gcoop/precargadas-csv/internal/logging"
	"gcoop/precargadas-csv/internal/models"
	"gcoop/precargadas-csv/internal/parsererror"
)

const parserName = "Precargadas"

// Fixed layout of the export, 1-based line numbers. Lines 1-4 and 7-8 are
// boilerplate and column titles.
const (
	lineReceiver   = 5
	linePeriod     = 6
	firstMoveLine  = 9
	headerRowWidth = 10 // receiver/period rows reference columns 4 and 9
	moveRowWidth   = 13 // move rows reference up to column 12
)

// Column offsets within one row, 0-based.
const (
	colReceiver     = 4
	colCardNumber   = 9
	colDateFrom     = 4
	colDateTo       = 9
	colMoveDate     = 1
	colOpNumber     = 2
	colMoveName     = 3
	colDescription1 = 4
	colDescription2 = 6
	colDebit        = 8
	colCredit       = 12
)

// Parse reads the export from r and returns the parsed batches. The current
// export format never repeats the header block, so exactly one batch is
// returned; the slice shape is kept for the file format's sake.
//
// Any malformed date, amount or short row rejects the whole file.
func Parse(r io.Reader, logger logging.Logger) ([]models.Batch, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Debug("Parsing precargadas statement from reader")

	batch := &models.Batch{}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row widths vary across the fixed layout

	line := 0
	debitTotal := decimal.Zero
	creditTotal := decimal.Zero
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading input: %w", err)
		}
		line++

		switch {
		case line < lineReceiver:
			continue
		case line == lineReceiver:
			if err := parseReceiverRow(row, line, batch); err != nil {
				return nil, err
			}
		case line == linePeriod:
			if err := parsePeriodRow(row, line, batch); err != nil {
				return nil, err
			}
		case line < firstMoveLine:
			continue
		default:
			move, debit, credit, skip, err := parseMoveRow(row, line)
			if err != nil {
				return nil, err
			}
			if skip {
				continue
			}
			debitTotal = debitTotal.Add(debit)
			creditTotal = creditTotal.Add(credit)
			batch.Moves = append(batch.Moves, move)
		}
	}

	if line < linePeriod {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       "(from reader)",
			ExpectedFormat: "Credicoop precargadas export",
			Msg:            fmt.Sprintf("file has %d rows, header block requires %d", line, linePeriod),
		}
	}

	batch.DebitTotal = debitTotal
	batch.CreditTotal = creditTotal

	logger.Info("Parsed precargadas statement",
		logging.Field{Key: "card_number", Value: batch.CardNumber},
		logging.Field{Key: "moves", Value: len(batch.Moves)})

	return []models.Batch{*batch}, nil
}

// ParseFile opens, decodes and parses an export file. The encoding defaults
// to windows-1252, the charset the bank exports in.
func ParseFile(filePath, encoding string, logger logging.Logger) ([]models.Batch, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error opening input file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Warn("Failed to close file",
				logging.Field{Key: "error", Value: err})
		}
	}()

	decoded, err := DecodeReader(file, encoding)
	if err != nil {
		return nil, err
	}
	return Parse(decoded, logger)
}

// ValidateFormat checks whether the reader carries a plausible precargadas
// export: at least the six header lines, with parseable period dates on
// line 6. I/O failures are returned as errors, structural mismatches as
// a false result.
func ValidateFormat(r io.Reader) (bool, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	line := 0
	for line < linePeriod {
		row, err := reader.Read()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("failed to read input: %w", err)
		}
		line++

		if line == linePeriod {
			if len(row) < headerRowWidth {
				return false, nil
			}
			if _, err := dateutils.ParseStatementDate(row[colDateFrom]); err != nil {
				return false, nil
			}
			if _, err := dateutils.ParseStatementDate(row[colDateTo]); err != nil {
				return false, nil
			}
		}
	}
	return true, nil
}

// ConvertToCSV parses an export file and writes its moves as normalized CSV.
func ConvertToCSV(inputFile, outputFile, encoding string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Converting precargadas export to CSV",
		logging.Field{Key: "input", Value: inputFile},
		logging.Field{Key: "output", Value: outputFile})

	batches, err := ParseFile(inputFile, encoding, logger)
	if err != nil {
		return err
	}

	var rows []models.ExportRow
	for i := range batches {
		for _, move := range batches[i].Moves {
			rows = append(rows, models.NewExportRow(&batches[i], move))
		}
	}

	if err := common.WriteCSVFile(rows, outputFile); err != nil {
		return err
	}

	logger.Info("Successfully converted export to CSV",
		logging.Field{Key: "count", Value: len(rows)},
		logging.Field{Key: "output", Value: outputFile})
	return nil
}

func parseReceiverRow(row []string, line int, batch *models.Batch) error {
	if len(row) < headerRowWidth {
		return &parsererror.ShortRowError{
			Parser: parserName, Line: line, Want: headerRowWidth, Got: len(row)}
	}
	batch.Receiver = strings.TrimSpace(row[colReceiver])
	batch.CardNumber = strings.Trim(strings.TrimSpace(row[colCardNumber]), "-")
	return nil
}

func parsePeriodRow(row []string, line int, batch *models.Batch) error {
	if len(row) < headerRowWidth {
		return &parsererror.ShortRowError{
			Parser: parserName, Line: line, Want: headerRowWidth, Got: len(row)}
	}

	dateFrom, err := dateutils.ParseStatementDate(row[colDateFrom])
	if err != nil {
		return &parsererror.ParseError{
			Parser: parserName, Field: "date_from", Value: row[colDateFrom], Err: err}
	}
	dateTo, err := dateutils.ParseStatementDate(row[colDateTo])
	if err != nil {
		return &parsererror.ParseError{
			Parser: parserName, Field: "date_to", Value: row[colDateTo], Err: err}
	}

	batch.DateFrom = dateFrom
	batch.DateTo = dateTo
	return nil
}

// parseMoveRow parses one move row. Rows whose operation number column is
// empty are separator lines and are skipped, counted neither as moves nor in
// the totals. The returned debit and credit carry the row's contribution to
// the batch totals: empty amount fields contribute nothing.
func parseMoveRow(row []string, line int) (move models.Move, debit, credit decimal.Decimal, skip bool, err error) {
	if len(row) <= colOpNumber {
		err = &parsererror.ShortRowError{
			Parser: parserName, Line: line, Want: colOpNumber + 1, Got: len(row)}
		return
	}
	if strings.TrimSpace(row[colOpNumber]) == "" {
		skip = true
		return
	}
	if len(row) < moveRowWidth {
		err = &parsererror.ShortRowError{
			Parser: parserName, Line: line, Want: moveRowWidth, Got: len(row)}
		return
	}

	date, err := dateutils.ParseStatementDate(row[colMoveDate])
	if err != nil {
		err = &parsererror.ParseError{
			Parser: parserName, Field: "date", Value: row[colMoveDate], Err: err}
		return
	}
	debitAmount, err := models.ParseAmount(row[colDebit])
	if err != nil {
		err = &parsererror.ParseError{
			Parser: parserName, Field: "debit", Value: row[colDebit], Err: err}
		return
	}
	creditAmount, err := models.ParseAmount(row[colCredit])
	if err != nil {
		err = &parsererror.ParseError{
			Parser: parserName, Field: "credit", Value: row[colCredit], Err: err}
		return
	}

	move = models.Move{
		Date:         date,
		OpNumber:     strings.TrimSpace(row[colOpNumber]),
		Name:         strings.TrimSpace(row[colMoveName]),
		Description1: strings.TrimSpace(row[colDescription1]),
		Description2: strings.TrimSpace(row[colDescription2]),
		Debit:        debitAmount,
		Credit:       creditAmount,
	}
	if strings.TrimSpace(row[colDebit]) != "" {
		debit = debitAmount
	}
	if strings.TrimSpace(row[colCredit]) != "" {
		credit = creditAmount
	}
	return
}
