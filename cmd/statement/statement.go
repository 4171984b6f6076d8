// Package statement handles the statement import command
package statement

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gcoop/precargadas-csv/cmd/root"
	"gcoop/precargadas-csv/internal/models"
	"gcoop/precargadas-csv/internal/precargadas"
	"gcoop/precargadas-csv/internal/statement"
	"gcoop/precargadas-csv/internal/store"
)

// Cmd represents the statement command
var Cmd = &cobra.Command{
	Use:   "statement",
	Short: "Import a precargadas export as an accounting statement",
	Long: `Parse a preloaded-card statement export and derive one accounting
statement with its origin lines. Only debit rows are imported; rows already
recorded in the origin store are skipped, so importing the same file twice
creates no duplicates.

The journal is resolved by card number from the configured journals file;
the import fails when no journal matches.

Example:
  precargadas-csv statement -i extracto.csv -o statement.yaml`,
	Run: statementFunc,
}

func statementFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	input := root.SharedFlags.Input
	output := root.SharedFlags.Output

	if input == "" {
		logger.Fatal("Input file must be specified")
	}

	batches, err := precargadas.ParseFile(input, root.Cfg.Import.Encoding, logger)
	if err != nil {
		logger.Fatalf("Error parsing export: %v", err)
	}

	journals := store.NewJournalStore(root.Cfg.Import.JournalsFile)
	identifiers := store.NewIdentifierStore(root.Cfg.Import.IdentifiersFile)
	origins := store.NewOriginStore(root.Cfg.Import.OriginsFile)
	importer := statement.NewImporter(journals, origins, identifiers, logger)

	var statements []*models.Statement
	for i := range batches {
		stmt, err := importer.Build(&batches[i])
		if err != nil {
			logger.Fatalf("Error importing statement: %v", err)
		}
		statements = append(statements, stmt)
	}

	for _, stmt := range statements {
		if err := origins.Append(stmt.Origins); err != nil {
			logger.Fatalf("Error recording origins: %v", err)
		}
	}

	if output != "" {
		if err := writeStatements(statements, output); err != nil {
			logger.Fatalf("Error writing statements: %v", err)
		}
	}

	root.Log.Infof("Imported %d statement(s)", len(statements))
}

func writeStatements(statements []*models.Statement, output string) error {
	data, err := yaml.Marshal(map[string]interface{}{"statements": statements})
	if err != nil {
		return err
	}
	return os.WriteFile(output, data, 0600)
}
