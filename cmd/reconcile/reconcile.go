// Package reconcile handles the move construction command
package reconcile

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gcoop/precargadas-csv/cmd/root"
	"gcoop/precargadas-csv/internal/models"
	"gcoop/precargadas-csv/internal/statement"
	"gcoop/precargadas-csv/internal/store"
)

var journalName string

// Cmd represents the reconcile command
var Cmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Build ledger moves from reconciled statement lines",
	Long: `Build the ledger moves for a set of reconciled statement lines and
save them to the move store. The journal's group_moves_by_account option
selects between one move per line and one move per account and month.

The input file is a YAML document with a "lines" list of statement lines.

Example:
  precargadas-csv reconcile -i lines.yaml --journal "Precargadas" -o moves.yaml`,
	Run: reconcileFunc,
}

func init() {
	Cmd.Flags().StringVarP(&journalName, "journal", "j", "", "Statement journal name")
}

type linesFile struct {
	Lines []models.StatementLine `yaml:"lines"`
}

func reconcileFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	input := root.SharedFlags.Input
	output := root.SharedFlags.Output

	if input == "" || journalName == "" {
		logger.Fatal("Input file and journal name must be specified")
	}

	data, err := os.ReadFile(input) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		logger.Fatalf("Error reading lines file: %v", err)
	}
	var f linesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		logger.Fatalf("Error parsing lines file: %v", err)
	}

	journals := store.NewJournalStore(root.Cfg.Import.JournalsFile)
	journal, err := journals.ByName(journalName)
	if err != nil {
		logger.Fatalf("Error loading journals: %v", err)
	}
	if journal == nil {
		logger.Fatalf("No journal named %q is configured", journalName)
	}

	moves, err := statement.BuildMoves(journal, f.Lines, store.CalendarPeriods{}, logger)
	if err != nil {
		logger.Fatalf("Error building moves: %v", err)
	}

	movesStore := store.NewMoveStore(root.Cfg.Ledger.MovesFile)
	if err := movesStore.Save(moves); err != nil {
		logger.Fatalf("Error saving moves: %v", err)
	}

	if output != "" {
		out, err := yaml.Marshal(map[string]interface{}{"moves": moves})
		if err != nil {
			logger.Fatalf("Error marshalling moves: %v", err)
		}
		if err := os.WriteFile(output, out, 0600); err != nil {
			logger.Fatalf("Error writing moves file: %v", err)
		}
	}

	root.Log.Infof("Built %d move(s) from %d line(s)", len(moves), len(f.Lines))
}
