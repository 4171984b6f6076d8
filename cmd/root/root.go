// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gcoop/precargadas-csv/internal/common"
	"gcoop/precargadas-csv/internal/config"
	"gcoop/precargadas-csv/internal/logging"
	"gcoop/precargadas-csv/internal/store"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the application configuration, loaded before any command runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "precargadas-csv",
		Short: "Import Banco Credicoop preloaded-card statements into accounting records.",
		Long: `precargadas-csv parses the Banco Credicoop "tarjetas precargadas" statement
export, derives reconciliation-ready statement origins, builds grouped ledger
moves and manages preloaded-card loading documents.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to precargadas-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg

			logger := logging.NewLogrusAdapterFromLogger(Log)
			common.SetLogger(logger)
			store.SetLogger(logger)

			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
		},
	}

	// SharedFlags are the common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
}

// GetLogger returns the shared logger wrapped in the logging abstraction.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
