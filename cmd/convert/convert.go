// Package convert handles conversion of precargadas exports to CSV
package convert

import (
	"os"

	"github.com/spf13/cobra"

	"gcoop/precargadas-csv/cmd/root"
	"gcoop/precargadas-csv/internal/precargadas"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a precargadas export to CSV",
	Long: `Convert a Banco Credicoop preloaded-card statement export to the
normalized CSV format.

Example:
  precargadas-csv convert -i extracto.csv -o moves.csv`,
	Run: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	input := root.SharedFlags.Input
	output := root.SharedFlags.Output

	if input == "" || output == "" {
		logger.Fatal("Input and output files must be specified")
	}

	if root.SharedFlags.Validate {
		valid, err := validateFile(input)
		if err != nil {
			logger.Fatalf("Error validating input file: %v", err)
		}
		if !valid {
			logger.Fatal("Input file is not a precargadas export")
		}
	}

	if err := precargadas.ConvertToCSV(input, output, root.Cfg.Import.Encoding, logger); err != nil {
		logger.Fatalf("Error converting file: %v", err)
	}
	root.Log.Info("Conversion completed successfully!")
}

func validateFile(input string) (bool, error) {
	file, err := os.Open(input) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return false, err
	}
	defer func() {
		_ = file.Close()
	}()

	decoded, err := precargadas.DecodeReader(file, root.Cfg.Import.Encoding)
	if err != nil {
		return false, err
	}
	return precargadas.ValidateFormat(decoded)
}
