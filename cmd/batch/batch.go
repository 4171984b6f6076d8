// Package batch handles batch processing of export files
package batch

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gcoop/precargadas-csv/cmd/root"
	"gcoop/precargadas-csv/internal/fileutils"
	"gcoop/precargadas-csv/internal/logging"
	"gcoop/precargadas-csv/internal/precargadas"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch convert export files from a directory",
	Long: `Convert every precargadas export in the input directory to the
normalized CSV format in the output directory. Files that do not look like
precargadas exports are skipped.

Example:
  precargadas-csv batch -i exports/ -o csv/`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output

	if inputDir == "" || outputDir == "" {
		logger.Fatal("Input and output directories must be specified")
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		logger.Fatalf("Failed to create output directory: %v", err)
	}

	files, err := fileutils.ListFilesByExtension(inputDir, ".csv")
	if err != nil {
		logger.Fatalf("Failed to read input directory: %v", err)
	}
	if len(files) == 0 {
		logger.Warn("No export files found in input directory")
		return
	}

	count := 0
	for _, inputFile := range files {
		if !isExport(inputFile, logger) {
			logger.Debug("Skipping file, not a precargadas export",
				logging.Field{Key: "file", Value: filepath.Base(inputFile)})
			continue
		}

		outputFile := filepath.Join(outputDir, filepath.Base(inputFile))
		if err := precargadas.ConvertToCSV(inputFile, outputFile, root.Cfg.Import.Encoding, logger); err != nil {
			logger.WithError(err).Error("Failed to convert file",
				logging.Field{Key: "file", Value: filepath.Base(inputFile)})
			continue
		}
		count++
	}

	root.Log.Infof("Batch processing completed. %d file(s) converted.", count)
}

func isExport(inputFile string, logger logging.Logger) bool {
	file, err := os.Open(inputFile) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		logger.WithError(err).Warn("Failed to open file",
			logging.Field{Key: "file", Value: filepath.Base(inputFile)})
		return false
	}
	defer func() {
		_ = file.Close()
	}()

	decoded, err := precargadas.DecodeReader(file, root.Cfg.Import.Encoding)
	if err != nil {
		return false
	}
	valid, err := precargadas.ValidateFormat(decoded)
	if err != nil {
		logger.WithError(err).Warn("Error validating file format",
			logging.Field{Key: "file", Value: filepath.Base(inputFile)})
		return false
	}
	return valid
}
