// Package convert implements the convert command: the full conversion
// pipeline from an input file to a stored RAW artifact.
package convert

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csvraw/cmd/root"
	"csvraw/internal/container"
	"csvraw/internal/logging"
	"csvraw/internal/report"
	"csvraw/internal/xlsxparser"
)

var (
	inputFile  string
	outputDir  string
	reportFile string
)

// Cmd is the convert command.
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a settlement instruction file to a RAW file",
	Long: `Convert a CSV (or XLSX) settlement instruction file into a
depository RAW file, allocate its sequence id and store the artifact
in the data directory. Resubmitting identical input returns the
previously produced file.`,
	RunE: runConvert,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input CSV or XLSX file (required)")
	Cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Data directory override for this run")
	Cmd.Flags().StringVarP(&reportFile, "report", "r", "", "Optional audit report CSV to write")
	_ = Cmd.MarkFlagRequired("input")
}

func runConvert(cmd *cobra.Command, args []string) error {
	log := root.Log

	raw, err := readInput(inputFile)
	if err != nil {
		return err
	}

	if outputDir != "" {
		root.Cfg.Data.Directory = outputDir
	}
	c, err := container.New(root.Cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.WithError(err).Warn("failed to close database")
		}
	}()

	result, err := c.Converter().Convert(cmd.Context(), raw)
	if err != nil {
		return err
	}

	if result.Duplicate {
		log.Info("input already processed",
			logging.Field{Key: "filename", Value: result.Artifact.Filename})
		fmt.Println(result.Artifact.Filename)
		return nil
	}

	if reportFile != "" {
		if err := report.Write(result.Records, reportFile); err != nil {
			return err
		}
		log.Info("audit report written", logging.Field{Key: "file", Value: reportFile})
	}

	fmt.Println(result.Artifact.Filename)
	return nil
}

// readInput loads the input file, normalizing spreadsheets to CSV
// text first.
func readInput(path string) ([]byte, error) {
	if xlsxparser.IsXLSX(path) {
		return xlsxparser.ToCSV(path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	return raw, nil
}
