// Package validate implements the validate command: a dry run of the
// conversion pipeline that allocates no sequence id and writes
// nothing.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csvraw/cmd/root"
	"csvraw/internal/converter"
	"csvraw/internal/models"
	"csvraw/internal/xlsxparser"
)

var inputFile string

// Cmd is the validate command.
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a settlement instruction file without converting it",
	RunE:  runValidate,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input CSV or XLSX file (required)")
	_ = Cmd.MarkFlagRequired("input")
}

func runValidate(cmd *cobra.Command, args []string) error {
	var (
		raw []byte
		err error
	)
	if xlsxparser.IsXLSX(inputFile) {
		raw, err = xlsxparser.ToCSV(inputFile)
	} else {
		raw, err = os.ReadFile(inputFile)
	}
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	conv := converter.New(converter.Options{
		Beneficiary:  root.Cfg.Depository.Beneficiary,
		HeaderPrefix: root.Cfg.Depository.HeaderPrefix,
		ExtraColumns: root.Cfg.Input.ExtraColumns,
		Logger:       root.Log,
	})

	result, err := conv.Validate(raw)
	if err != nil {
		return err
	}

	nsdl, cdsl := 0, 0
	for _, rec := range result.Records {
		if rec.Variant == models.VariantNSDL {
			nsdl++
		} else {
			cdsl++
		}
	}
	fmt.Printf("valid: %d rows (%d NSDL, %d CDSL), issue date %s\n",
		len(result.Records), nsdl, cdsl, result.Identity.IssueDate)
	return nil
}
