// Package report writes an optional per-batch audit CSV of the
// canonical records, so operators can review what was encoded without
// reading RAW tag soup.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"csvraw/internal/models"
)

// Row is one audit line. Identifier columns are populated per variant:
// Brkr/Clnt for NSDL, CtrPty for CDSL.
type Row struct {
	Line       int    `csv:"Line"`
	Depository string `csv:"Depository"`
	Tp         string `csv:"Tp"`
	Dt         string `csv:"Dt"`
	CtrPty     string `csv:"CtrPty"`
	Brkr       string `csv:"Brkr"`
	Clnt       string `csv:"Clnt"`
	ISIN       string `csv:"ISIN"`
	Qty        string `csv:"Qty"`
	Conamt     string `csv:"Conamt"`
	Chqrefno   string `csv:"Chqrefno"`
}

// Rows converts canonical records into audit rows.
func Rows(records []models.CanonicalRecord) []Row {
	rows := make([]Row, len(records))
	for i, rec := range records {
		rows[i] = Row{
			Line:       i + 1,
			Depository: string(rec.Variant),
			Tp:         rec.Get(models.FieldTp),
			Dt:         rec.Get(models.FieldDt),
			CtrPty:     rec.Get(models.FieldCtrPty),
			Brkr:       rec.Get(models.FieldBrkr),
			Clnt:       rec.Get(models.FieldClnt),
			ISIN:       rec.Get(models.FieldISIN),
			Qty:        rec.Get(models.FieldQty),
			Conamt:     rec.Get(models.FieldConamt),
			Chqrefno:   rec.Get(models.FieldChqrefno),
		}
	}
	return rows
}

// Write renders the audit CSV for a batch to path.
func Write(records []models.CanonicalRecord, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), models.PermissionDirectory); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	rows := Rows(records)
	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
