// Package csvout writes generated records to CSV files and reads back the
// few values later stages need from earlier runs.
package csvout

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Row is any record that can encode itself in its table's column order.
type Row interface {
	Record() []string
}

// Write creates path (and any missing parent directories) and writes the
// header followed by one record per row.
func Write[T Row](path string, header []string, rows []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.Record()); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

// CountRows returns the number of data rows in a CSV file, excluding the
// header. The encounters stage uses it to discover the patient population
// written by an earlier base run.
func CountRows(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	if len(recs) == 0 {
		return 0, nil
	}
	return len(recs) - 1, nil
}
