package roster

import (
	"encoding/csv"
	"os"

	"github.com/Penn-I3H/pennsieve-invite-sync/internal/apperrors"
)

// LoadCSV reads a delimited file written by WriteCSV (or any RFC-4180 file
// with a header row) into a Table.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.InputNotFound(path)
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows, padRow squares them off
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	t := &Table{Headers: records[0]}
	for _, rec := range records[1:] {
		t.Rows = append(t.Rows, padRow(rec, len(t.Headers)))
	}
	return t, nil
}

// WriteCSV writes the table to path, replacing any existing file.
func WriteCSV(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Headers); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// FilterRows returns a copy of the table keeping only the rows whose index
// is in keep, columns intact.
func FilterRows(t *Table, keep map[int]bool) *Table {
	out := &Table{Headers: t.Headers}
	for i, row := range t.Rows {
		if keep[i] {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}
