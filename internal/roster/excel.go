// Package roster reads and writes the tabular registrant lists: the source
// Excel registration sheet and the generated invite CSVs. Original columns
// and row order are always preserved.
package roster

import (
	"github.com/xuri/excelize/v2"
)

// Table is a header row plus data rows, columns untouched.
type Table struct {
	Headers []string
	Rows    [][]string
}

// LoadExcel reads the first sheet of an .xlsx file into a Table. Short rows
// are padded so every row has one cell per header.
func LoadExcel(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}

	t := &Table{Headers: rows[0]}
	for _, row := range rows[1:] {
		t.Rows = append(t.Rows, padRow(row, len(t.Headers)))
	}
	return t, nil
}

func padRow(row []string, width int) []string {
	for len(row) < width {
		row = append(row, "")
	}
	return row
}
