package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSV reads a header-mapped CSV stream into one field-name→value map
// per row. The first line is the header; rows shorter than the header are
// rejected by the csv reader.
func ReadCSV(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var rows []map[string]string
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(rows)+2, err)
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			row[name] = fields[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Remap translates raw CSV rows into canonical field maps using a column
// version: the keys of columns are canonical field names, the values the
// header names of that CSV vintage. Missing source columns yield empty
// fields.
func Remap(rows []map[string]string, columns ColumnMap) []map[string]string {
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		mapped := make(map[string]string, len(columns))
		for field, header := range columns {
			mapped[field] = row[header]
		}
		out = append(out, mapped)
	}
	return out
}
