package ingest

import (
	"encoding/json"
	"fmt"
	"os"
)

// ColumnMap maps canonical field names to the CSV header names used by one
// export vintage. BrickLink and catalog exports rename columns over time;
// one versions file per entity keeps every vintage importable.
type ColumnMap map[string]string

// LoadVersions reads a versions file: a JSON object mapping version names
// to column maps.
func LoadVersions(path string) (map[string]ColumnMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read versions file: %w", err)
	}

	versions := make(map[string]ColumnMap)
	if err := json.Unmarshal(data, &versions); err != nil {
		return nil, fmt.Errorf("parse versions file %s: %w", path, err)
	}
	return versions, nil
}

// Version returns the column map registered under name.
func Version(versions map[string]ColumnMap, name string) (ColumnMap, error) {
	columns, ok := versions[name]
	if !ok {
		return nil, fmt.Errorf("unknown csv version %q", name)
	}
	return columns, nil
}
