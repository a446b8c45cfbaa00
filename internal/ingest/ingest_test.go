package ingest

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	input := "Part Number,Color ID,Notes\n3001,5,brick\n3002,1,plate\n"
	rows, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []map[string]string{
		{"Part Number": "3001", "Color ID": "5", "Notes": "brick"},
		{"Part Number": "3002", "Color ID": "1", "Notes": "plate"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("expected %v, got %v", want, rows)
	}
}

func TestReadCSVEmptyInput(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %v", rows)
	}
}

func TestReadCSVRejectsShortRow(t *testing.T) {
	input := "a,b\n1\n"
	if _, err := ReadCSV(strings.NewReader(input)); err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestRemap(t *testing.T) {
	rows := []map[string]string{
		{"Part Number": "3001", "Color ID": "5", "Notes": "brick"},
	}
	columns := ColumnMap{
		"bricklink_part_id":  "Part Number",
		"bricklink_color_id": "Color ID",
		"description":        "Notes",
		"lego_element_id":    "Element", // absent in this vintage
	}
	mapped := Remap(rows, columns)
	want := []map[string]string{
		{
			"bricklink_part_id":  "3001",
			"bricklink_color_id": "5",
			"description":        "brick",
			"lego_element_id":    "",
		},
	}
	if !reflect.DeepEqual(mapped, want) {
		t.Fatalf("expected %v, got %v", want, mapped)
	}
}

func TestLoadVersions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.json")
	content := `{"2020": {"bricklink_part_id": "Part Number"}, "2024": {"bricklink_part_id": "PartNo"}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write versions file: %v", err)
	}

	versions, err := LoadVersions(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	columns, err := Version(versions, "2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if columns["bricklink_part_id"] != "PartNo" {
		t.Fatalf("expected PartNo, got %q", columns["bricklink_part_id"])
	}

	if _, err := Version(versions, "1999"); err == nil {
		t.Fatalf("expected error for unknown version")
	}
}

func TestBuildPart(t *testing.T) {
	part, err := BuildPart(map[string]string{
		"bricklink_part_id":  " 3001 ",
		"bricklink_color_id": "5",
		"description":        "brick 2x4",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if part.BricklinkPartID() != "3001" || part.Description() != "brick 2x4" {
		t.Fatalf("unexpected part: %+v", part)
	}

	if _, err := BuildPart(map[string]string{"bricklink_part_id": "3001"}); err == nil {
		t.Fatalf("expected error for missing color id")
	}
}

func TestBuildTemplate(t *testing.T) {
	tmpl, err := BuildTemplate(map[string]string{
		"bricklink_fig_id": "cas123",
		"name":             "Red Knight",
		"year":             "2020",
		"sets":             "6080; 6067",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tmpl.Name() != "Red Knight" || tmpl.Year() != 2020 {
		t.Fatalf("unexpected template: %+v", tmpl)
	}
	if !reflect.DeepEqual(tmpl.Sets(), []string{"6067", "6080"}) {
		t.Fatalf("expected split and sorted sets, got %v", tmpl.Sets())
	}

	if _, err := BuildTemplate(map[string]string{"bricklink_fig_id": "cas123", "year": "soon"}); err == nil {
		t.Fatalf("expected error for unparseable year")
	}
}
