package webtable

import (
	"fmt"
	"testing"

	"minifigdb/internal/domain"
)

func TestForParts(t *testing.T) {
	part, err := domain.NewPart("3001", "5", "300123", "3001", "brick 2x4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	table := ForParts([]domain.Part{part})
	if table.Entity != "part" {
		t.Fatalf("expected part entity, got %s", table.Entity)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Rows))
	}
	row := table.Rows[0]
	if row["bricklink_part_id"] != "3001" || row["description"] != "brick 2x4" {
		t.Fatalf("unexpected row: %v", row)
	}
	for _, col := range table.Columns {
		if _, ok := row[col]; !ok {
			t.Fatalf("row is missing declared column %q", col)
		}
	}
}

func TestForWeaponsJoinsParts(t *testing.T) {
	blade, err := domain.NewPart("blade", "1", "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sword, err := domain.NewWeapon("Sword", "", domain.PartQuantity{Part: blade, Quantity: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	table := ForWeapons([]domain.Weapon{sword})
	want := fmt.Sprintf("%s x2", blade.ID())
	if table.Rows[0]["parts"] != want {
		t.Fatalf("expected %q, got %q", want, table.Rows[0]["parts"])
	}
}

func TestForActualsRendersEmptySlot(t *testing.T) {
	body, err := domain.NewPart("973", "5", "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tmpl, err := domain.NewTemplateMinifigure("cas123", "Knight", 2020, nil,
		[]domain.PartQuantity{{Part: body, Quantity: 1}}, nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	figure, err := domain.NewActualMinifigure(tmpl, 2, 7, nil, "used")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	table := ForActuals([]domain.ActualMinifigure{figure})
	row := table.Rows[0]
	if row["weapon_slot_id"] != "" {
		t.Fatalf("expected empty slot id, got %q", row["weapon_slot_id"])
	}
	if row["box_number"] != "2" || row["position_in_box"] != "7" {
		t.Fatalf("unexpected row: %v", row)
	}
}
