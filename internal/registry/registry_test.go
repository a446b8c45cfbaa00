package registry

import (
	"errors"
	"testing"

	"minifigdb/internal/schema"
)

func TestLookup(t *testing.T) {
	rel, err := Lookup(WeaponParts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rel.Joint != WeaponPart || rel.ParentColumn != "weapon_id" || rel.ChildColumn != "part_id" {
		t.Fatalf("unexpected relation: %+v", rel)
	}

	_, err = Lookup("bogus")
	var schemaErr *schema.Error
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected schema error, got %v", err)
	}
}

func TestRelationsAreWellFormed(t *testing.T) {
	for _, name := range []string{TemplateParts, TemplateWeaponSlots, WeaponSlotWeapons, WeaponParts} {
		rel, err := Lookup(name)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rel.Joint.Joint {
			t.Fatalf("%s: joint table %s not marked joint", name, rel.Joint.Name)
		}
		if !rel.Joint.HasAttribute(rel.ParentColumn) || !rel.Joint.HasAttribute(rel.ChildColumn) {
			t.Fatalf("%s: joint table misses parent or child column", name)
		}
		if !rel.Joint.HasAttribute(QuantityColumn) {
			t.Fatalf("%s: joint table misses quantity column", name)
		}

		parent, err := rel.Joint.Attribute(rel.ParentColumn)
		if err != nil || parent.ForeignKey == nil || parent.ForeignKey.Table != rel.Parent.Name {
			t.Fatalf("%s: parent column must reference %s", name, rel.Parent.Name)
		}
		child, err := rel.Joint.Attribute(rel.ChildColumn)
		if err != nil || child.ForeignKey == nil || child.ForeignKey.Table != rel.Child.Name {
			t.Fatalf("%s: child column must reference %s", name, rel.Child.Name)
		}
		if len(rel.Joint.PrimaryKeys()) != 2 {
			t.Fatalf("%s: joint table needs a composite primary key", name)
		}
	}
}
