package registry

import (
	"fmt"

	"minifigdb/internal/schema"
)

// QuantityColumn is the quantity column every joint table carries.
const QuantityColumn = "quantity"

// Relation names.
const (
	TemplateParts       = "template_parts"
	TemplateWeaponSlots = "template_weapon_slots"
	WeaponSlotWeapons   = "weapon_slot_weapons"
	WeaponParts         = "weapon_parts"
)

// Relation is the static description of one many-to-many relation: which
// joint table records it and which columns hold the parent and child ids.
// Cascade deletion runs along the parent column only; the child column is
// restrict-on-delete, so a still-referenced child cannot be removed.
type Relation struct {
	Name         string
	Parent       *schema.Table
	Child        *schema.Table
	Joint        *schema.Table
	ParentColumn string
	ChildColumn  string
}

var relations = map[string]Relation{
	TemplateParts: {
		Name:         TemplateParts,
		Parent:       TemplateMinifigures,
		Child:        Parts,
		Joint:        TemplateMinifigurePart,
		ParentColumn: "template_id",
		ChildColumn:  "part_id",
	},
	TemplateWeaponSlots: {
		Name:         TemplateWeaponSlots,
		Parent:       TemplateMinifigures,
		Child:        WeaponSlots,
		Joint:        TemplateMinifigureWeaponSlot,
		ParentColumn: "template_id",
		ChildColumn:  "weapon_slot_id",
	},
	WeaponSlotWeapons: {
		Name:         WeaponSlotWeapons,
		Parent:       WeaponSlots,
		Child:        Weapons,
		Joint:        WeaponSlotWeapon,
		ParentColumn: "weapon_slot_id",
		ChildColumn:  "weapon_id",
	},
	WeaponParts: {
		Name:         WeaponParts,
		Parent:       Weapons,
		Child:        Parts,
		Joint:        WeaponPart,
		ParentColumn: "weapon_id",
		ChildColumn:  "part_id",
	},
}

// Lookup returns the relation registered under name.
func Lookup(name string) (Relation, error) {
	rel, ok := relations[name]
	if !ok {
		return Relation{}, &schema.Error{Op: "relation", Detail: fmt.Sprintf("unknown relation %q", name)}
	}
	return rel, nil
}
