package registry

import "minifigdb/internal/schema"

// Entity tables. Column order here is the column order of every generated
// statement and of every Record.

var Parts = &schema.Table{
	Name: "lego_parts",
	Attributes: []schema.Attribute{
		{Name: "id", Type: schema.TypeText, PrimaryKey: true},
		{Name: "bricklink_part_id", Type: schema.TypeText},
		{Name: "bricklink_color_id", Type: schema.TypeText},
		{Name: "lego_element_id", Type: schema.TypeText},
		{Name: "lego_design_id", Type: schema.TypeText},
		{Name: "description", Type: schema.TypeText},
	},
}

var Weapons = &schema.Table{
	Name: "weapons",
	Attributes: []schema.Attribute{
		{Name: "id", Type: schema.TypeText, PrimaryKey: true},
		{Name: "name", Type: schema.TypeText},
		{Name: "description", Type: schema.TypeText},
	},
}

var WeaponSlots = &schema.Table{
	Name: "weapon_slots",
	Attributes: []schema.Attribute{
		{Name: "id", Type: schema.TypeText, PrimaryKey: true},
	},
}

var TemplateMinifigures = &schema.Table{
	Name: "template_minifigures",
	Attributes: []schema.Attribute{
		{Name: "id", Type: schema.TypeText, PrimaryKey: true},
		{Name: "bricklink_fig_id", Type: schema.TypeText},
		{Name: "name", Type: schema.TypeText},
		{Name: "year", Type: schema.TypeInteger},
		{Name: "sets", Type: schema.TypeText},
		{Name: "description", Type: schema.TypeText},
	},
}

var ActualMinifigures = &schema.Table{
	Name: "actual_minifigures",
	Attributes: []schema.Attribute{
		{Name: "id", Type: schema.TypeText, PrimaryKey: true},
		{Name: "template_id", Type: schema.TypeText, ForeignKey: &schema.ForeignKey{Table: "template_minifigures", Column: "id"}},
		{Name: "weapon_slot_id", Type: schema.TypeText, ForeignKey: &schema.ForeignKey{Table: "weapon_slots", Column: "id"}},
		{Name: "box_number", Type: schema.TypeInteger},
		{Name: "position_in_box", Type: schema.TypeInteger},
		{Name: "condition", Type: schema.TypeText},
	},
}

// Joint tables. Both id columns form the composite primary key; each row
// additionally carries the quantity of the child in the parent.

var TemplateMinifigurePart = &schema.Table{
	Name:  "template_minifigure_part",
	Joint: true,
	Attributes: []schema.Attribute{
		{Name: "template_id", Type: schema.TypeText, PrimaryKey: true, ForeignKey: &schema.ForeignKey{Table: "template_minifigures", Column: "id"}},
		{Name: "part_id", Type: schema.TypeText, PrimaryKey: true, ForeignKey: &schema.ForeignKey{Table: "lego_parts", Column: "id"}},
		{Name: "quantity", Type: schema.TypeInteger},
	},
}

var TemplateMinifigureWeaponSlot = &schema.Table{
	Name:  "template_minifigure_weapon_slot",
	Joint: true,
	Attributes: []schema.Attribute{
		{Name: "template_id", Type: schema.TypeText, PrimaryKey: true, ForeignKey: &schema.ForeignKey{Table: "template_minifigures", Column: "id"}},
		{Name: "weapon_slot_id", Type: schema.TypeText, PrimaryKey: true, ForeignKey: &schema.ForeignKey{Table: "weapon_slots", Column: "id"}},
		{Name: "quantity", Type: schema.TypeInteger},
	},
}

var WeaponSlotWeapon = &schema.Table{
	Name:  "weapon_slot_weapon",
	Joint: true,
	Attributes: []schema.Attribute{
		{Name: "weapon_slot_id", Type: schema.TypeText, PrimaryKey: true, ForeignKey: &schema.ForeignKey{Table: "weapon_slots", Column: "id"}},
		{Name: "weapon_id", Type: schema.TypeText, PrimaryKey: true, ForeignKey: &schema.ForeignKey{Table: "weapons", Column: "id"}},
		{Name: "quantity", Type: schema.TypeInteger},
	},
}

var WeaponPart = &schema.Table{
	Name:  "weapon_part_table",
	Joint: true,
	Attributes: []schema.Attribute{
		{Name: "weapon_id", Type: schema.TypeText, PrimaryKey: true, ForeignKey: &schema.ForeignKey{Table: "weapons", Column: "id"}},
		{Name: "part_id", Type: schema.TypeText, PrimaryKey: true, ForeignKey: &schema.ForeignKey{Table: "lego_parts", Column: "id"}},
		{Name: "quantity", Type: schema.TypeInteger},
	},
}
