// Package webtable renders entity lists as flat display tables: a column
// list plus rows of display strings, ready for a template or a JSON API.
// Relation mappings render as comma-joined "id xN" pairs; they are display
// only and never parsed back.
package webtable

import (
	"fmt"
	"strconv"
	"strings"

	"minifigdb/internal/domain"
)

// Table is one renderable entity table.
type Table struct {
	Entity  string              `json:"entity"`
	Name    string              `json:"name"`
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

// ForParts builds the display table for Lego parts.
func ForParts(parts []domain.Part) Table {
	columns := []string{"id", "bricklink_part_id", "bricklink_color_id", "lego_element_id", "lego_design_id", "description"}
	rows := make([]map[string]string, 0, len(parts))
	for _, p := range parts {
		rows = append(rows, map[string]string{
			"id":                 p.ID(),
			"bricklink_part_id":  p.BricklinkPartID(),
			"bricklink_color_id": p.BricklinkColorID(),
			"lego_element_id":    p.LegoElementID(),
			"lego_design_id":     p.LegoDesignID(),
			"description":        p.Description(),
		})
	}
	return Table{Entity: "part", Name: "Lego Parts", Columns: columns, Rows: rows}
}

// ForWeapons builds the display table for weapons.
func ForWeapons(weapons []domain.Weapon) Table {
	columns := []string{"id", "name", "parts", "description"}
	rows := make([]map[string]string, 0, len(weapons))
	for _, w := range weapons {
		rows = append(rows, map[string]string{
			"id":          w.ID(),
			"name":        w.Name(),
			"parts":       joinParts(w.Parts()),
			"description": w.Description(),
		})
	}
	return Table{Entity: "weapon", Name: "Weapons", Columns: columns, Rows: rows}
}

// ForWeaponSlots builds the display table for weapon slots.
func ForWeaponSlots(slots []domain.WeaponSlot) Table {
	columns := []string{"id", "weapons"}
	rows := make([]map[string]string, 0, len(slots))
	for _, s := range slots {
		pairs := make([]string, 0, len(s.Weapons()))
		for _, wq := range s.Weapons() {
			pairs = append(pairs, quantityPair(wq.Weapon.ID(), wq.Quantity))
		}
		rows = append(rows, map[string]string{
			"id":      s.ID(),
			"weapons": strings.Join(pairs, ", "),
		})
	}
	return Table{Entity: "weapon_slot", Name: "Weapon Slots", Columns: columns, Rows: rows}
}

// ForTemplates builds the display table for template minifigures.
func ForTemplates(templates []domain.TemplateMinifigure) Table {
	columns := []string{"id", "bricklink_fig_id", "name", "year", "sets", "parts", "possible_weapons", "description"}
	rows := make([]map[string]string, 0, len(templates))
	for _, t := range templates {
		slotPairs := make([]string, 0, len(t.PossibleWeapons()))
		for _, sq := range t.PossibleWeapons() {
			slotPairs = append(slotPairs, quantityPair(sq.Slot.ID(), sq.Quantity))
		}
		rows = append(rows, map[string]string{
			"id":               t.ID(),
			"bricklink_fig_id": t.BricklinkFigID(),
			"name":             t.Name(),
			"year":             strconv.Itoa(t.Year()),
			"sets":             strings.Join(t.Sets(), ", "),
			"parts":            joinParts(t.Parts()),
			"possible_weapons": strings.Join(slotPairs, ", "),
			"description":      t.Description(),
		})
	}
	return Table{Entity: "template_minifigure", Name: "Template Minifigures", Columns: columns, Rows: rows}
}

// ForActuals builds the display table for physical inventory figures.
func ForActuals(actuals []domain.ActualMinifigure) Table {
	columns := []string{"id", "template_id", "box_number", "position_in_box", "weapon_slot_id", "condition"}
	rows := make([]map[string]string, 0, len(actuals))
	for _, a := range actuals {
		slotID := ""
		if slot, ok := a.WeaponSlot(); ok {
			slotID = slot.ID()
		}
		rows = append(rows, map[string]string{
			"id":              a.ID(),
			"template_id":     a.Template().ID(),
			"box_number":      strconv.Itoa(a.BoxNumber()),
			"position_in_box": strconv.Itoa(a.PositionInBox()),
			"weapon_slot_id":  slotID,
			"condition":       a.Condition(),
		})
	}
	return Table{Entity: "actual_minifigure", Name: "Actual Minifigures", Columns: columns, Rows: rows}
}

func joinParts(parts []domain.PartQuantity) string {
	pairs := make([]string, 0, len(parts))
	for _, pq := range parts {
		pairs = append(pairs, quantityPair(pq.Part.ID(), pq.Quantity))
	}
	return strings.Join(pairs, ", ")
}

func quantityPair(id string, quantity int) string {
	return fmt.Sprintf("%s x%d", id, quantity)
}
