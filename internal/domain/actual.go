package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ActualMinifigure is one physical minifigure in the inventory. Identity
// derives from its storage slot (box number, position in box): a physical
// slot is unique, so two figures can never occupy the same one.
type ActualMinifigure struct {
	id            string
	template      TemplateMinifigure
	boxNumber     int
	positionInBox int
	weaponSlot    *WeaponSlot
	condition     string
}

// NewActualMinifigure validates and builds an immutable inventory figure.
// Box number and position must be positive. A nil or empty weapon slot is
// always valid; a non-empty one must be among the template's possible
// weapon slots.
func NewActualMinifigure(template TemplateMinifigure, boxNumber, positionInBox int, weaponSlot *WeaponSlot, condition string) (ActualMinifigure, error) {
	var missing []string
	if template.ID() == "" {
		missing = append(missing, "template")
	}
	if boxNumber < 1 {
		missing = append(missing, "box_number")
	}
	if positionInBox < 1 {
		missing = append(missing, "position_in_box")
	}
	if len(missing) > 0 {
		return ActualMinifigure{}, &IdentityError{Entity: "actual minifigure", Missing: missing}
	}

	if weaponSlot != nil && !weaponSlot.Empty() && !template.AllowsSlot(*weaponSlot) {
		return ActualMinifigure{}, &ConsistencyError{Detail: fmt.Sprintf("weapon slot %s is not allowed for template %s (%s)", weaponSlot.ID(), template.ID(), template.BricklinkFigID())}
	}

	var slot *WeaponSlot
	if weaponSlot != nil {
		copied := *weaponSlot
		slot = &copied
	}

	source := "actual:" + strconv.Itoa(boxNumber) + ":" + strconv.Itoa(positionInBox)
	return ActualMinifigure{
		id:            deriveID(source),
		template:      template,
		boxNumber:     boxNumber,
		positionInBox: positionInBox,
		weaponSlot:    slot,
		condition:     strings.TrimSpace(condition),
	}, nil
}

// ID returns the content-derived 16 hex character id.
func (a ActualMinifigure) ID() string { return a.id }

// Template returns the catalog template this figure instantiates.
func (a ActualMinifigure) Template() TemplateMinifigure { return a.template }

// BoxNumber returns the storage box number.
func (a ActualMinifigure) BoxNumber() int { return a.boxNumber }

// PositionInBox returns the position within the storage box.
func (a ActualMinifigure) PositionInBox() int { return a.positionInBox }

// WeaponSlot returns the assigned weapon slot and whether one is assigned.
func (a ActualMinifigure) WeaponSlot() (WeaponSlot, bool) {
	if a.weaponSlot == nil {
		return WeaponSlot{}, false
	}
	return *a.weaponSlot, true
}

// Condition returns the physical condition note, possibly empty.
func (a ActualMinifigure) Condition() string { return a.condition }
