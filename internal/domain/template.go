package domain

import (
	"fmt"
	"sort"
	"strings"
)

// SlotQuantity is one entry of a weapon slot relation mapping.
type SlotQuantity struct {
	Slot     WeaponSlot
	Quantity int
}

func (q SlotQuantity) quantity() int { return q.Quantity }

// TemplateMinifigure is a catalog minifigure: the abstract figure as listed
// on BrickLink, not a physical one. Identity derives from the BrickLink
// figure id alone; parts, weapon slots and sets are relations and do not
// affect the id.
type TemplateMinifigure struct {
	id              string
	bricklinkFigID  string
	name            string
	year            int
	sets            []string
	parts           map[string]PartQuantity
	possibleWeapons map[string]SlotQuantity
	description     string
}

// NewTemplateMinifigure validates and builds an immutable template. The
// BrickLink figure id is identity-contributing and must be non-empty after
// trimming. Set names are deduplicated and kept sorted.
func NewTemplateMinifigure(bricklinkFigID, name string, year int, sets []string, parts []PartQuantity, possibleWeapons []SlotQuantity, description string) (TemplateMinifigure, error) {
	bricklinkFigID = strings.TrimSpace(bricklinkFigID)
	if bricklinkFigID == "" {
		return TemplateMinifigure{}, &IdentityError{Entity: "template minifigure", Missing: []string{"bricklink_fig_id"}}
	}

	partsByID, err := indexParts("template minifigure", bricklinkFigID, parts)
	if err != nil {
		return TemplateMinifigure{}, err
	}

	slotsByID := make(map[string]SlotQuantity, len(possibleWeapons))
	for _, sq := range possibleWeapons {
		if sq.Quantity < 1 {
			return TemplateMinifigure{}, &ConsistencyError{Detail: fmt.Sprintf("template minifigure %q: weapon slot %s has quantity %d, want >= 1", bricklinkFigID, sq.Slot.ID(), sq.Quantity)}
		}
		if _, dup := slotsByID[sq.Slot.ID()]; dup {
			return TemplateMinifigure{}, &ConsistencyError{Detail: fmt.Sprintf("template minifigure %q: weapon slot %s appears more than once", bricklinkFigID, sq.Slot.ID())}
		}
		slotsByID[sq.Slot.ID()] = sq
	}

	return TemplateMinifigure{
		id:              deriveID("template:" + bricklinkFigID),
		bricklinkFigID:  bricklinkFigID,
		name:            strings.TrimSpace(name),
		year:            year,
		sets:            normalizeSets(sets),
		parts:           partsByID,
		possibleWeapons: slotsByID,
		description:     strings.TrimSpace(description),
	}, nil
}

// ID returns the content-derived 16 hex character id.
func (t TemplateMinifigure) ID() string { return t.id }

// BricklinkFigID returns the BrickLink catalog figure id.
func (t TemplateMinifigure) BricklinkFigID() string { return t.bricklinkFigID }

// Name returns the figure name, possibly empty.
func (t TemplateMinifigure) Name() string { return t.name }

// Year returns the release year, zero when unknown.
func (t TemplateMinifigure) Year() int { return t.year }

// Sets returns the names of the sets the figure appears in, sorted.
func (t TemplateMinifigure) Sets() []string {
	out := make([]string, len(t.sets))
	copy(out, t.sets)
	return out
}

// Parts returns the part mapping as a defensive copy, sorted by part id.
func (t TemplateMinifigure) Parts() []PartQuantity {
	return sortedParts(t.parts)
}

// PossibleWeapons returns the allowed weapon slots, sorted by slot id.
func (t TemplateMinifigure) PossibleWeapons() []SlotQuantity {
	out := make([]SlotQuantity, 0, len(t.possibleWeapons))
	for _, sq := range t.possibleWeapons {
		out = append(out, sq)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot.ID() < out[j].Slot.ID() })
	return out
}

// AllowsSlot reports whether the slot is among the template's possible
// weapon slots.
func (t TemplateMinifigure) AllowsSlot(slot WeaponSlot) bool {
	_, ok := t.possibleWeapons[slot.ID()]
	return ok
}

// Description returns the free-form description, possibly empty.
func (t TemplateMinifigure) Description() string { return t.description }

func normalizeSets(sets []string) []string {
	seen := make(map[string]bool, len(sets))
	out := make([]string, 0, len(sets))
	for _, s := range sets {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
