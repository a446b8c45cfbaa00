package domain

import (
	"fmt"
	"sort"
	"strings"
)

// PartQuantity is one entry of a part relation mapping: this many of that
// part belong to the parent.
type PartQuantity struct {
	Part     Part
	Quantity int
}

// Weapon is an equippable item assembled from parts. Identity derives from
// the name plus the sorted multiset of (part id, quantity) pairs, so two
// weapons with the same name and the same parts are the same weapon no
// matter how the mapping is iterated.
type Weapon struct {
	id          string
	name        string
	description string
	parts       map[string]PartQuantity
}

// NewWeapon validates and builds an immutable weapon. The name and a
// non-empty part mapping are identity-contributing. A part may appear at
// most once and every quantity must be at least one.
func NewWeapon(name, description string, parts ...PartQuantity) (Weapon, error) {
	name = strings.TrimSpace(name)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if len(parts) == 0 {
		missing = append(missing, "parts")
	}
	if len(missing) > 0 {
		return Weapon{}, &IdentityError{Entity: "weapon", Missing: missing}
	}

	byID, err := indexParts("weapon", name, parts)
	if err != nil {
		return Weapon{}, err
	}

	return Weapon{
		id:          deriveID("weapon:" + name + ":" + quantitySource(quantitiesOf(byID))),
		name:        name,
		description: strings.TrimSpace(description),
		parts:       byID,
	}, nil
}

// ID returns the content-derived 16 hex character id.
func (w Weapon) ID() string { return w.id }

// Name returns the weapon name.
func (w Weapon) Name() string { return w.name }

// Description returns the free-form description, possibly empty.
func (w Weapon) Description() string { return w.description }

// Parts returns the part mapping as a defensive copy, sorted by part id.
func (w Weapon) Parts() []PartQuantity {
	return sortedParts(w.parts)
}

// indexParts keys a part quantity list by content-derived part id, rejecting
// duplicates and non-positive quantities.
func indexParts(entity, owner string, parts []PartQuantity) (map[string]PartQuantity, error) {
	byID := make(map[string]PartQuantity, len(parts))
	for _, pq := range parts {
		if pq.Quantity < 1 {
			return nil, &ConsistencyError{Detail: fmt.Sprintf("%s %q: part %s has quantity %d, want >= 1", entity, owner, pq.Part.ID(), pq.Quantity)}
		}
		if _, dup := byID[pq.Part.ID()]; dup {
			return nil, &ConsistencyError{Detail: fmt.Sprintf("%s %q: part %s appears more than once", entity, owner, pq.Part.ID())}
		}
		byID[pq.Part.ID()] = pq
	}
	return byID, nil
}

// quantified is satisfied by every relation mapping entry type.
type quantified interface{ quantity() int }

func (q PartQuantity) quantity() int { return q.Quantity }

func quantitiesOf[V quantified](byID map[string]V) map[string]int {
	quantities := make(map[string]int, len(byID))
	for id, v := range byID {
		quantities[id] = v.quantity()
	}
	return quantities
}

func sortedParts(byID map[string]PartQuantity) []PartQuantity {
	out := make([]PartQuantity, 0, len(byID))
	for _, pq := range byID {
		out = append(out, pq)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Part.ID() < out[j].Part.ID() })
	return out
}
