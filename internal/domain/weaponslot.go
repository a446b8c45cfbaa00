package domain

import (
	"fmt"
	"sort"
)

// WeaponQuantity is one entry of a weapon relation mapping.
type WeaponQuantity struct {
	Weapon   Weapon
	Quantity int
}

func (q WeaponQuantity) quantity() int { return q.Quantity }

// WeaponSlot is a loadout option: a multiset of weapons a minifigure can
// carry. Identity derives from the sorted (weapon id, quantity) pairs; the
// empty slot has the fixed identity source "empty_slot", so every empty
// slot is the same slot.
type WeaponSlot struct {
	id      string
	weapons map[string]WeaponQuantity
}

// NewWeaponSlot builds an immutable weapon slot. An empty weapon list is
// valid and yields the canonical empty slot. A weapon may appear at most
// once and every quantity must be at least one.
func NewWeaponSlot(weapons ...WeaponQuantity) (WeaponSlot, error) {
	byID := make(map[string]WeaponQuantity, len(weapons))
	for _, wq := range weapons {
		if wq.Quantity < 1 {
			return WeaponSlot{}, &ConsistencyError{Detail: fmt.Sprintf("weapon slot: weapon %s has quantity %d, want >= 1", wq.Weapon.ID(), wq.Quantity)}
		}
		if _, dup := byID[wq.Weapon.ID()]; dup {
			return WeaponSlot{}, &ConsistencyError{Detail: fmt.Sprintf("weapon slot: weapon %s appears more than once", wq.Weapon.ID())}
		}
		byID[wq.Weapon.ID()] = wq
	}

	source := EmptySlotSource
	if len(byID) > 0 {
		source = "weapon_slot:" + quantitySource(quantitiesOf(byID))
	}

	return WeaponSlot{id: deriveID(source), weapons: byID}, nil
}

// EmptyWeaponSlot returns the canonical slot holding no weapons.
func EmptyWeaponSlot() WeaponSlot {
	slot, _ := NewWeaponSlot()
	return slot
}

// ID returns the content-derived 16 hex character id.
func (s WeaponSlot) ID() string { return s.id }

// Empty reports whether the slot holds no weapons.
func (s WeaponSlot) Empty() bool { return len(s.weapons) == 0 }

// Weapons returns the weapon mapping as a defensive copy, sorted by
// weapon id.
func (s WeaponSlot) Weapons() []WeaponQuantity {
	out := make([]WeaponQuantity, 0, len(s.weapons))
	for _, wq := range s.weapons {
		out = append(out, wq)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Weapon.ID() < out[j].Weapon.ID() })
	return out
}
