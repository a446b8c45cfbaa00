package service

import (
	"context"

	"minifigdb/internal/domain"
)

// Seed loads a small demonstration inventory: a knight template with two
// weapon loadouts, and two physical figures in box 1.
// Seeding an already seeded database is a no-op thanks to insert-or-ignore.
func (s *InventoryService) Seed(ctx context.Context) error {
	body, err := domain.NewPart("body_01", "1", "", "", "torso with armor print")
	if err != nil {
		return err
	}
	legs, err := domain.NewPart("legs_01", "2", "", "", "plain legs")
	if err != nil {
		return err
	}
	helmet, err := domain.NewPart("helmet_01", "1", "", "", "closed helmet")
	if err != nil {
		return err
	}

	blade, err := domain.NewPart("sword_01", "3", "", "", "greatsword")
	if err != nil {
		return err
	}
	buckler, err := domain.NewPart("shield_01", "3", "", "", "round shield")
	if err != nil {
		return err
	}

	sword, err := domain.NewWeapon("Sword", "", domain.PartQuantity{Part: blade, Quantity: 1})
	if err != nil {
		return err
	}
	shield, err := domain.NewWeapon("Shield", "", domain.PartQuantity{Part: buckler, Quantity: 1})
	if err != nil {
		return err
	}

	fullLoadout, err := domain.NewWeaponSlot(
		domain.WeaponQuantity{Weapon: sword, Quantity: 1},
		domain.WeaponQuantity{Weapon: shield, Quantity: 1},
	)
	if err != nil {
		return err
	}
	shieldOnly, err := domain.NewWeaponSlot(domain.WeaponQuantity{Weapon: shield, Quantity: 1})
	if err != nil {
		return err
	}

	knight, err := domain.NewTemplateMinifigure(
		"knight_01", "Red Knight", 2020,
		[]string{"SetA", "SetB"},
		[]domain.PartQuantity{
			{Part: body, Quantity: 1},
			{Part: legs, Quantity: 1},
			{Part: helmet, Quantity: 1},
		},
		[]domain.SlotQuantity{
			{Slot: fullLoadout, Quantity: 1},
			{Slot: shieldOnly, Quantity: 1},
		},
		"A brave red knight with armor and weapons.",
	)
	if err != nil {
		return err
	}

	first, err := domain.NewActualMinifigure(knight, 1, 1, &fullLoadout, "new")
	if err != nil {
		return err
	}
	second, err := domain.NewActualMinifigure(knight, 1, 2, &shieldOnly, "used")
	if err != nil {
		return err
	}

	// Adding the figures persists the whole graph transitively.
	if err := s.inv.Minifigures.Add(ctx, first); err != nil {
		return err
	}
	return s.inv.Minifigures.Add(ctx, second)
}
