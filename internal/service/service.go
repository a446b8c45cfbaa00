// Package service provides the business layer between the HTTP handlers
// and the repositories: id-based construction of entities from request
// data, list operations, and demo seeding.
package service

import (
	"context"
	"fmt"

	"minifigdb/internal/domain"
	"minifigdb/internal/repository"
)

// InventoryService wraps the repository inventory for external callers.
type InventoryService struct {
	inv *repository.Inventory
}

// NewInventoryService creates a service over the inventory.
func NewInventoryService(inv *repository.Inventory) *InventoryService {
	return &InventoryService{inv: inv}
}

// ListParts returns every persisted part.
func (s *InventoryService) ListParts(ctx context.Context) ([]domain.Part, error) {
	return s.inv.Parts.GetAll(ctx)
}

// ListWeapons returns every persisted weapon.
func (s *InventoryService) ListWeapons(ctx context.Context) ([]domain.Weapon, error) {
	return s.inv.Weapons.GetAll(ctx)
}

// ListWeaponSlots returns every persisted weapon slot.
func (s *InventoryService) ListWeaponSlots(ctx context.Context) ([]domain.WeaponSlot, error) {
	return s.inv.WeaponSlots.GetAll(ctx)
}

// ListTemplates returns every persisted template.
func (s *InventoryService) ListTemplates(ctx context.Context) ([]domain.TemplateMinifigure, error) {
	return s.inv.Templates.GetAll(ctx)
}

// ListActuals returns every persisted inventory figure.
func (s *InventoryService) ListActuals(ctx context.Context) ([]domain.ActualMinifigure, error) {
	return s.inv.Minifigures.GetAll(ctx)
}

// AddPart persists the part.
func (s *InventoryService) AddPart(ctx context.Context, part domain.Part) error {
	return s.inv.Parts.Add(ctx, part)
}

// AddWeapon constructs a weapon from already persisted part ids and
// persists it.
func (s *InventoryService) AddWeapon(ctx context.Context, name, description string, partQuantities map[string]int) (domain.Weapon, error) {
	parts, err := s.resolveParts(ctx, partQuantities)
	if err != nil {
		return domain.Weapon{}, err
	}
	weapon, err := domain.NewWeapon(name, description, parts...)
	if err != nil {
		return domain.Weapon{}, err
	}
	if err := s.inv.Weapons.Add(ctx, weapon); err != nil {
		return domain.Weapon{}, err
	}
	return weapon, nil
}

// AddWeaponSlot constructs a slot from already persisted weapon ids and
// persists it. An empty mapping yields the canonical empty slot.
func (s *InventoryService) AddWeaponSlot(ctx context.Context, weaponQuantities map[string]int) (domain.WeaponSlot, error) {
	weapons := make([]domain.WeaponQuantity, 0, len(weaponQuantities))
	for id, quantity := range weaponQuantities {
		weapon, ok, err := s.inv.Weapons.GetByID(ctx, id)
		if err != nil {
			return domain.WeaponSlot{}, err
		}
		if !ok {
			return domain.WeaponSlot{}, &domain.ConsistencyError{Detail: fmt.Sprintf("unknown weapon id %s", id)}
		}
		weapons = append(weapons, domain.WeaponQuantity{Weapon: weapon, Quantity: quantity})
	}
	slot, err := domain.NewWeaponSlot(weapons...)
	if err != nil {
		return domain.WeaponSlot{}, err
	}
	if err := s.inv.WeaponSlots.Add(ctx, slot); err != nil {
		return domain.WeaponSlot{}, err
	}
	return slot, nil
}

// AddTemplate constructs a template from already persisted part and slot
// ids and persists it.
func (s *InventoryService) AddTemplate(ctx context.Context, figID, name string, year int, sets []string, partQuantities, slotQuantities map[string]int, description string) (domain.TemplateMinifigure, error) {
	parts, err := s.resolveParts(ctx, partQuantities)
	if err != nil {
		return domain.TemplateMinifigure{}, err
	}

	slots := make([]domain.SlotQuantity, 0, len(slotQuantities))
	for id, quantity := range slotQuantities {
		slot, ok, err := s.inv.WeaponSlots.GetByID(ctx, id)
		if err != nil {
			return domain.TemplateMinifigure{}, err
		}
		if !ok {
			return domain.TemplateMinifigure{}, &domain.ConsistencyError{Detail: fmt.Sprintf("unknown weapon slot id %s", id)}
		}
		slots = append(slots, domain.SlotQuantity{Slot: slot, Quantity: quantity})
	}

	template, err := domain.NewTemplateMinifigure(figID, name, year, sets, parts, slots, description)
	if err != nil {
		return domain.TemplateMinifigure{}, err
	}
	if err := s.inv.Templates.Add(ctx, template); err != nil {
		return domain.TemplateMinifigure{}, err
	}
	return template, nil
}

// AddActual constructs an inventory figure from a persisted template id
// and optional slot id and persists it.
func (s *InventoryService) AddActual(ctx context.Context, templateID string, boxNumber, positionInBox int, weaponSlotID, condition string) (domain.ActualMinifigure, error) {
	template, ok, err := s.inv.Templates.GetByID(ctx, templateID)
	if err != nil {
		return domain.ActualMinifigure{}, err
	}
	if !ok {
		return domain.ActualMinifigure{}, &domain.ConsistencyError{Detail: fmt.Sprintf("unknown template id %s", templateID)}
	}

	var slot *domain.WeaponSlot
	if weaponSlotID != "" {
		resolved, ok, err := s.inv.WeaponSlots.GetByID(ctx, weaponSlotID)
		if err != nil {
			return domain.ActualMinifigure{}, err
		}
		if !ok {
			return domain.ActualMinifigure{}, &domain.ConsistencyError{Detail: fmt.Sprintf("unknown weapon slot id %s", weaponSlotID)}
		}
		slot = &resolved
	}

	actual, err := domain.NewActualMinifigure(template, boxNumber, positionInBox, slot, condition)
	if err != nil {
		return domain.ActualMinifigure{}, err
	}
	if err := s.inv.Minifigures.Add(ctx, actual); err != nil {
		return domain.ActualMinifigure{}, err
	}
	return actual, nil
}

// DeletePart removes a part by id. Fails at the store while a weapon or
// template still references it.
func (s *InventoryService) DeletePart(ctx context.Context, id string) error {
	part, ok, err := s.inv.Parts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.ConsistencyError{Detail: fmt.Sprintf("unknown part id %s", id)}
	}
	return s.inv.Parts.Delete(ctx, part)
}

// DeleteActual removes an inventory figure by id.
func (s *InventoryService) DeleteActual(ctx context.Context, id string) error {
	actual, ok, err := s.inv.Minifigures.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.ConsistencyError{Detail: fmt.Sprintf("unknown actual minifigure id %s", id)}
	}
	return s.inv.Minifigures.Delete(ctx, actual)
}

func (s *InventoryService) resolveParts(ctx context.Context, quantities map[string]int) ([]domain.PartQuantity, error) {
	parts := make([]domain.PartQuantity, 0, len(quantities))
	for id, quantity := range quantities {
		part, ok, err := s.inv.Parts.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &domain.ConsistencyError{Detail: fmt.Sprintf("unknown part id %s", id)}
		}
		parts = append(parts, domain.PartQuantity{Part: part, Quantity: quantity})
	}
	return parts, nil
}
