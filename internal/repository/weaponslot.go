package repository

import (
	"context"

	"minifigdb/internal/domain"
	"minifigdb/internal/registry"
	"minifigdb/internal/schema"
	"minifigdb/internal/store"
)

// WeaponSlotRepository persists weapon slots together with their weapon
// relation. The empty slot is an ordinary row with no joint rows.
type WeaponSlotRepository struct {
	store   *store.Store
	weapons *WeaponRepository
	rel     registry.Relation
}

// NewWeaponSlotRepository creates a slot repository resolving weapons
// through the given weapon repository.
func NewWeaponSlotRepository(st *store.Store, weapons *WeaponRepository) *WeaponSlotRepository {
	return &WeaponSlotRepository{store: st, weapons: weapons, rel: mustRelation(registry.WeaponSlotWeapons)}
}

// Add inserts the slot, then persists its weapon relation. Weapons (and
// transitively their parts) are added first so joint rows never dangle.
func (r *WeaponSlotRepository) Add(ctx context.Context, slot domain.WeaponSlot) error {
	rec, err := r.record(slot)
	if err != nil {
		return err
	}
	if err := r.store.InsertRecord(ctx, registry.WeaponSlots, rec); err != nil {
		return err
	}

	for _, wq := range slot.Weapons() {
		if err := r.weapons.Add(ctx, wq.Weapon); err != nil {
			return err
		}
		if err := insertRelation(ctx, r.store, r.rel, slot.ID(), wq.Weapon.ID(), wq.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// GetAll returns every persisted weapon slot with its weapons resolved.
func (r *WeaponSlotRepository) GetAll(ctx context.Context) ([]domain.WeaponSlot, error) {
	records, err := r.store.Records(ctx, registry.WeaponSlots)
	if err != nil {
		return nil, err
	}
	slots := make([]domain.WeaponSlot, 0, len(records))
	for _, rec := range records {
		slot, err := r.decode(ctx, rec)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// GetByID returns the slot with the id, or ok=false if none exists.
func (r *WeaponSlotRepository) GetByID(ctx context.Context, id string) (domain.WeaponSlot, bool, error) {
	slots, err := r.GetAll(ctx)
	if err != nil {
		return domain.WeaponSlot{}, false, err
	}
	for _, slot := range slots {
		if slot.ID() == id {
			return slot, true, nil
		}
	}
	return domain.WeaponSlot{}, false, nil
}

// Delete removes the slot's row; its joint rows cascade away.
func (r *WeaponSlotRepository) Delete(ctx context.Context, slot domain.WeaponSlot) error {
	rec, err := r.record(slot)
	if err != nil {
		return err
	}
	return r.store.DeleteRecord(ctx, registry.WeaponSlots, rec)
}

// CreateSchema creates the weapon slots table and its joint table.
func (r *WeaponSlotRepository) CreateSchema(ctx context.Context) error {
	if err := r.store.CreateTable(ctx, registry.WeaponSlots, ""); err != nil {
		return err
	}
	return r.store.CreateTable(ctx, r.rel.Joint, r.rel.ParentColumn)
}

// DropSchema drops the joint table first, then the weapon slots table.
func (r *WeaponSlotRepository) DropSchema(ctx context.Context) error {
	if err := r.store.DropTable(ctx, r.rel.Joint); err != nil {
		return err
	}
	return r.store.DropTable(ctx, registry.WeaponSlots)
}

func (r *WeaponSlotRepository) record(slot domain.WeaponSlot) (schema.Record, error) {
	return schema.NewRecord(registry.WeaponSlots, map[string]any{"id": slot.ID()})
}

func (r *WeaponSlotRepository) decode(ctx context.Context, rec schema.Record) (domain.WeaponSlot, error) {
	id, err := rec.String("id")
	if err != nil {
		return domain.WeaponSlot{}, err
	}

	byID := make(map[string]domain.WeaponQuantity)
	err = forEachRelated(ctx, r.store, r.rel, id, func(childID string, quantity int) error {
		weapon, ok, err := r.weapons.GetByID(ctx, childID)
		if err != nil {
			return err
		}
		if !ok {
			return missingChild(r.rel, id, childID)
		}
		byID[weapon.ID()] = domain.WeaponQuantity{Weapon: weapon, Quantity: quantity}
		return nil
	})
	if err != nil {
		return domain.WeaponSlot{}, err
	}

	weapons := make([]domain.WeaponQuantity, 0, len(byID))
	for _, wq := range byID {
		weapons = append(weapons, wq)
	}
	return domain.NewWeaponSlot(weapons...)
}
