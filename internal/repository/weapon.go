package repository

import (
	"context"

	"minifigdb/internal/domain"
	"minifigdb/internal/registry"
	"minifigdb/internal/schema"
	"minifigdb/internal/store"
)

// WeaponRepository persists weapons together with their part relation.
type WeaponRepository struct {
	store *store.Store
	parts *PartRepository
	rel   registry.Relation
}

// NewWeaponRepository creates a weapon repository resolving parts through
// the given part repository.
func NewWeaponRepository(st *store.Store, parts *PartRepository) *WeaponRepository {
	return &WeaponRepository{store: st, parts: parts, rel: mustRelation(registry.WeaponParts)}
}

// Add inserts the weapon, then persists its part relation: each part is
// added through the part repository first, then bound by a joint row.
func (r *WeaponRepository) Add(ctx context.Context, weapon domain.Weapon) error {
	rec, err := r.record(weapon)
	if err != nil {
		return err
	}
	if err := r.store.InsertRecord(ctx, registry.Weapons, rec); err != nil {
		return err
	}

	for _, pq := range weapon.Parts() {
		if err := r.parts.Add(ctx, pq.Part); err != nil {
			return err
		}
		if err := insertRelation(ctx, r.store, r.rel, weapon.ID(), pq.Part.ID(), pq.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// GetAll returns every persisted weapon with its parts resolved.
func (r *WeaponRepository) GetAll(ctx context.Context) ([]domain.Weapon, error) {
	records, err := r.store.Records(ctx, registry.Weapons)
	if err != nil {
		return nil, err
	}
	weapons := make([]domain.Weapon, 0, len(records))
	for _, rec := range records {
		weapon, err := r.decode(ctx, rec)
		if err != nil {
			return nil, err
		}
		weapons = append(weapons, weapon)
	}
	return weapons, nil
}

// GetByID returns the weapon with the id, or ok=false if none exists.
func (r *WeaponRepository) GetByID(ctx context.Context, id string) (domain.Weapon, bool, error) {
	weapons, err := r.GetAll(ctx)
	if err != nil {
		return domain.Weapon{}, false, err
	}
	for _, weapon := range weapons {
		if weapon.ID() == id {
			return weapon, true, nil
		}
	}
	return domain.Weapon{}, false, nil
}

// Delete removes the weapon's row. Its joint rows cascade away; its parts
// stay, they may be shared.
func (r *WeaponRepository) Delete(ctx context.Context, weapon domain.Weapon) error {
	rec, err := r.record(weapon)
	if err != nil {
		return err
	}
	return r.store.DeleteRecord(ctx, registry.Weapons, rec)
}

// CreateSchema creates the weapons table and its joint table.
func (r *WeaponRepository) CreateSchema(ctx context.Context) error {
	if err := r.store.CreateTable(ctx, registry.Weapons, ""); err != nil {
		return err
	}
	return r.store.CreateTable(ctx, r.rel.Joint, r.rel.ParentColumn)
}

// DropSchema drops the joint table first, then the weapons table.
func (r *WeaponRepository) DropSchema(ctx context.Context) error {
	if err := r.store.DropTable(ctx, r.rel.Joint); err != nil {
		return err
	}
	return r.store.DropTable(ctx, registry.Weapons)
}

func (r *WeaponRepository) record(weapon domain.Weapon) (schema.Record, error) {
	return schema.NewRecord(registry.Weapons, map[string]any{
		"id":          weapon.ID(),
		"name":        weapon.Name(),
		"description": weapon.Description(),
	})
}

func (r *WeaponRepository) decode(ctx context.Context, rec schema.Record) (domain.Weapon, error) {
	id, err := rec.String("id")
	if err != nil {
		return domain.Weapon{}, err
	}
	name, err := rec.String("name")
	if err != nil {
		return domain.Weapon{}, err
	}
	description, err := rec.String("description")
	if err != nil {
		return domain.Weapon{}, err
	}

	parts, err := r.loadParts(ctx, id)
	if err != nil {
		return domain.Weapon{}, err
	}
	return domain.NewWeapon(name, description, parts...)
}

// loadParts resolves the weapon's part relation: structurally identical
// parts collapse onto one entry even if duplicate joint rows exist.
func (r *WeaponRepository) loadParts(ctx context.Context, weaponID string) ([]domain.PartQuantity, error) {
	byID := make(map[string]domain.PartQuantity)
	err := forEachRelated(ctx, r.store, r.rel, weaponID, func(childID string, quantity int) error {
		part, ok, err := r.parts.GetByID(ctx, childID)
		if err != nil {
			return err
		}
		if !ok {
			return missingChild(r.rel, weaponID, childID)
		}
		byID[part.ID()] = domain.PartQuantity{Part: part, Quantity: quantity}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.PartQuantity, 0, len(byID))
	for _, pq := range byID {
		out = append(out, pq)
	}
	return out, nil
}
