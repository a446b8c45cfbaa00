package repository

import (
	"context"
	"fmt"

	"minifigdb/internal/domain"
	"minifigdb/internal/registry"
	"minifigdb/internal/schema"
	"minifigdb/internal/store"
)

// mustRelation resolves a statically registered relation. The registry is
// fixed at compile time, so a failed lookup is a programming error.
func mustRelation(name string) registry.Relation {
	rel, err := registry.Lookup(name)
	if err != nil {
		panic(err)
	}
	return rel
}

// forEachRelated walks the joint table rows of rel whose parent column
// equals parentID and hands (child id, quantity) to visit. A row without a
// child id is a data-integrity fault.
func forEachRelated(ctx context.Context, st *store.Store, rel registry.Relation, parentID string, visit func(childID string, quantity int) error) error {
	parentAttr, err := rel.Joint.Attribute(rel.ParentColumn)
	if err != nil {
		return err
	}

	records, err := st.QueryRecords(ctx, rel.Joint, parentAttr, parentID)
	if err != nil {
		return err
	}

	for _, rec := range records {
		childID, err := rec.String(rel.ChildColumn)
		if err != nil {
			return err
		}
		if childID == "" {
			return &domain.ConsistencyError{Detail: fmt.Sprintf("joint table %s: row for parent %s has no %s", rel.Joint.Name, parentID, rel.ChildColumn)}
		}
		quantity, err := rec.Int(registry.QuantityColumn)
		if err != nil {
			return err
		}
		if err := visit(childID, quantity); err != nil {
			return err
		}
	}
	return nil
}

// insertRelation writes one joint table row binding childID to parentID
// with the given quantity. Insert-or-ignore keeps re-adding a parent
// idempotent.
func insertRelation(ctx context.Context, st *store.Store, rel registry.Relation, parentID, childID string, quantity int) error {
	rec, err := schema.NewRecord(rel.Joint, map[string]any{
		rel.ParentColumn:        parentID,
		rel.ChildColumn:         childID,
		registry.QuantityColumn: quantity,
	})
	if err != nil {
		return err
	}
	return st.InsertRecord(ctx, rel.Joint, rec)
}

// missingChild reports a joint row pointing at a child row that does not
// exist. That is a data-integrity fault, not an empty result.
func missingChild(rel registry.Relation, parentID, childID string) error {
	return &domain.ConsistencyError{Detail: fmt.Sprintf("joint table %s: parent %s references missing %s row %s", rel.Joint.Name, parentID, rel.Child.Name, childID)}
}

// Inventory bundles one repository per entity type over a shared store.
type Inventory struct {
	Parts       *PartRepository
	Weapons     *WeaponRepository
	WeaponSlots *WeaponSlotRepository
	Templates   *TemplateRepository
	Minifigures *ActualRepository
}

// NewInventory wires the repositories together. Child repositories are
// shared so relation loading always resolves through the same path.
func NewInventory(st *store.Store) *Inventory {
	parts := NewPartRepository(st)
	weapons := NewWeaponRepository(st, parts)
	slots := NewWeaponSlotRepository(st, weapons)
	templates := NewTemplateRepository(st, parts, slots)
	actuals := NewActualRepository(st, templates, slots)
	return &Inventory{
		Parts:       parts,
		Weapons:     weapons,
		WeaponSlots: slots,
		Templates:   templates,
		Minifigures: actuals,
	}
}

// CreateSchema creates every table, children before the parents that
// reference them.
func (inv *Inventory) CreateSchema(ctx context.Context) error {
	for _, r := range inv.ordered() {
		if err := r.CreateSchema(ctx); err != nil {
			return err
		}
	}
	return nil
}

// DropSchema drops every table, parents before children.
func (inv *Inventory) DropSchema(ctx context.Context) error {
	ordered := inv.ordered()
	for i := len(ordered) - 1; i >= 0; i-- {
		if err := ordered[i].DropSchema(ctx); err != nil {
			return err
		}
	}
	return nil
}

type schemaOwner interface {
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error
}

func (inv *Inventory) ordered() []schemaOwner {
	return []schemaOwner{inv.Parts, inv.Weapons, inv.WeaponSlots, inv.Templates, inv.Minifigures}
}
