package repository

import (
	"context"
	"strings"

	"minifigdb/internal/domain"
	"minifigdb/internal/registry"
	"minifigdb/internal/schema"
	"minifigdb/internal/store"
)

// setSeparator joins set names into one TEXT column. Members are sorted
// before joining, so a set always serializes identically.
const setSeparator = ","

// TemplateRepository persists catalog templates together with their part
// and weapon slot relations.
type TemplateRepository struct {
	store    *store.Store
	parts    *PartRepository
	slots    *WeaponSlotRepository
	partsRel registry.Relation
	slotsRel registry.Relation
}

// NewTemplateRepository creates a template repository resolving children
// through the given part and weapon slot repositories.
func NewTemplateRepository(st *store.Store, parts *PartRepository, slots *WeaponSlotRepository) *TemplateRepository {
	return &TemplateRepository{
		store:    st,
		parts:    parts,
		slots:    slots,
		partsRel: mustRelation(registry.TemplateParts),
		slotsRel: mustRelation(registry.TemplateWeaponSlots),
	}
}

// Add inserts the template, then persists both relations. Children are
// added through their own repositories first so shared rows always exist.
func (r *TemplateRepository) Add(ctx context.Context, template domain.TemplateMinifigure) error {
	rec, err := r.record(template)
	if err != nil {
		return err
	}
	if err := r.store.InsertRecord(ctx, registry.TemplateMinifigures, rec); err != nil {
		return err
	}

	for _, pq := range template.Parts() {
		if err := r.parts.Add(ctx, pq.Part); err != nil {
			return err
		}
		if err := insertRelation(ctx, r.store, r.partsRel, template.ID(), pq.Part.ID(), pq.Quantity); err != nil {
			return err
		}
	}
	for _, sq := range template.PossibleWeapons() {
		if err := r.slots.Add(ctx, sq.Slot); err != nil {
			return err
		}
		if err := insertRelation(ctx, r.store, r.slotsRel, template.ID(), sq.Slot.ID(), sq.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// GetAll returns every persisted template with both relations resolved.
func (r *TemplateRepository) GetAll(ctx context.Context) ([]domain.TemplateMinifigure, error) {
	records, err := r.store.Records(ctx, registry.TemplateMinifigures)
	if err != nil {
		return nil, err
	}
	templates := make([]domain.TemplateMinifigure, 0, len(records))
	for _, rec := range records {
		template, err := r.decode(ctx, rec)
		if err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}
	return templates, nil
}

// GetByID returns the template with the id, or ok=false if none exists.
func (r *TemplateRepository) GetByID(ctx context.Context, id string) (domain.TemplateMinifigure, bool, error) {
	templates, err := r.GetAll(ctx)
	if err != nil {
		return domain.TemplateMinifigure{}, false, err
	}
	for _, template := range templates {
		if template.ID() == id {
			return template, true, nil
		}
	}
	return domain.TemplateMinifigure{}, false, nil
}

// Delete removes the template's row. Its joint rows cascade away; the
// store rejects the delete while an actual minifigure still references it.
func (r *TemplateRepository) Delete(ctx context.Context, template domain.TemplateMinifigure) error {
	rec, err := r.record(template)
	if err != nil {
		return err
	}
	return r.store.DeleteRecord(ctx, registry.TemplateMinifigures, rec)
}

// CreateSchema creates the templates table and both joint tables.
func (r *TemplateRepository) CreateSchema(ctx context.Context) error {
	if err := r.store.CreateTable(ctx, registry.TemplateMinifigures, ""); err != nil {
		return err
	}
	if err := r.store.CreateTable(ctx, r.partsRel.Joint, r.partsRel.ParentColumn); err != nil {
		return err
	}
	return r.store.CreateTable(ctx, r.slotsRel.Joint, r.slotsRel.ParentColumn)
}

// DropSchema drops both joint tables first, then the templates table.
func (r *TemplateRepository) DropSchema(ctx context.Context) error {
	if err := r.store.DropTable(ctx, r.partsRel.Joint); err != nil {
		return err
	}
	if err := r.store.DropTable(ctx, r.slotsRel.Joint); err != nil {
		return err
	}
	return r.store.DropTable(ctx, registry.TemplateMinifigures)
}

func (r *TemplateRepository) record(template domain.TemplateMinifigure) (schema.Record, error) {
	return schema.NewRecord(registry.TemplateMinifigures, map[string]any{
		"id":               template.ID(),
		"bricklink_fig_id": template.BricklinkFigID(),
		"name":             template.Name(),
		"year":             template.Year(),
		"sets":             strings.Join(template.Sets(), setSeparator),
		"description":      template.Description(),
	})
}

func (r *TemplateRepository) decode(ctx context.Context, rec schema.Record) (domain.TemplateMinifigure, error) {
	id, err := rec.String("id")
	if err != nil {
		return domain.TemplateMinifigure{}, err
	}
	figID, err := rec.String("bricklink_fig_id")
	if err != nil {
		return domain.TemplateMinifigure{}, err
	}
	name, err := rec.String("name")
	if err != nil {
		return domain.TemplateMinifigure{}, err
	}
	year, err := rec.Int("year")
	if err != nil {
		return domain.TemplateMinifigure{}, err
	}
	sets, err := rec.String("sets")
	if err != nil {
		return domain.TemplateMinifigure{}, err
	}
	description, err := rec.String("description")
	if err != nil {
		return domain.TemplateMinifigure{}, err
	}

	parts, err := r.loadParts(ctx, id)
	if err != nil {
		return domain.TemplateMinifigure{}, err
	}
	slots, err := r.loadSlots(ctx, id)
	if err != nil {
		return domain.TemplateMinifigure{}, err
	}

	return domain.NewTemplateMinifigure(figID, name, year, splitSet(sets), parts, slots, description)
}

func (r *TemplateRepository) loadParts(ctx context.Context, templateID string) ([]domain.PartQuantity, error) {
	byID := make(map[string]domain.PartQuantity)
	err := forEachRelated(ctx, r.store, r.partsRel, templateID, func(childID string, quantity int) error {
		part, ok, err := r.parts.GetByID(ctx, childID)
		if err != nil {
			return err
		}
		if !ok {
			return missingChild(r.partsRel, templateID, childID)
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

func (r *TemplateRepository) loadSlots(ctx context.Context, templateID string) ([]domain.SlotQuantity, error) {
	byID := make(map[string]domain.SlotQuantity)
	err := forEachRelated(ctx, r.store, r.slotsRel, templateID, func(childID string, quantity int) error {
		slot, ok, err := r.slots.GetByID(ctx, childID)
		if err != nil {
			return err
		}
		if !ok {
			return missingChild(r.slotsRel, templateID, childID)
		}
		byID[slot.ID()] = domain.SlotQuantity{Slot: slot, Quantity: quantity}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.SlotQuantity, 0, len(byID))
	for _, sq := range byID {
		out = append(out, sq)
	}
	return out, nil
}

// splitSet is the inverse of the sorted join in record: the empty string
// decodes to the empty set.
func splitSet(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, setSeparator)
}
