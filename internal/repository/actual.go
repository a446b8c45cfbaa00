package repository

import (
	"context"
	"fmt"

	"minifigdb/internal/domain"
	"minifigdb/internal/registry"
	"minifigdb/internal/schema"
	"minifigdb/internal/store"
)

// ActualRepository persists physical inventory figures. An actual figure
// references exactly one template and at most one weapon slot by foreign
// key; it owns no joint tables.
type ActualRepository struct {
	store     *store.Store
	templates *TemplateRepository
	slots     *WeaponSlotRepository
}

// NewActualRepository creates an actual minifigure repository resolving
// references through the given template and weapon slot repositories.
func NewActualRepository(st *store.Store, templates *TemplateRepository, slots *WeaponSlotRepository) *ActualRepository {
	return &ActualRepository{store: st, templates: templates, slots: slots}
}

// Add persists the figure's whole graph: the template (with its parts and
// slots) and the assigned weapon slot go in first, then the figure's row.
func (r *ActualRepository) Add(ctx context.Context, actual domain.ActualMinifigure) error {
	if err := r.templates.Add(ctx, actual.Template()); err != nil {
		return err
	}
	if slot, ok := actual.WeaponSlot(); ok {
		if err := r.slots.Add(ctx, slot); err != nil {
			return err
		}
	}

	rec, err := r.record(actual)
	if err != nil {
		return err
	}
	return r.store.InsertRecord(ctx, registry.ActualMinifigures, rec)
}

// GetAll returns every persisted figure with template and slot resolved.
func (r *ActualRepository) GetAll(ctx context.Context) ([]domain.ActualMinifigure, error) {
	records, err := r.store.Records(ctx, registry.ActualMinifigures)
	if err != nil {
		return nil, err
	}
	actuals := make([]domain.ActualMinifigure, 0, len(records))
	for _, rec := range records {
		actual, err := r.decode(ctx, rec)
		if err != nil {
			return nil, err
		}
		actuals = append(actuals, actual)
	}
	return actuals, nil
}

// GetByID returns the figure with the id, or ok=false if none exists.
func (r *ActualRepository) GetByID(ctx context.Context, id string) (domain.ActualMinifigure, bool, error) {
	actuals, err := r.GetAll(ctx)
	if err != nil {
		return domain.ActualMinifigure{}, false, err
	}
	for _, actual := range actuals {
		if actual.ID() == id {
			return actual, true, nil
		}
	}
	return domain.ActualMinifigure{}, false, nil
}

// Delete removes the figure's row. Template and slot rows stay.
func (r *ActualRepository) Delete(ctx context.Context, actual domain.ActualMinifigure) error {
	rec, err := r.record(actual)
	if err != nil {
		return err
	}
	return r.store.DeleteRecord(ctx, registry.ActualMinifigures, rec)
}

// CreateSchema creates the actual minifigures table.
func (r *ActualRepository) CreateSchema(ctx context.Context) error {
	return r.store.CreateTable(ctx, registry.ActualMinifigures, "")
}

// DropSchema drops the actual minifigures table.
func (r *ActualRepository) DropSchema(ctx context.Context) error {
	return r.store.DropTable(ctx, registry.ActualMinifigures)
}

func (r *ActualRepository) record(actual domain.ActualMinifigure) (schema.Record, error) {
	values := map[string]any{
		"id":              actual.ID(),
		"template_id":     actual.Template().ID(),
		"box_number":      actual.BoxNumber(),
		"position_in_box": actual.PositionInBox(),
		"condition":       actual.Condition(),
	}
	if slot, ok := actual.WeaponSlot(); ok {
		values["weapon_slot_id"] = slot.ID()
	}
	return schema.NewRecord(registry.ActualMinifigures, values)
}

func (r *ActualRepository) decode(ctx context.Context, rec schema.Record) (domain.ActualMinifigure, error) {
	id, err := rec.String("id")
	if err != nil {
		return domain.ActualMinifigure{}, err
	}
	templateID, err := rec.String("template_id")
	if err != nil {
		return domain.ActualMinifigure{}, err
	}
	slotID, err := rec.String("weapon_slot_id")
	if err != nil {
		return domain.ActualMinifigure{}, err
	}
	boxNumber, err := rec.Int("box_number")
	if err != nil {
		return domain.ActualMinifigure{}, err
	}
	positionInBox, err := rec.Int("position_in_box")
	if err != nil {
		return domain.ActualMinifigure{}, err
	}
	condition, err := rec.String("condition")
	if err != nil {
		return domain.ActualMinifigure{}, err
	}

	template, ok, err := r.templates.GetByID(ctx, templateID)
	if err != nil {
		return domain.ActualMinifigure{}, err
	}
	if !ok {
		return domain.ActualMinifigure{}, &domain.ConsistencyError{Detail: fmt.Sprintf("actual minifigure %s references missing template %s", id, templateID)}
	}

	var slot *domain.WeaponSlot
	if slotID != "" {
		resolved, ok, err := r.slots.GetByID(ctx, slotID)
		if err != nil {
			return domain.ActualMinifigure{}, err
		}
		if !ok {
			return domain.ActualMinifigure{}, &domain.ConsistencyError{Detail: fmt.Sprintf("actual minifigure %s references missing weapon slot %s", id, slotID)}
		}
		slot = &resolved
	}

	return domain.NewActualMinifigure(template, boxNumber, positionInBox, slot, condition)
}
