package repository

import (
	"context"

	"minifigdb/internal/domain"
	"minifigdb/internal/registry"
	"minifigdb/internal/schema"
	"minifigdb/internal/store"
)

// PartRepository persists Lego parts. Parts own no relations; they are the
// leaves other entities reference.
type PartRepository struct {
	store *store.Store
}

// NewPartRepository creates a part repository over the store.
func NewPartRepository(st *store.Store) *PartRepository {
	return &PartRepository{store: st}
}

// Add inserts the part. Re-adding an already persisted part is a no-op.
func (r *PartRepository) Add(ctx context.Context, part domain.Part) error {
	rec, err := r.record(part)
	if err != nil {
		return err
	}
	return r.store.InsertRecord(ctx, registry.Parts, rec)
}

// GetAll returns every persisted part.
func (r *PartRepository) GetAll(ctx context.Context) ([]domain.Part, error) {
	records, err := r.store.Records(ctx, registry.Parts)
	if err != nil {
		return nil, err
	}
	parts := make([]domain.Part, 0, len(records))
	for _, rec := range records {
		part, err := r.decode(rec)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}

// GetByID returns the part with the id, or ok=false if none exists.
func (r *PartRepository) GetByID(ctx context.Context, id string) (domain.Part, bool, error) {
	parts, err := r.GetAll(ctx)
	if err != nil {
		return domain.Part{}, false, err
	}
	for _, part := range parts {
		if part.ID() == id {
			return part, true, nil
		}
	}
	return domain.Part{}, false, nil
}

// Delete removes the part's row. The store rejects the delete while a
// weapon or template still references the part.
func (r *PartRepository) Delete(ctx context.Context, part domain.Part) error {
	rec, err := r.record(part)
	if err != nil {
		return err
	}
	return r.store.DeleteRecord(ctx, registry.Parts, rec)
}

// CreateSchema creates the parts table.
func (r *PartRepository) CreateSchema(ctx context.Context) error {
	return r.store.CreateTable(ctx, registry.Parts, "")
}

// DropSchema drops the parts table.
func (r *PartRepository) DropSchema(ctx context.Context) error {
	return r.store.DropTable(ctx, registry.Parts)
}

func (r *PartRepository) record(part domain.Part) (schema.Record, error) {
	return schema.NewRecord(registry.Parts, map[string]any{
		"id":                 part.ID(),
		"bricklink_part_id":  part.BricklinkPartID(),
		"bricklink_color_id": part.BricklinkColorID(),
		"lego_element_id":    part.LegoElementID(),
		"lego_design_id":     part.LegoDesignID(),
		"description":        part.Description(),
	})
}

func (r *PartRepository) decode(rec schema.Record) (domain.Part, error) {
	partID, err := rec.String("bricklink_part_id")
	if err != nil {
		return domain.Part{}, err
	}
	colorID, err := rec.String("bricklink_color_id")
	if err != nil {
		return domain.Part{}, err
	}
	elementID, err := rec.String("lego_element_id")
	if err != nil {
		return domain.Part{}, err
	}
	designID, err := rec.String("lego_design_id")
	if err != nil {
		return domain.Part{}, err
	}
	description, err := rec.String("description")
	if err != nil {
		return domain.Part{}, err
	}
	return domain.NewPart(partID, colorID, elementID, designID, description)
}
