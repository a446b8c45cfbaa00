package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"minifigdb/internal/domain"
)

// Builders convert flat field-name→string maps, as produced by CSV import
// or a web form, into domain entities. Each builder declares its expected
// fields explicitly; there is no reflection over entity metadata. Relation
// fields are not part of CSV rows and stay empty here; callers attach
// relations through the richer constructors.

// BuildPart builds a part from the canonical part fields.
func BuildPart(fields map[string]string) (domain.Part, error) {
	return domain.NewPart(
		fields["bricklink_part_id"],
		fields["bricklink_color_id"],
		fields["lego_element_id"],
		fields["lego_design_id"],
		fields["description"],
	)
}

// BuildTemplate builds a relation-less template from the canonical
// template fields. The sets field is a semicolon-separated list.
func BuildTemplate(fields map[string]string) (domain.TemplateMinifigure, error) {
	year, err := intField(fields, "year")
	if err != nil {
		return domain.TemplateMinifigure{}, err
	}
	return domain.NewTemplateMinifigure(
		fields["bricklink_fig_id"],
		fields["name"],
		year,
		splitList(fields["sets"]),
		nil,
		nil,
		fields["description"],
	)
}

func intField(fields map[string]string, name string) (int, error) {
	raw := strings.TrimSpace(fields[name])
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", name, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	items := strings.Split(raw, ";")
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
	return items
}
