package domain

import "strings"

// Part is one physical Lego part in a specific color. Identity derives from
// the BrickLink part id and color id alone; element id, design id and
// description are descriptive and do not affect the id.
type Part struct {
	id               string
	bricklinkPartID  string
	bricklinkColorID string
	legoElementID    string
	legoDesignID     string
	description      string
}

// NewPart validates and builds an immutable part. BrickLink part id and
// color id are identity-contributing and must be non-empty after trimming.
func NewPart(bricklinkPartID, bricklinkColorID, legoElementID, legoDesignID, description string) (Part, error) {
	bricklinkPartID = strings.TrimSpace(bricklinkPartID)
	bricklinkColorID = strings.TrimSpace(bricklinkColorID)

	var missing []string
	if bricklinkPartID == "" {
		missing = append(missing, "bricklink_part_id")
	}
	if bricklinkColorID == "" {
		missing = append(missing, "bricklink_color_id")
	}
	if len(missing) > 0 {
		return Part{}, &IdentityError{Entity: "part", Missing: missing}
	}

	return Part{
		id:               deriveID("part:" + bricklinkPartID + ":" + bricklinkColorID),
		bricklinkPartID:  bricklinkPartID,
		bricklinkColorID: bricklinkColorID,
		legoElementID:    strings.TrimSpace(legoElementID),
		legoDesignID:     strings.TrimSpace(legoDesignID),
		description:      strings.TrimSpace(description),
	}, nil
}

// ID returns the content-derived 16 hex character id.
func (p Part) ID() string { return p.id }

// BricklinkPartID returns the BrickLink catalog part number.
func (p Part) BricklinkPartID() string { return p.bricklinkPartID }

// BricklinkColorID returns the BrickLink color id.
func (p Part) BricklinkColorID() string { return p.bricklinkColorID }

// LegoElementID returns the Lego element id, possibly empty.
func (p Part) LegoElementID() string { return p.legoElementID }

// LegoDesignID returns the Lego design id, possibly empty.
func (p Part) LegoDesignID() string { return p.legoDesignID }

// Description returns the free-form description, possibly empty.
func (p Part) Description() string { return p.description }
