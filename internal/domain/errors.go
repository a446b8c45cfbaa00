package domain

import (
	"fmt"
	"strings"
)

// IdentityError reports missing identity-contributing fields at entity
// construction. It names every missing field at once, not just the first.
type IdentityError struct {
	Entity  string
	Missing []string
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("%s: missing required fields: %s", e.Entity, strings.Join(e.Missing, ", "))
}

// ConsistencyError reports a violated domain rule, naming the offending
// identifiers: a weapon slot not allowed by a template, a duplicate child in
// a relation mapping, or a joint row that references a row which does not
// exist.
type ConsistencyError struct {
	Detail string
}

func (e *ConsistencyError) Error() string {
	return "consistency: " + e.Detail
}
