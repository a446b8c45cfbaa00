package schema

import "fmt"

// Error reports a schema violation: an unknown attribute or table reference,
// a table without attributes, or a record that does not line up with its
// table. Schema errors are fatal to the triggering operation.
type Error struct {
	Op     string
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("schema: %s: %s", e.Op, e.Detail)
}

// TypeError reports a value that does not conform to its attribute's
// declared type. It is raised at Element construction, never later.
type TypeError struct {
	Attribute string
	Declared  Type
	Value     any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("schema: attribute %q declared %s, got %T", e.Attribute, e.Declared, e.Value)
}
