package schema

import "fmt"

// Type is a declared SQL storage type for an attribute.
type Type string

const (
	TypeText    Type = "TEXT"
	TypeInteger Type = "INTEGER"
	TypeReal    Type = "REAL"
	TypeBlob    Type = "BLOB"
)

// ForeignKey names the table and column an attribute references.
type ForeignKey struct {
	Table  string
	Column string
}

// Attribute describes one column of a table.
type Attribute struct {
	Name       string
	Type       Type
	PrimaryKey bool
	ForeignKey *ForeignKey
}

// Table describes one relational table: its name and its attributes in
// declaration order. Declaration order determines column order in generated
// statements and in Records. Joint marks pure relation tables, where every
// id column is part of the composite primary key.
type Table struct {
	Name       string
	Attributes []Attribute
	Joint      bool
}

// Attribute returns the attribute with the given name.
func (t *Table) Attribute(name string) (Attribute, error) {
	for _, attr := range t.Attributes {
		if attr.Name == name {
			return attr, nil
		}
	}
	return Attribute{}, &Error{Op: "attribute", Detail: fmt.Sprintf("table %q has no attribute %q", t.Name, name)}
}

// HasAttribute reports whether the table declares an attribute with the name.
func (t *Table) HasAttribute(name string) bool {
	_, err := t.Attribute(name)
	return err == nil
}

// PrimaryKeys returns the names of all primary-key attributes in declaration
// order. Entity tables have exactly one; joint tables have two.
func (t *Table) PrimaryKeys() []string {
	var keys []string
	for _, attr := range t.Attributes {
		if attr.PrimaryKey {
			keys = append(keys, attr.Name)
		}
	}
	return keys
}
