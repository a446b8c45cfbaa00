package schema

// Element binds one value to one attribute. Construction checks that the
// value conforms to the attribute's declared type; nil is always permitted
// (nullable semantics).
type Element struct {
	Attribute Attribute
	Value     any
}

// NewElement builds an element and validates value conformance. Values are
// never coerced: a mismatch returns a *TypeError synchronously.
func NewElement(attr Attribute, value any) (Element, error) {
	if value == nil {
		return Element{Attribute: attr, Value: nil}, nil
	}
	ok := false
	switch attr.Type {
	case TypeInteger:
		switch value.(type) {
		case int, int64:
			ok = true
		}
	case TypeReal:
		switch value.(type) {
		case float64, float32, int, int64:
			ok = true
		}
	case TypeText:
		_, ok = value.(string)
	case TypeBlob:
		_, ok = value.([]byte)
	}
	if !ok {
		return Element{}, &TypeError{Attribute: attr.Name, Declared: attr.Type, Value: value}
	}
	return Element{Attribute: attr, Value: value}, nil
}

// Record is one row: an ordered list of elements matching exactly the
// attributes of some table.
type Record struct {
	Elements []Element
}

// NewRecord builds a record for the table from a map of attribute name to
// value, taking values in the table's declaration order. Attributes absent
// from the map become null elements.
func NewRecord(table *Table, values map[string]any) (Record, error) {
	elements := make([]Element, 0, len(table.Attributes))
	for _, attr := range table.Attributes {
		el, err := NewElement(attr, values[attr.Name])
		if err != nil {
			return Record{}, err
		}
		elements = append(elements, el)
	}
	return Record{Elements: elements}, nil
}

// Element returns the element whose attribute has the given name.
func (r Record) Element(name string) (Element, error) {
	for _, el := range r.Elements {
		if el.Attribute.Name == name {
			return el, nil
		}
	}
	return Element{}, &Error{Op: "element", Detail: "record has no element for attribute " + name}
}

// PrimaryKey returns the first element whose attribute is marked as primary
// key. Records of entity tables carry exactly one such element.
func (r Record) PrimaryKey() (Element, error) {
	for _, el := range r.Elements {
		if el.Attribute.PrimaryKey {
			return el, nil
		}
	}
	return Element{}, &Error{Op: "primary key", Detail: "record has no primary key element"}
}

// Values flattens the record into an attribute-name keyed map.
func (r Record) Values() map[string]any {
	values := make(map[string]any, len(r.Elements))
	for _, el := range r.Elements {
		values[el.Attribute.Name] = el.Value
	}
	return values
}

// String returns the value of a TEXT element, or "" for null.
func (r Record) String(name string) (string, error) {
	el, err := r.Element(name)
	if err != nil {
		return "", err
	}
	if el.Value == nil {
		return "", nil
	}
	s, ok := el.Value.(string)
	if !ok {
		return "", &TypeError{Attribute: name, Declared: TypeText, Value: el.Value}
	}
	return s, nil
}

// Int returns the value of an INTEGER element, or 0 for null.
func (r Record) Int(name string) (int, error) {
	el, err := r.Element(name)
	if err != nil {
		return 0, err
	}
	switch v := el.Value.(type) {
	case nil:
		return 0, nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	}
	return 0, &TypeError{Attribute: name, Declared: TypeInteger, Value: el.Value}
}
