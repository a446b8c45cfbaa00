// Package schema is the minimal relational schema description model.
//
// A Table is a name plus an ordered list of Attributes; an Attribute carries
// a declared SQL type, an optional primary-key flag, and an optional foreign
// key reference. A Record is one row of a table: an ordered list of Elements,
// each binding a value to an attribute.
//
// The package is pure description plus lookup. It performs no I/O; the store
// package turns tables and records into SQL, and the repository package maps
// them to domain entities.
//
// Type conformance is enforced at Element construction: an INTEGER attribute
// only accepts integral values, TEXT only strings, BLOB only byte slices,
// REAL accepts integral or floating values. Nil is always allowed, giving
// every column nullable semantics. A mismatch is reported immediately as a
// TypeError, never silently coerced.
package schema
