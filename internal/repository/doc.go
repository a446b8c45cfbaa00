// Package repository maps domain entities to relational rows and back.
//
// One repository exists per entity type. Each owns the entity's primary
// table plus the joint tables recording its many-to-many relations, and
// offers the same surface: Add, GetAll, GetByID, Delete, CreateSchema,
// DropSchema.
//
// # Writing
//
// Add encodes the entity into one schema-conformant record for the primary
// table, then persists each relation entry: the child is added through its
// own repository first (so transitively shared children always exist),
// followed by one joint row carrying parent id, child id and quantity.
// Every insert is insert-or-ignore, which makes the whole operation
// idempotent under re-import and lets multiple parents share a child row.
//
// # Reading
//
// GetAll fetches the primary records, rebuilds scalar fields, and resolves
// each declared relation by querying the joint table by parent id and
// recursively loading every child through the child's repository. A joint
// row pointing at a missing child row is surfaced as a ConsistencyError,
// never as an empty result. GetByID is a linear scan over GetAll, which is
// fine at inventory scale.
//
// # Deleting
//
// Delete removes only the primary row. Joint rows disappear through the
// cascade declared on the parent edge of each joint table; the child edge
// is restrict-on-delete, so removing a still-referenced child fails at the
// store. There is no cross-repository transaction: a crash between a
// parent insert and its joint rows leaves a parent without relations,
// which reads back as an entity with an empty mapping.
package repository
