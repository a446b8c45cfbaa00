// Package domain defines the core entities of the minifigure inventory:
// parts, weapons, weapon slots, catalog templates and physical figures.
//
// # Content addressing
//
// Every entity is an immutable value object whose id is computed once at
// construction: a 16 hex character digest of the entity's identity source,
// the deterministic string built from its defining fields. Two entities
// with structurally equal defining fields always carry the same id, which
// makes them interchangeable as map keys and set members regardless of
// where they were constructed.
//
// # Relation mappings
//
// Weapons map parts to quantities, weapon slots map weapons to quantities,
// and templates map both parts and weapon slots to quantities. The parent
// owns the mapping value but not the children: children are independently
// persisted and may be shared by multiple parents. Mappings are keyed by
// content-derived id and all accessors return sorted defensive copies, so
// iteration order can never leak into identity or serialization.
//
// # Validation
//
// Constructors are the only way to build entities and they validate
// eagerly: missing identity-contributing fields raise an IdentityError
// naming every missing field, and domain rule violations (a weapon slot a
// template does not allow, a duplicate child in a mapping, a non-positive
// quantity) raise a ConsistencyError. Entities are never mutated after
// construction; deleting a persisted entity has no effect on in-memory
// values.
//
// The package has no persistence or transport concerns; the repository
// package maps entities to relational rows and back.
package domain
