package store

// Error wraps a failure reported by the persistence layer, such as a
// restrict-delete blocked by a dependent row. Primary key conflicts on
// insert never surface here: inserts use insert-or-ignore semantics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return "store: " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
