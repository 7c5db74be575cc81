package repository

import "fmt"

// ConflictError reports a unique-constraint violation on an insert.
// Handlers translate it to a 409; everything else coming out of a
// repository is treated as a storage failure.
type ConflictError struct {
	Table  string
	Column string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("duplicate %s in %s", e.Column, e.Table)
}
