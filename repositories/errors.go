package repositories

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a subject or user record does not exist.
var ErrNotFound = errors.New("record not found")

// PersistenceError wraps a failed store operation. On the write path
// (comment submission) it is fatal and surfaced to the user as "comment
// not saved"; on the read path callers degrade to an empty stored list.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store %s failed for %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
