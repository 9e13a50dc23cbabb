package core

import (
	"github.com/google/uuid"
)

// RunID identifies a single pipeline invocation in log output.
type RunID string

// NewRunID creates a new unique run identifier using UUID v7 for
// time-ordered generation, falling back to v4 if v7 is unavailable.
func NewRunID() RunID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return RunID(id.String())
}

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}
