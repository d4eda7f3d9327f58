package repository

import "context"

// SequenceRepository hands out monotonically increasing numbers per name
type SequenceRepository interface {
	// Next atomically increments and returns the named counter. The first
	// call for a name seeds it from the row count of seedModel's table.
	Next(ctx context.Context, name string, seedModel interface{}) (int64, error)
}
