// Package store keeps the full-resolution original series of each chart dataset.
//
// Downsampling must always start from the most detailed data available. The chart layer
// stashes a dataset's original series in a Store the first time it downsamples it and
// reads it back on every later pass. Two implementations are provided:
//   - MemoryStore: process-local, backed by patrickmn/go-cache, optional expiry
//   - RedisStore: shared between processes, payloads encoded with the codec package
package store

import (
	"context"

	"github.com/watchcharts/chartkit/series"
)

// Store persists original series by dataset id.
type Store interface {
	// Save stores s as the original series of dataset id, replacing any previous value.
	Save(ctx context.Context, id string, s series.Series) error
	// Load returns the stored series. ok is false when nothing is stored for id.
	Load(ctx context.Context, id string) (s series.Series, ok bool, err error)
	// Delete removes the stored series. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
}
