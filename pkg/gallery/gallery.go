// Package gallery records generated mosaics so they can be listed and
// re-rendered later.
//
// A [Record] captures everything needed to reproduce a render: the engine
// configuration (including its seed), the active accent palette, how far
// the driver was advanced and the region statistics of the generation that
// was shown. Two stores are provided: [MemoryStore] for the CLI and tests,
// [MongoStore] for the HTTP service.
package gallery

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/mosaic/pkg/mosaic"
)

// DefaultListLimit is used by List when limit <= 0.
const DefaultListLimit = 50

// Record is one stored generation.
type Record struct {
	ID        string             `json:"id" bson:"_id"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	Kind      string             `json:"kind" bson:"kind"`
	Formats   []string           `json:"formats" bson:"formats"`
	Palette   string             `json:"palette" bson:"palette"`
	Ticks     int                `json:"ticks" bson:"ticks"`
	Config    mosaic.Config      `json:"config" bson:"config"`
	Stats     mosaic.RegionStats `json:"stats" bson:"stats"`
}

// NewRecord returns a record with a fresh ID and timestamp.
func NewRecord(kind string, cfg mosaic.Config) Record {
	return Record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Kind:      kind,
		Config:    cfg,
	}
}

// Store persists records.
type Store interface {
	// Save inserts rec. Saving a record whose ID already exists fails.
	Save(ctx context.Context, rec Record) error
	// Get returns the record with the given ID, or an error with code
	// NOT_FOUND.
	Get(ctx context.Context, id string) (Record, error)
	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]Record, error)
	Close(ctx context.Context) error
}

func listLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}
