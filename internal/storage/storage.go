// Package storage defines the collection persistence contract shared by the
// JSON-file and PostgreSQL backends. A backend holds whole collections; data
// access layers read, modify, and write back the full snapshot.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Collection names. One file (or row) per collection.
const (
	Products   = "products"
	Stores     = "stores"
	Categories = "categories"
	Orders     = "orders"
)

// ErrNotFound is returned by data-access layers when an id is absent from its
// collection. The HTTP layer maps it to 404.
var ErrNotFound = errors.New("not found")

type Backend interface {
	// Load returns the raw JSON array for a collection. An unknown collection
	// loads as an empty array.
	Load(ctx context.Context, collection string) ([]byte, error)
	// Save replaces the collection with data, atomically from the point of
	// view of subsequent Loads on the same backend.
	Save(ctx context.Context, collection string, data []byte) error
}

// LoadJSON loads a collection and unmarshals it into v.
func LoadJSON(ctx context.Context, b Backend, collection string, v any) error {
	data, err := b.Load(ctx, collection)
	if err != nil {
		return fmt.Errorf("load %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

// SaveJSON marshals v pretty-printed (2-space indent, the layout the admin
// edits by hand in json mode) and saves it.
func SaveJSON(ctx context.Context, b Backend, collection string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := b.Save(ctx, collection, data); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}
