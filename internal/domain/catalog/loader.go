package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Loader produces a validated catalog snapshot. Implementations load
// from the built-in dataset, a JSON file, or Postgres.
type Loader interface {
	Load(ctx context.Context) (*Catalog, error)
}

// BuiltinLoader serves the compiled-in default dataset.
type BuiltinLoader struct{}

func (BuiltinLoader) Load(_ context.Context) (*Catalog, error) {
	c := Builtin()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("builtin catalog: %w", err)
	}
	return c, nil
}

// FileLoader reads a catalog from a JSON document on disk. The document
// uses the same field names as the Catalog JSON tags.
type FileLoader struct {
	Path string
}

func (l FileLoader) Load(_ context.Context) (*Catalog, error) {
	raw, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", l.Path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", l.Path, err)
	}
	return &c, nil
}
