package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinLoader(t *testing.T) {
	c, err := BuiltinLoader{}.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Symptoms) != 21 {
		t.Errorf("expected 21 symptoms, got %d", len(c.Symptoms))
	}
	if len(c.Conditions) != 6 {
		t.Errorf("expected 6 conditions, got %d", len(c.Conditions))
	}
}

func TestFileLoader_RoundTrip(t *testing.T) {
	raw, err := json.Marshal(Builtin())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := FileLoader{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Symptoms) != len(Builtin().Symptoms) {
		t.Errorf("symptom count mismatch after round trip")
	}
}

func TestFileLoader_MissingFile(t *testing.T) {
	if _, err := (FileLoader{Path: "/nonexistent/catalog.json"}).Load(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFileLoader_InvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(`{"symptoms":[]}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := (FileLoader{Path: path}).Load(context.Background()); err == nil {
		t.Fatal("expected validation error for empty catalog")
	}
}
