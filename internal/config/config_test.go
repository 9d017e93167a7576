package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("CATALOG_SOURCE")
	os.Unsetenv("PORT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.CatalogSource != "builtin" {
		t.Errorf("expected default catalog source builtin, got %s", cfg.CatalogSource)
	}
	if cfg.SessionTTLMinutes != 30 {
		t.Errorf("expected default session ttl 30, got %d", cfg.SessionTTLMinutes)
	}
	if cfg.DBMaxConns != 20 {
		t.Errorf("expected default max conns 20, got %d", cfg.DBMaxConns)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	os.Setenv("CATALOG_SOURCE", "file")
	os.Setenv("CATALOG_FILE", "/etc/afyachat/catalog.json")
	defer os.Unsetenv("CATALOG_SOURCE")
	defer os.Unsetenv("CATALOG_FILE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CatalogSource != "file" {
		t.Errorf("expected catalog source file, got %s", cfg.CatalogSource)
	}
	if cfg.CatalogFile != "/etc/afyachat/catalog.json" {
		t.Errorf("expected catalog file path, got %s", cfg.CatalogFile)
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}

func TestConfig_SessionTTL(t *testing.T) {
	c := &Config{SessionTTLMinutes: 45}
	if c.SessionTTL() != 45*time.Minute {
		t.Errorf("expected 45m, got %s", c.SessionTTL())
	}
}

func TestValidate_CatalogSource(t *testing.T) {
	base := Config{Env: "development", CatalogSource: "builtin", SessionTTLMinutes: 30}

	if err := base.Validate(); err != nil {
		t.Errorf("builtin source should validate: %v", err)
	}

	c := base
	c.CatalogSource = "file"
	if err := c.Validate(); err == nil {
		t.Error("file source without CATALOG_FILE should fail")
	}
	c.CatalogFile = "catalog.json"
	if err := c.Validate(); err != nil {
		t.Errorf("file source with CATALOG_FILE should validate: %v", err)
	}

	c = base
	c.CatalogSource = "postgres"
	if err := c.Validate(); err == nil {
		t.Error("postgres source without DATABASE_URL should fail")
	}
	c.DatabaseURL = "postgres://localhost/afyachat"
	if err := c.Validate(); err != nil {
		t.Errorf("postgres source with DATABASE_URL should validate: %v", err)
	}

	c = base
	c.CatalogSource = "redis"
	if err := c.Validate(); err == nil {
		t.Error("unknown catalog source should fail")
	}
}

func TestValidate_SessionTTL(t *testing.T) {
	c := Config{Env: "development", CatalogSource: "builtin", SessionTTLMinutes: 0}
	if err := c.Validate(); err == nil {
		t.Error("zero session ttl should fail")
	}
}

func TestValidate_AuthMode(t *testing.T) {
	c := Config{Env: "production", CatalogSource: "builtin", SessionTTLMinutes: 30}
	if err := c.Validate(); err == nil {
		t.Error("production without AUTH_SIGNING_KEY should fail")
	}

	c.AuthSigningKey = "secret"
	if err := c.Validate(); err != nil {
		t.Errorf("production with signing key should validate: %v", err)
	}

	c.AuthMode = "development"
	if err := c.Validate(); err == nil {
		t.Error("AUTH_MODE=development must be rejected in production")
	}

	c = Config{Env: "development", CatalogSource: "builtin", SessionTTLMinutes: 30, AuthMode: "basic"}
	if err := c.Validate(); err == nil {
		t.Error("unknown auth mode should fail")
	}
}
