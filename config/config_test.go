package config

import (
	"os"
	"path"
	"testing"
)

func TestLoadConfigurationFromFile(t *testing.T) {
	configDir := t.TempDir()
	contents := []byte("envRoot: /opt/envs/maps\nversion: 1.2.1\ncacheDir: /var/cache/mapstrap\n")
	if err := os.WriteFile(path.Join(configDir, configFileName), contents, 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MAPSTRAP_CONFIG_DIR", configDir)

	cfg := loadConfiguration()
	if cfg.EnvRoot != "/opt/envs/maps" {
		t.Fatalf("unexpected envRoot: %s", cfg.EnvRoot)
	}
	if cfg.Version != "1.2.1" {
		t.Fatalf("unexpected version: %s", cfg.Version)
	}
	if cfg.CacheDir != "/var/cache/mapstrap" {
		t.Fatalf("unexpected cacheDir: %s", cfg.CacheDir)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Fatalf("unexpected baseUrl: %s", cfg.BaseURL)
	}
}

func TestLoadConfigurationDefaults(t *testing.T) {
	t.Setenv("MAPSTRAP_CONFIG_DIR", t.TempDir())
	t.Setenv("VIRTUAL_ENV", "/opt/envs/geo")

	cfg := loadConfiguration()
	if cfg.Version != DefaultVersion {
		t.Fatalf("unexpected version: %s", cfg.Version)
	}
	if cfg.EnvRoot != "/opt/envs/geo" {
		t.Fatalf("envRoot should default to the active virtualenv, got: %s", cfg.EnvRoot)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("MAPSTRAP_CONFIG_DIR", t.TempDir())
	t.Setenv("MAPSTRAP_VERSION", "1.3.0")

	cfg := loadConfiguration()
	if cfg.Version != "1.3.0" {
		t.Fatalf("unexpected version: %s", cfg.Version)
	}
}
