package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Decode.Profile != "v5TE" {
		t.Errorf("Expected Profile=v5TE, got %s", cfg.Decode.Profile)
	}
	if cfg.Decode.Mode != "arm" {
		t.Errorf("Expected Mode=arm, got %s", cfg.Decode.Mode)
	}
	if cfg.Decode.BaseAddress != 0x8000 {
		t.Errorf("Expected BaseAddress=0x8000, got %#x", cfg.Decode.BaseAddress)
	}
	if !cfg.Decode.RenderAliases {
		t.Error("Expected RenderAliases=true")
	}

	if cfg.Listing.BytesPerColumn != 4 {
		t.Errorf("Expected BytesPerColumn=4, got %d", cfg.Listing.BytesPerColumn)
	}
	if cfg.Listing.NumberFormat != "hex" {
		t.Errorf("Expected NumberFormat=hex, got %s", cfg.Listing.NumberFormat)
	}

	if cfg.Browser.HistorySize != 1000 {
		t.Errorf("Expected HistorySize=1000, got %d", cfg.Browser.HistorySize)
	}

	if cfg.API.ListenAddress == "" {
		t.Error("Expected a non-empty default API listen address")
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()

	if path == "" {
		t.Error("GetConfigPath returned empty string")
	}

	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}

	switch runtime.GOOS {
	case "windows":
		if !filepath.IsAbs(path) && path != "config.toml" {
			t.Errorf("Expected absolute path on Windows, got %s", path)
		}

	case "darwin", "linux":
		dir := filepath.Dir(path)
		if filepath.Base(dir) != "armdis" && path != "config.toml" {
			t.Errorf("Expected path in armdis directory or fallback, got %s", path)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Decode.Profile = "v4T"
	cfg.Decode.BaseAddress = 0x10000
	cfg.Listing.ColorOutput = false
	cfg.API.ListenAddress = "0.0.0.0:9000"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.Decode.Profile != "v4T" {
		t.Errorf("Expected Profile=v4T, got %s", loaded.Decode.Profile)
	}
	if loaded.Decode.BaseAddress != 0x10000 {
		t.Errorf("Expected BaseAddress=0x10000, got %#x", loaded.Decode.BaseAddress)
	}
	if loaded.Listing.ColorOutput {
		t.Error("Expected ColorOutput=false")
	}
	if loaded.API.ListenAddress != "0.0.0.0:9000" {
		t.Errorf("Expected ListenAddress=0.0.0.0:9000, got %s", loaded.API.ListenAddress)
	}
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on non-existent file: %v", err)
	}

	if cfg.Decode.Profile != "v5TE" {
		t.Error("Expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[decode]
base_address = "not a number"
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Error("Expected error when loading invalid TOML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	dir := filepath.Dir(configPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Parent directories were not created")
	}
}
