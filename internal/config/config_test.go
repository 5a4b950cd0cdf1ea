package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.URLFormat != "lessons" {
		t.Errorf("expected default url_format 'lessons', got %s", cfg.URLFormat)
	}
	if cfg.SchemaDir != "." {
		t.Errorf("expected default schema_dir '.', got %s", cfg.SchemaDir)
	}
	if cfg.OutputDir != "." {
		t.Errorf("expected default output_dir '.', got %s", cfg.OutputDir)
	}
}

func TestLoader_LoadMissingFile(t *testing.T) {
	loader := NewLoaderWithPath(filepath.Join(t.TempDir(), "config.yaml"))

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.URLFormat != DefaultConfig().URLFormat {
		t.Errorf("expected defaults for missing file, got %+v", cfg)
	}
}

func TestLoader_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewLoaderWithPath(path)

	if loader.Exists() {
		t.Fatal("expected config file to not exist yet")
	}

	want := &Config{
		BaseURL:   "https://example.com/rise",
		URLFormat: "blocks",
		SchemaDir: "/opt/schemas",
		OutputDir: "/tmp/out",
	}
	if err := loader.Save(want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !loader.Exists() {
		t.Fatal("expected config file to exist after save")
	}

	got, err := loader.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != *want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestLoader_ExpandsEnvVars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "base_url: ${TEST_RISE_URL}\nurl_format: lessons\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TEST_RISE_URL", "https://cdn.example.com/c1")

	cfg, err := NewLoaderWithPath(path).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://cdn.example.com/c1" {
		t.Errorf("expected env var expansion, got %q", cfg.BaseURL)
	}
}

func TestLoader_LoadRawKeepsPlaceholders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "base_url: ${TEST_RISE_URL}\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TEST_RISE_URL", "https://cdn.example.com/c1")

	cfg, err := NewLoaderWithPath(path).LoadRaw()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "${TEST_RISE_URL}" {
		t.Errorf("expected raw placeholder, got %q", cfg.BaseURL)
	}
}

func TestLoader_Init(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewLoaderWithPath(path)

	if err := loader.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := loader.Init(); err == nil {
		t.Error("expected error when config file already exists")
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_CONFIG_KEY", "set")
	if got := GetEnvOrDefault("TEST_CONFIG_KEY", "fallback"); got != "set" {
		t.Errorf("expected 'set', got %q", got)
	}
	if got := GetEnvOrDefault("TEST_CONFIG_KEY_UNSET", "fallback"); got != "fallback" {
		t.Errorf("expected 'fallback', got %q", got)
	}
}
