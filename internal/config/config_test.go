package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/peat/internal/config"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("Defaults When Nothing Exists", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "empty"))

		cfg, err := config.Load("", t.TempDir())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Backend != "file" {
			t.Errorf("expected default backend 'file', got %q", cfg.Backend)
		}
		if cfg.StateDir != "" {
			t.Errorf("expected empty state dir, got %q", cfg.StateDir)
		}
	})

	t.Run("Tolerates Comments And Trailing Commas", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.jsonc")
		write(t, path, `{
			// where notes live
			"stateDir": "/srv/notes",
			"backend": "sqlite", /* single file */
		}`)

		cfg, err := config.Load(path, dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.StateDir != "/srv/notes" || cfg.Backend != "sqlite" {
			t.Errorf("unexpected config: %+v", cfg)
		}
	})

	t.Run("Explicit Path Must Exist", func(t *testing.T) {
		if _, err := config.Load(filepath.Join(t.TempDir(), "missing.jsonc"), "."); err == nil {
			t.Error("expected error for missing explicit config")
		}
	})

	t.Run("Partial Files Keep Defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.jsonc")
		write(t, path, `{"editor": "vim"}`)

		cfg, err := config.Load(path, dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Editor != "vim" {
			t.Errorf("expected editor 'vim', got %q", cfg.Editor)
		}
		if cfg.Backend != "file" {
			t.Errorf("expected backend default to survive, got %q", cfg.Backend)
		}
	})

	t.Run("Local Overrides User", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)
		write(t, filepath.Join(xdg, "peat", "config.jsonc"), `{"backend": "sqlite", "editor": "vim"}`)

		project := t.TempDir()
		nested := filepath.Join(project, "a", "b")
		write(t, filepath.Join(project, config.LocalFile), `{"backend": "memory"}`)
		if err := os.MkdirAll(nested, 0755); err != nil {
			t.Fatal(err)
		}

		cfg, err := config.Load("", nested)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		// The local file wins where it speaks, the user file elsewhere.
		if cfg.Backend != "memory" {
			t.Errorf("expected local override 'memory', got %q", cfg.Backend)
		}
		if cfg.Editor != "vim" {
			t.Errorf("expected user editor 'vim' to survive, got %q", cfg.Editor)
		}
	})

	t.Run("Rejects Malformed Config", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.jsonc")
		write(t, path, `{"backend": `)

		if _, err := config.Load(path, dir); err == nil {
			t.Error("expected error for malformed config")
		}
	})
}
