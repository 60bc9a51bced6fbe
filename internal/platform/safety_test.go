package platform_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/peat/internal/platform"
)

func TestResolveStateDir(t *testing.T) {
	t.Run("Passes Through Without ForceTemp", func(t *testing.T) {
		if got := platform.ResolveStateDir("/srv/notes", false); got != "/srv/notes" {
			t.Errorf("expected passthrough, got %q", got)
		}
	})

	t.Run("Empty Means Platform Default", func(t *testing.T) {
		got := platform.ResolveStateDir("", false)
		if got == "" {
			t.Fatal("expected a non-empty default")
		}
		if !strings.Contains(got, "peat") {
			t.Errorf("expected a peat-specific directory, got %q", got)
		}
	})

	t.Run("ForceTemp Reroots Into Temp", func(t *testing.T) {
		got := platform.ResolveStateDir("/home/user/notes", true)
		if !strings.HasPrefix(got, os.TempDir()) {
			t.Errorf("expected a temp-rooted path, got %q", got)
		}
		if filepath.Base(got) != "notes" {
			t.Errorf("expected the base name to survive, got %q", got)
		}
	})

	t.Run("ForceTemp Trusts Paths Already In Temp", func(t *testing.T) {
		inTemp := filepath.Join(os.TempDir(), "already-safe")
		if got := platform.ResolveStateDir(inTemp, true); got != inTemp {
			t.Errorf("expected %q to be trusted, got %q", inTemp, got)
		}
	})
}

func TestDefaultStateDir(t *testing.T) {
	t.Run("Env Override Wins", func(t *testing.T) {
		t.Setenv("PEAT_STATE_DIR", "/custom/state")
		if got := platform.DefaultStateDir(); got != "/custom/state" {
			t.Errorf("expected override, got %q", got)
		}
	})

	t.Run("XDG Data Home", func(t *testing.T) {
		t.Setenv("PEAT_STATE_DIR", "")
		t.Setenv("XDG_DATA_HOME", "/xdg/data")
		want := filepath.Join("/xdg/data", "peat")
		if got := platform.DefaultStateDir(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}

func TestIsDevRun(t *testing.T) {
	// Test binaries are compiled into the build cache or temp dir, so a
	// test process must always identify as a dev run.
	if !platform.IsDevRun() {
		t.Error("expected IsDevRun to be true under go test")
	}
}
