package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// IsDevRun checks if the current process is running via `go run` or
// `go test`. It relies on the fact that these commands build binaries in
// temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	tempDir := os.TempDir()
	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(tempDir)) {
		return true
	}

	if strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe") {
		return true
	}

	return false
}

// DefaultStateDir returns where state lives when the user does not say
// otherwise: $PEAT_STATE_DIR, then $XDG_DATA_HOME/peat, then
// ~/.local/share/peat.
func DefaultStateDir() string {
	if dir := os.Getenv("PEAT_STATE_DIR"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "peat")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "peat-state"
	}
	return filepath.Join(home, ".local", "share", "peat")
}

// ResolveStateDir determines the actual state directory based on safety
// rules. With forceTemp, the directory is re-rooted into a temporary
// location to avoid polluting the user's real state during development.
func ResolveStateDir(userDir string, forceTemp bool) string {
	if !forceTemp {
		if userDir == "" {
			return DefaultStateDir()
		}
		return userDir
	}

	// If the directory is already inside the system temp directory (e.g.
	// created by t.TempDir or explicit intent), trust it as is.
	cleanUserDir := filepath.Clean(userDir)
	tempRoot := os.TempDir()

	rel, err := filepath.Rel(tempRoot, cleanUserDir)
	if err == nil && !strings.HasPrefix(rel, "..") && userDir != "" {
		return cleanUserDir
	}

	baseTemp := filepath.Join(os.TempDir(), "peat-dev")
	subName := "default"
	if userDir != "" && userDir != "." && userDir != "./" {
		if base := filepath.Base(userDir); base != "." && base != string(os.PathSeparator) {
			subName = base
		}
	}

	return filepath.Join(baseTemp, subName)
}
