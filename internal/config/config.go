// Package config resolves the effective CLI configuration from JSONC
// files. Precedence, lowest to highest: built-in defaults, the user config
// file, a project-local .peat.jsonc found by walking up from the working
// directory. Command-line flags override all of it and are applied by the
// caller.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// LocalFile is the project-local config filename discovered by walking up
// the directory tree, in the manner of .editorconfig.
const LocalFile = ".peat.jsonc"

// Config is the resolved configuration.
type Config struct {
	StateDir string `json:"stateDir"`
	Backend  string `json:"backend"`
	Editor   string `json:"editor"`
}

// fileConfig mirrors Config with pointer fields so a file can override a
// subset of keys without clobbering the rest.
type fileConfig struct {
	StateDir *string `json:"stateDir"`
	Backend  *string `json:"backend"`
	Editor   *string `json:"editor"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Backend: "file"}
}

// UserConfigPath returns where the user-level config file lives:
// $XDG_CONFIG_HOME/peat/config.jsonc, else ~/.config/peat/config.jsonc.
func UserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "peat", "config.jsonc")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "peat", "config.jsonc")
}

// Load resolves the effective configuration. With explicitPath set, only
// that file is read and it must exist. Otherwise the user config (if any)
// is applied first, then a project-local file discovered from startDir.
func Load(explicitPath, startDir string) (Config, error) {
	cfg := Default()

	if explicitPath != "" {
		fc, err := parseFile(explicitPath)
		if err != nil {
			return Config{}, err
		}
		cfg.apply(fc)
		return cfg, nil
	}

	if userPath := UserConfigPath(); userPath != "" {
		if fc, err := parseFile(userPath); err == nil {
			cfg.apply(fc)
		} else if !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	if localPath, ok := findLocal(startDir); ok {
		fc, err := parseFile(localPath)
		if err != nil {
			return Config{}, err
		}
		cfg.apply(fc)
	}

	return cfg, nil
}

// findLocal recursively looks upwards from startDir for a project-local
// config file. The second return is false when none exists up to the
// filesystem root.
func findLocal(startDir string) (string, bool) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}

	dir := abs
	for {
		candidate := filepath.Join(dir, LocalFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", false
}

func parseFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, err
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	var fc fileConfig
	if err := json.Unmarshal(std, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return fc, nil
}

func (c *Config) apply(fc fileConfig) {
	if fc.StateDir != nil {
		c.StateDir = *fc.StateDir
	}
	if fc.Backend != nil {
		c.Backend = *fc.Backend
	}
	if fc.Editor != nil {
		c.Editor = *fc.Editor
	}
}
