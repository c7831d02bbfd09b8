package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config sources reported by Load.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/dragon.yaml"

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.dragon/config.yaml -> ./configs/dragon.yaml -> embedded default.
// Values missing from a file keep their defaults. The result is validated.
func Load(customPath string) (Config, string, error) {
	// An explicit path must work
	if customPath != "" {
		path := ExpandHome(customPath)
		cfg, err := readFile(path)
		if err != nil {
			return cfg, path, err
		}
		return cfg, path, cfg.Validate()
	}

	// Search paths fall through on any error
	for _, path := range []string{userConfigPath(), localConfigPath} {
		if path == "" {
			continue
		}
		if cfg, err := readFile(path); err == nil {
			return cfg, path, cfg.Validate()
		}
	}

	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, cfg.Validate()
}

// readFile parses a YAML file on top of the defaults.
func readFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dragon", "config.yaml")
}

// ExpandHome replaces a leading ~ with the user's home directory.
// The path is returned unchanged if home cannot be resolved.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
