package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDirName is the per-user directory under $HOME holding configs,
// scenes and the score database.
const AppDirName = ".sandspan"

// LoadSand loads Sandspan configuration.
// Search order: customPath -> ~/.sandspan/configs/sand.yaml -> ./configs/sand.yaml -> embedded default.
// Files are decoded over DefaultSandConfig, so a partial file only
// overrides the keys it sets.
func LoadSand(customPath string) (SandConfig, error) {
	// A custom path must exist and parse.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSandConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decodeSand(data)
		if err != nil {
			return DefaultSandConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := UserPath("configs", "sand.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeSand(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "sand.yaml")); err == nil {
		if cfg, err := decodeSand(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := decodeSand(defaultSandYAML)
	if err != nil {
		return DefaultSandConfig(), nil
	}
	return cfg, nil
}

func decodeSand(data []byte) (SandConfig, error) {
	cfg := DefaultSandConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultSandConfig(), err
	}
	if _, err := cfg.SimConfig(); err != nil {
		return DefaultSandConfig(), err
	}
	return cfg, nil
}

// UserPath joins elem under ~/.sandspan, or returns "" if the home
// directory is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, AppDirName}, elem...)...)
}
