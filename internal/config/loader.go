package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LoadGarden loads the garden configuration.
// Search order: customPath -> ~/.bloom/configs/garden.yaml -> ./configs/garden.yaml -> embedded default.
//
// Values missing from a file keep their defaults. A branch table or growth
// section that fails validation is replaced by its hardcoded default and a
// warning is logged; the rest of the file still applies. Only an unreadable
// or unparsable customPath is an error.
func LoadGarden(customPath string, logger *log.Logger) (GardenConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultGardenConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseGarden(data)
		if err != nil {
			return DefaultGardenConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return sanitize(cfg, customPath, logger), nil
	}

	if userCfgPath := userConfigPath("garden.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseGarden(data); err == nil {
				return sanitize(cfg, userCfgPath, logger), nil
			} else if logger != nil {
				logger.Warn("ignoring unparsable config", "path", userCfgPath, "error", err)
			}
		}
	}

	localPath := filepath.Join("configs", "garden.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := ParseGarden(data); err == nil {
			return sanitize(cfg, localPath, logger), nil
		} else if logger != nil {
			logger.Warn("ignoring unparsable config", "path", localPath, "error", err)
		}
	}

	cfg, err := ParseGarden(defaultGardenYAML)
	if err != nil {
		return DefaultGardenConfig(), nil // Fallback to hardcoded if embed fails
	}
	return sanitize(cfg, "embedded", logger), nil
}

// ParseGarden decodes YAML on top of the hardcoded defaults.
// Lists in data replace the default lists; maps are merged key by key.
// It does not validate; see LoadGarden.
func ParseGarden(data []byte) (GardenConfig, error) {
	cfg := DefaultGardenConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultGardenConfig(), err
	}
	return cfg, nil
}

// sanitize replaces invalid sections with defaults and pulls numbers back
// into usable ranges.
func sanitize(cfg GardenConfig, source string, logger *log.Logger) GardenConfig {
	if err := cfg.Branches.Validate(); err != nil {
		if logger != nil {
			logger.Warn("using default branch tables", "source", source, "error", err)
		}
		cfg.Branches = DefaultBranchTables()
	}
	if err := cfg.Growth.Validate(); err != nil {
		if logger != nil {
			logger.Warn("using default growth config", "source", source, "error", err)
		}
		cfg.Growth = DefaultGardenConfig().Growth
	}

	cfg.Gate.SleepStart = clampHour(cfg.Gate.SleepStart)
	cfg.Gate.SleepEnd = clampHour(cfg.Gate.SleepEnd)
	cfg.Gate.StartHour = clampHour(cfg.Gate.StartHour)
	if cfg.Gate.NutritionLimit < 0 {
		cfg.Gate.NutritionLimit = 0
	}
	if cfg.Hazards.MaxWeeds < 0 {
		cfg.Hazards.MaxWeeds = 0
	}
	if cfg.Hazards.MaxPests < 0 {
		cfg.Hazards.MaxPests = 0
	}
	return cfg
}

func clampHour(h int) int {
	h %= 24
	if h < 0 {
		h += 24
	}
	return h
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bloom", "configs", filename)
}
