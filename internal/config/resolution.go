package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dkoosis/lcat/pkg/logcat"
)

// Configuration resolution follows an explicit priority order. Higher
// priority sources override lower priority sources.
//
// Priority order (highest to lowest):
//  1. CLI flags (-hide-timestamps, -min-level, -tag-width, -color)
//  2. Environment variables (LCAT_HIDE_TIMESTAMPS, LCAT_MIN_LEVEL,
//     LCAT_NO_COLOR, NO_COLOR, LCAT_DEBUG)
//  3. .lcat.yaml configuration file
//  4. Defaults
//
// This keeps behavior predictable: user intent (CLI) > environment > file >
// defaults.
const (
	// PriorityCLI is the highest priority - explicit user intent via command line
	PriorityCLI = 1

	// PriorityEnv is second - environment variables for automation/CI
	PriorityEnv = 2

	// PriorityFile is third - project-specific configuration
	PriorityFile = 3

	// PriorityDefault is lowest - sensible defaults
	PriorityDefault = 4
)

// ResolvedConfig holds the final configuration after applying all priority
// rules.
type ResolvedConfig struct {
	HideTimestamps bool
	TagWidth       int
	MinLevel       logcat.Level
	Color          string
	Debug          bool

	// Resolution metadata (for debugging)
	HideTimestampsSource string // "cli", "env", "file", "default"
	MinLevelSource       string // "cli", "env", "file", "default"
	ColorSource          string // "cli", "env", "file", "default"
	TagWidthSource       string // "cli", "file", "default"
}

// ResolveConfig resolves configuration from all sources with explicit
// priority order. This is the single source of truth for config resolution.
func ResolveConfig(cliFlags CliFlags) (*ResolvedConfig, error) {
	appCfg := LoadConfig()

	baseSource := "default"
	if appCfg.Origin != "" {
		baseSource = "file"
	}

	resolved := &ResolvedConfig{
		HideTimestamps:       appCfg.HideTimestamps,
		TagWidth:             appCfg.TagWidth,
		Color:                appCfg.Color,
		Debug:                appCfg.Debug,
		HideTimestampsSource: baseSource,
		MinLevelSource:       baseSource,
		ColorSource:          baseSource,
		TagWidthSource:       baseSource,
	}

	minLevelName := appCfg.MinLevel

	// HideTimestamps: CLI > ENV > file > default
	if cliFlags.HideTimestampsSet {
		resolved.HideTimestamps = cliFlags.HideTimestamps
		resolved.HideTimestampsSource = "cli"
	} else if envHide := getEnvBool("LCAT_HIDE_TIMESTAMPS"); envHide != nil {
		resolved.HideTimestamps = *envHide
		resolved.HideTimestampsSource = "env"
	}

	// MinLevel: CLI > ENV > file > default
	if cliFlags.MinLevelSet {
		minLevelName = cliFlags.MinLevel
		resolved.MinLevelSource = "cli"
	} else if envLevel := os.Getenv("LCAT_MIN_LEVEL"); envLevel != "" {
		minLevelName = envLevel
		resolved.MinLevelSource = "env"
	}

	// Color: CLI > ENV > file > default. NO_COLOR only lowers "auto" to
	// "never"; an explicit "always" from CLI or file survives it.
	if cliFlags.ColorSet {
		resolved.Color = cliFlags.Color
		resolved.ColorSource = "cli"
	}
	if resolved.Color == "auto" {
		if envNoColor := getEnvBool("LCAT_NO_COLOR", "NO_COLOR"); envNoColor != nil && *envNoColor {
			resolved.Color = "never"
			resolved.ColorSource = "env"
		}
	}

	// TagWidth: CLI > file > default
	if cliFlags.TagWidthSet {
		resolved.TagWidth = cliFlags.TagWidth
		resolved.TagWidthSource = "cli"
	}

	// Debug: CLI > ENV > file > default
	if cliFlags.DebugSet {
		resolved.Debug = cliFlags.Debug
	} else if os.Getenv("LCAT_DEBUG") != "" {
		resolved.Debug = true
	}

	if minLevelName != "" {
		level, err := logcat.ParseLevel(minLevelName)
		if err != nil {
			return nil, fmt.Errorf("config validation failed: %w", err)
		}
		resolved.MinLevel = level
	}

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

// getEnvBool reads a boolean from environment variables, trying multiple
// keys. Returns nil if none are set, or a pointer to the parsed value.
// NO_COLOR is conventionally "set to anything", so unparseable non-empty
// values count as true.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			b, err := strconv.ParseBool(val)
			if err != nil {
				b = true
			}
			return &b
		}
	}
	return nil
}

// validateResolvedConfig returns an error for invalid resolved states.
func validateResolvedConfig(cfg *ResolvedConfig) error {
	validColor := map[string]bool{
		"auto":   true,
		"always": true,
		"never":  true,
	}
	if !validColor[cfg.Color] {
		return fmt.Errorf("invalid color value: %s (must be: auto, always, never)", cfg.Color)
	}

	if cfg.TagWidth <= 0 {
		return fmt.Errorf("tag_width must be positive, got: %d", cfg.TagWidth)
	}

	return nil
}
