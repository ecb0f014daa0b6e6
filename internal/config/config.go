package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/lcat/pkg/logcat"
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	HideTimestamps bool
	MinLevel       string
	TagWidth       int
	Color          string
	Debug          bool

	// Flags to track if they were explicitly set by the user
	HideTimestampsSet bool
	MinLevelSet       bool
	TagWidthSet       bool
	ColorSet          bool
	DebugSet          bool
}

// AppConfig represents the application's configuration from .lcat.yaml.
type AppConfig struct {
	HideTimestamps bool   `yaml:"hide_timestamps"`
	TagWidth       int    `yaml:"tag_width"`
	MinLevel       string `yaml:"min_level,omitempty"`
	Color          string `yaml:"color,omitempty"`
	Debug          bool   `yaml:"debug"`

	// Origin is the path the config was loaded from, empty when only
	// defaults apply.
	Origin string `yaml:"-"`
}

// Constants for default values.
const (
	DefaultColor    = "auto"
	configFileName  = ".lcat.yaml"
	configNamespace = "lcat"
)

// LoadConfig loads the .lcat.yaml configuration, falling back to defaults
// when no file exists or the file cannot be parsed.
func LoadConfig() *AppConfig {
	appCfg := &AppConfig{
		HideTimestamps: false,
		TagWidth:       logcat.DefaultTagWidth,
		Color:          DefaultColor,
	}

	configPath := getConfigPath()
	if configPath == "" {
		return appCfg
	}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: Error reading config file %s: %v. Using defaults.\n", configPath, err)
		}
		return appCfg
	}

	var fileCfg AppConfig
	if err := yaml.Unmarshal(yamlFile, &fileCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error unmarshalling config file %s: %v. Using defaults.\n", configPath, err)
		return appCfg
	}

	appCfg.HideTimestamps = fileCfg.HideTimestamps
	appCfg.Debug = fileCfg.Debug
	if fileCfg.TagWidth > 0 {
		appCfg.TagWidth = fileCfg.TagWidth
	}
	if fileCfg.MinLevel != "" {
		appCfg.MinLevel = fileCfg.MinLevel
	}
	if fileCfg.Color != "" {
		appCfg.Color = fileCfg.Color
	}
	appCfg.Origin = configPath
	return appCfg
}

// getConfigPath tries to find the .lcat.yaml configuration file. It checks
// the local directory first, then the XDG user config dir (if valid).
func getConfigPath() string {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}

	configHome, err := os.UserConfigDir()
	// An empty or root UserConfigDir is not suitable for path construction.
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, configNamespace, configFileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
