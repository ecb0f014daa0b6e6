package config

import (
	"os"
	"strings"
	"testing"

	"github.com/dkoosis/lcat/pkg/logcat"
)

func TestResolveConfig_UsesDefaults_When_NothingSet(t *testing.T) {
	isolateConfig(t)

	resolved, err := ResolveConfig(CliFlags{})
	if err != nil {
		t.Fatalf("ResolveConfig() error = %v", err)
	}

	if resolved.HideTimestamps {
		t.Error("default HideTimestamps should be false")
	}
	if resolved.MinLevel != logcat.LevelUnknown {
		t.Errorf("MinLevel = %v, want no filtering", resolved.MinLevel)
	}
	if resolved.Color != "auto" {
		t.Errorf("Color = %q, want auto", resolved.Color)
	}
	if resolved.TagWidth != logcat.DefaultTagWidth {
		t.Errorf("TagWidth = %d, want %d", resolved.TagWidth, logcat.DefaultTagWidth)
	}
	for name, source := range map[string]string{
		"HideTimestamps": resolved.HideTimestampsSource,
		"MinLevel":       resolved.MinLevelSource,
		"Color":          resolved.ColorSource,
		"TagWidth":       resolved.TagWidthSource,
	} {
		if source != "default" {
			t.Errorf("%sSource = %q, want default", name, source)
		}
	}
}

func TestResolveConfig_PriorityOrder(t *testing.T) {
	tests := []struct {
		name               string
		cliFlags           CliFlags
		envVars            map[string]string
		wantHideTimestamps bool
		wantHideSource     string
		wantMinLevel       logcat.Level
		wantMinLevelSource string
	}{
		{
			name: "CLI hide-timestamps beats env",
			cliFlags: CliFlags{
				HideTimestamps:    true,
				HideTimestampsSet: true,
			},
			envVars:            map[string]string{"LCAT_HIDE_TIMESTAMPS": "false"},
			wantHideTimestamps: true,
			wantHideSource:     "cli",
		},
		{
			name:               "env hide-timestamps beats default",
			envVars:            map[string]string{"LCAT_HIDE_TIMESTAMPS": "1"},
			wantHideTimestamps: true,
			wantHideSource:     "env",
		},
		{
			name: "CLI min-level beats env",
			cliFlags: CliFlags{
				MinLevel:    "E",
				MinLevelSet: true,
			},
			envVars:            map[string]string{"LCAT_MIN_LEVEL": "W"},
			wantMinLevel:       logcat.LevelError,
			wantMinLevelSource: "cli",
		},
		{
			name:               "env min-level beats default",
			envVars:            map[string]string{"LCAT_MIN_LEVEL": "warn"},
			wantMinLevel:       logcat.LevelWarn,
			wantMinLevelSource: "env",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfig(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			resolved, err := ResolveConfig(tt.cliFlags)
			if err != nil {
				t.Fatalf("ResolveConfig() error = %v", err)
			}

			if resolved.HideTimestamps != tt.wantHideTimestamps {
				t.Errorf("HideTimestamps = %v, want %v", resolved.HideTimestamps, tt.wantHideTimestamps)
			}
			if tt.wantHideSource != "" && resolved.HideTimestampsSource != tt.wantHideSource {
				t.Errorf("HideTimestampsSource = %q, want %q", resolved.HideTimestampsSource, tt.wantHideSource)
			}
			if resolved.MinLevel != tt.wantMinLevel {
				t.Errorf("MinLevel = %v, want %v", resolved.MinLevel, tt.wantMinLevel)
			}
			if tt.wantMinLevelSource != "" && resolved.MinLevelSource != tt.wantMinLevelSource {
				t.Errorf("MinLevelSource = %q, want %q", resolved.MinLevelSource, tt.wantMinLevelSource)
			}
		})
	}
}

func TestResolveConfig_ColorPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		cliFlags   CliFlags
		envVars    map[string]string
		fileYAML   string
		wantColor  string
		wantSource string
	}{
		{
			name:       "NO_COLOR lowers auto to never",
			envVars:    map[string]string{"NO_COLOR": "1"},
			wantColor:  "never",
			wantSource: "env",
		},
		{
			name:       "LCAT_NO_COLOR lowers auto to never",
			envVars:    map[string]string{"LCAT_NO_COLOR": "true"},
			wantColor:  "never",
			wantSource: "env",
		},
		{
			name: "explicit CLI always survives NO_COLOR",
			cliFlags: CliFlags{
				Color:    "always",
				ColorSet: true,
			},
			envVars:    map[string]string{"NO_COLOR": "1"},
			wantColor:  "always",
			wantSource: "cli",
		},
		{
			name:       "explicit file always survives NO_COLOR",
			envVars:    map[string]string{"NO_COLOR": "1"},
			fileYAML:   "color: always\n",
			wantColor:  "always",
			wantSource: "file",
		},
		{
			name: "CLI never wins outright",
			cliFlags: CliFlags{
				Color:    "never",
				ColorSet: true,
			},
			wantColor:  "never",
			wantSource: "cli",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfig(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}
			if tt.fileYAML != "" {
				if err := os.WriteFile(configFileName, []byte(tt.fileYAML), 0o600); err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
			}

			resolved, err := ResolveConfig(tt.cliFlags)
			if err != nil {
				t.Fatalf("ResolveConfig() error = %v", err)
			}

			if resolved.Color != tt.wantColor {
				t.Errorf("Color = %q, want %q", resolved.Color, tt.wantColor)
			}
			if resolved.ColorSource != tt.wantSource {
				t.Errorf("ColorSource = %q, want %q", resolved.ColorSource, tt.wantSource)
			}
		})
	}
}

func TestResolveConfig_FileValuesApply_When_NoOverrides(t *testing.T) {
	isolateConfig(t)

	yaml := "hide_timestamps: true\ntag_width: 30\nmin_level: W\n"
	if err := os.WriteFile(configFileName, []byte(yaml), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	resolved, err := ResolveConfig(CliFlags{})
	if err != nil {
		t.Fatalf("ResolveConfig() error = %v", err)
	}

	if !resolved.HideTimestamps {
		t.Error("HideTimestamps not taken from file")
	}
	if resolved.TagWidth != 30 {
		t.Errorf("TagWidth = %d, want 30", resolved.TagWidth)
	}
	if resolved.MinLevel != logcat.LevelWarn {
		t.Errorf("MinLevel = %v, want %v", resolved.MinLevel, logcat.LevelWarn)
	}
	if resolved.MinLevelSource != "file" {
		t.Errorf("MinLevelSource = %q, want file", resolved.MinLevelSource)
	}
}

func TestResolveConfig_EnvMinLevelBeatsFile(t *testing.T) {
	isolateConfig(t)

	if err := os.WriteFile(configFileName, []byte("min_level: W\n"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("LCAT_MIN_LEVEL", "E")

	resolved, err := ResolveConfig(CliFlags{})
	if err != nil {
		t.Fatalf("ResolveConfig() error = %v", err)
	}

	if resolved.MinLevel != logcat.LevelError {
		t.Errorf("MinLevel = %v, want %v", resolved.MinLevel, logcat.LevelError)
	}
	if resolved.MinLevelSource != "env" {
		t.Errorf("MinLevelSource = %q, want env", resolved.MinLevelSource)
	}
}

func TestResolveConfig_EnablesDebug_When_EnvSet(t *testing.T) {
	isolateConfig(t)
	t.Setenv("LCAT_DEBUG", "1")

	resolved, err := ResolveConfig(CliFlags{})
	if err != nil {
		t.Fatalf("ResolveConfig() error = %v", err)
	}
	if !resolved.Debug {
		t.Error("LCAT_DEBUG should enable debug logging")
	}
}

func TestResolveConfig_Validation(t *testing.T) {
	tests := []struct {
		name     string
		cliFlags CliFlags
		wantErr  string
	}{
		{
			name: "valid config",
			cliFlags: CliFlags{
				Color:    "always",
				ColorSet: true,
			},
		},
		{
			name: "invalid color value",
			cliFlags: CliFlags{
				Color:    "sometimes",
				ColorSet: true,
			},
			wantErr: "invalid color value",
		},
		{
			name: "non-positive tag width",
			cliFlags: CliFlags{
				TagWidth:    -4,
				TagWidthSet: true,
			},
			wantErr: "tag_width must be positive",
		},
		{
			name: "unknown minimum level",
			cliFlags: CliFlags{
				MinLevel:    "Q",
				MinLevelSet: true,
			},
			wantErr: "config validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfig(t)

			_, err := ResolveConfig(tt.cliFlags)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ResolveConfig() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ResolveConfig() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}
