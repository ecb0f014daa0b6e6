// Package config handles configuration loading and merging for lcat.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to
// lowest priority):
//
//  1. CLI flags (-hide-timestamps, -min-level, -tag-width, -color)
//  2. Environment variables (LCAT_HIDE_TIMESTAMPS, LCAT_MIN_LEVEL,
//     LCAT_NO_COLOR, NO_COLOR, LCAT_DEBUG)
//  3. YAML config file (.lcat.yaml in the working directory or
//     ~/.config/lcat/.lcat.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any
// lower-priority values.
//
// # Color Modes
//
//   - auto: colored output unless NO_COLOR (or LCAT_NO_COLOR) is set
//   - always: colored output even when NO_COLOR is set
//   - never: monochrome output
//
// Color mode selects the theme only; whether stdout is a terminal does not
// matter, since downstream pagers and files are expected to receive the
// escape sequences as-is.
package config
