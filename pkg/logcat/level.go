// Package logcat parses Android logcat lines and renders them as aligned,
// colorized terminal rows.
package logcat

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Level is the severity of a logcat record, ordered from most verbose to most
// severe. LevelUnknown sorts below everything and is never filtered out.
type Level int

const (
	LevelUnknown Level = iota
	LevelVerbose
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// levelCodes maps the single-character priority field of a logcat line to a
// Level. The mapping is case-sensitive: logcat emits upper-case codes, and a
// lower-case "v" is some other format's artifact, not Verbose.
var levelCodes = map[string]Level{
	"V": LevelVerbose,
	"D": LevelDebug,
	"I": LevelInfo,
	"W": LevelWarn,
	"E": LevelError,
	"F": LevelFatal,
}

var levelNames = map[Level]string{
	LevelUnknown: "Unknown",
	LevelVerbose: "Verbose",
	LevelDebug:   "Debug",
	LevelInfo:    "Info",
	LevelWarn:    "Warn",
	LevelError:   "Error",
	LevelFatal:   "Fatal",
}

var namedLevels = map[string]Level{
	"Verbose": LevelVerbose,
	"Debug":   LevelDebug,
	"Info":    LevelInfo,
	"Warn":    LevelWarn,
	"Warning": LevelWarn,
	"Error":   LevelError,
	"Fatal":   LevelFatal,
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "Unknown"
}

// Code returns the single-character logcat priority code for the level.
// Unknown has no code and returns "?".
func (l Level) Code() string {
	for code, level := range levelCodes {
		if level == l {
			return code
		}
	}
	return "?"
}

// Meets reports whether a record at this level should be shown for the given
// minimum. Unknown levels always pass: dropping lines the extractor could not
// classify would silently hide output.
func (l Level) Meets(min Level) bool {
	if l == LevelUnknown {
		return true
	}
	return l >= min
}

// LevelFromToken maps the priority token of a logcat line to a Level.
// Unrecognized tokens map to LevelUnknown rather than failing the line.
func LevelFromToken(tok string) Level {
	if l, ok := levelCodes[tok]; ok {
		return l
	}
	return LevelUnknown
}

// caserWrapper wraps a cases.Caser to allow pointer storage in sync.Pool.
type caserWrapper struct {
	caser cases.Caser
}

// titleCaserPool pools cases.Title instances. cases.Title is not safe for
// concurrent use, so callers borrow an instance instead of sharing one.
var titleCaserPool = sync.Pool{
	New: func() interface{} {
		return &caserWrapper{caser: cases.Title(language.English)}
	},
}

func titleCase(s string) string {
	wrapper, ok := titleCaserPool.Get().(*caserWrapper)
	if !ok || wrapper == nil {
		caser := cases.Title(language.English)
		return caser.String(s)
	}
	defer titleCaserPool.Put(wrapper)
	return wrapper.caser.String(s)
}

// ParseLevel maps a user-supplied level to a Level. It accepts the
// single-letter codes ("W") and the full names ("warn", "WARNING"), both
// case-insensitively. This is the lenient counterpart to LevelFromToken for
// flag and config values.
func ParseLevel(s string) (Level, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return LevelUnknown, fmt.Errorf("empty level")
	}
	if len(trimmed) == 1 {
		if l, ok := levelCodes[strings.ToUpper(trimmed)]; ok {
			return l, nil
		}
		return LevelUnknown, fmt.Errorf("unknown level %q", s)
	}
	if l, ok := namedLevels[titleCase(strings.ToLower(trimmed))]; ok {
		return l, nil
	}
	return LevelUnknown, fmt.Errorf("unknown level %q", s)
}
