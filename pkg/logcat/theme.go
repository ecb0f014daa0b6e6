package logcat

import "github.com/charmbracelet/lipgloss"

// Theme defines the styles for one rendering mode. Badge styles paint the
// three-cell priority badge, text styles color the message body, and
// TagPalette supplies the rotating per-tag colors handed out by TagColors.
type Theme struct {
	Name string

	BadgeVerbose lipgloss.Style
	BadgeDebug   lipgloss.Style
	BadgeInfo    lipgloss.Style
	BadgeWarn    lipgloss.Style
	BadgeError   lipgloss.Style
	BadgeFatal   lipgloss.Style

	TextVerbose lipgloss.Style
	TextDebug   lipgloss.Style
	TextInfo    lipgloss.Style
	TextWarn    lipgloss.Style
	TextError   lipgloss.Style
	TextFatal   lipgloss.Style

	Timestamp  lipgloss.Style
	TagPalette []lipgloss.Style
}

// BadgeFor returns the badge style for a level. Unknown levels get an empty
// style so the raw priority character renders unstyled.
func (t Theme) BadgeFor(l Level) lipgloss.Style {
	switch l {
	case LevelVerbose:
		return t.BadgeVerbose
	case LevelDebug:
		return t.BadgeDebug
	case LevelInfo:
		return t.BadgeInfo
	case LevelWarn:
		return t.BadgeWarn
	case LevelError:
		return t.BadgeError
	case LevelFatal:
		return t.BadgeFatal
	default:
		return lipgloss.NewStyle()
	}
}

// TextFor returns the message style for a level.
func (t Theme) TextFor(l Level) lipgloss.Style {
	switch l {
	case LevelVerbose:
		return t.TextVerbose
	case LevelDebug:
		return t.TextDebug
	case LevelInfo:
		return t.TextInfo
	case LevelWarn:
		return t.TextWarn
	case LevelError:
		return t.TextError
	case LevelFatal:
		return t.TextFatal
	default:
		return lipgloss.NewStyle()
	}
}

// DefaultTheme returns the colored theme.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",

		BadgeVerbose: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("39")),   // blue
		BadgeDebug:   lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("242")),  // gray
		BadgeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("34")),   // green
		BadgeWarn:    lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214")),  // orange
		BadgeError:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")), // red
		BadgeFatal:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("196")).Bold(true),

		TextVerbose: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		TextDebug:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		TextInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		TextWarn:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		TextError:   lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		TextFatal:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // lighter gray

		TagPalette: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("81")),  // cyan
			lipgloss.NewStyle().Foreground(lipgloss.Color("114")), // green
			lipgloss.NewStyle().Foreground(lipgloss.Color("177")), // orchid
			lipgloss.NewStyle().Foreground(lipgloss.Color("222")), // sand
			lipgloss.NewStyle().Foreground(lipgloss.Color("75")),  // pale blue
			lipgloss.NewStyle().Foreground(lipgloss.Color("209")), // coral
			lipgloss.NewStyle().Foreground(lipgloss.Color("142")), // olive
			lipgloss.NewStyle().Foreground(lipgloss.Color("213")), // pink
			lipgloss.NewStyle().Foreground(lipgloss.Color("109")), // slate
			lipgloss.NewStyle().Foreground(lipgloss.Color("148")), // lime
			lipgloss.NewStyle().Foreground(lipgloss.Color("175")), // rose
			lipgloss.NewStyle().Foreground(lipgloss.Color("117")), // sky
		},
	}
}

// MonoTheme returns a monochrome theme (no colors). The tag palette keeps the
// same number of entries as the default theme so color assignment order is
// identical across themes.
func MonoTheme() Theme {
	palette := make([]lipgloss.Style, len(DefaultTheme().TagPalette))
	for i := range palette {
		palette[i] = lipgloss.NewStyle()
	}
	return Theme{
		Name:         "mono",
		BadgeVerbose: lipgloss.NewStyle(),
		BadgeDebug:   lipgloss.NewStyle(),
		BadgeInfo:    lipgloss.NewStyle(),
		BadgeWarn:    lipgloss.NewStyle(),
		BadgeError:   lipgloss.NewStyle(),
		BadgeFatal:   lipgloss.NewStyle(),
		TextVerbose:  lipgloss.NewStyle(),
		TextDebug:    lipgloss.NewStyle(),
		TextInfo:     lipgloss.NewStyle(),
		TextWarn:     lipgloss.NewStyle(),
		TextError:    lipgloss.NewStyle(),
		TextFatal:    lipgloss.NewStyle(),
		Timestamp:    lipgloss.NewStyle(),
		TagPalette:   palette,
	}
}

