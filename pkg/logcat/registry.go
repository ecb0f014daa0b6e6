package logcat

import "github.com/charmbracelet/lipgloss"

// TagColors assigns each distinct tag a stable palette style in first-seen
// order. Assignments are never evicted; once the palette is exhausted the
// counter wraps around and distinct tags share a style. Not safe for
// concurrent use: rendering is strictly sequential.
type TagColors struct {
	palette []lipgloss.Style
	indexes map[string]int
	next    int
}

// NewTagColors returns a registry drawing from the theme's tag palette.
func NewTagColors(theme Theme) *TagColors {
	palette := theme.TagPalette
	if len(palette) == 0 {
		palette = []lipgloss.Style{lipgloss.NewStyle()}
	}
	return &TagColors{
		palette: palette,
		indexes: make(map[string]int),
	}
}

// StyleFor returns the style assigned to tag, assigning the next palette
// entry when the tag is seen for the first time. The same tag maps to the
// same style for the lifetime of the registry.
func (tc *TagColors) StyleFor(tag string) lipgloss.Style {
	idx, ok := tc.indexes[tag]
	if !ok {
		idx = tc.next % len(tc.palette)
		tc.indexes[tag] = idx
		tc.next++
	}
	return tc.palette[idx]
}

// Len reports how many distinct tags have been assigned styles.
func (tc *TagColors) Len() int {
	return len(tc.indexes)
}
