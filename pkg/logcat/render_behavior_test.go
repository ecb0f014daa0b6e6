package logcat

import (
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

// ansiRegex matches ANSI escape codes for stripping.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// forceColorProfile pins lipgloss to ANSI256 so styled output is
// deterministic even when the test binary runs without a terminal.
var colorProfileOnce sync.Once

func forceColorProfile() {
	colorProfileOnce.Do(func() {
		lipgloss.SetColorProfile(termenv.ANSI256)
	})
}

func coloredPipeline(minLevel Level) *Pipeline {
	renderer := NewRenderer(RenderOptions{
		Theme:         DefaultTheme(),
		Width:         fixedWidth(80),
		ShowTimestamp: true,
	})
	return NewPipeline(renderer, minLevel)
}

func TestPipeline_RendersColoredRow_When_LineIsWellFormed(t *testing.T) {
	forceColorProfile()
	t.Parallel()

	pipeline := coloredPipeline(LevelUnknown)

	out, keep := pipeline.Transform("02-03 15:44:41.704  2359  3654 I MyTag: Hello world")

	assert.True(t, keep)
	assert.Contains(t, out, "\x1b[", "styled output should carry escape sequences")
	want := "15:44:41.704 " + strings.Repeat(" ", 18) + "MyTag" + " " + " I " + " " + "Hello world"
	assert.Equal(t, want, stripANSI(out))
}

func TestPipeline_ReturnsRawLine_When_LineIsMalformed(t *testing.T) {
	forceColorProfile()
	t.Parallel()

	pipeline := coloredPipeline(LevelUnknown)
	raw := "--------- beginning of main"

	out, keep := pipeline.Transform(raw)

	assert.True(t, keep)
	assert.Equal(t, raw, out, "unparseable lines pass through untouched")
}

func TestPipeline_DropsRow_When_LevelBelowThreshold(t *testing.T) {
	forceColorProfile()
	t.Parallel()

	pipeline := coloredPipeline(LevelWarn)

	out, keep := pipeline.Transform("02-03 15:44:41.704  2359  3654 I MyTag: quiet")
	assert.False(t, keep)
	assert.Empty(t, out)

	out, keep = pipeline.Transform("02-03 15:44:41.705  2359  3654 E MyTag: loud")
	assert.True(t, keep)
	assert.Contains(t, stripANSI(out), "loud")
}

func TestPipeline_KeepsMalformedLines_When_LevelFilterActive(t *testing.T) {
	forceColorProfile()
	t.Parallel()

	pipeline := coloredPipeline(LevelError)
	raw := "some diagnostic noise from adb"

	out, keep := pipeline.Transform(raw)

	assert.True(t, keep, "level filtering only applies to parsed records")
	assert.Equal(t, raw, out)
}

func TestRenderer_StylesSameTagIdentically_When_TagReappears(t *testing.T) {
	forceColorProfile()
	t.Parallel()

	theme := DefaultTheme()
	renderer := NewRenderer(RenderOptions{Theme: theme, Width: fixedWidth(120)})

	first := renderer.Render(Record{Level: LevelInfo, RawLevel: "I", Tag: "Alpha", Message: "m"})
	second := renderer.Render(Record{Level: LevelInfo, RawLevel: "I", Tag: "Beta", Message: "m"})
	third := renderer.Render(Record{Level: LevelInfo, RawLevel: "I", Tag: "Alpha", Message: "m"})

	styledAlpha := theme.TagPalette[0].Render(padLeft("Alpha", DefaultTagWidth))
	styledBeta := theme.TagPalette[1].Render(padLeft("Beta", DefaultTagWidth))
	assert.Contains(t, first, styledAlpha)
	assert.Contains(t, second, styledBeta)
	assert.Contains(t, third, styledAlpha, "a tag keeps its first-assigned style")
	assert.NotEqual(t, theme.TagPalette[0].Render("x"), theme.TagPalette[1].Render("x"),
		"adjacent palette entries must be visually distinct")
}

func TestRenderer_ColorsMessageByLevel_When_LevelsDiffer(t *testing.T) {
	forceColorProfile()
	t.Parallel()

	theme := DefaultTheme()
	renderer := NewRenderer(RenderOptions{Theme: theme, Width: fixedWidth(120)})

	errRow := renderer.Render(Record{Level: LevelError, RawLevel: "E", Tag: "Crash", Message: "boom"})
	infoRow := renderer.Render(Record{Level: LevelInfo, RawLevel: "I", Tag: "Calm", Message: "fine"})

	assert.Contains(t, errRow, theme.TextFor(LevelError).Render("boom"))
	assert.Contains(t, infoRow, theme.TextFor(LevelInfo).Render("fine"))
}
