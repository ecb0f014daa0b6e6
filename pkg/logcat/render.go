package logcat

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const (
	// DefaultTagWidth is the width of the tag column in cells.
	DefaultTagWidth = 23

	timestampWidth    = 12 // len("15:44:41.704")
	fallbackTermWidth = 80
)

// RenderOptions configures a Renderer.
type RenderOptions struct {
	Theme Theme

	// Tags supplies per-tag styles. A fresh registry is created when nil.
	Tags *TagColors

	// Width reports the terminal width in cells. It is queried for every
	// record so resizes take effect mid-stream. Nil or non-positive values
	// fall back to 80.
	Width func() int

	// TagWidth is the tag column width in cells; 0 means DefaultTagWidth.
	TagWidth int

	// ShowTimestamp enables the leading timestamp column.
	ShowTimestamp bool

	// Margin is the number of leading spaces on every row.
	Margin int
}

// Renderer formats records as aligned rows. It owns the presentation state a
// stream accumulates: the tag color registry and the previously rendered tag,
// which controls suppression of repeated tags. Not safe for concurrent use.
type Renderer struct {
	theme    Theme
	tags     *TagColors
	width    func() int
	tagWidth int
	showTime bool
	margin   string
	lastTag  string
	hasLast  bool
}

// NewRenderer returns a renderer for the given options.
func NewRenderer(opts RenderOptions) *Renderer {
	tags := opts.Tags
	if tags == nil {
		tags = NewTagColors(opts.Theme)
	}
	tagWidth := opts.TagWidth
	if tagWidth <= 0 {
		tagWidth = DefaultTagWidth
	}
	margin := ""
	if opts.Margin > 0 {
		margin = strings.Repeat(" ", opts.Margin)
	}
	return &Renderer{
		theme:    opts.Theme,
		tags:     tags,
		width:    opts.Width,
		tagWidth: tagWidth,
		showTime: opts.ShowTimestamp,
		margin:   margin,
	}
}

// Render formats one record. The result may span multiple lines when the
// message wraps or contains embedded newlines; continuation lines are
// indented to the message start column. The returned string carries no
// trailing newline.
func (r *Renderer) Render(rec Record) string {
	var tsPart string
	tsCells := 0
	if r.showTime {
		tsPart = r.theme.Timestamp.Render(padRight(rec.Timestamp, timestampWidth)) + " "
		tsCells = max(timestampWidth, visualWidth(rec.Timestamp)) + 1
	}

	tagPart, tagCells := r.tagColumn(rec.Tag)
	badgeText := r.badgeText(rec)
	badge := r.theme.BadgeFor(rec.Level).Render(badgeText)

	prefixCells := len(r.margin) + tsCells + tagCells + 1 + visualWidth(badgeText) + 1
	available := r.termWidth() - prefixCells
	segments := wrapMessage(rec.Message, available)

	textStyle := r.theme.TextFor(rec.Level)
	indent := strings.Repeat(" ", prefixCells)

	var b strings.Builder
	for i, seg := range segments {
		if i == 0 {
			b.WriteString(r.margin)
			b.WriteString(tsPart)
			b.WriteString(tagPart)
			b.WriteString(" ")
			b.WriteString(badge)
			b.WriteString(" ")
		} else {
			b.WriteString("\n")
			b.WriteString(indent)
		}
		if seg != "" {
			b.WriteString(textStyle.Render(seg))
		}
	}
	return b.String()
}

// tagColumn renders the right-aligned tag cell. When the tag matches the
// immediately previous rendered tag it is replaced by an equally wide blank
// run so repeated tags read as one block without shifting the layout.
func (r *Renderer) tagColumn(tag string) (string, int) {
	cells := max(r.tagWidth, visualWidth(tag))
	style := r.tags.StyleFor(tag)
	if r.hasLast && tag == r.lastTag {
		return style.Render(strings.Repeat(" ", cells)), cells
	}
	r.lastTag = tag
	r.hasLast = true
	return style.Render(padLeft(tag, r.tagWidth)), cells
}

// badgeText returns the three-cell priority badge text. Unknown levels show
// the first character of the raw priority token so malformed input stays
// visible.
func (r *Renderer) badgeText(rec Record) string {
	code := rec.Level.Code()
	if rec.Level == LevelUnknown && rec.RawLevel != "" {
		first, _ := utf8.DecodeRuneInString(rec.RawLevel)
		code = string(first)
	}
	return " " + code + " "
}

func (r *Renderer) termWidth() int {
	if r.width == nil {
		return fallbackTermWidth
	}
	if w := r.width(); w > 0 {
		return w
	}
	return fallbackTermWidth
}

// wrapMessage splits msg at embedded newlines, then wraps each part to the
// given cell budget. A non-positive budget disables wrapping. The empty
// message yields a single empty segment so the caller still emits a row.
func wrapMessage(msg string, available int) []string {
	parts := strings.Split(msg, "\n")
	if available <= 0 {
		return parts
	}
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, wrapPart(part, available)...)
	}
	return out
}

func wrapPart(s string, limit int) []string {
	var out []string
	for visualWidth(s) > limit {
		head, rest := breakAt(s, limit)
		out = append(out, head)
		if rest == "" {
			return out
		}
		s = rest
	}
	return append(out, s)
}

// breakAt splits s at the last space within the first limit cells, consuming
// the space. When no space falls inside the window it hard-breaks at the
// limit, always advancing by at least one rune.
func breakAt(s string, limit int) (string, string) {
	hard := len(s)
	lastSpace := -1
	cells := 0
	for i, r := range s {
		w := runewidth.RuneWidth(r)
		if cells+w > limit {
			hard = i
			break
		}
		if r == ' ' {
			lastSpace = i
		}
		cells += w
	}
	if lastSpace >= 0 {
		return s[:lastSpace], s[lastSpace+1:]
	}
	if hard == 0 {
		_, size := utf8.DecodeRuneInString(s)
		hard = size
	}
	return s[:hard], s[hard:]
}

// visualWidth returns the display width of a string in terminal cells.
// go-runewidth handles East Asian wide characters and emoji that occupy two
// cells.
func visualWidth(s string) int {
	return runewidth.StringWidth(s)
}

func padRight(s string, width int) string {
	gap := width - visualWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func padLeft(s string, width int) string {
	gap := width - visualWidth(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}
