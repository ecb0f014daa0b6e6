package logcat

// Pipeline glues extraction, level filtering and rendering into the
// line-transform function consumed by the stream driver.
type Pipeline struct {
	renderer *Renderer
	minLevel Level
}

// NewPipeline returns a pipeline rendering through r. Records below minLevel
// are dropped; LevelUnknown disables filtering entirely.
func NewPipeline(r *Renderer, minLevel Level) *Pipeline {
	return &Pipeline{renderer: r, minLevel: minLevel}
}

// Transform converts one raw input line into its rendered form. keep is
// false when the line falls below the minimum level. Lines that do not parse
// pass through unchanged.
func (p *Pipeline) Transform(line string) (out string, keep bool) {
	rec, ok := Extract(line)
	if !ok {
		return line, true
	}
	if !rec.Level.Meets(p.minLevel) {
		return "", false
	}
	return p.renderer.Render(rec), true
}
