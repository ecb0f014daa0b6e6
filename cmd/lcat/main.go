// Command lcat streams Android logcat output as aligned, colorized rows: a
// timestamp column, a right-aligned tag column colored per tag, a
// background-colored severity badge and the message wrapped to the terminal
// width.
//
// Usage:
//
//	lcat [flags] [package-pattern]
//
// With a package pattern (or an interactive stdin), lcat clears the device
// log buffer, resolves the pattern to process IDs via adb and spawns
// adb logcat filtered to them. With piped stdin and no pattern it reformats
// the pipe instead, so saved logs replay through the same layout:
//
//	adb logcat -d | lcat
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/dkoosis/lcat/internal/config"
	"github.com/dkoosis/lcat/internal/quit"
	"github.com/dkoosis/lcat/internal/version"
	"github.com/dkoosis/lcat/pkg/adb"
	"github.com/dkoosis/lcat/pkg/logcat"
	"github.com/dkoosis/lcat/pkg/stream"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lcat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: lcat [flags] [package-pattern]")
		fs.PrintDefaults()
	}

	hideTimestamps := fs.Bool("hide-timestamps", false, "omit the timestamp column")
	minLevel := fs.String("min-level", "", "lowest level to show: V, D, I, W, E, F or a name like warn")
	tagWidth := fs.Int("tag-width", logcat.DefaultTagWidth, "tag column width in cells")
	width := fs.Int("width", 0, "wrap width in cells (0 = terminal width)")
	colorMode := fs.String("color", "", "color mode: auto, always or never")
	clearBuffer := fs.Bool("clear", true, "clear the device log buffer before streaming")
	adbPath := fs.String("adb", "", "adb binary to use (default \"adb\" on PATH)")
	debug := fs.Bool("debug", false, "log diagnostics to stderr")
	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return exitOK
	}

	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "Error: at most one package pattern may be given")
		fs.Usage()
		return exitUsage
	}

	cliFlags := config.CliFlags{
		HideTimestamps: *hideTimestamps,
		MinLevel:       *minLevel,
		TagWidth:       *tagWidth,
		Color:          *colorMode,
		Debug:          *debug,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "hide-timestamps":
			cliFlags.HideTimestampsSet = true
		case "min-level":
			cliFlags.MinLevelSet = true
		case "tag-width":
			cliFlags.TagWidthSet = true
		case "color":
			cliFlags.ColorSet = true
		case "debug":
			cliFlags.DebugSet = true
		}
	})

	cfg, err := config.ResolveConfig(cliFlags)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	configureLogging(cfg.Debug, stderr)
	log.Debug().
		Str("color", cfg.Color).Str("color_source", cfg.ColorSource).
		Bool("hide_timestamps", cfg.HideTimestamps).
		Int("tag_width", cfg.TagWidth).
		Str("min_level", cfg.MinLevel.String()).
		Msg("configuration resolved")

	renderer := logcat.NewRenderer(logcat.RenderOptions{
		Theme:         selectTheme(cfg.Color),
		Width:         widthFunc(stdout, *width),
		TagWidth:      cfg.TagWidth,
		ShowTimestamp: !cfg.HideTimestamps,
	})
	pipeline := logcat.NewPipeline(renderer, cfg.MinLevel)

	pattern := fs.Arg(0)
	if pattern == "" && !isTTY(stdin) {
		return runStdin(stdin, stdout, stderr, pipeline)
	}
	return runDevice(deviceOptions{
		pattern: pattern,
		adbPath: *adbPath,
		clear:   *clearBuffer,
		filter:  deviceFilter(cfg.MinLevel),
	}, stdin, stdout, stderr, pipeline)
}

// runStdin reformats an already-open stream, ending at EOF or on interrupt.
func runStdin(stdin io.Reader, stdout, stderr io.Writer, pipeline *logcat.Pipeline) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := stream.Run(ctx, stdin, stdout, pipeline.Transform)
	return exitCode(ctx, err, stderr)
}

// deviceOptions carry the adb-mode knobs from flag parsing to runDevice.
type deviceOptions struct {
	pattern string
	adbPath string
	clear   bool
	filter  string
}

// runDevice clears the device buffer, resolves the pattern to PIDs and
// streams a spawned adb logcat until it ends or the user quits.
func runDevice(opts deviceOptions, stdin io.Reader, stdout, stderr io.Writer, pipeline *logcat.Pipeline) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := adb.CommandRunner{Path: opts.adbPath}
	if opts.clear {
		if err := adb.Clear(ctx, runner); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitFailure
		}
	}

	var pids []string
	if opts.pattern != "" {
		var err error
		pids, err = adb.ResolvePIDs(ctx, runner, opts.pattern)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitFailure
		}
		if len(pids) == 0 {
			fmt.Fprintf(stdout, "No matching processes found for pattern: %s\n", opts.pattern)
			return exitOK
		}
	}

	src, err := adb.Start(adb.StartOptions{
		Path:   opts.adbPath,
		PIDs:   pids,
		Filter: opts.filter,
		Stderr: stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	defer func() { _ = src.Close() }()

	out := stdout
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		qctx, restore, qerr := quit.Watch(ctx, f)
		if qerr == nil {
			ctx = qctx
			defer restore()
			// Raw mode turns off output post-processing on the shared
			// terminal, so bare newlines need their carriage returns back.
			out = crlfWriter{w: stdout}
		}
	}

	err = stream.Run(ctx, src, out, pipeline.Transform)
	return exitCode(ctx, err, stderr)
}

// exitCode maps a stream outcome to the process exit code: 0 for EOF or a
// deliberate quit, 130 for an interrupt, 1 for anything else.
func exitCode(ctx context.Context, err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}
	if errors.Is(err, context.Canceled) {
		if errors.Is(context.Cause(ctx), quit.ErrRequested) {
			return exitOK
		}
		return exitInterrupted
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitFailure
}

// configureLogging wires the package-global zerolog logger: silent by
// default, console output on stderr when debugging.
func configureLogging(debug bool, stderr io.Writer) {
	if !debug {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		log.Logger = zerolog.New(io.Discard)
		return
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()
}

// selectTheme picks the theme for the resolved color mode. lipgloss's
// default profile detection strips styles when stdout is not a terminal;
// the profile is forced to ANSI-256 so pipes and pagers still receive the
// escape sequences.
func selectTheme(colorMode string) logcat.Theme {
	if colorMode == "never" {
		return logcat.MonoTheme()
	}
	lipgloss.SetColorProfile(termenv.ANSI256)
	return logcat.DefaultTheme()
}

// deviceFilter narrows the spawned logcat with a filterspec so filtered
// levels never cross the wire. Client-side filtering still applies either
// way.
func deviceFilter(minLevel logcat.Level) string {
	if minLevel == logcat.LevelUnknown {
		return ""
	}
	return "*:" + minLevel.Code()
}

// widthFunc returns the per-render terminal width source: a fixed override,
// the live size of a terminal stdout, or zero to let the renderer fall back
// to its default.
func widthFunc(stdout io.Writer, override int) func() int {
	if override > 0 {
		return func() int { return override }
	}
	f, ok := stdout.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return func() int { return 0 }
	}
	fd := int(f.Fd())
	return func() int {
		w, _, err := term.GetSize(fd)
		if err != nil {
			return 0
		}
		return w
	}
}

func isTTY(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// crlfWriter rewrites LF to CRLF for raw-mode terminals.
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			n, err := c.w.Write(p)
			return written + n, err
		}
		if i > 0 {
			n, err := c.w.Write(p[:i])
			written += n
			if err != nil {
				return written, err
			}
		}
		if _, err := c.w.Write([]byte("\r\n")); err != nil {
			return written, err
		}
		written++
		p = p[i+1:]
	}
	return written, nil
}
