package adb

import (
	"context"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// CompilePattern translates a shell-style package pattern such as
// "com.example.*" into a regular expression: dots match literally and "*"
// matches any run of characters. The expression is unanchored.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	expr := strings.ReplaceAll(pattern, ".", `\.`)
	expr = strings.ReplaceAll(expr, "*", ".*")
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pattern %q", pattern)
	}
	return re, nil
}

// ResolvePIDs lists the device's processes and returns the PID of every
// entry the pattern matches. The match runs over the whole ps line, so both
// package names and binary paths select a process. An empty result is not an
// error; callers report it and skip the stream.
func ResolvePIDs(ctx context.Context, runner Runner, pattern string) ([]string, error) {
	re, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}
	out, err := runner.Output(ctx, "shell", "ps", "-A")
	if err != nil {
		return nil, errors.Wrap(err, "list device processes")
	}
	var pids []string
	for _, line := range strings.Split(string(out), "\n") {
		if !re.MatchString(line) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 1 {
			pids = append(pids, fields[1])
		}
	}
	log.Debug().Str("pattern", pattern).Int("matches", len(pids)).Msg("resolved device processes")
	return pids, nil
}
