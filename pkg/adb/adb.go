// Package adb queries and launches the Android Debug Bridge: resolving
// package patterns to process IDs and spawning the logcat child whose stdout
// becomes the log stream.
package adb

import (
	"context"
	"os/exec"

	"github.com/pkg/errors"
)

// Runner executes one adb invocation to completion. The indirection keeps
// unit tests off the device.
type Runner interface {
	Output(ctx context.Context, args ...string) ([]byte, error)
}

// CommandRunner runs the adb binary found on PATH, or at Path when set.
type CommandRunner struct {
	Path string
}

func (c CommandRunner) Output(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.binary(), args...)
	return cmd.Output()
}

func (c CommandRunner) binary() string {
	if c.Path != "" {
		return c.Path
	}
	return "adb"
}

// Clear empties the device-side log buffer so the stream starts at now
// rather than replaying history.
func Clear(ctx context.Context, runner Runner) error {
	if _, err := runner.Output(ctx, "logcat", "-c"); err != nil {
		return errors.Wrap(err, "clear logcat buffer")
	}
	return nil
}
