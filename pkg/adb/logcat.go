package adb

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// stopTimeout bounds the graceful-shutdown window between SIGTERM and
// SIGKILL.
const stopTimeout = 2 * time.Second

// StartOptions configure a logcat child.
type StartOptions struct {
	// Path is the adb binary; empty means "adb" on PATH.
	Path string

	// PIDs adds one --pid filter per entry. Empty streams every process.
	PIDs []string

	// Filter is a logcat filterspec such as "*:W", appended verbatim when
	// non-empty.
	Filter string

	// Stderr receives the child's stderr line by line. Nil discards it.
	Stderr io.Writer
}

// Source is a running logcat child. Reads come from the child's stdout and
// Close terminates the child, so a Source can be handed directly to a line
// pump that closes its reader on cancellation.
type Source struct {
	cmd       *exec.Cmd
	out       io.ReadCloser
	pump      *errgroup.Group
	closeOnce sync.Once
	closeErr  error
}

// Start spawns adb logcat in its own process group and begins forwarding
// its stderr. Termination is owned by Close, not by a context: shutdown is
// a graceful SIGTERM first, never an immediate kill.
func Start(opts StartOptions) (*Source, error) {
	binary := opts.Path
	if binary == "" {
		binary = "adb"
	}
	args := []string{"logcat"}
	for _, pid := range opts.PIDs {
		args = append(args, "--pid", pid)
	}
	if opts.Filter != "" {
		args = append(args, opts.Filter)
	}

	cmd := exec.Command(binary, args...)
	setProcessGroup(cmd)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "pipe logcat output")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, errors.Wrap(err, "pipe logcat stderr")
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrap(err, "start logcat")
	}
	log.Debug().Str("binary", binary).Strs("args", args).Int("pid", cmd.Process.Pid).Msg("logcat started")

	errOut := opts.Stderr
	if errOut == nil {
		errOut = io.Discard
	}
	pump := new(errgroup.Group)
	pump.Go(func() error {
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
			fmt.Fprintln(errOut, scanner.Text())
		}
		return scanner.Err()
	})

	return &Source{cmd: cmd, out: stdout, pump: pump}, nil
}

func (s *Source) Read(p []byte) (int, error) {
	return s.out.Read(p)
}

// Close terminates the child: SIGTERM to its process group, a bounded wait,
// then SIGKILL, and reaps it. Safe to call more than once.
func (s *Source) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.stop()
	})
	return s.closeErr
}

func (s *Source) stop() error {
	_ = s.out.Close()
	if s.cmd.Process == nil {
		return nil
	}
	_ = killProcessGroup(s.cmd, syscall.SIGTERM)
	done := make(chan error, 1)
	go func() { done <- s.cmd.Wait() }()
	var waitErr error
	select {
	case waitErr = <-done:
	case <-time.After(stopTimeout):
		_ = killProcessGroupWithSIGKILL(s.cmd)
		waitErr = <-done
	}
	if err := s.pump.Wait(); err != nil {
		log.Debug().Err(err).Msg("stderr pump ended")
	}
	log.Debug().AnErr("wait", waitErr).Msg("logcat stopped")
	return nil
}
