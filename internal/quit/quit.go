// Package quit cancels a context when the user presses a quit key on the
// terminal.
package quit

import (
	"context"
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrRequested is the cancellation cause recorded when a quit key is
// pressed. It distinguishes a deliberate quit from an interrupt, so callers
// can exit cleanly instead of reporting a canceled stream.
var ErrRequested = errors.New("quit requested")

// Watch puts tty into raw mode and watches for q, Q or Ctrl-C, canceling
// the returned context with ErrRequested when one arrives. The returned
// stop function restores the terminal state and must run before the process
// exits. The watcher goroutine holds its read on the tty until the process
// ends.
func Watch(ctx context.Context, tty *os.File) (context.Context, func(), error) {
	fd := int(tty.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, err
	}
	ctx, cancel := context.WithCancelCause(ctx)
	go watch(tty, cancel)
	stop := func() {
		cancel(nil)
		_ = term.Restore(fd, oldState)
	}
	return ctx, stop, nil
}

func watch(r io.Reader, cancel context.CancelCauseFunc) {
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if err != nil {
			return
		}
		if n > 0 && isQuitKey(buf[0]) {
			cancel(ErrRequested)
			return
		}
	}
}

// isQuitKey reports whether b requests shutdown. Raw mode disables signal
// generation, so Ctrl-C arrives here as a plain byte instead of SIGINT.
func isQuitKey(b byte) bool {
	switch b {
	case 'q', 'Q', 0x03:
		return true
	}
	return false
}
