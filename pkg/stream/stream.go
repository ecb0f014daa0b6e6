// Package stream pumps lines from a reader through a transform to a writer.
package stream

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// TransformFunc rewrites one input line. keep reports whether the line
// should be written at all.
type TransformFunc func(line string) (out string, keep bool)

type scanResult struct {
	line string
	err  error
}

// Run copies r to w line by line, applying transform to each line as it
// arrives. Lines are processed strictly in order with no batching: each
// line is written before the next one is read, so output keeps pace with a
// live source.
//
// Run returns nil once r is exhausted. When ctx is canceled, r is closed if
// it implements io.Closer to unblock the pending read, and ctx.Err() is
// returned. For readers that cannot be closed here, cancellation takes
// effect after the next line arrives; the caller should cancel ctx when
// abandoning the stream so the reader goroutine is released.
func Run(ctx context.Context, r io.Reader, w io.Writer, transform TransformFunc) error {
	lines := make(chan scanResult)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			res := scanResult{line: string(scanner.Bytes())}
			select {
			case lines <- res:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case lines <- scanResult{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			if c, ok := r.(io.Closer); ok {
				_ = c.Close()
			}
			return ctx.Err()
		case res, ok := <-lines:
			if !ok {
				return nil
			}
			if res.err != nil {
				return fmt.Errorf("read input: %w", res.err)
			}
			out, keep := transform(res.line)
			if !keep {
				continue
			}
			if _, err := fmt.Fprintln(w, out); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}
}
