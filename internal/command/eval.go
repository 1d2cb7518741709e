package command

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/adhocteam/scaffold/internal/arith"
)

// Eval evaluates text and writes the result to w. Parsing itself cannot be
// interrupted, so it runs on its own goroutine and is abandoned if ctx is
// done or timeout, when positive, elapses first.
func Eval(ctx context.Context, w io.Writer, text string, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("evaluating: %w", err)
	}

	type result struct {
		value float64
		err   error
	}
	done := make(chan result, 1)
	go func() {
		e, err := arith.Parse(text)
		if err != nil {
			done <- result{err: err}
			return
		}
		v, err := arith.Eval(e)
		done <- result{value: v, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return r.err
		}
		_, err := fmt.Fprintln(w, strconv.FormatFloat(r.value, 'g', -1, 64))
		return err
	case <-ctx.Done():
		return fmt.Errorf("evaluating: %w", ctx.Err())
	}
}

// EvalFile evaluates the contents of file.
func EvalFile(ctx context.Context, w io.Writer, file string, timeout time.Duration) error {
	text, err := readSource(file)
	if err != nil {
		return err
	}
	if err := Eval(ctx, w, text, timeout); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	return nil
}
