package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	forth "github.com/jcorbin/goforth"
	"github.com/jcorbin/goforth/internal/fileinput"
	"github.com/jcorbin/goforth/internal/flushio"
	"github.com/jcorbin/goforth/internal/logio"
	"github.com/jcorbin/goforth/internal/panicerr"
	"github.com/jcorbin/goforth/internal/runeio"
)

// session feeds lines from a source through one interpreter.
//
// Reading happens on its own goroutine so that a blocked read does not hold
// up a timeout; the interpreter itself is only used by the evaluating
// goroutine.
type session struct {
	log        *logio.Logger
	out        flushio.WriteFlusher
	transcript flushio.WriteFlusher
	opts       []forth.Option

	interp *forth.Interp
}

func (sess *session) run(ctx context.Context, src lineSource) error {
	if sess.interp == nil {
		sess.interp = forth.New(sess.opts...)
	}

	eg, ctx := errgroup.WithContext(ctx)
	lines := make(chan fileinput.Line)

	eg.Go(func() error {
		defer close(lines)
		for {
			line, err := src.ReadLine()
			if err == io.EOF {
				return nil
			} else if err != nil {
				return errors.Wrap(err, "read")
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				return nil
			}
		}
	})

	eg.Go(func() (rerr error) {
		defer func() {
			// unblock any pending read
			if cerr := src.Close(); rerr == nil {
				rerr = cerr
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case line, ok := <-lines:
				if !ok {
					return nil
				}
				if err := sess.eval(line); err != nil {
					return err
				}
			}
		}
	})

	return eg.Wait()
}

// eval evaluates one line, reporting any evaluation error to the log, and
// writes the resulting stack to the output. Only output errors are returned.
func (sess *session) eval(line fileinput.Line) error {
	out := flushio.WriteFlushers(sess.out, sess.transcript)
	if sess.transcript != nil {
		fmt.Fprintf(sess.transcript, "%v> %s\n", line.Location, runeio.Visible(line.Text))
	}

	err := panicerr.Recover("eval", func() error {
		return sess.interp.Eval(line.Text)
	})
	if panicerr.IsPanic(err) {
		sess.log.Errorf("%v: %+v", line.Location, err)
	} else if err != nil {
		sess.log.Errorf("%v: %v", line.Location, err)
	}

	if _, err := fmt.Fprintln(out, sess.interp.FormatStack()); err != nil {
		return errors.Wrap(err, "write")
	}
	return errors.Wrap(out.Flush(), "flush")
}
