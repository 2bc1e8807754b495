package main

import (
	"context"
	"errors"
	"io"
	"io/ioutil"
	"strings"
	"testing"
	"time"

	"github.com/jcorbin/goforth/internal/fileinput"
	"github.com/jcorbin/goforth/internal/flushio"
	"github.com/jcorbin/goforth/internal/logio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

func Test_session(t *testing.T) {
	var (
		log         logio.Logger
		logOut      strings.Builder
		out, script strings.Builder
	)
	log.SetOutput(&logOut)
	sess := session{
		log:        &log,
		out:        flushio.NewWriteFlusher(&out),
		transcript: flushio.NewWriteFlusher(&script),
	}

	src := &fileinput.Input{Queue: []io.Reader{namedReader{strings.NewReader(lines(
		": square dup * ;",
		"3 square",
		"nope",
		"0 /",
		"\t4",
	)), "test.fs"}}}
	require.NoError(t, sess.run(context.Background(), src))

	assert.Equal(t, lines(
		"",
		"9",
		"9",
		"",
		"4",
	), out.String(), "expected stack after each line")

	assert.Equal(t, lines(
		"test.fs:1> : square dup * ;",
		"",
		"test.fs:2> 3 square",
		"9",
		"test.fs:3> nope",
		"9",
		"test.fs:4> 0 /",
		"",
		"test.fs:5> ^I4",
		"4",
	), script.String(), "expected transcript")

	assert.Equal(t, lines(
		`ERROR: test.fs:3: unknown word: "NOPE"`,
		`ERROR: test.fs:4: division by zero: "div"`,
	), logOut.String(), "expected error log")
	assert.Equal(t, 1, log.ExitCode())
}

// blockedInput never produces a line until closed.
type blockedInput struct{ closed chan struct{} }

func (bi blockedInput) ReadLine() (fileinput.Line, error) {
	<-bi.closed
	return fileinput.Line{}, io.EOF
}

func (bi blockedInput) Close() error {
	close(bi.closed)
	return nil
}

func Test_session_timeout(t *testing.T) {
	var log logio.Logger
	sess := session{
		log: &log,
		out: flushio.NewWriteFlusher(ioutil.Discard),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := sess.run(ctx, blockedInput{make(chan struct{})})
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "expected deadline error, got %v", err)
}
