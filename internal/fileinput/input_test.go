package fileinput_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jcorbin/goforth/internal/fileinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedReader struct {
	io.Reader
	name   string
	closed bool
}

func (nr *namedReader) Name() string { return nr.name }
func (nr *namedReader) Close() error { nr.closed = true; return nil }

func TestInput(t *testing.T) {
	a := &namedReader{Reader: strings.NewReader(": square dup * ;\r\n3 square\n"), name: "a.fs"}
	b := &namedReader{Reader: strings.NewReader("\n1 2 +"), name: "b.fs"}
	in := fileinput.Input{Queue: []io.Reader{a, b}}

	var got []string
	for {
		line, err := in.ReadLine()
		if err == io.EOF {
			break
		}
		require.NoError(t, err, "unexpected read error")
		got = append(got, line.String())
	}
	assert.Equal(t, []string{
		`a.fs:1 ": square dup * ;"`,
		`a.fs:2 "3 square"`,
		`b.fs:1 ""`,
		`b.fs:2 "1 2 +"`,
	}, got)
	assert.True(t, a.closed, "expected first stream closed")
	assert.True(t, b.closed, "expected second stream closed")

	_, err := in.ReadLine()
	assert.Equal(t, io.EOF, err, "expected EOF to stick")
}

func TestInput_unnamed(t *testing.T) {
	in := fileinput.Input{Queue: []io.Reader{strings.NewReader("dup")}}
	line, err := in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "<unnamed *strings.Reader>:1", line.Location.String())
	assert.NoError(t, in.Close())
}

func TestInput_closeQueued(t *testing.T) {
	a := &namedReader{Reader: strings.NewReader("1\n"), name: "a"}
	b := &namedReader{Reader: strings.NewReader("2\n"), name: "b"}
	in := fileinput.Input{Queue: []io.Reader{a, b}}
	_, err := in.ReadLine()
	require.NoError(t, err)
	require.NoError(t, in.Close())
	assert.True(t, a.closed, "expected current stream closed")
	assert.True(t, b.closed, "expected queued stream closed")
}
