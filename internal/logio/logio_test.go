package logio_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/jcorbin/goforth/internal/logio"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var (
		out strings.Builder
		log logio.Logger
	)
	log.SetOutput(&out)

	log.Printf("", "plain")
	log.Leveledf("TRACE")("> %v", "1 2 +")
	assert.Equal(t, 0, log.ExitCode(), "expected no error exit code yet")

	log.ErrorIf(nil)
	log.ErrorIf(errors.New("stack underflow"))
	assert.Equal(t, 1, log.ExitCode(), "expected error exit code")

	assert.Equal(t, strings.Join([]string{
		"plain",
		"TRACE: > 1 2 +",
		"ERROR: stack underflow",
	}, "\n")+"\n", out.String())
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, io.ErrClosedPipe }

func TestLogger_writeError(t *testing.T) {
	var log logio.Logger
	log.SetOutput(failWriter{})
	log.Printf("INFO", "lost")
	assert.Equal(t, 2, log.ExitCode(), "expected write failure exit code")
}

func TestWriter(t *testing.T) {
	var lines []string
	lw := logio.Writer{Logf: func(mess string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(mess, args...))
	}}

	io.WriteString(&lw, "# Forth Dump\n  sta")
	io.WriteString(&lw, "ck: 1 2\n")
	assert.Equal(t, []string{"# Forth Dump", "  stack: 1 2"}, lines)

	io.WriteString(&lw, "partial")
	assert.NoError(t, lw.Close())
	assert.Equal(t, []string{"# Forth Dump", "  stack: 1 2", "partial"}, lines)
}
