// Command forth evaluates lines of FORTH-like input, printing the stack
// after each line.
//
// Usage:
//
//	forth [flags] [FILE...]
//
// Files are read in order; with none given, standard input is read, with line
// editing when it is a terminal. Errors are reported on standard error, and
// do not stop evaluation of later lines; the exit status is non-zero if any
// line failed.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"time"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"

	forth "github.com/jcorbin/goforth"
	"github.com/jcorbin/goforth/internal/fileinput"
	"github.com/jcorbin/goforth/internal/flushio"
	"github.com/jcorbin/goforth/internal/logio"
)

func main() {
	ctx := context.Background()

	var (
		timeout    time.Duration
		trace      bool
		dump       bool
		prompt     string
		history    string
		transcript string
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "dump the stack and vocabulary at exit")
	flag.StringVar(&prompt, "prompt", "> ", "interactive prompt")
	flag.StringVar(&history, "history", "", "interactive history file")
	flag.StringVar(&transcript, "transcript", "", "also record input and output into the named file")
	flag.Parse()

	var log logio.Logger
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	sess := session{
		log: &log,
		out: flushio.NewWriteFlusher(os.Stdout),
	}
	if trace {
		sess.opts = append(sess.opts, forth.WithLogf(log.Leveledf("TRACE")))
	}
	if transcript != "" {
		f, err := os.Create(transcript)
		if err != nil {
			log.ErrorIf(errors.Wrap(err, "transcript"))
			return
		}
		defer func() { log.ErrorIf(f.Close()) }()
		sess.transcript = flushio.NewWriteFlusher(f)
	}

	src, err := openInput(flag.Args(), prompt, history)
	if err != nil {
		log.ErrorIf(err)
		return
	}

	log.ErrorIf(sess.run(ctx, src))
	if dump {
		lw := logio.Writer{Logf: log.Leveledf("DUMP")}
		log.ErrorIf(sess.interp.Dump(&lw))
		log.ErrorIf(lw.Close())
	}
}

// lineSource is implemented by fileinput.Input and termInput.
type lineSource interface {
	ReadLine() (fileinput.Line, error)
	Close() error
}

func openInput(args []string, prompt, history string) (lineSource, error) {
	if len(args) == 0 {
		if readline.IsTerminal(int(os.Stdin.Fd())) {
			return newTermInput(prompt, history)
		}
		return &fileinput.Input{Queue: []io.Reader{os.Stdin}}, nil
	}

	var in fileinput.Input
	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			in.Close()
			return nil, errors.Wrap(err, "input")
		}
		in.Queue = append(in.Queue, f)
	}
	return &in, nil
}

// termInput reads lines interactively, with editing and history.
type termInput struct {
	rl  *readline.Instance
	loc fileinput.Location
}

func newTermInput(prompt, history string) (*termInput, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       history,
		InterruptPrompt:   "^C",
		EOFPrompt:         "bye",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "readline")
	}
	return &termInput{rl: rl, loc: fileinput.Location{Name: "<stdin>"}}, nil
}

func (ti *termInput) ReadLine() (fileinput.Line, error) {
	for {
		text, err := ti.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err != nil {
			return fileinput.Line{}, err
		}
		ti.loc.Line++
		return fileinput.Line{Location: ti.loc, Text: text}, nil
	}
}

func (ti *termInput) Close() error { return ti.rl.Close() }
