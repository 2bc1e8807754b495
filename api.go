package forth

import "github.com/jcorbin/goforth/internal/runeio"

// New creates an interpreter with only the builtin words defined and an
// empty stack, unless changed by opts.
func New(opts ...Option) *Interp {
	in := Interp{vocab: builtinVocabulary()}
	if opt := Options(opts...); opt != nil {
		opt.apply(&in)
	}
	return &in
}

// Eval parses and runs one line of input.
//
// The returned error matches one of ErrUnknownWord, ErrInvalidWord,
// ErrStackUnderflow, or ErrDivisionByZero under errors.Is. Nothing is rolled
// back on error: words defined and values consumed before the failure point
// remain so, and the interpreter stays usable.
func (in *Interp) Eval(line string) error {
	if in.logfn != nil {
		in.logf(">", "%s", runeio.Visible(line))
		defer in.withLogPrefix("\t")()
	}
	prog, err := in.parse(tokenize(line))
	if err == nil {
		err = in.exec(prog)
	}
	if err != nil {
		in.logf("!", "%v", err)
	}
	return err
}

// Load evaluates each line in order, stopping at the first error, which is
// annotated with its 1-based line number.
func (in *Interp) Load(lines ...string) error {
	for i, line := range lines {
		if err := in.Eval(line); err != nil {
			return lineError{i + 1, err}
		}
	}
	return nil
}

// FormatStack renders the stack bottom to top, separated by single spaces;
// an empty stack renders as "".
func (in *Interp) FormatStack() string {
	return in.stack.String()
}
