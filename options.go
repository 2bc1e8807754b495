package forth

// Option configures an Interp under New.
type Option interface{ apply(in *Interp) }

// Options combines any number of options into one; nil options are ignored.
func Options(opts ...Option) Option {
	var all options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			all = append(all, impl...)
		default:
			all = append(all, impl)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return all
	}
}

type options []Option

func (opts options) apply(in *Interp) {
	for _, opt := range opts {
		opt.apply(in)
	}
}

// WithLogf enables trace logging through the given printf-style function.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithStack pushes the given values, bottom first, onto the stack.
func WithStack(values ...Value) Option { return withStack(values) }

type withLogfn func(mess string, args ...interface{})
type withStack []Value

func (logfn withLogfn) apply(in *Interp) {
	in.logfn = logfn
}

func (values withStack) apply(in *Interp) {
	in.stack.push(values...)
}
