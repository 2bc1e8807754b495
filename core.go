package forth

import "fmt"

// Interp is a single-user Forth-like interpreter: a vocabulary of words and
// a stack of values, both of which persist across calls to Eval.
//
// An Interp is not safe for concurrent use.
type Interp struct {
	logging

	vocab vocabulary
	stack stack
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
