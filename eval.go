package forth

import "fmt"

// exec runs prog against the stack, stopping at the first error. Values
// consumed before the error stay consumed.
func (in *Interp) exec(prog items) error {
	for _, it := range prog {
		if in.logfn != nil {
			in.logf("@", "%v -- s:%v", it, in.stack)
		}
		if err := in.step(it); err != nil {
			return wordError{it.String(), err}
		}
	}
	return nil
}

func (in *Interp) step(it item) error {
	switch {
	case it.op == opLiteral:
		in.stack.push(it.val)
		return nil
	case it.op.arithmetic():
		a, b, err := in.stack.pop2()
		if err != nil {
			return err
		}
		val, err := arithmetic(it.op, b, a)
		if err != nil {
			return err
		}
		in.stack.push(val)
		return nil
	case it.op.stackOp():
		return stackOps[it.op-opDup](&in.stack)
	}
	return codeError(it.op)
}

func arithmetic(op opCode, b, a Value) (Value, error) {
	switch op {
	case opAdd:
		return b + a, nil
	case opSub:
		return b - a, nil
	case opMul:
		return b * a, nil
	case opDiv:
		if a == 0 {
			return 0, ErrDivisionByZero
		}
		return b / a, nil
	}
	return 0, codeError(op)
}

// Name   Stack effect
// dup    ( a -- a a )
func dup(st *stack) error {
	a, err := st.peek(0)
	if err == nil {
		st.push(a)
	}
	return err
}

// Name   Stack effect
// drop   ( a -- )
func drop(st *stack) error {
	_, err := st.pop()
	return err
}

// Name   Stack effect
// swap   ( b a -- a b )
func swap(st *stack) error {
	a, b, err := st.pop2()
	if err == nil {
		st.push(a, b)
	}
	return err
}

// Name   Stack effect
// over   ( b a -- b a b )
func over(st *stack) error {
	b, err := st.peek(1)
	if err == nil {
		st.push(b)
	}
	return err
}

var stackOps = [...]func(st *stack) error{
	opDup - opDup:  dup,
	opDrop - opDup: drop,
	opSwap - opDup: swap,
	opOver - opDup: over,
}

type codeError opCode

func (code codeError) Error() string {
	return fmt.Sprintf("invalid code %v", opCode(code))
}
