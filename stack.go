package forth

import (
	"strconv"
	"strings"
)

// stack is a LIFO of values; the top is the last element.
type stack []Value

func (st *stack) push(vals ...Value) {
	*st = append(*st, vals...)
}

func (st *stack) pop() (val Value, err error) {
	i := len(*st) - 1
	if i < 0 {
		return 0, ErrStackUnderflow
	}
	val, *st = (*st)[i], (*st)[:i]
	return val, nil
}

// pop2 pops the top value a, and then the one below it b. Whatever is present
// is consumed even when there are not two values to pop.
func (st *stack) pop2() (a, b Value, err error) {
	a, aerr := st.pop()
	b, berr := st.pop()
	if aerr != nil {
		return 0, 0, aerr
	}
	return a, b, berr
}

func (st stack) peek(depth int) (Value, error) {
	i := len(st) - 1 - depth
	if i < 0 {
		return 0, ErrStackUnderflow
	}
	return st[i], nil
}

// String renders values bottom to top separated by single spaces.
func (st stack) String() string {
	var sb strings.Builder
	for i, val := range st {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(val)))
	}
	return sb.String()
}
