package forth

import "strconv"

// Value is the sole datum type held on the stack.
type Value int32

type opCode uint8

const (
	opLiteral opCode = iota // <INTERNAL>  push item value

	// arithmetic
	opAdd // +     pop a, pop b, push b+a
	opSub // -     pop a, pop b, push b-a
	opMul // *     pop a, pop b, push b*a
	opDiv // /     pop a, pop b, push b/a; a must not be 0

	// stack manipulation
	opDup  // dup   copy top
	opDrop // drop  discard top
	opSwap // swap  exchange top two
	opOver // over  copy second from top

	// markers only drive the definition parser, they never execute
	opDefine // :  begin a definition
	opEnd    // ;  end a definition

	opMax
)

var opNames = [opMax]string{
	"lit",
	"add", "sub", "mul", "div",
	"dup", "drop", "swap", "over",
	"define", "end",
}

func (op opCode) String() string {
	if op < opMax {
		return opNames[op]
	}
	return "op" + strconv.Itoa(int(op))
}

func (op opCode) arithmetic() bool { return opAdd <= op && op <= opDiv }
func (op opCode) stackOp() bool    { return opDup <= op && op <= opOver }
func (op opCode) marker() bool     { return op == opDefine || op == opEnd }

// item is one resolved unit of a word body: an executable op, possibly
// carrying a literal value, or a definition marker.
type item struct {
	op  opCode
	val Value
}

func literal(val Value) item { return item{op: opLiteral, val: val} }

func (it item) String() string {
	if it.op == opLiteral {
		return "lit(" + strconv.Itoa(int(it.val)) + ")"
	}
	return it.op.String()
}

// items is an ordered word body.
type items []item

func (is items) last() (item, bool) {
	if i := len(is) - 1; i >= 0 {
		return is[i], true
	}
	return item{}, false
}

func (is items) endsWith(op opCode) bool {
	it, ok := is.last()
	return ok && it.op == op
}
