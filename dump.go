package forth

import (
	"bufio"
	"io"
	"strconv"
)

// Dump writes a human readable listing of the stack and every defined word
// to w, e.g.:
//
//	# Forth Dump
//	  stack: 1 2
//	# Vocabulary
//	  : * mul ;
//	  : DOUBLE lit(2) mul ;
func (in *Interp) Dump(w io.Writer) error {
	dump := forthDumper{in: in, out: bufio.NewWriter(w)}
	dump.dump()
	return dump.out.Flush()
}

type forthDumper struct {
	in  *Interp
	out *bufio.Writer
}

func (dump forthDumper) dump() {
	dump.out.WriteString("# Forth Dump\n")
	dump.out.WriteString("  stack: ")
	dump.out.WriteString(dump.in.stack.String())
	dump.out.WriteByte('\n')
	dump.dumpVocab()
}

func (dump forthDumper) dumpVocab() {
	dump.out.WriteString("# Vocabulary\n")
	for _, name := range dump.in.vocab.names() {
		dump.out.WriteString("  : ")
		dump.out.WriteString(name)
		for _, it := range dump.in.vocab[name] {
			dump.out.WriteByte(' ')
			dump.formatItem(it)
		}
		dump.out.WriteString(" ;\n")
	}
}

func (dump forthDumper) formatItem(it item) {
	dump.out.WriteString(it.op.String())
	if it.op == opLiteral {
		dump.out.WriteByte('(')
		dump.out.WriteString(strconv.Itoa(int(it.val)))
		dump.out.WriteByte(')')
	}
}
