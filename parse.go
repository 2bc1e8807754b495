package forth

type parseState uint8

const (
	parseNormal parseState = iota // expand words into the program
	parseName                     // next token names the word being defined
	parseBody                     // tokens extend the word being defined
)

var parseStateNames = [...]string{"normal", "name", "body"}

func (ps parseState) String() string { return parseStateNames[ps] }

// parse expands tokens into a flat program, processing any : ... ; blocks
// along the way. Definitions take effect in the vocabulary as soon as they
// are read, so they survive a later error in the same line.
func (in *Interp) parse(tokens []string) (prog items, err error) {
	state := parseNormal
	var target string
	for _, token := range tokens {
		switch state {
		case parseNormal:
			body, err := in.vocab.resolve(token)
			if err != nil {
				return nil, err
			}
			if body.endsWith(opDefine) {
				state = parseName
				continue
			}
			prog = appendExecutable(prog, body)

		case parseName:
			// only number shaped names are refused, any other token may be
			// (re)defined whether or not it currently resolves
			if _, isNum := parseLiteral(token); isNum {
				return nil, wordError{token, ErrInvalidWord}
			}
			target = in.vocab.define(token)
			in.logf(":", "define %v", target)
			state = parseBody

		case parseBody:
			body, err := in.vocab.resolve(token)
			if err != nil {
				return nil, err
			}
			if body.endsWith(opEnd) {
				in.logf(";", "%v %v", target, in.vocab[target])
				state = parseNormal
				continue
			}
			in.vocab.extend(target, body)
		}
	}

	switch state {
	case parseName:
		return nil, wordError{":", ErrInvalidWord}
	case parseBody:
		return nil, wordError{target, ErrInvalidWord}
	}
	return prog, nil
}

// appendExecutable appends body to prog, leaving out any markers that were
// captured inside a word definition.
func appendExecutable(prog, body items) items {
	for _, it := range body {
		if !it.op.marker() {
			prog = append(prog, it)
		}
	}
	return prog
}
