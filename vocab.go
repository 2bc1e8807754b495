package forth

import (
	"sort"
	"strings"
)

// vocabulary maps canonical (upper case) word names to their bodies.
type vocabulary map[string]items

// builtins lists the words every interpreter starts with.
var builtins = [...]struct {
	name string
	op   opCode
}{
	{"+", opAdd},
	{"-", opSub},
	{"*", opMul},
	{"/", opDiv},
	{"DUP", opDup},
	{"DROP", opDrop},
	{"SWAP", opSwap},
	{"OVER", opOver},
	{":", opDefine},
	{";", opEnd},
}

func builtinVocabulary() vocabulary {
	voc := make(vocabulary, len(builtins))
	for _, bi := range builtins {
		voc[bi.name] = items{{op: bi.op}}
	}
	return voc
}

// resolve maps a token to the items it stands for: a literal if it parses as
// a number, otherwise a copy of its current vocabulary entry.
func (voc vocabulary) resolve(token string) (items, error) {
	if val, ok := parseLiteral(token); ok {
		return items{literal(val)}, nil
	}
	body, defined := voc[strings.ToUpper(token)]
	if !defined {
		return nil, wordError{token, ErrUnknownWord}
	}
	return append(items(nil), body...), nil
}

// define (re)creates an empty entry under name, returning its canonical form.
func (voc vocabulary) define(name string) string {
	name = strings.ToUpper(name)
	voc[name] = items{}
	return name
}

func (voc vocabulary) extend(name string, body items) {
	voc[name] = append(voc[name], body...)
}

func (voc vocabulary) names() []string {
	names := make([]string, 0, len(voc))
	for name := range voc {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
