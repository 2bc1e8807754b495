package forth

import (
	"strconv"
	"strings"
	"unicode"
)

// tokenize folds line to upper case, turns any control runes into spaces,
// and splits what remains around whitespace.
func tokenize(line string) []string {
	return strings.Fields(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, strings.ToUpper(line)))
}

// parseLiteral reports whether token is a signed decimal integer that fits a
// Value.
func parseLiteral(token string) (Value, bool) {
	n, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, false
	}
	return Value(n), true
}
