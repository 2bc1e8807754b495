package runeio

import "strings"

// CaretForm computes the ^-escaped printable form of a control rune, e.g. ^@
// for <NUL>, ^C for <ETX>, ^? for <DEL>, and ^[E for <NEL>.
// Returns "" for any other rune.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	} else if 0x80 <= r && r <= 0x9f {
		return "^[" + string(r^0xc0)
	}
	return ""
}

// Visible replaces every control rune in s with its caret form, so that s
// prints on a single line without affecting a terminal.
func Visible(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if caret := CaretForm(r); caret != "" {
			sb.WriteString(caret)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
