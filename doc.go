/* Package forth implements a small interpreter for a FORTH-like language.

Input is read a line at a time.  Each line is folded to upper case, any
control characters are treated as spaces, and the result is split into
whitespace separated tokens.  A token is either a decimal integer literal,
which pushes its value onto the stack, or the name of a word.

The builtin words are:

	Symbol   Name     Function
	   +     add      pop a, pop b, push b+a
	   -     sub      pop a, pop b, push b-a
	   *     mul      pop a, pop b, push b*a
	   /     div      pop a, pop b, push b/a truncated; a must not be 0
	 dup     dup      copy the top of the stack
	 drop    drop     discard the top of the stack
	 swap    swap     exchange the top two values
	 over    over     copy the second value over the top

New words are defined with a colon definition:

	: name body... ;

Unlike FORTH, words are not compiled into calls: each reference to a word is
expanded in place into a copy of that word's body as it is defined at that
moment.  Redefining a word, even a builtin, only changes later references to
it; anything already expanded, including inside other definitions, keeps the
old meaning.  This also means that a word referring to itself while being
defined sees only the part of its body read so far, so there is no recursion.

Numbers can not be redefined.

Values are 32-bit signed integers, and arithmetic wraps around on overflow.
*/
package forth
