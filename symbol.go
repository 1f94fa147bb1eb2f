package huffman

import (
	"strconv"
	"unicode"
)

// Symbol represents a character of the input text, as a Unicode code point.
// Negative symbols are not valid.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(unicode.MaxRune)

// InvalidSymbol is carried by internal tree nodes, which have no character
// payload.
const InvalidSymbol = Symbol(-1)

// IsValid reports whether s is a code point.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}

// String returns the character itself for printable symbols and a Go-quoted
// escape otherwise.
func (s Symbol) String() string {
	if !s.IsValid() {
		return "<invalid>"
	}
	r := rune(s)
	if r == ' ' {
		return `\s`
	}
	if unicode.IsPrint(r) {
		return string(r)
	}
	q := strconv.QuoteRune(r)
	return q[1 : len(q)-1]
}
