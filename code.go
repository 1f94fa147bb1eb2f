package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, written as the characters '0' and '1'.
// The first character is the bit nearest the root of the tree.
type Code string

// Bit characters used when extending a path.  Left edges are '1' and right
// edges are '0'.
const (
	LeftBit  = '1'
	RightBit = '0'
)

// SingleSymbolCode is the code assigned when the text contains only one
// distinct character and the tree is a lone leaf.
const SingleSymbolCode = Code("0")

// MakeCode is a convenience function that constructs a Code from a bit
// string.  It panics if bits contains anything other than '0' and '1'.
func MakeCode(bits string) Code {
	for i := 0; i < len(bits); i++ {
		if c := bits[i]; c != '0' && c != '1' {
			panic(fmt.Errorf("invalid bit %q at index %d in %q", c, i, bits))
		}
	}
	return Code(bits)
}

// Size returns the number of bits.
func (hc Code) Size() int {
	return len(hc)
}

// Append returns hc extended by one bit.
func (hc Code) Append(bit byte) Code {
	return hc + Code(bit)
}

// HasPrefix reports whether prefix is a prefix of hc.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")
