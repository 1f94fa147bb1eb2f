package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Encode concatenates the code of each character of text, in order.
//
// Every character of text must have an entry in codes, which always holds
// when codes was generated from the frequencies of text itself.  A missing
// entry is a programming error and panics.
func Encode(text string, codes CodeTable) string {
	var sb strings.Builder
	sb.Grow(len(text) * maxInt(codes.MinSize(), 1))
	for index, r := range text {
		hc, found := codes.codes[Symbol(r)]
		assert.Assertf(found, "internal consistency: character %s at byte %d has no code", Symbol(r), index)
		sb.WriteString(string(hc))
	}
	return sb.String()
}

// Encoder holds the tree and code table built from one FrequencyTable.
type Encoder struct {
	tree  *Tree
	codes CodeTable
}

// Init initializes this Encoder from the given frequencies, which must not be
// empty.
func (e *Encoder) Init(freq FrequencyTable) {
	assert.Assertf(freq.Len() > 0, "Encoder.Init called with an empty FrequencyTable")
	tree, codes := BuildTreeAndCodes(freq)
	*e = Encoder{tree: tree, codes: codes}
}

// NewEncoder counts the frequencies of text and returns an initialized
// Encoder together with the FrequencyTable it was built from.
func NewEncoder(text string) (*Encoder, FrequencyTable, error) {
	freq, err := CountFrequencies(text)
	if err != nil {
		return nil, FrequencyTable{}, err
	}
	e := &Encoder{}
	e.Init(freq)
	return e, freq, nil
}

// Encode encodes text with this Encoder's code table.
func (e Encoder) Encode(text string) string {
	return Encode(text, e.codes)
}

// Tree returns the Huffman tree.
func (e Encoder) Tree() *Tree {
	return e.tree
}

// Codes returns the code table.
func (e Encoder) Codes() CodeTable {
	return e.codes
}

// MinSize is the bit length of the shortest code.
func (e Encoder) MinSize() int {
	return e.codes.MinSize()
}

// MaxSize is the bit length of the longest code.
func (e Encoder) MaxSize() int {
	return e.codes.MaxSize()
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.codes.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.codes.MaxSize())
	for _, symbol := range e.codes.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", symbol, e.codes.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
