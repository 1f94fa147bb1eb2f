// Package report renders the engine's tables and output for people.
package report

import (
	"bufio"
	"fmt"
	"io"

	huffman "github.com/chronos-tachyon/huffmantext"
	"github.com/chronos-tachyon/huffmantext/internal/color"
)

// Headings printed above each section.
const (
	CountHeading    = "CHARACTER COUNT:"
	EncodingHeading = "CHARACTER ENCODING:"
	BitsHeading     = "COMPRESSED BIT PATTERN:"
	StatsHeading    = "STATISTICS:"
	TreeHeading     = "TREE:"
)

// Reporter writes report sections to an underlying writer.  The first write
// error is kept and returned by Flush; later writes are skipped.
type Reporter struct {
	w       *bufio.Writer
	palette color.Palette
	err     error
}

// New returns a Reporter writing to w with the given palette.
func New(w io.Writer, palette color.Palette) *Reporter {
	return &Reporter{w: bufio.NewWriter(w), palette: palette}
}

func (r *Reporter) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Frequencies writes one "[count:char]" pair per character in code point
// order, followed by a blank line.
func (r *Reporter) Frequencies(freq huffman.FrequencyTable) {
	r.printf("%s\n", r.palette.Heading(CountHeading))
	for _, symbol := range freq.Symbols() {
		r.printf("[%s:%s] ",
			r.palette.Count(fmt.Sprint(freq.Count(symbol))),
			r.palette.Symbol(symbol.String()))
	}
	r.printf("\n\n")
}

// Codes writes one "char=code" line per character in code point order.
func (r *Reporter) Codes(codes huffman.CodeTable) {
	r.printf("%s\n", r.palette.Heading(EncodingHeading))
	for _, symbol := range codes.Symbols() {
		hc, _ := codes.Lookup(symbol)
		r.printf("%s=%s\n", r.palette.Symbol(symbol.String()), r.palette.Code(string(hc)))
	}
}

// Bits writes the encoded bit pattern.
func (r *Reporter) Bits(bits string) {
	r.printf("\n%s\n%s\n", r.palette.Heading(BitsHeading), r.palette.Code(bits))
}

// Stats writes a compression summary.
func (r *Reporter) Stats(st huffman.Stats) {
	r.printf("\n%s\n", r.palette.Heading(StatsHeading))
	r.printf("%s %d\n", r.palette.Muted("characters:"), st.Symbols)
	r.printf("%s %d\n", r.palette.Muted("distinct:"), st.Distinct)
	r.printf("%s %d\n", r.palette.Muted("encoded bits:"), st.EncodedBits)
	r.printf("%s %.4f\n", r.palette.Muted("bits/char:"), st.AverageBits)
	r.printf("%s %.4f\n", r.palette.Muted("entropy:"), st.Entropy)
	r.printf("%s %.4f\n", r.palette.Muted("ratio vs 8 bits/char:"), st.FixedWidthRatio)
}

// Tree writes a debugging dump of the Huffman tree.
func (r *Reporter) Tree(tree *huffman.Tree) {
	r.printf("\n%s\n", r.palette.Heading(TreeHeading))
	if r.err != nil {
		return
	}
	_, r.err = tree.Dump(r.w)
}

// Flush writes any buffered output and returns the first error encountered.
func (r *Reporter) Flush() error {
	if r.err != nil {
		return r.err
	}
	return r.w.Flush()
}
