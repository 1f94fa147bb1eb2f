package huffman

import (
	"math"

	"github.com/chronos-tachyon/assert"
)

// Stats summarizes how well a code table compresses a text.
type Stats struct {
	// Symbols is the number of characters in the text.
	Symbols uint64

	// Distinct is the number of distinct characters.
	Distinct int

	// EncodedBits is the length of the encoded output.
	EncodedBits uint64

	// AverageBits is EncodedBits / Symbols.
	AverageBits float64

	// Entropy is the Shannon entropy of the character distribution, in
	// bits per character.  AverageBits is never less than Entropy.
	Entropy float64

	// FixedWidthRatio is EncodedBits divided by Symbols × 8, i.e. relative
	// to a fixed 8-bit code per character (code point).  It is not a ratio
	// against the input's byte length.
	FixedWidthRatio float64
}

// ComputeStats derives Stats from a FrequencyTable and the CodeTable built
// from it, without encoding the text.
func ComputeStats(freq FrequencyTable, codes CodeTable) Stats {
	st := Stats{
		Symbols:  freq.Total(),
		Distinct: freq.Len(),
	}
	if st.Symbols == 0 {
		return st
	}

	total := float64(st.Symbols)
	for symbol, count := range freq.counts {
		hc, found := codes.Lookup(symbol)
		assert.Assertf(found, "internal consistency: character %s has no code", symbol)
		st.EncodedBits += count * uint64(hc.Size())

		p := float64(count) / total
		st.Entropy -= p * math.Log2(p)
	}
	st.AverageBits = float64(st.EncodedBits) / total
	st.FixedWidthRatio = float64(st.EncodedBits) / (total * 8)
	return st
}
