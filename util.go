package huffman

import (
	mathbits "math/bits"
	"sort"
)

func log2int(x int) int {
	if x <= 0 {
		x = 1
	}
	return 64 - mathbits.LeadingZeros64(uint64(x))
}

func sortedSymbols[V any](m map[Symbol]V) []Symbol {
	out := make([]Symbol, 0, len(m))
	for symbol := range m {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
