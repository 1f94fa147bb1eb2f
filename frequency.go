package huffman

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// FrequencyTable maps each distinct character of a text to its number of
// occurrences.  A FrequencyTable is never modified after construction.
type FrequencyTable struct {
	counts map[Symbol]uint64
	total  uint64
}

// NewFrequencyTable constructs a FrequencyTable from explicit counts.
// Entries with a zero count are dropped, since the character does not occur.
func NewFrequencyTable(counts map[Symbol]uint64) FrequencyTable {
	ft := FrequencyTable{counts: make(map[Symbol]uint64, len(counts))}
	for symbol, count := range counts {
		if count == 0 {
			continue
		}
		ft.counts[symbol] = count
		ft.total += count
	}
	return ft
}

// CountFrequencies scans text once and counts each character.  It returns
// ErrEmptyInput if text is empty.
func CountFrequencies(text string) (FrequencyTable, error) {
	if len(text) == 0 {
		return FrequencyTable{}, ErrEmptyInput
	}
	return countChunk(text), nil
}

// CountFrequenciesParallel is CountFrequencies with the scan split into up to
// workers chunks that are counted concurrently and then summed.  The result is
// identical to CountFrequencies.
func CountFrequenciesParallel(text string, workers int) (FrequencyTable, error) {
	if len(text) == 0 {
		return FrequencyTable{}, ErrEmptyInput
	}
	chunks := splitText(text, workers)
	if len(chunks) == 1 {
		return countChunk(text), nil
	}

	partials := make([]FrequencyTable, len(chunks))
	var g errgroup.Group
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			partials[i] = countChunk(chunk)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return FrequencyTable{}, fmt.Errorf("counting frequencies: %w", err)
	}

	merged := FrequencyTable{counts: make(map[Symbol]uint64, partials[0].Len())}
	for _, part := range partials {
		for symbol, count := range part.counts {
			merged.counts[symbol] += count
		}
		merged.total += part.total
	}
	return merged, nil
}

// Len returns the number of distinct characters.
func (ft FrequencyTable) Len() int {
	return len(ft.counts)
}

// Total returns the sum of all counts, i.e. the number of characters in the
// text that was counted.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// Count returns the number of occurrences of symbol, or 0 if it never occurs.
func (ft FrequencyTable) Count(symbol Symbol) uint64 {
	return ft.counts[symbol]
}

// Symbols returns the distinct characters in ascending code point order.
func (ft FrequencyTable) Symbols() []Symbol {
	return sortedSymbols(ft.counts)
}

func countChunk(text string) FrequencyTable {
	ft := FrequencyTable{counts: make(map[Symbol]uint64)}
	for _, r := range text {
		ft.counts[Symbol(r)]++
		ft.total++
	}
	return ft
}

// splitText cuts text into at most n pieces of roughly equal byte length,
// never splitting a UTF-8 sequence.
func splitText(text string, n int) []string {
	if n < 1 {
		n = 1
	}
	if n > len(text) {
		n = len(text)
	}
	size := len(text) / n
	out := make([]string, 0, n)
	for len(text) > 0 && len(out) < n-1 {
		cut := size
		if cut >= len(text) {
			break
		}
		// A code point spans at most utf8.UTFMax bytes, so a start byte is
		// found within that distance unless text[cut] is a stray
		// continuation byte, which is safe to cut before.  A start byte at
		// index 0 means the first rune is longer than size; cut after it.
		for back := 0; back < utf8.UTFMax && cut-back >= 0; back++ {
			if !utf8.RuneStart(text[cut-back]) {
				continue
			}
			cut -= back
			if cut == 0 {
				_, cut = utf8.DecodeRuneInString(text)
			}
			break
		}
		if cut >= len(text) {
			break
		}
		out = append(out, text[:cut])
		text = text[cut:]
	}
	if len(text) > 0 {
		out = append(out, text)
	}
	return out
}
