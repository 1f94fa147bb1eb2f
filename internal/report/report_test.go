package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	huffman "github.com/chronos-tachyon/huffmantext"
	"github.com/chronos-tachyon/huffmantext/internal/color"
)

func TestReporter_Plain(t *testing.T) {
	text := "aab b"
	e, freq, err := huffman.NewEncoder(text)
	require.NoError(t, err)

	var buf strings.Builder
	r := New(&buf, color.None)
	r.Frequencies(freq)
	r.Codes(e.Codes())
	r.Bits(e.Encode(text))
	require.NoError(t, r.Flush())

	// ' ' and a merge first, a winning the tie with b on code point; b then
	// joins that subtree at the root.
	expect := strings.Join([]string{
		"CHARACTER COUNT:\n",
		"[1:\\s] [2:a] [2:b] \n",
		"\n",
		"CHARACTER ENCODING:\n",
		"\\s=01\n",
		"a=00\n",
		"b=1\n",
		"\n",
		"COMPRESSED BIT PATTERN:\n",
		"000010111\n",
	}, "")
	assert.Equal(t, expect, buf.String())
}

func TestReporter_Color(t *testing.T) {
	e, freq, err := huffman.NewEncoder("zz")
	require.NoError(t, err)

	var buf strings.Builder
	r := New(&buf, color.ANSI)
	r.Frequencies(freq)
	r.Codes(e.Codes())
	require.NoError(t, r.Flush())

	out := buf.String()
	assert.Contains(t, out, color.Bold(CountHeading))
	assert.Contains(t, out, color.Cyan("z")+"="+color.Green("0"))
}

func TestReporter_StatsAndTree(t *testing.T) {
	e, freq, err := huffman.NewEncoder("aab")
	require.NoError(t, err)

	var buf strings.Builder
	r := New(&buf, color.None)
	r.Stats(huffman.ComputeStats(freq, e.Codes()))
	r.Tree(e.Tree())
	require.NoError(t, r.Flush())

	out := buf.String()
	assert.Contains(t, out, "encoded bits: 3\n")
	assert.Contains(t, out, "bits/char: 1.0000\n")
	assert.Contains(t, out, "entropy: 0.9183\n")
	assert.Contains(t, out, "\tInternal(3)\n\t\tLeaf(b, 1)\n\t\tLeaf(a, 2)\n")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestReporter_WriteError(t *testing.T) {
	e, _, err := huffman.NewEncoder("abc")
	require.NoError(t, err)

	r := New(failingWriter{}, color.None)
	r.Bits(e.Encode("abc"))
	assert.EqualError(t, r.Flush(), "disk full")
}
