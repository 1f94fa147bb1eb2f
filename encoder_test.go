package huffman

import (
	"strings"
	"testing"
)

func makeTestFrequencies() FrequencyTable {
	return NewFrequencyTable(map[Symbol]uint64{
		'a': 5,
		'b': 9,
		'c': 12,
		'd': 13,
		'e': 16,
		'f': 45,
	})
}

func TestEncoder(t *testing.T) {
	var e Encoder
	e.Init(makeTestFrequencies())

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(a) = \"0011\"\n",
		"\tEncode(b) = \"0010\"\n",
		"\tEncode(c) = \"011\"\n",
		"\tEncode(d) = \"010\"\n",
		"\tEncode(e) = \"000\"\n",
		"\tEncode(f) = \"1\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	expectBits := "001100100110100001"
	actualBits := e.Encode("abcdef")
	if expectBits != actualBits {
		t.Errorf("wrong bits:\n\texpect: %q\n\tactual: %q", expectBits, actualBits)
	}
}

func TestEncoder_Tree(t *testing.T) {
	var e Encoder
	e.Init(makeTestFrequencies())

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tInternal(100)\n",
		"\t\tLeaf(f, 45)\n",
		"\t\tInternal(55)\n",
		"\t\t\tInternal(25)\n",
		"\t\t\t\tLeaf(c, 12)\n",
		"\t\t\t\tLeaf(d, 13)\n",
		"\t\t\tInternal(30)\n",
		"\t\t\t\tInternal(14)\n",
		"\t\t\t\t\tLeaf(a, 5)\n",
		"\t\t\t\t\tLeaf(b, 9)\n",
		"\t\t\t\tLeaf(e, 16)\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Tree().Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if merges := e.Tree().Merges(); merges != 5 {
		t.Errorf("expected 5 merges, got %d", merges)
	}
	if leaves := e.Tree().Leaves(); leaves != 6 {
		t.Errorf("expected 6 leaves, got %d", leaves)
	}
}

func TestEncode_Scenarios(t *testing.T) {
	type testRow struct {
		name  string
		text  string
		codes map[Symbol]Code
		bits  string
	}

	testData := [...]testRow{
		{
			name:  "two-symbols",
			text:  "aab",
			codes: map[Symbol]Code{'a': "0", 'b': "1"},
			bits:  "001",
		},
		{
			name:  "tie-broken-by-code-point",
			text:  "baba",
			codes: map[Symbol]Code{'a': "1", 'b': "0"},
			bits:  "0101",
		},
		{
			name:  "single-symbol",
			text:  "aaaa",
			codes: map[Symbol]Code{'a': SingleSymbolCode},
			bits:  "0000",
		},
		{
			name:  "multibyte",
			text:  "ééé✓",
			codes: map[Symbol]Code{'é': "0", '✓': "1"},
			bits:  "0001",
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			e, freq, err := NewEncoder(row.text)
			if err != nil {
				t.Fatalf("NewEncoder failed: %v", err)
			}
			if freq.Len() != len(row.codes) {
				t.Errorf("expected %d distinct characters, got %d", len(row.codes), freq.Len())
			}
			for symbol, expect := range row.codes {
				actual, found := e.Codes().Lookup(symbol)
				if !found {
					t.Errorf("no code for %s", symbol)
					continue
				}
				if expect != actual {
					t.Errorf("wrong code for %s: expect %s, actual %s", symbol, expect, actual)
				}
			}
			if bits := e.Encode(row.text); bits != row.bits {
				t.Errorf("wrong bits:\n\texpect: %q\n\tactual: %q", row.bits, bits)
			}
		})
	}
}

func TestNewEncoder_Empty(t *testing.T) {
	e, _, err := NewEncoder("")
	if err != ErrEmptyInput {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if e != nil {
		t.Errorf("expected nil Encoder, got %v", e)
	}
}
