package huffman

import (
	"fmt"
	"strings"
)

// decode is a test-only inverse of Encode.  It walks tree from the root for
// each bit and emits a character at every leaf.
func decode(tree *Tree, bits string) (string, error) {
	var sb strings.Builder
	if tree.Root.IsLeaf() {
		for i := 0; i < len(bits); i++ {
			if Code(bits[i:i+1]) != SingleSymbolCode {
				return "", fmt.Errorf("unexpected bit %q at index %d", bits[i], i)
			}
			sb.WriteRune(rune(tree.Root.Symbol))
		}
		return sb.String(), nil
	}

	n := tree.Root
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case LeftBit:
			n = n.Left
		case RightBit:
			n = n.Right
		default:
			return "", fmt.Errorf("invalid bit %q at index %d", bits[i], i)
		}
		if n.IsLeaf() {
			sb.WriteRune(rune(n.Symbol))
			n = tree.Root
		}
	}
	if n != tree.Root {
		return "", fmt.Errorf("trailing partial code")
	}
	return sb.String(), nil
}
