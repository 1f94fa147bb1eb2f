package huffman

// CodeTable maps each distinct character to its Huffman code.  The codes are
// prefix-free.  A CodeTable is never modified after construction.
type CodeTable struct {
	codes   map[Symbol]Code
	minSize int
	maxSize int
}

// Len returns the number of characters with a code.
func (ct CodeTable) Len() int {
	return len(ct.codes)
}

// Lookup returns the code for symbol.  The boolean is false if symbol has no
// code.
func (ct CodeTable) Lookup(symbol Symbol) (Code, bool) {
	hc, found := ct.codes[symbol]
	return hc, found
}

// Symbols returns the characters with a code in ascending code point order.
func (ct CodeTable) Symbols() []Symbol {
	return sortedSymbols(ct.codes)
}

// MinSize is the bit length of the shortest code.
func (ct CodeTable) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct CodeTable) MaxSize() int {
	return ct.maxSize
}

// GenerateCodes walks tree from the root and assigns each leaf the path taken
// to reach it: LeftBit for every left edge, RightBit for every right edge.
// A tree that is a single leaf assigns SingleSymbolCode.
func GenerateCodes(tree *Tree) CodeTable {
	ct := CodeTable{codes: make(map[Symbol]Code, tree.Leaves())}

	if tree.Root.IsLeaf() {
		ct.codes[tree.Root.Symbol] = SingleSymbolCode
		ct.minSize = SingleSymbolCode.Size()
		ct.maxSize = SingleSymbolCode.Size()
		return ct
	}

	// Walk the tree with an explicit stack of internal nodes.  Each stack
	// item records its path and where we are in visiting it:
	//   x=0 → We just arrived at the item for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// Leaves never get pushed; they are recorded when first seen.

	type stackItem struct {
		n    *Node
		path Code
		x    byte
	}

	stack := make([]stackItem, 0, log2int(tree.Leaves()))
	var hasMinMax bool

	processChild := func(child *Node, path Code) {
		if !child.IsLeaf() {
			stack = append(stack, stackItem{n: child, path: path})
			return
		}

		ct.codes[child.Symbol] = path
		size := path.Size()
		if !hasMinMax {
			hasMinMax = true
			ct.minSize = size
			ct.maxSize = size
		} else if ct.minSize > size {
			ct.minSize = size
		} else if ct.maxSize < size {
			ct.maxSize = size
		}
	}

	stack = append(stack, stackItem{n: tree.Root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.n.Left, top.path.Append(LeftBit))
		case 1:
			processChild(top.n.Right, top.path.Append(RightBit))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
	}

	return ct
}

// BuildTreeAndCodes runs BuildTree followed by GenerateCodes.
func BuildTreeAndCodes(freq FrequencyTable) (*Tree, CodeTable) {
	tree := BuildTree(freq)
	return tree, GenerateCodes(tree)
}
