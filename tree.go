package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  A leaf carries a Symbol and its
// frequency and has no children.  An internal node carries InvalidSymbol, the
// sum of its children's frequencies, and exactly two children.
//
// Nodes are never modified after BuildTree returns.
type Node struct {
	Symbol Symbol
	Freq   uint64
	Left   *Node
	Right  *Node
}

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Tree is a finished Huffman tree.
type Tree struct {
	Root *Node

	merges int
	leaves int
}

// Merges returns the number of merge steps that built the tree, which is
// always Leaves() - 1.
func (t *Tree) Merges() int {
	return t.merges
}

// Leaves returns the number of leaves, one per distinct character.
func (t *Tree) Leaves() int {
	return t.leaves
}

// BuildTree runs Huffman's greedy algorithm over freq: it repeatedly removes
// the two nodes of lowest frequency and joins them under a new internal node,
// until a single root remains.
//
// Ties are broken by sequence number.  Leaves are seeded in ascending Symbol
// order and numbered 0 .. n-1; each internal node takes the next number as it
// is created.  Of the two nodes removed in a step, the first becomes the left
// child.
//
// freq must not be empty.
//
func BuildTree(freq FrequencyTable) *Tree {
	assert.Assertf(freq.Len() > 0, "BuildTree called with an empty FrequencyTable")

	symbols := freq.Symbols()
	h := nodeHeap{list: make([]nodeAndSeq, 0, len(symbols))}
	for _, symbol := range symbols {
		h.list = append(h.list, nodeAndSeq{
			node: &Node{Symbol: symbol, Freq: freq.Count(symbol)},
			seq:  uint64(len(h.list)),
		})
	}
	h.Init()

	nextSeq := uint64(len(symbols))
	merges := 0
	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq)
		b := heap.Pop(&h).(nodeAndSeq)

		parent := &Node{
			Symbol: InvalidSymbol,
			Freq:   a.node.Freq + b.node.Freq,
			Left:   a.node,
			Right:  b.node,
		}
		heap.Push(&h, nodeAndSeq{parent, nextSeq})
		nextSeq++
		merges++
	}

	root := heap.Pop(&h).(nodeAndSeq)
	return &Tree{
		Root:   root.node,
		merges: merges,
		leaves: len(symbols),
	}
}

// Dump writes a programmer-readable rendering of the tree to the given
// writer, one node per line, indented by depth, left child first.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		for i := 0; i <= depth; i++ {
			buf.WriteByte('\t')
		}
		if n.IsLeaf() {
			fmt.Fprintf(&buf, "Leaf(%s, %d)\n", n.Symbol, n.Freq)
			return
		}
		fmt.Fprintf(&buf, "Internal(%d)\n", n.Freq)
		walk(n.Left, depth+1)
		walk(n.Right, depth+1)
	}
	walk(t.Root, 0)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node *Node
	seq  uint64
}

type nodeHeap struct {
	list []nodeAndSeq
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Freq != b.node.Freq {
		return a.node.Freq < b.node.Freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
