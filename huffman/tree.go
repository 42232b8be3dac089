// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"container/heap"

	"github.com/LessUp/Encoding/internal/model"
)

// node is a Huffman tree node. Leaves carry a symbol; internal nodes leave
// sym at zero. Nodes live for a single codec invocation.
type node struct {
	sym   uint32
	freq  uint64
	left  *node
	right *node
}

func (n *node) isLeaf() bool { return n.left == nil && n.right == nil }

// nodeHeap orders nodes by frequency, breaking ties toward the lower
// symbol index. Internal nodes all carry symbol 0, so ties among them are
// settled by heap position; the heap operations are deterministic, which
// keeps the tree shape, and with it the encoded output, identical across
// runs and platforms.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].sym < h[j].sym
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*node)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// buildTree constructs the code tree for all symbols with a nonzero
// frequency. The first node removed from the heap becomes the left child.
//
// Two degenerate shapes are possible: an all-zero table yields a lone EOS
// leaf, and a single qualifying symbol is wrapped under a one-child parent
// so that its code still has a length of at least one bit.
func buildTree(freq model.FreqTable) *node {
	h := &nodeHeap{}
	for s, v := range freq {
		if v == 0 {
			continue
		}
		heap.Push(h, &node{sym: uint32(s), freq: uint64(v)})
	}
	if h.Len() == 0 {
		return &node{sym: model.EOS, freq: 1}
	}
	if h.Len() == 1 {
		only := heap.Pop(h).(*node)
		heap.Push(h, &node{freq: only.freq, left: only})
	}
	for h.Len() > 1 {
		a := heap.Pop(h).(*node)
		b := heap.Pop(h).(*node)
		heap.Push(h, &node{freq: a.freq + b.freq, left: a, right: b})
	}
	return heap.Pop(h).(*node)
}

// code is a canonical bit string: the low nbits of val, MSB first.
//
// A uint64 is wide enough: the header counts are uint32, so the table
// total is below 2^41, which bounds the deepest possible Huffman code
// well under 64 bits.
type code struct {
	val   uint64
	nbits uint8
}

// buildCodes assigns a code to every leaf by depth-first traversal,
// extending the prefix with 0 on a left descent and 1 on a right descent.
// A lone root leaf gets the one-bit code "0".
func buildCodes(n *node, codes *[model.NumSymbols]code, prefix uint64, depth uint8) {
	if n == nil {
		return
	}
	if n.isLeaf() {
		if depth == 0 {
			codes[n.sym] = code{val: 0, nbits: 1}
		} else {
			codes[n.sym] = code{val: prefix, nbits: depth}
		}
		return
	}
	buildCodes(n.left, codes, prefix<<1, depth+1)
	buildCodes(n.right, codes, prefix<<1|1, depth+1)
}
