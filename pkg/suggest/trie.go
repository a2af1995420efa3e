package suggest

import (
	"fmt"
	"slices"

	"fortio.org/safecast"
)

// rootSlot is the arena slot of the root node.
const rootSlot uint32 = 0

type trieNode struct {
	children map[byte]uint32
	terminal bool
	pos      Position
}

// PrefixTrie is a byte-keyed prefix tree whose nodes live in a single arena.
// Children are addressed by arena slot, so a node is owned by exactly one parent
// and the whole tree is released together with the trie.
//
// Nodes are created with the NotFound position; only the last node of an
// inserted text ever receives a real one.
type PrefixTrie struct {
	nodes   []trieNode
	entries int
}

// NewPrefixTrie creates an empty trie holding only the root node.
func NewPrefixTrie() *PrefixTrie {
	return &PrefixTrie{
		nodes: []trieNode{{pos: NotFound}},
	}
}

// Insert walks text byte by byte from the root, creating missing nodes, and
// marks the final node as a complete entry. The empty text marks the root.
func (t *PrefixTrie) Insert(text string, offset, lineLength int) {
	cur := rootSlot
	for i := 0; i < len(text); i++ {
		ch := text[i]
		next, ok := t.nodes[cur].children[ch]
		if !ok {
			next = t.newNode()
			if t.nodes[cur].children == nil {
				t.nodes[cur].children = make(map[byte]uint32)
			}
			t.nodes[cur].children[ch] = next
		}
		cur = next
	}

	n := &t.nodes[cur]
	if !n.terminal {
		n.terminal = true
		t.entries++
	}
	n.pos = Position{Offset: offset, LineLength: lineLength}
}

// CountWithPrefix recounts the complete entries below prefix on every call.
func (t *PrefixTrie) CountWithPrefix(prefix string) int {
	slot, ok := t.walk(prefix)
	if !ok {
		return 0
	}
	return t.countFrom(slot)
}

// LookupExact returns the position stored on the node reached by text.
// Paths that exist only as prefixes of other entries yield NotFound.
func (t *PrefixTrie) LookupExact(text string) Position {
	slot, ok := t.walk(text)
	if !ok {
		return NotFound
	}
	return t.nodes[slot].pos
}

// Entries lists complete entries under prefix in byte order.
func (t *PrefixTrie) Entries(prefix string, limit int) []Entry {
	slot, ok := t.walk(prefix)
	if !ok {
		return nil
	}

	var out []Entry
	buf := []byte(prefix)
	var visit func(slot uint32) bool
	visit = func(slot uint32) bool {
		n := &t.nodes[slot]
		if n.terminal {
			out = append(out, Entry{Text: string(buf), Position: n.pos})
			if limit > 0 && len(out) >= limit {
				return false
			}
		}
		keys := make([]byte, 0, len(n.children))
		for k := range n.children {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			buf = append(buf, k)
			more := visit(n.children[k])
			buf = buf[:len(buf)-1]
			if !more {
				return false
			}
		}
		return true
	}
	visit(slot)
	return out
}

// Len returns the number of distinct complete entries.
func (t *PrefixTrie) Len() int {
	return t.entries
}

// Nodes returns the arena size, root included.
func (t *PrefixTrie) Nodes() int {
	return len(t.nodes)
}

func (t *PrefixTrie) newNode() uint32 {
	slot, err := safecast.Conv[uint32](len(t.nodes))
	if err != nil {
		panic(fmt.Errorf("trie arena overflow: %w", err))
	}
	t.nodes = append(t.nodes, trieNode{pos: NotFound})
	return slot
}

// walk follows s from the root and reports the slot it ends on.
func (t *PrefixTrie) walk(s string) (uint32, bool) {
	cur := rootSlot
	for i := 0; i < len(s); i++ {
		next, ok := t.nodes[cur].children[s[i]]
		if !ok {
			return 0, false
		}
		cur = next
	}
	return cur, true
}

// countFrom counts terminal nodes in the subtree at slot, slot included.
// Depth-first with an explicit stack, so very long entries cannot exhaust
// the goroutine stack.
func (t *PrefixTrie) countFrom(slot uint32) int {
	count := 0
	stack := []uint32{slot}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[cur]
		if n.terminal {
			count++
		}
		for _, child := range n.children {
			stack = append(stack, child)
		}
	}
	return count
}
