package suggest

import (
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// PatriciaIndex implements Index on a compressed patricia trie.
// The empty text has no key path in patricia, so it gets its own slot.
type PatriciaIndex struct {
	trie    *patricia.Trie
	empty   *Position
	entries int
}

// NewPatriciaIndex creates an empty patricia-backed index.
func NewPatriciaIndex() *PatriciaIndex {
	return &PatriciaIndex{
		trie: patricia.NewTrie(),
	}
}

// Insert stores the position of text; a repeated text keeps the last position.
func (p *PatriciaIndex) Insert(text string, offset, lineLength int) {
	pos := Position{Offset: offset, LineLength: lineLength}
	if text == "" {
		if p.empty == nil {
			p.entries++
		}
		p.empty = &pos
		return
	}
	if p.trie.Insert(patricia.Prefix(text), pos) {
		p.entries++
		return
	}
	// Already present: last insertion wins.
	p.trie.Set(patricia.Prefix(text), pos)
}

// CountWithPrefix counts the complete entries under prefix on every call.
func (p *PatriciaIndex) CountWithPrefix(prefix string) int {
	count := 0
	visitor := func(_ patricia.Prefix, _ patricia.Item) error {
		count++
		return nil
	}

	var err error
	if prefix == "" {
		if p.empty != nil {
			count++
		}
		err = p.trie.Visit(visitor)
	} else {
		err = p.trie.VisitSubtree(patricia.Prefix(prefix), visitor)
	}
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}
	return count
}

// LookupExact returns the position of text, or NotFound when it is not an entry.
func (p *PatriciaIndex) LookupExact(text string) Position {
	if text == "" {
		if p.empty == nil {
			return NotFound
		}
		return *p.empty
	}

	item := p.trie.Get(patricia.Prefix(text))
	if item == nil {
		return NotFound
	}
	pos, ok := item.(Position)
	if !ok {
		log.Errorf("Unknown item type: %T for entry %s", item, text)
		return NotFound
	}
	return pos
}

// Entries lists complete entries under prefix in byte order.
func (p *PatriciaIndex) Entries(prefix string, limit int) []Entry {
	var out []Entry
	if prefix == "" && p.empty != nil {
		out = append(out, Entry{Text: "", Position: *p.empty})
	}

	visitor := func(key patricia.Prefix, item patricia.Item) error {
		pos, ok := item.(Position)
		if !ok {
			log.Errorf("Unknown item type: %T for entry %s", item, key)
			return nil
		}
		out = append(out, Entry{Text: string(key), Position: pos})
		return nil
	}

	var err error
	if prefix == "" {
		err = p.trie.Visit(visitor)
	} else {
		err = p.trie.VisitSubtree(patricia.Prefix(prefix), visitor)
	}
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}

	// patricia does not guarantee child order
	slices.SortFunc(out, func(a, b Entry) int {
		return strings.Compare(a.Text, b.Text)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Len returns the number of distinct complete entries.
func (p *PatriciaIndex) Len() int {
	return p.entries
}
