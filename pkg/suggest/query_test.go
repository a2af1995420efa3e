package suggest

import (
	"errors"
	"testing"
)

func TestNewIndex(t *testing.T) {
	testCases := []struct {
		backend string
		want    string
		wantErr bool
	}{
		{"", BackendArena, false},
		{"arena", BackendArena, false},
		{"Patricia", BackendPatricia, false},
		{" patricia ", BackendPatricia, false},
		{"btree", "", true},
	}

	for _, tc := range testCases {
		idx, err := NewIndex(tc.backend)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownBackend) {
				t.Errorf("NewIndex(%q) error = %v, want ErrUnknownBackend", tc.backend, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewIndex(%q) unexpected error: %v", tc.backend, err)
			continue
		}
		if got := BackendName(idx); got != tc.want {
			t.Errorf("NewIndex(%q) backend = %s, want %s", tc.backend, got, tc.want)
		}
	}
}

// countingIndex records LookupExact calls.
type countingIndex struct {
	Index
	lookups int
}

func (c *countingIndex) LookupExact(text string) Position {
	c.lookups++
	return c.Index.LookupExact(text)
}

func TestQuery(t *testing.T) {
	idx := &countingIndex{Index: NewPrefixTrie()}
	idx.Insert("cat", 0, 8)
	idx.Insert("car", 9, 7)

	testCases := []struct {
		query    string
		count    int
		exact    bool
		pos      Position
		lookedUp bool
	}{
		{"ca", 2, false, NotFound, true},
		{"cat", 1, true, Position{0, 8}, true},
		{"dog", 0, false, NotFound, false},
	}

	for _, tc := range testCases {
		before := idx.lookups
		res := Query(idx, tc.query)
		if res.Query != tc.query || res.Count != tc.count || res.Exact() != tc.exact || res.Position != tc.pos {
			t.Errorf("Query(%q) = %+v (exact %v), want count %d exact %v pos %v",
				tc.query, res, res.Exact(), tc.count, tc.exact, tc.pos)
		}
		if lookedUp := idx.lookups > before; lookedUp != tc.lookedUp {
			t.Errorf("Query(%q) lookup called = %v, want %v", tc.query, lookedUp, tc.lookedUp)
		}
	}
}

func TestStats(t *testing.T) {
	trie := NewPrefixTrie()
	trie.Insert("ab", 0, 1)
	trie.Insert("ac", 0, 1)

	stats := Stats(trie)
	if stats["entries"] != 2 || stats["nodes"] != 4 {
		t.Errorf("Stats(arena) = %v, want entries=2 nodes=4", stats)
	}

	pat := NewPatriciaIndex()
	pat.Insert("ab", 0, 1)
	stats = Stats(pat)
	if _, ok := stats["nodes"]; ok {
		t.Errorf("Stats(patricia) reports nodes: %v", stats)
	}
	if stats["entries"] != 1 {
		t.Errorf("Stats(patricia) entries = %d, want 1", stats["entries"])
	}
}
