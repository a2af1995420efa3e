package suggest

import (
	"errors"
	"fmt"
	"strings"
)

// Index backends selectable by name.
const (
	BackendArena    = "arena"
	BackendPatricia = "patricia"
)

// ErrUnknownBackend is returned by NewIndex for unsupported backend names.
var ErrUnknownBackend = errors.New("unknown index backend")

// NewIndex returns an empty index for the named backend.
// The empty name selects the arena trie.
func NewIndex(backend string) (Index, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendArena:
		return NewPrefixTrie(), nil
	case BackendPatricia:
		return NewPatriciaIndex(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

// QueryResult is the answer to a single query.
type QueryResult struct {
	Query    string
	Count    int
	Position Position
}

// Exact reports whether the query is itself a complete entry.
func (r QueryResult) Exact() bool {
	return r.Count > 0 && r.Position.Found()
}

// Query counts the entries under q and, only when there are any, looks up
// the position of q itself.
func Query(idx Index, q string) QueryResult {
	res := QueryResult{
		Query:    q,
		Count:    idx.CountWithPrefix(q),
		Position: NotFound,
	}
	if res.Count > 0 {
		res.Position = idx.LookupExact(q)
	}
	return res
}

// Stats returns statistics about a loaded index.
func Stats(idx Index) map[string]int {
	stats := map[string]int{
		"entries": idx.Len(),
	}
	if sized, ok := idx.(interface{ Nodes() int }); ok {
		stats["nodes"] = sized.Nodes()
	}
	return stats
}

// BackendName returns the backend name of idx.
func BackendName(idx Index) string {
	switch idx.(type) {
	case *PrefixTrie:
		return BackendArena
	case *PatriciaIndex:
		return BackendPatricia
	}
	return "unknown"
}
