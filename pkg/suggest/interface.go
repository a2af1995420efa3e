// Package suggest is the core, providing the prefix tree that indexes entries and the
// counting and lookup traversals answered from it.
package suggest

// Index defines the interface for entry indexes.
type Index interface {
	// Insert adds text as a complete entry defined at the given position.
	// Inserting the same text again replaces its position.
	Insert(text string, offset, lineLength int)

	// CountWithPrefix returns how many complete entries start with prefix.
	CountWithPrefix(prefix string) int

	// LookupExact returns the position of text, or NotFound when text
	// was never inserted as a complete entry.
	LookupExact(text string) Position

	// Entries lists complete entries under prefix in byte order.
	// A limit <= 0 returns all of them.
	Entries(prefix string, limit int) []Entry

	// Len returns the number of distinct complete entries.
	Len() int
}

// Position locates the line an entry was defined on.
type Position struct {
	Offset     int // byte offset of the line start
	LineLength int // length of the line content, terminator excluded
}

// NotFound is the position reported for texts that are not complete entries.
var NotFound = Position{Offset: -1, LineLength: 0}

// Found reports whether p refers to a real line.
func (p Position) Found() bool {
	return p.Offset != -1
}

// Entry is a complete entry together with where it was defined.
type Entry struct {
	Text string
	Position
}
