/*
Package dictionary turns a source file into index entries.

Every line of the source may define one entry: the text between the first '['
on the line and the first ']' after it. Entries remember where their line
starts (a byte offset that counts one terminator byte per line) and how long
the line is:

	a[cat]bc   -> "cat" at (0,8)
	x[car]y    -> "car" at (9,7)

Lines without a usable bracket pair, including "[]", define nothing but still
advance the offset.
*/
package dictionary

import (
	"bufio"
	"io"
	"strings"
)

// TokenRecord is one entry found in the source.
type TokenRecord struct {
	Text       string
	Offset     int // byte offset of the line start
	LineLength int // line length without the terminator
	Line       int // 1-based line number
}

// Extractor scans lines in a single pass and yields at most one record per line.
// Lines split on '\n' only; a '\r' before it stays part of the line.
type Extractor struct {
	reader  *bufio.Reader
	offset  int
	lines   int
	skipped int
	done    bool
	err     error
}

// NewExtractor creates an extractor reading from r.
func NewExtractor(r io.Reader) *Extractor {
	return &Extractor{
		reader: bufio.NewReader(r),
	}
}

// Next returns the next record, or false once the input is exhausted or a
// read error occurred (see Err).
func (e *Extractor) Next() (TokenRecord, bool) {
	for {
		line, ok := e.readLine()
		if !ok {
			return TokenRecord{}, false
		}

		start := e.offset
		e.offset += len(line) + 1
		e.lines++

		text, found := ExtractLine(line)
		if !found {
			e.skipped++
			continue
		}
		return TokenRecord{
			Text:       text,
			Offset:     start,
			LineLength: len(line),
			Line:       e.lines,
		}, true
	}
}

// Err returns the first non-EOF read error.
func (e *Extractor) Err() error {
	return e.err
}

// Lines returns the number of lines scanned so far.
func (e *Extractor) Lines() int {
	return e.lines
}

// Skipped returns the number of scanned lines that defined no entry.
func (e *Extractor) Skipped() int {
	return e.skipped
}

// Offset returns the running offset, i.e. where the next line would start.
func (e *Extractor) Offset() int {
	return e.offset
}

// readLine returns the next line without its terminator. A final line
// without '\n' is still a line; an empty tail after the last '\n' is not.
func (e *Extractor) readLine() (string, bool) {
	if e.done {
		return "", false
	}
	line, err := e.reader.ReadString('\n')
	if err != nil {
		e.done = true
		if err != io.EOF {
			e.err = err
			return "", false
		}
		return line, line != ""
	}
	return line[:len(line)-1], true
}

// ExtractLine returns the text between the first '[' and the first ']' after
// it. Empty or unterminated brackets yield false.
func ExtractLine(line string) (string, bool) {
	start := strings.IndexByte(line, '[')
	if start < 0 {
		return "", false
	}
	rest := line[start+1:]
	end := strings.IndexByte(rest, ']')
	if end < 1 {
		return "", false
	}
	return rest[:end], true
}

// Extract collects every record from r.
func Extract(r io.Reader) ([]TokenRecord, error) {
	ex := NewExtractor(r)
	var records []TokenRecord
	for {
		rec, ok := ex.Next()
		if !ok {
			break
		}
		records = append(records, rec)
	}
	return records, ex.Err()
}
