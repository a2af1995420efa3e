// Package cli handles the interactive query loop and the human readable output of the commands.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/bastiangx/wordindex/pkg/suggest"
	"github.com/charmbracelet/log"
)

// WordReader splits its input into whitespace separated words, the way a
// stream extraction into a string would. Words have no length limit.
type WordReader struct {
	reader *bufio.Reader
	word   []byte
}

// NewWordReader creates a reader over r.
func NewWordReader(r io.Reader) *WordReader {
	return &WordReader{reader: bufio.NewReader(r)}
}

// Next returns the next word, or io.EOF when the input is exhausted.
// Invalid UTF-8 bytes are kept as they are.
func (w *WordReader) Next() (string, error) {
	w.word = w.word[:0]
	for {
		r, size, err := w.reader.ReadRune()
		if err != nil {
			if err == io.EOF && len(w.word) > 0 {
				return string(w.word), nil
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			if len(w.word) > 0 {
				return string(w.word), nil
			}
			continue
		}
		if r == utf8.RuneError && size == 1 {
			w.reader.UnreadRune()
			b, _ := w.reader.ReadByte()
			w.word = append(w.word, b)
			continue
		}
		w.word = utf8.AppendRune(w.word, r)
	}
}

// QueryHandler answers queries read from a WordReader until the sentinel
// word or the end of input. The sentinel never reaches the index.
type QueryHandler struct {
	index        suggest.Index
	words        *WordReader
	out          io.Writer
	prompt       io.Writer
	sentinel     string
	requestCount int
}

// NewQueryHandler handles initialization of the QueryHandler with basic parameters.
func NewQueryHandler(idx suggest.Index, words *WordReader, out io.Writer, sentinel string) *QueryHandler {
	return &QueryHandler{
		index:    idx,
		words:    words,
		out:      out,
		sentinel: sentinel,
	}
}

// SetPrompt writes a "> " prompt to w before every read. A nil w disables it.
func (h *QueryHandler) SetPrompt(w io.Writer) {
	h.prompt = w
}

// Start runs the loop. It returns nil on the sentinel or at end of input.
func (h *QueryHandler) Start() error {
	for {
		if h.prompt != nil {
			fmt.Fprint(h.prompt, "> ")
		}
		q, err := h.words.Next()
		if err == io.EOF {
			log.Debugf("End of input after %d queries", h.requestCount)
			return nil
		}
		if err != nil {
			return err
		}
		if q == h.sentinel {
			log.Debugf("Sentinel received after %d queries", h.requestCount)
			return nil
		}
		if err := h.handleQuery(q); err != nil {
			return err
		}
	}
}

// Queries returns the number of queries answered.
func (h *QueryHandler) Queries() int {
	return h.requestCount
}

func (h *QueryHandler) handleQuery(q string) error {
	h.requestCount++
	start := time.Now()
	res := suggest.Query(h.index, q)
	log.Debugf("Took [ %v ] for query '%s'", time.Since(start), q)
	return WriteResult(h.out, res)
}

// WriteResult prints a query result:
//
//	ca is prefix of 2 words
//	cat is prefix of 1 words
//	cat is at (0,8)
//	dog is not prefix
func WriteResult(w io.Writer, res suggest.QueryResult) error {
	if res.Count == 0 {
		_, err := fmt.Fprintf(w, "%s is not prefix\n", res.Query)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s is prefix of %d words\n", res.Query, res.Count); err != nil {
		return err
	}
	if res.Exact() {
		_, err := fmt.Fprintf(w, "%s is at (%d,%d)\n", res.Query, res.Position.Offset, res.Position.LineLength)
		return err
	}
	return nil
}
