package dictionary

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordindex/pkg/suggest"
	"github.com/charmbracelet/log"
)

// ErrIsDirectory is wrapped by FileAccessError when the source path is a directory.
var ErrIsDirectory = errors.New("is a directory")

// FileAccessError reports a source file that could not be opened.
// Nothing has been indexed when it is returned.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot open source file %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// LoadStats describes a completed build.
type LoadStats struct {
	Lines   int
	Tokens  int
	Skipped int
	Bytes   int
	Elapsed time.Duration
}

// LoadFile opens path and inserts every entry it defines into idx.
func LoadFile(path string, idx suggest.Index) (LoadStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return LoadStats{}, &FileAccessError{Path: path, Err: err}
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return LoadStats{}, &FileAccessError{Path: path, Err: err}
	}
	if info.IsDir() {
		return LoadStats{}, &FileAccessError{Path: path, Err: ErrIsDirectory}
	}

	log.Debugf("Loading entries from: %s (%d bytes)", path, info.Size())
	return Load(file, idx)
}

// Load inserts every entry read from r into idx, in source order.
func Load(r io.Reader, idx suggest.Index) (LoadStats, error) {
	start := time.Now()
	ex := NewExtractor(r)

	tokens := 0
	for {
		rec, ok := ex.Next()
		if !ok {
			break
		}
		idx.Insert(rec.Text, rec.Offset, rec.LineLength)
		tokens++
		log.Debug("Indexed entry", "text", rec.Text, "line", rec.Line, "offset", rec.Offset, "len", rec.LineLength)
	}

	stats := LoadStats{
		Lines:   ex.Lines(),
		Tokens:  tokens,
		Skipped: ex.Skipped(),
		Bytes:   ex.Offset(),
		Elapsed: time.Since(start),
	}
	if err := ex.Err(); err != nil {
		return stats, fmt.Errorf("failed to read source: %w", err)
	}

	log.Debugf("Loaded %d entries from %d lines (%d skipped) in %v", stats.Tokens, stats.Lines, stats.Skipped, stats.Elapsed)
	return stats, nil
}
