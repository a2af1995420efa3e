package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/wordindex/pkg/suggest"
)

func TestWriteEntriesAligned(t *testing.T) {
	entries := []suggest.Entry{
		{Text: "car", Position: suggest.Position{Offset: 9, LineLength: 7}},
		{Text: "catalogue", Position: suggest.Position{Offset: 1234567, LineLength: 42}},
	}
	var buf bytes.Buffer
	if err := WriteEntries(&buf, entries, false); err != nil {
		t.Fatalf("WriteEntries error: %v", err)
	}

	want := `ENTRY       OFFSET  LENGTH
car              9       7
catalogue  1234567      42
2 entries
`
	assertTranscript(t, buf.String(), want)
}

func TestWriteEntriesColor(t *testing.T) {
	var buf bytes.Buffer
	entries := []suggest.Entry{{Text: "x", Position: suggest.Position{Offset: 0, LineLength: 3}}}
	if err := WriteEntries(&buf, entries, true); err != nil {
		t.Fatalf("WriteEntries error: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("colorized output has no escape codes: %q", buf.String())
	}
}

func TestWriteEntriesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEntries(&buf, nil, false); err != nil {
		t.Fatalf("WriteEntries error: %v", err)
	}
	assertTranscript(t, buf.String(), "ENTRY  OFFSET  LENGTH\n0 entries\n")
}
