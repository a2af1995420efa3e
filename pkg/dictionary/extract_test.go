package dictionary

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestExtractLine(t *testing.T) {
	testCases := []struct {
		line     string
		wantText string
		wantOK   bool
	}{
		{"a[cat]bc", "cat", true},
		{"[x]", "x", true},
		{"[a][b]", "a", true},
		{"pre [two words] post", "two words", true},
		{"[[nested]]", "[nested", true},
		{"]x[y]", "y", true},
		{"]oops[", "", false},
		{"[]", "", false},
		{"[] then [later]", "", false},
		{"no brackets", "", false},
		{"[unterminated", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		text, ok := ExtractLine(tc.line)
		if text != tc.wantText || ok != tc.wantOK {
			t.Errorf("ExtractLine(%q) = (%q, %v), want (%q, %v)", tc.line, text, ok, tc.wantText, tc.wantOK)
		}
	}
}

func TestExtractOffsets(t *testing.T) {
	input := "a[cat]bc\nx[car]y\n"
	records, err := Extract(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}

	want := []TokenRecord{
		{Text: "cat", Offset: 0, LineLength: 8, Line: 1},
		{Text: "car", Offset: 9, LineLength: 7, Line: 2},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d: %+v", len(records), len(want), records)
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, records[i], want[i])
		}
	}
}

// Skipped lines still advance the offset by their length plus one.
func TestExtractSkippedLinesAdvanceOffset(t *testing.T) {
	input := "header line\n\n[]\n  [dog] barks\nlast[x]"
	records, err := Extract(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}

	want := []TokenRecord{
		{Text: "dog", Offset: 16, LineLength: 13, Line: 4},
		{Text: "x", Offset: 30, LineLength: 7, Line: 5},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d: %+v", len(records), len(want), records)
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, records[i], want[i])
		}
	}
}

func TestExtractorCounters(t *testing.T) {
	ex := NewExtractor(strings.NewReader("[a]\nnothing\n[b]\n"))
	n := 0
	for {
		if _, ok := ex.Next(); !ok {
			break
		}
		n++
	}
	if n != 2 || ex.Lines() != 3 || ex.Skipped() != 1 || ex.Offset() != 16 {
		t.Errorf("records=%d lines=%d skipped=%d offset=%d, want 2 3 1 16", n, ex.Lines(), ex.Skipped(), ex.Offset())
	}
	// exhausted extractors stay exhausted
	if _, ok := ex.Next(); ok {
		t.Error("Next after EOF returned a record")
	}
}

// Carriage returns are content, as with a byte oriented getline.
func TestExtractKeepsCarriageReturn(t *testing.T) {
	records, err := Extract(strings.NewReader("[a]\r\n[b]\r\n"))
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].LineLength != 4 || records[1].Offset != 5 {
		t.Errorf("records = %+v, want lengths counting \\r", records)
	}
}

func TestExtractLongLine(t *testing.T) {
	long := strings.Repeat("z", 200000)
	records, err := Extract(strings.NewReader("[" + long + "]\n[b]"))
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if len(records) != 2 || records[0].Text != long || records[1].Offset != len(long)+3 {
		t.Errorf("long line not handled: %d records", len(records))
	}
}

func TestExtractReadError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("[a]\n"), iotest.ErrReader(boom))
	records, err := Extract(r)
	if !errors.Is(err, boom) {
		t.Fatalf("Extract error = %v, want boom", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records before the error, want 1", len(records))
	}
}
