package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFormatWithCommas(t *testing.T) {
	testCases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{-98765, "-98,765"},
	}
	for _, tc := range testCases {
		if got := FormatWithCommas(tc.in); got != tc.want {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPadRightWideRunes(t *testing.T) {
	// CJK runes take two cells
	if got := PadRight("日本", 6); got != "日本  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := MaxWidth([]string{"ab", "日本語", "x"}); got != 6 {
		t.Errorf("MaxWidth = %d, want 6", got)
	}
}

func TestSaveAndLoadTOML(t *testing.T) {
	type section struct {
		Name  string `toml:"name"`
		Count int    `toml:"count"`
	}
	type doc struct {
		Main section `toml:"main"`
	}

	path := filepath.Join(t.TempDir(), "cfg.toml")
	if err := SaveTOMLFile(doc{Main: section{Name: "x", Count: 3}}, path); err != nil {
		t.Fatalf("SaveTOMLFile error: %v", err)
	}

	var got doc
	if err := LoadTOMLFile(path, &got); err != nil {
		t.Fatalf("LoadTOMLFile error: %v", err)
	}
	if got.Main.Name != "x" || got.Main.Count != 3 {
		t.Errorf("round trip = %+v", got)
	}

	raw, err := ParseTOMLWithRecovery(path)
	if err != nil {
		t.Fatalf("ParseTOMLWithRecovery error: %v", err)
	}
	sec, ok := ExtractSection(raw, "main")
	if !ok {
		t.Fatalf("section main missing in %v", raw)
	}
	if n, ok := ExtractInt64(sec, "count"); !ok || n != 3 {
		t.Errorf("ExtractInt64(count) = %d, %v", n, ok)
	}
	if s, ok := ExtractString(sec, "name"); !ok || s != "x" {
		t.Errorf("ExtractString(name) = %q, %v", s, ok)
	}
	if _, ok := ExtractInt64(sec, "name"); ok {
		t.Error("ExtractInt64 accepted a string")
	}
}

func TestCheckDirStatusCreates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	res := CheckDirStatus(dir)
	if !res.Exists || !res.Writable || res.Error != nil {
		t.Fatalf("CheckDirStatus = %+v", res)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("dir not created: %v", err)
	}
	if !FileExists(dir) {
		t.Error("FileExists(dir) = false")
	}
}
