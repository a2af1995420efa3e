package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestSetup(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	testCases := []struct {
		level string
		debug bool
		want  log.Level
	}{
		{"info", false, log.InfoLevel},
		{"error", false, log.ErrorLevel},
		{"warn", true, log.DebugLevel},
		{"loud", false, log.WarnLevel},
	}

	for _, tc := range testCases {
		if got := Setup(tc.level, tc.debug); got != tc.want {
			t.Errorf("Setup(%q, %v) = %v, want %v", tc.level, tc.debug, got, tc.want)
		}
		if log.GetLevel() != tc.want {
			t.Errorf("Setup(%q, %v) left level %v", tc.level, tc.debug, log.GetLevel())
		}
	}
}

func TestNewWithConfigPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithConfig(&buf, "index", log.InfoLevel, false, false, log.TextFormatter)
	l.Info("loaded", "entries", 2)
	l.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "index") || !strings.Contains(out, "entries=2") {
		t.Errorf("unexpected log output: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
}
