package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Warn)
	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestFieldsAndQuoting(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Debug).With(F("op", "delete note"))
	logger.Error("request failed", F("err", errors.New("boom: bad id")))
	out := buf.String()
	if !strings.Contains(out, `op="delete note"`) {
		t.Fatalf("bound field missing or unquoted: %q", out)
	}
	if !strings.Contains(out, `err="boom: bad id"`) {
		t.Fatalf("error field missing: %q", out)
	}
	if !strings.Contains(out, "level=error") {
		t.Fatalf("level missing: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		"WARN":    Warn,
		"warning": Warn,
		"error":   Error,
		"":        Info,
		"bogus":   Info,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}
