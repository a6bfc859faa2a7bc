package main

import (
	"strings"
	"testing"
	"time"

	"noted/internal/types"
)

func TestWriteNotesTable(t *testing.T) {
	updated := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	notes := []*types.Note{
		{Title: "groceries", Category: "General", Publicity: types.NotePrivate, UpdatedAt: updated},
		{Title: "launch plan", Category: "Work", Publicity: types.NotePublic},
	}

	var b strings.Builder
	if err := writeNotesTable(&b, notes); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "TITLE") {
		t.Fatalf("missing header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "groceries") || !strings.Contains(lines[1], "private") {
		t.Fatalf("row: %q", lines[1])
	}
	if !strings.Contains(lines[2], "Work") || !strings.Contains(lines[2], "public") {
		t.Fatalf("row: %q", lines[2])
	}
}

func TestWriteNotesTableEmpty(t *testing.T) {
	var b strings.Builder
	if err := writeNotesTable(&b, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(b.String(), "TITLE") {
		t.Fatal("header should print even with no notes")
	}
}
