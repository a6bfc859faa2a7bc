package store

import (
	"path/filepath"
	"testing"

	"noted/internal/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)

	session, err := s.Session()
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if session != nil {
		t.Fatalf("expected no session in fresh store, got %+v", session)
	}

	want := &types.Session{ID: "u1", Name: "Ann", Email: "a@b.c", Token: "tok"}
	if err := s.SaveSession(want); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	got, err := s.Session()
	if err != nil {
		t.Fatalf("Session after save: %v", err)
	}
	if got == nil || *got != *want {
		t.Fatalf("session = %+v, want %+v", got, want)
	}

	if err := s.ClearSession(); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	got, err = s.Session()
	if err != nil {
		t.Fatalf("Session after clear: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil session after clear, got %+v", got)
	}
}

func TestSessionWithoutTokenTreatedAsAbsent(t *testing.T) {
	s := openTestStore(t)
	if err := s.SaveSession(&types.Session{ID: "u1"}); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	got, err := s.Session()
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if got != nil {
		t.Fatalf("tokenless session should be treated as absent, got %+v", got)
	}
}

func TestDarkModeDefaultsToLight(t *testing.T) {
	s := openTestStore(t)

	dark, err := s.DarkMode()
	if err != nil {
		t.Fatalf("DarkMode: %v", err)
	}
	if dark {
		t.Fatal("fresh store should default to light")
	}

	if err := s.SaveDarkMode(true); err != nil {
		t.Fatalf("SaveDarkMode: %v", err)
	}
	dark, err = s.DarkMode()
	if err != nil {
		t.Fatalf("DarkMode: %v", err)
	}
	if !dark {
		t.Fatal("expected dark after save")
	}
}
