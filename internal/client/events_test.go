package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"noted/internal/types"
)

func TestNoteEventsParsesAllKinds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("user") != "u1" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		flusher, _ := w.(http.Flusher)

		note, _ := json.Marshal(types.Note{ID: "n1", Title: "Groceries"})
		_, _ = w.Write([]byte("event: noteCreated\ndata: " + string(note) + "\n\n"))
		updated, _ := json.Marshal(types.Note{ID: "n1", Title: "Groceries v2"})
		_, _ = w.Write([]byte("event: noteUpdated\ndata: " + string(updated) + "\n\n"))
		_, _ = w.Write([]byte("event: noteDeleted\ndata: {\"id\":\"n1\"}\n\n"))
		// Unknown kinds are skipped without breaking the stream.
		_, _ = w.Write([]byte("event: serverPing\ndata: {}\n\n"))
		if flusher != nil {
			flusher.Flush()
		}
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	c.SetToken("tok")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ch, stop, err := c.NoteEvents(ctx, "u1")
	if err != nil {
		t.Fatalf("NoteEvents: %v", err)
	}
	defer stop()

	want := []types.NoteEventKind{types.NoteEventCreated, types.NoteEventUpdated, types.NoteEventDeleted}
	for i, kind := range want {
		select {
		case event, ok := <-ch:
			if !ok {
				t.Fatalf("stream closed before event %d", i)
			}
			if event.Kind != kind {
				t.Fatalf("event %d kind = %q, want %q", i, event.Kind, kind)
			}
			if event.NoteID != "n1" {
				t.Fatalf("event %d id = %q", i, event.NoteID)
			}
			if kind != types.NoteEventDeleted && (event.Note == nil || event.Note.ID != "n1") {
				t.Fatalf("event %d missing note payload", i)
			}
		case <-time.After(time.Second):
			t.Fatalf("timeout waiting for event %d", i)
		}
	}
}

func TestNoteEventsCancelClosesChannel(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		if flusher, ok := w.(http.Flusher); ok {
			flusher.Flush()
		}
		<-release
	}))
	defer server.Close()
	defer close(release)

	c := newTestClient(server.URL)
	c.SetToken("tok")

	ch, stop, err := c.NoteEvents(context.Background(), "u1")
	if err != nil {
		t.Fatalf("NoteEvents: %v", err)
	}
	stop()

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("expected closed channel after cancel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestNoteEventsEscapesUserID(t *testing.T) {
	userID := "u 1&next=2"
	var gotUser string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = r.URL.Query().Get("user")
		w.Header().Set("Content-Type", "text/event-stream")
		if flusher, ok := w.(http.Flusher); ok {
			flusher.Flush()
		}
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	c.SetToken("tok")

	ch, stop, err := c.NoteEvents(context.Background(), userID)
	if err != nil {
		t.Fatalf("NoteEvents: %v", err)
	}
	defer stop()
	<-ch

	if gotUser != userID {
		t.Fatalf("user param = %q, want %q", gotUser, userID)
	}
}

func TestNoteEventsRejectedWithoutToken(t *testing.T) {
	c := newTestClient("http://127.0.0.1:0")
	if _, _, err := c.NoteEvents(context.Background(), "u1"); err == nil {
		t.Fatal("expected error without token")
	}
}

func TestDecodeDeletedIDShapes(t *testing.T) {
	if got := decodeDeletedID(`{"id":"n2"}`); got != "n2" {
		t.Fatalf("wrapped id = %q", got)
	}
	if got := decodeDeletedID(`"n3"`); got != "n3" {
		t.Fatalf("bare id = %q", got)
	}
	if got := decodeDeletedID(`{}`); got != "" {
		t.Fatalf("empty payload id = %q", got)
	}
}
