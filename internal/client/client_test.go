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

func newTestClient(url string) *Client {
	c := New(url)
	c.http.Timeout = 2 * time.Second
	return c
}

func TestLoginReturnsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "a@b.c" || body["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(types.Session{ID: "u1", Name: "Ann", Email: "a@b.c", Token: "tok"})
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	session, err := c.Login(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.ID != "u1" || session.Token != "tok" {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestLoginFailureCarriesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.Login(context.Background(), "a@b.c", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr := AsAPIError(err)
	if apiErr == nil {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "Invalid credentials" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
	if got := UserMessage(err, "fallback"); got != "Invalid credentials" {
		t.Fatalf("UserMessage = %q", got)
	}
}

func TestAuthenticatedRequestsAttachBearer(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]*types.Note{})
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	c.SetToken("tok")
	if _, err := c.ListNotes(context.Background()); err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
}

func TestAuthenticatedRequestWithoutTokenFailsEarly(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	if _, err := c.ListNotes(context.Background()); err == nil {
		t.Fatal("expected error without token")
	}
	if requests != 0 {
		t.Fatalf("request should not reach server, got %d", requests)
	}
}

func TestSearchNotesQueryParams(t *testing.T) {
	var gotQuery, gotCategory string
	var hasCategory bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/notes/search" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotQuery = r.URL.Query().Get("query")
		gotCategory = r.URL.Query().Get("category")
		_, hasCategory = r.URL.Query()["category"]
		_ = json.NewEncoder(w).Encode([]*types.Note{{ID: "n1", Title: "Groceries"}})
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	c.SetToken("tok")

	notes, err := c.SearchNotes(context.Background(), "milk", "Work")
	if err != nil {
		t.Fatalf("SearchNotes: %v", err)
	}
	if len(notes) != 1 || notes[0].ID != "n1" {
		t.Fatalf("unexpected notes: %+v", notes)
	}
	if gotQuery != "milk" || gotCategory != "Work" {
		t.Fatalf("query=%q category=%q", gotQuery, gotCategory)
	}

	if _, err := c.SearchNotes(context.Background(), "milk", types.CategoryAll); err != nil {
		t.Fatalf("SearchNotes all: %v", err)
	}
	if hasCategory {
		t.Fatal("category param should be omitted for All")
	}
}

func TestCreateUpdateDeleteNote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/notes":
			var req NoteRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			_ = json.NewEncoder(w).Encode(types.Note{ID: "n1", Title: req.Title, Category: req.Category, Publicity: req.Publicity})
		case r.Method == http.MethodPut && r.URL.Path == "/api/notes/n1":
			var req NoteRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			_ = json.NewEncoder(w).Encode(types.Note{ID: "n1", Title: req.Title})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/notes/n1":
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	c.SetToken("tok")
	ctx := context.Background()

	created, err := c.CreateNote(ctx, NoteRequest{Title: "Groceries", Content: "milk, eggs", Category: "General", Publicity: types.NotePrivate})
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if created.ID != "n1" || created.Publicity != types.NotePrivate {
		t.Fatalf("unexpected created note: %+v", created)
	}

	updated, err := c.UpdateNote(ctx, "n1", NoteRequest{Title: "Groceries v2"})
	if err != nil {
		t.Fatalf("UpdateNote: %v", err)
	}
	if updated.Title != "Groceries v2" {
		t.Fatalf("unexpected updated note: %+v", updated)
	}

	if err := c.DeleteNote(ctx, "n1"); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	if err := c.DeleteNote(ctx, ""); err == nil {
		t.Fatal("expected error for empty id")
	}
}
