package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"noted/internal/types"
)

// Client talks to the note service's JSON API. The bearer credential lives
// on the client instance and nowhere else; callers arm it after login or
// session restore and disarm it on logout.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) SetToken(token string) {
	c.token = strings.TrimSpace(token)
}

func (c *Client) ClearToken() {
	c.token = ""
}

func (c *Client) Login(ctx context.Context, email, password string) (*types.Session, error) {
	var session types.Session
	req := loginRequest{Email: email, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", req, false, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*types.Session, error) {
	var session types.Session
	req := registerRequest{Name: name, Email: email, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", req, false, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req ProfileRequest) (*types.Session, error) {
	var updated types.Session
	if err := c.doJSON(ctx, http.MethodPut, "/api/users/profile", req, true, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) ListNotes(ctx context.Context) ([]*types.Note, error) {
	var notes []*types.Note
	if err := c.doJSON(ctx, http.MethodGet, "/api/notes", nil, true, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// SearchNotes fetches the server-filtered note list. The category
// "All" (or empty) means no category filter.
func (c *Client) SearchNotes(ctx context.Context, query, category string) ([]*types.Note, error) {
	values := url.Values{}
	values.Set("query", query)
	if category != "" && category != types.CategoryAll {
		values.Set("category", category)
	}
	var notes []*types.Note
	path := "/api/notes/search?" + values.Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, true, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.doJSON(ctx, http.MethodGet, "/api/notes/categories", nil, true, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateNote(ctx context.Context, req NoteRequest) (*types.Note, error) {
	var note types.Note
	if err := c.doJSON(ctx, http.MethodPost, "/api/notes", req, true, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) UpdateNote(ctx context.Context, id string, req NoteRequest) (*types.Note, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("note id is required")
	}
	var note types.Note
	if err := c.doJSON(ctx, http.MethodPut, "/api/notes/"+id, req, true, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("note id is required")
	}
	return c.doJSON(ctx, http.MethodDelete, "/api/notes/"+id, nil, true, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, requireAuth bool, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requireAuth {
		if err := c.ensureToken(); err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) ensureToken() error {
	if strings.TrimSpace(c.token) == "" {
		return errors.New("not signed in")
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	type errorPayload struct {
		Message string `json:"message"`
	}
	var payload errorPayload
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	if payload.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Message}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
}

// APIError carries the HTTP status and the server-supplied message. Auth
// failures surface it verbatim on the originating form.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// AsAPIError returns the APIError inside err, or nil.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// UserMessage extracts a message fit for direct display: the server's own
// wording when available, otherwise the fallback.
func UserMessage(err error, fallback string) string {
	if apiErr := AsAPIError(err); apiErr != nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
