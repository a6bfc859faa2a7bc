package client

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"noted/internal/types"
)

// NoteEvents opens the per-user push stream and returns a channel of decoded
// events plus a cancel func that tears the stream down. Events are delivered
// in arrival order; the channel closes when the stream ends or is canceled.
func (c *Client) NoteEvents(ctx context.Context, userID string) (<-chan types.NoteEvent, func(), error) {
	if err := c.ensureToken(); err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	endpoint := c.baseURL + "/api/events?user=" + url.QueryEscape(userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "text/event-stream")

	// The stream outlives the client's request timeout on purpose.
	httpClient := &http.Client{Transport: c.http.Transport}
	resp, err := httpClient.Do(req)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		cancel()
		return nil, nil, decodeAPIError(resp)
	}

	ch := make(chan types.NoteEvent, 256)
	go func() {
		defer close(ch)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		eventName := ""
		var dataLines []string

		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				if len(dataLines) == 0 {
					eventName = ""
					continue
				}
				payload := strings.Join(dataLines, "\n")
				dataLines = dataLines[:0]
				event, ok := decodeNoteEvent(eventName, payload)
				eventName = ""
				if !ok {
					continue
				}
				select {
				case ch <- event:
				case <-ctx.Done():
					return
				}
				continue
			}
			if strings.HasPrefix(line, "event:") {
				eventName = strings.TrimSpace(line[len("event:"):])
				continue
			}
			if strings.HasPrefix(line, "data:") {
				dataLines = append(dataLines, strings.TrimSpace(line[len("data:"):]))
			}
		}
	}()

	return ch, cancel, nil
}

func decodeNoteEvent(name, payload string) (types.NoteEvent, bool) {
	switch types.NoteEventKind(name) {
	case types.NoteEventCreated, types.NoteEventUpdated:
		var note types.Note
		if err := json.Unmarshal([]byte(payload), &note); err != nil || note.ID == "" {
			return types.NoteEvent{}, false
		}
		return types.NoteEvent{Kind: types.NoteEventKind(name), Note: &note, NoteID: note.ID}, true
	case types.NoteEventDeleted:
		id := decodeDeletedID(payload)
		if id == "" {
			return types.NoteEvent{}, false
		}
		return types.NoteEvent{Kind: types.NoteEventDeleted, NoteID: id}, true
	default:
		return types.NoteEvent{}, false
	}
}

// decodeDeletedID accepts either {"id":"..."} or a bare JSON string; the
// server has shipped both shapes for noteDeleted.
func decodeDeletedID(payload string) string {
	var wrapped struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(payload), &wrapped); err == nil && wrapped.ID != "" {
		return wrapped.ID
	}
	var bare string
	if err := json.Unmarshal([]byte(payload), &bare); err == nil {
		return strings.TrimSpace(bare)
	}
	return ""
}
