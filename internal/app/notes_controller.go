package app

import (
	"strings"

	"noted/internal/types"
)

// NotesController owns the authoritative note collection for the mounted
// dashboard. It merges locally-initiated CRUD results and remote push events
// into one ordered list, tracks the filter state driving server-side
// queries, and guards against stale fetch responses with a generation
// counter (last request wins).
type NotesController struct {
	notes      []*types.Note
	categories []string

	searchQuery      string
	selectedCategory string

	fetchSeq int
	loading  bool
	fetchErr string

	cursor int
}

func NewNotesController() *NotesController {
	return &NotesController{
		categories:       []string{types.DefaultCategory},
		selectedCategory: types.CategoryAll,
	}
}

// Reset discards all dashboard state. Called when the dashboard unmounts;
// the collection is a cache of server truth, not client-owned data.
func (c *NotesController) Reset() {
	c.notes = nil
	c.categories = []string{types.DefaultCategory}
	c.searchQuery = ""
	c.selectedCategory = types.CategoryAll
	c.fetchSeq++
	c.loading = false
	c.fetchErr = ""
	c.cursor = 0
}

// BeginFetch marks a new query generation and returns it. Responses carrying
// an older generation are discarded by ApplyFetch.
func (c *NotesController) BeginFetch() int {
	c.fetchSeq++
	c.loading = true
	return c.fetchSeq
}

// ApplyFetch installs a fetch result if it is still the newest issued query.
// Stale responses report false and leave the collection untouched. A failed
// fetch empties the visible collection and raises the banner error.
func (c *NotesController) ApplyFetch(seq int, notes []*types.Note, err error) bool {
	if seq != c.fetchSeq {
		return false
	}
	c.loading = false
	if err != nil {
		c.notes = nil
		c.fetchErr = "Failed to fetch notes"
		c.clampCursor()
		return true
	}
	c.fetchErr = ""
	c.notes = append([]*types.Note{}, notes...)
	c.clampCursor()
	return true
}

// ApplyCreated merges a creation. A duplicate delivery for a known id
// replaces in place instead of inserting twice.
func (c *NotesController) ApplyCreated(note *types.Note) {
	if note == nil || note.ID == "" {
		return
	}
	if i := c.indexOf(note.ID); i >= 0 {
		c.notes[i] = note
		return
	}
	c.notes = append([]*types.Note{note}, c.notes...)
}

// ApplyUpdated replaces the entry's fields. An update for an unknown id is
// treated as a creation, healing a missed create event.
func (c *NotesController) ApplyUpdated(note *types.Note) {
	if note == nil || note.ID == "" {
		return
	}
	if i := c.indexOf(note.ID); i >= 0 {
		c.notes[i] = note
		return
	}
	c.ApplyCreated(note)
}

// ApplyDeleted removes the entry if present, preserving the order of the
// rest. Unknown ids are a no-op.
func (c *NotesController) ApplyDeleted(id string) {
	i := c.indexOf(id)
	if i < 0 {
		return
	}
	c.notes = append(c.notes[:i], c.notes[i+1:]...)
	c.clampCursor()
}

// ApplyEvent dispatches one push event into the collection. Events apply to
// the authoritative cache regardless of the current filter; a note outside
// the filter simply won't appear until a matching fetch.
func (c *NotesController) ApplyEvent(event types.NoteEvent) {
	switch event.Kind {
	case types.NoteEventCreated:
		c.ApplyCreated(event.Note)
	case types.NoteEventUpdated:
		c.ApplyUpdated(event.Note)
	case types.NoteEventDeleted:
		c.ApplyDeleted(event.NoteID)
	}
}

// ApplyLocalSave merges the server's response to a local create/update
// directly, so the originator sees its own change even if the push channel
// is momentarily down. The later echo event is idempotent against this.
func (c *NotesController) ApplyLocalSave(note *types.Note) {
	c.ApplyUpdated(note)
}

func (c *NotesController) SearchQuery() string {
	return c.searchQuery
}

// SetSearchQuery records the new search text and reports whether it changed
// (and therefore needs a debounced fetch).
func (c *NotesController) SetSearchQuery(query string) bool {
	query = strings.TrimSpace(query)
	if query == c.searchQuery {
		return false
	}
	c.searchQuery = query
	return true
}

func (c *NotesController) SelectedCategory() string {
	return c.selectedCategory
}

// CycleCategory moves the category filter through All plus the known
// categories and returns the new selection. Category changes fetch
// immediately, without debounce.
func (c *NotesController) CycleCategory(delta int) string {
	options := c.FilterOptions()
	current := 0
	for i, option := range options {
		if option == c.selectedCategory {
			current = i
			break
		}
	}
	next := (current + delta + len(options)) % len(options)
	c.selectedCategory = options[next]
	return c.selectedCategory
}

// SetCategories installs the server's distinct-category list, keeping the
// default category first and deduplicating it.
func (c *NotesController) SetCategories(categories []string) {
	out := []string{types.DefaultCategory}
	seen := map[string]struct{}{types.DefaultCategory: {}}
	for _, raw := range categories {
		category := strings.TrimSpace(raw)
		if category == "" {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		out = append(out, category)
	}
	c.categories = out
	// Keep a selection that disappeared from the server list; it only
	// affects which query is issued.
}

// Categories returns the known category set, default first.
func (c *NotesController) Categories() []string {
	return c.categories
}

// FilterOptions is the category filter cycle: All plus the known set.
func (c *NotesController) FilterOptions() []string {
	return append([]string{types.CategoryAll}, c.categories...)
}

// Filtered reports whether any filter is active, which decides between the
// plain list endpoint and the search endpoint.
func (c *NotesController) Filtered() bool {
	return c.searchQuery != "" || c.selectedCategory != types.CategoryAll
}

func (c *NotesController) Notes() []*types.Note {
	return c.notes
}

func (c *NotesController) Len() int {
	return len(c.notes)
}

func (c *NotesController) Loading() bool {
	return c.loading
}

func (c *NotesController) FetchError() string {
	return c.fetchErr
}

func (c *NotesController) Cursor() int {
	return c.cursor
}

func (c *NotesController) Selected() *types.Note {
	if c.cursor < 0 || c.cursor >= len(c.notes) {
		return nil
	}
	return c.notes[c.cursor]
}

func (c *NotesController) MoveCursor(delta int) {
	c.cursor += delta
	c.clampCursor()
}

func (c *NotesController) clampCursor() {
	if c.cursor >= len(c.notes) {
		c.cursor = len(c.notes) - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
}

func (c *NotesController) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, note := range c.notes {
		if note.ID == id {
			return i
		}
	}
	return -1
}
