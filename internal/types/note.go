package types

import "time"

// DefaultCategory is the reserved category every account starts with. The
// server guarantees it exists; the client pins it to the top of category lists.
const DefaultCategory = "General"

// CategoryAll is the filter sentinel meaning "do not filter by category".
// It is client-side only and never sent to the server.
const CategoryAll = "All"

type NotePublicity string

const (
	NotePrivate NotePublicity = "private"
	NotePublic  NotePublicity = "public"
)

// Note is a server-owned record. The client never mints an ID and never
// assigns timestamps; both are authoritative on the server side.
type Note struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content,omitempty"`
	Category  string        `json:"category,omitempty"`
	Publicity NotePublicity `json:"publicity,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
