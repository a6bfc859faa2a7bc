package types

// NoteEventKind names the three push notifications the server emits on a
// user's event stream. The wire names match the server's event field.
type NoteEventKind string

const (
	NoteEventCreated NoteEventKind = "noteCreated"
	NoteEventUpdated NoteEventKind = "noteUpdated"
	NoteEventDeleted NoteEventKind = "noteDeleted"
)

// NoteEvent is one push delta. Note is set for created/updated events;
// NoteID is set for all three.
type NoteEvent struct {
	Kind   NoteEventKind
	Note   *Note
	NoteID string
}
