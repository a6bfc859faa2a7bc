package app

import (
	"time"

	"noted/internal/types"
)

type sessionRestoredMsg struct {
	session *types.Session
	dark    bool
	err     error
}

type loginMsg struct {
	session *types.Session
	err     error
}

type registerMsg struct {
	session *types.Session
	err     error
}

type profileMsg struct {
	session *types.Session
	err     error
}

type notesMsg struct {
	seq   int
	notes []*types.Note
	err   error
}

type categoriesMsg struct {
	categories []string
	err        error
}

type noteSavedMsg struct {
	note    *types.Note
	created bool
	err     error
}

type noteDeletedMsg struct {
	id  string
	err error
}

type noteEventsMsg struct {
	ch     <-chan types.NoteEvent
	cancel func()
	err    error
}

type searchDebounceMsg struct {
	seq int
}

type themeSavedMsg struct {
	err error
}

type sessionPersistedMsg struct {
	err error
}

type clipboardResultMsg struct {
	success string
	err     error
}

type tickMsg time.Time
