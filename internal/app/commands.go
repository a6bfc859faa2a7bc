package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"noted/internal/client"
	"noted/internal/store"
	"noted/internal/types"
)

const (
	requestTimeout = 4 * time.Second
	mutateTimeout  = 6 * time.Second
	tickInterval   = 100 * time.Millisecond
)

func restoreSessionCmd(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		session, err := st.Session()
		if err != nil {
			return sessionRestoredMsg{err: err}
		}
		dark, err := st.DarkMode()
		if err != nil {
			return sessionRestoredMsg{session: session, err: err}
		}
		return sessionRestoredMsg{session: session, dark: dark}
	}
}

func loginCmd(api AuthAPI, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		session, err := api.Login(ctx, email, password)
		return loginMsg{session: session, err: err}
	}
}

func registerCmd(api AuthAPI, name, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		session, err := api.Register(ctx, name, email, password)
		return registerMsg{session: session, err: err}
	}
}

func updateProfileCmd(api AuthAPI, req client.ProfileRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), mutateTimeout)
		defer cancel()
		session, err := api.UpdateProfile(ctx, req)
		return profileMsg{session: session, err: err}
	}
}

// fetchNotesCmd issues the query for the given filter state. The sequence
// travels with the response so stale results can be discarded.
func fetchNotesCmd(api NotesAPI, seq int, query, category string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		var notes []*types.Note
		var err error
		if query == "" && (category == "" || category == types.CategoryAll) {
			notes, err = api.ListNotes(ctx)
		} else {
			notes, err = api.SearchNotes(ctx, query, category)
		}
		return notesMsg{seq: seq, notes: notes, err: err}
	}
}

func fetchCategoriesCmd(api NotesAPI) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		categories, err := api.ListCategories(ctx)
		return categoriesMsg{categories: categories, err: err}
	}
}

func createNoteCmd(api NotesAPI, req client.NoteRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), mutateTimeout)
		defer cancel()
		note, err := api.CreateNote(ctx, req)
		return noteSavedMsg{note: note, created: true, err: err}
	}
}

func updateNoteCmd(api NotesAPI, id string, req client.NoteRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), mutateTimeout)
		defer cancel()
		note, err := api.UpdateNote(ctx, id, req)
		return noteSavedMsg{note: note, err: err}
	}
}

func deleteNoteCmd(api NotesAPI, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), mutateTimeout)
		defer cancel()
		err := api.DeleteNote(ctx, id)
		return noteDeletedMsg{id: id, err: err}
	}
}

// openNoteEventsCmd joins the user's push channel. The subscription is
// long-lived; it is torn down by NoteStreamController.Reset.
func openNoteEventsCmd(api NotesAPI, userID string) tea.Cmd {
	return func() tea.Msg {
		ch, cancel, err := api.NoteEvents(context.Background(), userID)
		return noteEventsMsg{ch: ch, cancel: cancel, err: err}
	}
}

func debounceSearchCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func saveSessionCmd(st *store.Store, session *types.Session) tea.Cmd {
	return func() tea.Msg {
		return sessionPersistedMsg{err: st.SaveSession(session)}
	}
}

func clearSessionCmd(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		return sessionPersistedMsg{err: st.ClearSession()}
	}
}

func saveThemeCmd(st *store.Store, dark bool) tea.Cmd {
	return func() tea.Msg {
		return themeSavedMsg{err: st.SaveDarkMode(dark)}
	}
}

func copyNoteCmd(text, success string) tea.Cmd {
	return func() tea.Msg {
		_, err := copyTextToClipboard(text)
		return clipboardResultMsg{success: success, err: err}
	}
}
