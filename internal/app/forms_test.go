package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"noted/internal/types"
)

func typeString(update func(tea.Msg) tea.Cmd, s string) {
	for _, r := range s {
		update(keyRune(r))
	}
}

func TestLoginFormRequiresBothFields(t *testing.T) {
	f := NewLoginForm()
	typeString(func(msg tea.Msg) tea.Cmd { cmd, _ := f.Update(msg); return cmd }, "a@b.c")

	f.Update(key(tea.KeyEnter)) // advance to password
	_, submit := f.Update(key(tea.KeyEnter))
	if submit != nil {
		t.Fatal("empty password must not submit")
	}
	if f.errText == "" {
		t.Fatal("validation error expected")
	}

	typeString(func(msg tea.Msg) tea.Cmd { cmd, _ := f.Update(msg); return cmd }, "secret")
	_, submit = f.Update(key(tea.KeyEnter))
	if submit == nil {
		t.Fatal("valid form should submit")
	}
	if submit.Email != "a@b.c" || submit.Password != "secret" {
		t.Fatalf("got %+v", submit)
	}
}

func TestRegisterFormRejectsPasswordMismatch(t *testing.T) {
	f := NewRegisterForm()
	fill := func(s string) {
		typeString(func(msg tea.Msg) tea.Cmd { cmd, _ := f.Update(msg); return cmd }, s)
		f.Update(key(tea.KeyEnter))
	}
	fill("Ada")
	fill("a@b.c")
	fill("secret")
	fill("secres")

	if _, submit := f.Update(key(tea.KeyEnter)); submit != nil {
		t.Fatal("mismatched passwords must not submit")
	}
	if f.errText != "Passwords do not match" {
		t.Fatalf("got %q", f.errText)
	}
}

func TestRegisterFormRejectsShortPassword(t *testing.T) {
	f := NewRegisterForm()
	fill := func(s string) {
		typeString(func(msg tea.Msg) tea.Cmd { cmd, _ := f.Update(msg); return cmd }, s)
		f.Update(key(tea.KeyEnter))
	}
	fill("Ada")
	fill("a@b.c")
	fill("abc")
	fill("abc")

	if _, submit := f.Update(key(tea.KeyEnter)); submit != nil {
		t.Fatal("short password must not submit")
	}
	if f.errText != "Password must be at least 6 characters" {
		t.Fatalf("got %q", f.errText)
	}
}

func TestNoteFormDefaultsCategory(t *testing.T) {
	f := NewNoteForm()
	f.EnterNew(types.CategoryAll)

	typeString(func(msg tea.Msg) tea.Cmd { cmd, _ := f.Update(msg); return cmd }, "title")
	f.Update(key(tea.KeyEnter)) // to category, left empty
	f.Update(key(tea.KeyEnter)) // to content
	typeString(func(msg tea.Msg) tea.Cmd { cmd, _ := f.Update(msg); return cmd }, "body")

	_, submit := f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if submit == nil {
		t.Fatal("valid note should submit")
	}
	if submit.Category != types.DefaultCategory {
		t.Fatalf("blank category falls back to the default, got %q", submit.Category)
	}
	if submit.Publicity != types.NotePrivate {
		t.Fatalf("new notes default to private, got %q", submit.Publicity)
	}
}

func TestNoteFormSeedsActiveCategory(t *testing.T) {
	f := NewNoteForm()
	f.EnterNew("Work")
	if f.category.Value() != "Work" {
		t.Fatalf("got %q", f.category.Value())
	}

	f.EnterNew(types.CategoryAll)
	if f.category.Value() != "" {
		t.Fatal("the All sentinel is not a real category")
	}
}

func TestNoteFormRequiresTitleAndContent(t *testing.T) {
	f := NewNoteForm()
	f.EnterNew("")

	if _, submit := f.Update(tea.KeyMsg{Type: tea.KeyCtrlS}); submit != nil {
		t.Fatal("empty note must not submit")
	}
	if f.errText == "" {
		t.Fatal("validation error expected")
	}
}

func TestNoteFormEditPrefills(t *testing.T) {
	f := NewNoteForm()
	f.EnterEdit(&types.Note{
		ID:        "n1",
		Title:     "existing",
		Content:   "body",
		Category:  "Work",
		Publicity: types.NotePublic,
	})

	if !f.Editing() || f.NoteID() != "n1" {
		t.Fatal("edit mode should carry the note id")
	}
	_, submit := f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if submit == nil {
		t.Fatal("prefilled note submits unchanged")
	}
	if submit.Title != "existing" || submit.Publicity != types.NotePublic {
		t.Fatalf("got %+v", submit)
	}
}
