package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"noted/internal/client"
	"noted/internal/types"
)

const (
	noteFieldTitle = iota
	noteFieldCategory
	noteFieldContent
	noteFieldPublicity
	noteFieldCount
)

// NoteForm edits a new or existing note. The same form serves both; the
// difference is whether noteID is set.
type NoteForm struct {
	title     textinput.Model
	category  textinput.Model
	content   textarea.Model
	publicity types.NotePublicity

	noteID      string
	focus       int
	errText     string
	busy        bool
	suggestions []string
	suggestIdx  int
}

func NewNoteForm() *NoteForm {
	title := textinput.New()
	title.Placeholder = "title"
	title.Prompt = "> "
	title.CharLimit = 200
	title.Width = 50

	category := textinput.New()
	category.Placeholder = types.DefaultCategory
	category.Prompt = "> "
	category.CharLimit = 50
	category.Width = 30

	content := textarea.New()
	content.Placeholder = "write your note (markdown supported)"
	content.SetWidth(70)
	content.SetHeight(10)
	content.ShowLineNumbers = false
	content.CharLimit = 0

	return &NoteForm{
		title:     title,
		category:  category,
		content:   content,
		publicity: types.NotePrivate,
	}
}

// EnterNew prepares the form for a fresh note, seeding the category from the
// active filter when it names a real category.
func (f *NoteForm) EnterNew(activeCategory string) {
	f.noteID = ""
	f.title.SetValue("")
	category := ""
	if activeCategory != "" && activeCategory != types.CategoryAll {
		category = activeCategory
	}
	f.category.SetValue(category)
	f.content.SetValue("")
	f.publicity = types.NotePrivate
	f.errText = ""
	f.busy = false
	f.setFocus(noteFieldTitle)
}

func (f *NoteForm) EnterEdit(note *types.Note) {
	if note == nil {
		return
	}
	f.noteID = note.ID
	f.title.SetValue(note.Title)
	f.category.SetValue(note.Category)
	f.content.SetValue(note.Content)
	f.publicity = note.Publicity
	if f.publicity != types.NotePublic {
		f.publicity = types.NotePrivate
	}
	f.errText = ""
	f.busy = false
	f.setFocus(noteFieldTitle)
}

func (f *NoteForm) Editing() bool  { return f.noteID != "" }
func (f *NoteForm) NoteID() string { return f.noteID }

func (f *NoteForm) SetError(text string) {
	f.errText = text
	f.busy = false
}

// SetSuggestions provides the known category names cycled with ctrl+n while
// the category field is focused.
func (f *NoteForm) SetSuggestions(categories []string) {
	f.suggestions = nil
	for _, c := range categories {
		if c == types.CategoryAll {
			continue
		}
		f.suggestions = append(f.suggestions, c)
	}
	f.suggestIdx = 0
}

func (f *NoteForm) Resize(width, height int) {
	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}
	if contentWidth > 100 {
		contentWidth = 100
	}
	f.content.SetWidth(contentWidth)
	contentHeight := height - 14
	if contentHeight < 4 {
		contentHeight = 4
	}
	if contentHeight > 20 {
		contentHeight = 20
	}
	f.content.SetHeight(contentHeight)
}

func (f *NoteForm) Update(msg tea.Msg) (tea.Cmd, *client.NoteRequest) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+s":
			return nil, f.submit()
		case "tab":
			f.setFocus((f.focus + 1) % noteFieldCount)
			return nil, nil
		case "shift+tab":
			f.setFocus((f.focus + noteFieldCount - 1) % noteFieldCount)
			return nil, nil
		case "enter":
			switch f.focus {
			case noteFieldTitle, noteFieldCategory:
				f.setFocus(f.focus + 1)
				return nil, nil
			case noteFieldPublicity:
				return nil, f.submit()
			}
		case "ctrl+n":
			if f.focus == noteFieldCategory && len(f.suggestions) > 0 {
				f.category.SetValue(f.suggestions[f.suggestIdx])
				f.category.CursorEnd()
				f.suggestIdx = (f.suggestIdx + 1) % len(f.suggestions)
				return nil, nil
			}
		case " ", "left", "right":
			if f.focus == noteFieldPublicity {
				f.togglePublicity()
				return nil, nil
			}
		}
	}
	var cmd tea.Cmd
	switch f.focus {
	case noteFieldTitle:
		f.title, cmd = f.title.Update(msg)
	case noteFieldCategory:
		f.category, cmd = f.category.Update(msg)
	case noteFieldContent:
		f.content, cmd = f.content.Update(msg)
	}
	return cmd, nil
}

func (f *NoteForm) togglePublicity() {
	if f.publicity == types.NotePrivate {
		f.publicity = types.NotePublic
	} else {
		f.publicity = types.NotePrivate
	}
}

func (f *NoteForm) submit() *client.NoteRequest {
	if f.busy {
		return nil
	}
	title := strings.TrimSpace(f.title.Value())
	content := strings.TrimSpace(f.content.Value())
	if title == "" || content == "" {
		f.errText = "Title and content are required"
		return nil
	}
	category := strings.TrimSpace(f.category.Value())
	if category == "" {
		category = types.DefaultCategory
	}
	f.errText = ""
	f.busy = true
	return &client.NoteRequest{
		Title:     title,
		Content:   content,
		Category:  category,
		Publicity: f.publicity,
	}
}

func (f *NoteForm) setFocus(index int) {
	f.focus = index
	f.title.Blur()
	f.category.Blur()
	f.content.Blur()
	switch index {
	case noteFieldTitle:
		f.title.Focus()
	case noteFieldCategory:
		f.category.Focus()
	case noteFieldContent:
		f.content.Focus()
	}
}

func (f *NoteForm) View(theme Theme) string {
	heading := "New note"
	if f.Editing() {
		heading = "Edit note"
	}
	var b strings.Builder
	b.WriteString(theme.Header.Render(heading) + "\n\n")
	b.WriteString(theme.Label.Render("Title") + "\n")
	b.WriteString(f.title.View() + "\n\n")
	b.WriteString(theme.Label.Render("Category") + " " + theme.Subtle.Render("(ctrl+n to cycle existing)") + "\n")
	b.WriteString(f.category.View() + "\n\n")
	b.WriteString(theme.Label.Render("Content") + "\n")
	b.WriteString(f.content.View() + "\n\n")
	b.WriteString(theme.Label.Render("Visibility") + " ")
	private := "( ) private"
	public := "( ) public"
	if f.publicity == types.NotePublic {
		public = "(x) public"
	} else {
		private = "(x) private"
	}
	if f.focus == noteFieldPublicity {
		b.WriteString(theme.Selected.Render(private + "  " + public))
	} else {
		b.WriteString(theme.Subtle.Render(private + "  " + public))
	}
	b.WriteString("\n")
	if f.errText != "" {
		b.WriteString("\n" + theme.FormError.Render(f.errText) + "\n")
	}
	if f.busy {
		b.WriteString("\n" + theme.Subtle.Render("Saving...") + "\n")
	}
	b.WriteString("\n" + theme.Help.Render("ctrl+s save • tab next field • esc cancel"))
	return b.String()
}
