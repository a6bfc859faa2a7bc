package app

import (
	"fmt"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
)

func (m *Model) View() string {
	switch m.mode {
	case modeRestoring:
		return m.viewRestoring()
	case modeLogin:
		return m.loginForm.View(m.theme)
	case modeRegister:
		return m.registerForm.View(m.theme)
	case modeProfile:
		return m.profileForm.View(m.theme)
	case modeNoteForm:
		return m.noteForm.View(m.theme)
	case modeNoteView:
		return m.viewNote()
	case modeDashboard:
		return m.viewDashboard()
	}
	return ""
}

// viewRestoring is the placeholder shown until the stored session resolves.
// The dashboard must never render before then.
func (m *Model) viewRestoring() string {
	return "\n " + m.spinner.View() + m.theme.Subtle.Render("loading...")
}

func (m *Model) viewDashboard() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())

	if m.errText != "" {
		b.WriteString(m.theme.Banner.Render(m.errText) + "\n")
	} else if m.controller.FetchError() != "" {
		b.WriteString(m.theme.Banner.Render(m.controller.FetchError()) + "\n")
	} else if m.status != "" {
		b.WriteString(m.theme.FormSuccess.Render(m.status) + "\n")
	}

	b.WriteString(m.viewNoteList())

	if m.confirm.IsOpen() {
		b.WriteString("\n" + m.confirm.View(m.theme, m.width) + "\n")
	}

	help := "n new • enter edit • v view • d delete • y copy • / search • c category • r refresh • p profile • t theme • L sign out • q quit"
	b.WriteString("\n" + m.theme.Help.Render(help))
	return b.String()
}

func (m *Model) viewHeader() string {
	name := ""
	if m.session != nil {
		name = m.session.Name
	}
	left := m.theme.Header.Render("noted")
	if name != "" {
		left += m.theme.Subtle.Render("  " + name)
	}

	filter := m.controller.SelectedCategory()
	filterLabel := m.theme.Subtle.Render("category: ") + m.theme.FilterActive.Render(filter)

	var search string
	if m.searchFocused {
		search = m.searchInput.View()
	} else if q := m.controller.SearchQuery(); q != "" {
		search = m.theme.Subtle.Render("search: ") + m.theme.FilterActive.Render(q)
	} else {
		search = m.theme.Placeholder.Render("/ to search")
	}

	loading := ""
	if m.controller.Loading() {
		loading = " " + m.spinner.View()
	}

	live := ""
	if m.session != nil && !m.stream.Active() {
		live = "   " + m.theme.Subtle.Render("live updates off, reconnecting")
	}

	return left + "   " + filterLabel + "   " + search + loading + live + "\n\n"
}

func (m *Model) viewNoteList() string {
	notes := m.controller.Notes()
	if len(notes) == 0 {
		if m.controller.Loading() {
			return m.theme.Subtle.Render("  loading notes...") + "\n"
		}
		if m.controller.FetchError() != "" {
			return ""
		}
		if m.controller.Filtered() {
			return m.theme.Subtle.Render("  No notes match your search.") + "\n"
		}
		return m.theme.Subtle.Render("  No notes yet. Press n to write your first one.") + "\n"
	}

	width := m.width
	if width <= 0 {
		width = 80
	}
	cardWidth := min(width-2, 100)

	var b strings.Builder
	visible := m.visibleCardRange(len(notes))
	for i := visible.start; i < visible.end; i++ {
		note := notes[i]
		style := m.theme.Card
		titleStyle := m.theme.CardTitle
		if i == m.controller.Cursor() {
			style = m.theme.CardSelected
		}

		title := runewidth.Truncate(note.Title, cardWidth-6, "...")
		preview := notePreview(note.Content, cardWidth-6)
		meta := note.Category
		if note.Publicity != "" {
			meta += " · " + string(note.Publicity)
		}
		if !note.UpdatedAt.IsZero() {
			meta += " · " + note.UpdatedAt.Format("Jan 2 15:04")
		}

		lines := []string{titleStyle.Render(title)}
		if preview != "" {
			lines = append(lines, preview)
		}
		lines = append(lines, m.theme.CardMeta.Render(meta))
		b.WriteString(style.Width(cardWidth).Render(strings.Join(lines, "\n")) + "\n")
	}
	if visible.end < len(notes) {
		b.WriteString(m.theme.Subtle.Render(fmt.Sprintf("  ... %d more", len(notes)-visible.end)) + "\n")
	}
	return b.String()
}

type cardRange struct {
	start, end int
}

// visibleCardRange keeps the cursor on screen; each card renders as roughly
// five terminal rows.
func (m *Model) visibleCardRange(total int) cardRange {
	perCard := 5
	rows := m.height - 6
	if rows < perCard {
		rows = perCard * 3
	}
	capacity := max(rows/perCard, 1)
	if total <= capacity {
		return cardRange{0, total}
	}
	start := m.controller.Cursor() - capacity/2
	if start < 0 {
		start = 0
	}
	if start+capacity > total {
		start = total - capacity
	}
	return cardRange{start, start + capacity}
}

func notePreview(content string, width int) string {
	line := content
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	return runewidth.Truncate(line, max(width, 1), "...")
}

func (m *Model) viewNote() string {
	note := m.viewedNote()
	if note == nil {
		return m.viewDashboard()
	}
	var b strings.Builder
	b.WriteString(m.theme.Header.Render(note.Title))
	b.WriteString("  " + m.theme.Badge.Render(note.Category))
	if note.Publicity != "" {
		b.WriteString(" " + m.theme.Subtle.Render(string(note.Publicity)))
	}
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n" + m.theme.Help.Render("e edit • y copy • esc back"))
	return b.String()
}
