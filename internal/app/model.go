package app

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"noted/internal/client"
	"noted/internal/logging"
	"noted/internal/store"
	"noted/internal/types"
)

type mode int

const (
	modeRestoring mode = iota
	modeLogin
	modeRegister
	modeDashboard
	modeProfile
	modeNoteForm
	modeNoteView
)

// Options carries the model's collaborators. Auth and Notes are interfaces
// so tests can run the full update loop against fakes; Store and Logger may
// be nil.
type Options struct {
	Auth           AuthAPI
	Notes          NotesAPI
	Store          *store.Store
	Logger         logging.Logger
	SearchDebounce time.Duration
}

type Model struct {
	auth  AuthAPI
	notes NotesAPI
	store *store.Store
	log   logging.Logger

	mode   mode
	width  int
	height int

	session *types.Session
	theme   Theme

	controller *NotesController
	stream     *NoteStreamController
	debounce   *SearchDebounce
	delay      time.Duration

	loginForm    *LoginForm
	registerForm *RegisterForm
	profileForm  *ProfileForm
	noteForm     *NoteForm
	confirm      *ConfirmDialog

	searchInput     textinput.Model
	searchFocused   bool
	pendingDeleteID string

	viewport viewport.Model
	viewID   string

	spinner spinner.Model

	status  string
	errText string
	ticking bool

	streamDown    bool
	streamRetryIn int
}

// streamRetryTicks is the backoff between push-channel connection attempts,
// counted in UI ticks (about two seconds).
const streamRetryTicks = 20

func NewModel(opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	delay := opts.SearchDebounce
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}

	search := textinput.New()
	search.Placeholder = "search notes"
	search.Prompt = "/ "
	search.CharLimit = 200
	search.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		auth:         opts.Auth,
		notes:        opts.Notes,
		store:        opts.Store,
		log:          log,
		mode:         modeRestoring,
		theme:        NewTheme(false),
		controller:   NewNotesController(),
		stream:       NewNoteStreamController(),
		debounce:     &SearchDebounce{},
		delay:        delay,
		loginForm:    NewLoginForm(),
		registerForm: NewRegisterForm(),
		profileForm:  NewProfileForm(),
		noteForm:     NewNoteForm(),
		confirm:      NewConfirmDialog(),
		searchInput:  search,
		spinner:      sp,
	}
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.store != nil {
		cmds = append(cmds, restoreSessionCmd(m.store))
	} else {
		cmds = append(cmds, func() tea.Msg { return sessionRestoredMsg{} })
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.noteForm.Resize(msg.Width, msg.Height)
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-4, 3)
		if m.mode == modeNoteView {
			m.refreshViewportContent()
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sessionRestoredMsg:
		return m.applySessionRestored(msg)

	case loginMsg:
		if msg.err != nil {
			m.loginForm.SetError(client.UserMessage(msg.err, "Sign in failed"))
			return m, nil
		}
		return m.beginSession(msg.session)

	case registerMsg:
		if msg.err != nil {
			m.registerForm.SetError(client.UserMessage(msg.err, "Registration failed"))
			return m, nil
		}
		return m.beginSession(msg.session)

	case profileMsg:
		if msg.err != nil {
			m.profileForm.SetError(client.UserMessage(msg.err, "Profile update failed"))
			return m, nil
		}
		if m.session != nil && msg.session != nil {
			merged := m.session.Merge(*msg.session)
			m.session = &merged
		}
		m.profileForm.SetSaved()
		return m, m.persistSession()

	case notesMsg:
		if applied := m.controller.ApplyFetch(msg.seq, msg.notes, msg.err); applied && msg.err != nil {
			m.log.Warn("fetch notes failed", logging.F("error", msg.err))
		}
		return m, nil

	case categoriesMsg:
		if msg.err != nil {
			m.log.Warn("fetch categories failed", logging.F("error", msg.err))
			return m, nil
		}
		m.controller.SetCategories(msg.categories)
		m.noteForm.SetSuggestions(m.controller.Categories())
		return m, nil

	case noteSavedMsg:
		return m.applyNoteSaved(msg)

	case noteDeletedMsg:
		if msg.err != nil {
			m.errText = client.UserMessage(msg.err, "Failed to delete note")
			m.log.Warn("delete note failed", logging.F("id", msg.id), logging.F("error", msg.err))
			return m, nil
		}
		m.controller.ApplyDeleted(msg.id)
		m.status = "Note deleted"
		return m, nil

	case noteEventsMsg:
		if msg.err != nil {
			m.log.Warn("push channel unavailable", logging.F("error", msg.err))
			if m.session != nil && m.dashboardMounted() {
				m.streamDown = true
				m.streamRetryIn = streamRetryTicks
			}
			return m, nil
		}
		m.streamDown = false
		m.stream.SetStream(msg.ch, msg.cancel)
		return m, nil

	case searchDebounceMsg:
		value, ok := m.debounce.Resolve(msg.seq)
		if !ok {
			return m, nil
		}
		if !m.controller.SetSearchQuery(value) {
			return m, nil
		}
		return m, m.beginFetch()

	case tickMsg:
		return m.applyTick()

	case themeSavedMsg:
		if msg.err != nil {
			m.log.Warn("persist theme failed", logging.F("error", msg.err))
		}
		return m, nil

	case sessionPersistedMsg:
		if msg.err != nil {
			m.log.Warn("persist session failed", logging.F("error", msg.err))
		}
		return m, nil

	case clipboardResultMsg:
		if msg.err != nil {
			m.errText = "Copy failed"
			m.log.Warn("clipboard copy failed", logging.F("error", msg.err))
			return m, nil
		}
		m.status = msg.success
		return m, nil
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.stream.Reset()
		return m, tea.Quit
	case "ctrl+t":
		m.theme = NewTheme(!m.theme.Dark)
		if m.mode == modeNoteView {
			m.refreshViewportContent()
		}
		return m, m.persistTheme()
	}
	switch m.mode {
	case modeRestoring:
		return m, nil
	case modeLogin:
		if msg.String() == "ctrl+r" {
			m.registerForm.Reset()
			m.mode = modeRegister
			return m, nil
		}
		cmd, submit := m.loginForm.Update(msg)
		if submit != nil {
			return m, loginCmd(m.auth, submit.Email, submit.Password)
		}
		return m, cmd
	case modeRegister:
		if msg.String() == "esc" {
			m.mode = modeLogin
			return m, nil
		}
		cmd, submit := m.registerForm.Update(msg)
		if submit != nil {
			return m, registerCmd(m.auth, submit.Name, submit.Email, submit.Password)
		}
		return m, cmd
	case modeProfile:
		if msg.String() == "esc" {
			return m, m.enterDashboard()
		}
		cmd, submit := m.profileForm.Update(msg)
		if submit != nil {
			return m, updateProfileCmd(m.auth, *submit)
		}
		return m, cmd
	case modeNoteForm:
		if msg.String() == "esc" {
			m.mode = modeDashboard
			return m, nil
		}
		cmd, submit := m.noteForm.Update(msg)
		if submit != nil {
			if m.noteForm.Editing() {
				return m, updateNoteCmd(m.notes, m.noteForm.NoteID(), *submit)
			}
			return m, createNoteCmd(m.notes, *submit)
		}
		return m, cmd
	case modeNoteView:
		return m.updateNoteViewKey(msg)
	case modeDashboard:
		return m.updateDashboardKey(msg)
	}
	return m, nil
}

func (m *Model) updateDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm.IsOpen() {
		handled, choice := m.confirm.HandleKey(msg)
		if !handled {
			return m, nil
		}
		switch choice {
		case confirmChoiceConfirm:
			id := m.pendingDeleteID
			m.pendingDeleteID = ""
			m.confirm.Close()
			if id != "" {
				return m, deleteNoteCmd(m.notes, id)
			}
			return m, nil
		case confirmChoiceCancel:
			m.pendingDeleteID = ""
			m.confirm.Close()
		}
		return m, nil
	}

	if m.searchFocused {
		switch msg.String() {
		case "esc", "enter":
			m.searchFocused = false
			m.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		seq := m.debounce.Schedule(m.searchInput.Value())
		return m, tea.Batch(cmd, debounceSearchCmd(seq, m.delay))
	}

	m.status = ""
	m.errText = ""
	switch msg.String() {
	case "q":
		m.stream.Reset()
		return m, tea.Quit
	case "up", "k":
		m.controller.MoveCursor(-1)
		return m, nil
	case "down", "j":
		m.controller.MoveCursor(1)
		return m, nil
	case "/":
		m.searchFocused = true
		m.searchInput.Focus()
		return m, nil
	case "c":
		m.controller.CycleCategory(1)
		return m, m.beginFetch()
	case "C":
		m.controller.CycleCategory(-1)
		return m, m.beginFetch()
	case "n":
		m.noteForm.EnterNew(m.controller.SelectedCategory())
		m.mode = modeNoteForm
		return m, nil
	case "e", "enter":
		note := m.controller.Selected()
		if note == nil {
			return m, nil
		}
		m.noteForm.EnterEdit(note)
		m.mode = modeNoteForm
		return m, nil
	case "v":
		note := m.controller.Selected()
		if note == nil {
			return m, nil
		}
		m.openNoteView(note)
		return m, nil
	case "d":
		note := m.controller.Selected()
		if note == nil {
			return m, nil
		}
		m.pendingDeleteID = note.ID
		m.confirm.Open("Delete note", "Delete \""+note.Title+"\"? This cannot be undone.", "Delete", "Cancel")
		return m, nil
	case "y":
		note := m.controller.Selected()
		if note == nil {
			return m, nil
		}
		return m, copyNoteCmd(note.Content, "Copied to clipboard")
	case "r":
		return m, tea.Batch(m.beginFetch(), fetchCategoriesCmd(m.notes))
	case "p":
		m.profileForm.Enter(m.session)
		m.stream.Reset()
		m.mode = modeProfile
		return m, nil
	case "t":
		m.theme = NewTheme(!m.theme.Dark)
		return m, m.persistTheme()
	case "L":
		return m, m.logout()
	}
	return m, nil
}

func (m *Model) updateNoteViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.viewID = ""
		m.mode = modeDashboard
		return m, nil
	case "e":
		note := m.viewedNote()
		if note != nil {
			m.noteForm.EnterEdit(note)
			m.mode = modeNoteForm
		}
		return m, nil
	case "y":
		note := m.viewedNote()
		if note != nil {
			return m, copyNoteCmd(note.Content, "Copied to clipboard")
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) applySessionRestored(msg sessionRestoredMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Warn("restore session failed", logging.F("error", msg.err))
	}
	m.theme = NewTheme(msg.dark)
	if msg.session == nil || msg.session.Token == "" {
		m.mode = modeLogin
		return m, nil
	}
	m.session = msg.session
	m.auth.SetToken(msg.session.Token)
	return m, m.enterDashboard()
}

func (m *Model) beginSession(session *types.Session) (tea.Model, tea.Cmd) {
	m.session = session
	if session != nil {
		m.auth.SetToken(session.Token)
	}
	return m, tea.Batch(m.persistSession(), m.enterDashboard())
}

func (m *Model) applyNoteSaved(msg noteSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		text := client.UserMessage(msg.err, "Failed to save note")
		if m.mode == modeNoteForm {
			m.noteForm.SetError(text)
		} else {
			m.errText = text
		}
		m.log.Warn("save note failed", logging.F("error", msg.err))
		return m, nil
	}
	m.controller.ApplyLocalSave(msg.note)
	if m.mode == modeNoteForm {
		m.mode = modeDashboard
	}
	if msg.created {
		m.status = "Note created"
	} else {
		m.status = "Note saved"
	}
	// A save can mint a new category; refresh the filter options.
	return m, fetchCategoriesCmd(m.notes)
}

func (m *Model) applyTick() (tea.Model, tea.Cmd) {
	applied, closed := m.stream.ConsumeTick(m.controller.ApplyEvent)
	if applied > 0 && m.mode == modeNoteView {
		m.refreshViewportContent()
	}
	if closed {
		m.log.Info("push channel closed")
		m.streamDown = true
		m.streamRetryIn = 0
	}
	var cmds []tea.Cmd
	// Retry a down push channel while the dashboard is mounted. The flag
	// clears when an attempt is issued; a failed attempt re-arms it with
	// backoff via noteEventsMsg, a successful one installs the stream.
	if m.streamDown && m.session != nil && m.dashboardMounted() {
		if m.streamRetryIn <= 0 {
			m.log.Info("reconnecting push channel")
			m.streamDown = false
			cmds = append(cmds, openNoteEventsCmd(m.notes, m.session.ID))
		} else {
			m.streamRetryIn--
		}
	}
	cmds = append(cmds, tickCmd())
	return m, tea.Batch(cmds...)
}

// dashboardMounted covers the dashboard and its overlays, which keep the
// note collection and push subscription alive.
func (m *Model) dashboardMounted() bool {
	switch m.mode {
	case modeDashboard, modeNoteForm, modeNoteView:
		return true
	}
	return false
}

func (m *Model) beginFetch() tea.Cmd {
	seq := m.controller.BeginFetch()
	return fetchNotesCmd(m.notes, seq, m.controller.SearchQuery(), m.controller.SelectedCategory())
}

// enterDashboard mounts the dashboard fresh: the collection cache is
// discarded, both fetches reissued and the push channel joined.
func (m *Model) enterDashboard() tea.Cmd {
	m.mode = modeDashboard
	m.controller.Reset()
	m.debounce.CancelPending()
	m.searchInput.SetValue("")
	m.searchInput.Blur()
	m.searchFocused = false
	m.status = ""
	m.errText = ""
	m.streamDown = false
	m.streamRetryIn = 0
	cmds := []tea.Cmd{m.beginFetch(), fetchCategoriesCmd(m.notes)}
	if m.session != nil {
		cmds = append(cmds, openNoteEventsCmd(m.notes, m.session.ID))
	}
	if !m.ticking {
		m.ticking = true
		cmds = append(cmds, tickCmd())
	}
	return tea.Batch(cmds...)
}

func (m *Model) logout() tea.Cmd {
	m.stream.Reset()
	m.debounce.CancelPending()
	m.controller.Reset()
	m.auth.ClearToken()
	m.session = nil
	m.loginForm.Reset()
	m.mode = modeLogin
	if m.store == nil {
		return nil
	}
	return clearSessionCmd(m.store)
}

func (m *Model) openNoteView(note *types.Note) {
	m.viewID = note.ID
	m.mode = modeNoteView
	m.viewport = viewport.New(max(m.width, 20), max(m.height-4, 3))
	m.refreshViewportContent()
}

func (m *Model) viewedNote() *types.Note {
	if m.viewID == "" {
		return nil
	}
	for _, note := range m.controller.Notes() {
		if note.ID == m.viewID {
			return note
		}
	}
	return nil
}

func (m *Model) refreshViewportContent() {
	note := m.viewedNote()
	if note == nil {
		// The viewed note was deleted under us.
		m.viewID = ""
		m.mode = modeDashboard
		m.status = "Note was deleted"
		return
	}
	width := max(m.viewport.Width-2, 20)
	m.viewport.SetContent(renderMarkdown(note.Content, width, m.theme.Dark))
}

func (m *Model) persistSession() tea.Cmd {
	if m.store == nil || m.session == nil {
		return nil
	}
	return saveSessionCmd(m.store, m.session)
}

func (m *Model) persistTheme() tea.Cmd {
	if m.store == nil {
		return nil
	}
	return saveThemeCmd(m.store, m.theme.Dark)
}

// Run starts the program in the alternate screen.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
