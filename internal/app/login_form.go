package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loginSubmit struct {
	Email    string
	Password string
}

type LoginForm struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	errText  string
	busy     bool
}

func NewLoginForm() *LoginForm {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "> "
	email.CharLimit = 254
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "> "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.CharLimit = 128
	password.Width = 40

	f := &LoginForm{email: email, password: password}
	f.setFocus(0)
	return f
}

func (f *LoginForm) Reset() {
	f.email.SetValue("")
	f.password.SetValue("")
	f.errText = ""
	f.busy = false
	f.setFocus(0)
}

func (f *LoginForm) SetError(text string) {
	f.errText = text
	f.busy = false
}

// Update consumes editing keys. A non-nil submit means the form validated
// and the host should issue the sign-in request.
func (f *LoginForm) Update(msg tea.Msg) (tea.Cmd, *loginSubmit) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			f.setFocus((f.focus + 1) % 2)
			return nil, nil
		case "shift+tab", "up":
			f.setFocus((f.focus + 1) % 2)
			return nil, nil
		case "enter":
			if f.focus == 0 {
				f.setFocus(1)
				return nil, nil
			}
			return nil, f.submit()
		}
	}
	var cmd tea.Cmd
	if f.focus == 0 {
		f.email, cmd = f.email.Update(msg)
	} else {
		f.password, cmd = f.password.Update(msg)
	}
	return cmd, nil
}

func (f *LoginForm) submit() *loginSubmit {
	if f.busy {
		return nil
	}
	email := strings.TrimSpace(f.email.Value())
	password := f.password.Value()
	if email == "" || password == "" {
		f.errText = "Email and password are required"
		return nil
	}
	f.errText = ""
	f.busy = true
	return &loginSubmit{Email: email, Password: password}
}

func (f *LoginForm) setFocus(index int) {
	f.focus = index
	if index == 0 {
		f.email.Focus()
		f.password.Blur()
	} else {
		f.email.Blur()
		f.password.Focus()
	}
}

func (f *LoginForm) View(theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.Header.Render("Sign in") + "\n\n")
	b.WriteString(theme.Label.Render("Email") + "\n")
	b.WriteString(f.email.View() + "\n\n")
	b.WriteString(theme.Label.Render("Password") + "\n")
	b.WriteString(f.password.View() + "\n")
	if f.errText != "" {
		b.WriteString("\n" + theme.FormError.Render(f.errText) + "\n")
	}
	if f.busy {
		b.WriteString("\n" + theme.Subtle.Render("Signing in...") + "\n")
	}
	b.WriteString("\n" + theme.Help.Render("enter sign in • ctrl+r register • ctrl+c quit"))
	return b.String()
}
