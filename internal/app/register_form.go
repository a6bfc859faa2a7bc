package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type registerSubmit struct {
	Name     string
	Email    string
	Password string
}

type RegisterForm struct {
	inputs  []textinput.Model
	focus   int
	errText string
	busy    bool
}

const (
	registerFieldName = iota
	registerFieldEmail
	registerFieldPassword
	registerFieldConfirm
	registerFieldCount
)

func NewRegisterForm() *RegisterForm {
	inputs := make([]textinput.Model, registerFieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Prompt = "> "
		in.Width = 40
		inputs[i] = in
	}
	inputs[registerFieldName].Placeholder = "name"
	inputs[registerFieldName].CharLimit = 100
	inputs[registerFieldEmail].Placeholder = "you@example.com"
	inputs[registerFieldEmail].CharLimit = 254
	for _, i := range []int{registerFieldPassword, registerFieldConfirm} {
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '*'
		inputs[i].CharLimit = 128
	}
	inputs[registerFieldPassword].Placeholder = "password"
	inputs[registerFieldConfirm].Placeholder = "confirm password"

	f := &RegisterForm{inputs: inputs}
	f.setFocus(0)
	return f
}

func (f *RegisterForm) Reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.errText = ""
	f.busy = false
	f.setFocus(0)
}

func (f *RegisterForm) SetError(text string) {
	f.errText = text
	f.busy = false
}

func (f *RegisterForm) Update(msg tea.Msg) (tea.Cmd, *registerSubmit) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			f.setFocus((f.focus + 1) % registerFieldCount)
			return nil, nil
		case "shift+tab", "up":
			f.setFocus((f.focus + registerFieldCount - 1) % registerFieldCount)
			return nil, nil
		case "enter":
			if f.focus < registerFieldConfirm {
				f.setFocus(f.focus + 1)
				return nil, nil
			}
			return nil, f.submit()
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd, nil
}

func (f *RegisterForm) submit() *registerSubmit {
	if f.busy {
		return nil
	}
	name := strings.TrimSpace(f.inputs[registerFieldName].Value())
	email := strings.TrimSpace(f.inputs[registerFieldEmail].Value())
	password := f.inputs[registerFieldPassword].Value()
	confirm := f.inputs[registerFieldConfirm].Value()
	if name == "" || email == "" || password == "" {
		f.errText = "Name, email and password are required"
		return nil
	}
	if len(password) < 6 {
		f.errText = "Password must be at least 6 characters"
		return nil
	}
	if password != confirm {
		f.errText = "Passwords do not match"
		return nil
	}
	f.errText = ""
	f.busy = true
	return &registerSubmit{Name: name, Email: email, Password: password}
}

func (f *RegisterForm) setFocus(index int) {
	f.focus = index
	for i := range f.inputs {
		if i == index {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f *RegisterForm) View(theme Theme) string {
	labels := [registerFieldCount]string{"Name", "Email", "Password", "Confirm password"}
	var b strings.Builder
	b.WriteString(theme.Header.Render("Create account") + "\n")
	for i, in := range f.inputs {
		b.WriteString("\n" + theme.Label.Render(labels[i]) + "\n")
		b.WriteString(in.View() + "\n")
	}
	if f.errText != "" {
		b.WriteString("\n" + theme.FormError.Render(f.errText) + "\n")
	}
	if f.busy {
		b.WriteString("\n" + theme.Subtle.Render("Creating account...") + "\n")
	}
	b.WriteString("\n" + theme.Help.Render("enter create • esc back to sign in • ctrl+c quit"))
	return b.String()
}
