package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"noted/internal/client"
	"noted/internal/types"
)

type ProfileForm struct {
	inputs   []textinput.Model
	focus    int
	errText  string
	infoText string
	busy     bool
}

const (
	profileFieldName = iota
	profileFieldEmail
	profileFieldPassword
	profileFieldConfirm
	profileFieldCount
)

func NewProfileForm() *ProfileForm {
	inputs := make([]textinput.Model, profileFieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Prompt = "> "
		in.Width = 40
		inputs[i] = in
	}
	inputs[profileFieldName].CharLimit = 100
	inputs[profileFieldEmail].CharLimit = 254
	for _, i := range []int{profileFieldPassword, profileFieldConfirm} {
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '*'
		inputs[i].CharLimit = 128
		inputs[i].Placeholder = "leave blank to keep current"
	}
	return &ProfileForm{inputs: inputs}
}

// Enter prefills the editable fields from the signed-in session.
func (f *ProfileForm) Enter(session *types.Session) {
	name, email := "", ""
	if session != nil {
		name = session.Name
		email = session.Email
	}
	f.inputs[profileFieldName].SetValue(name)
	f.inputs[profileFieldEmail].SetValue(email)
	f.inputs[profileFieldPassword].SetValue("")
	f.inputs[profileFieldConfirm].SetValue("")
	f.errText = ""
	f.infoText = ""
	f.busy = false
	f.setFocus(0)
}

func (f *ProfileForm) SetError(text string) {
	f.errText = text
	f.infoText = ""
	f.busy = false
}

func (f *ProfileForm) SetSaved() {
	f.errText = ""
	f.infoText = "Profile updated"
	f.busy = false
	f.inputs[profileFieldPassword].SetValue("")
	f.inputs[profileFieldConfirm].SetValue("")
}

func (f *ProfileForm) Update(msg tea.Msg) (tea.Cmd, *client.ProfileRequest) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			f.setFocus((f.focus + 1) % profileFieldCount)
			return nil, nil
		case "shift+tab", "up":
			f.setFocus((f.focus + profileFieldCount - 1) % profileFieldCount)
			return nil, nil
		case "enter":
			if f.focus < profileFieldConfirm {
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

func (f *ProfileForm) submit() *client.ProfileRequest {
	if f.busy {
		return nil
	}
	name := strings.TrimSpace(f.inputs[profileFieldName].Value())
	email := strings.TrimSpace(f.inputs[profileFieldEmail].Value())
	password := f.inputs[profileFieldPassword].Value()
	confirm := f.inputs[profileFieldConfirm].Value()
	if name == "" || email == "" {
		f.errText = "Name and email are required"
		return nil
	}
	if password != confirm {
		f.errText = "Passwords do not match"
		return nil
	}
	f.errText = ""
	f.infoText = ""
	f.busy = true
	return &client.ProfileRequest{Name: name, Email: email, Password: password}
}

func (f *ProfileForm) setFocus(index int) {
	f.focus = index
	for i := range f.inputs {
		if i == index {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f *ProfileForm) View(theme Theme) string {
	labels := [profileFieldCount]string{"Name", "Email", "New password", "Confirm password"}
	var b strings.Builder
	b.WriteString(theme.Header.Render("Profile") + "\n")
	for i, in := range f.inputs {
		b.WriteString("\n" + theme.Label.Render(labels[i]) + "\n")
		b.WriteString(in.View() + "\n")
	}
	if f.errText != "" {
		b.WriteString("\n" + theme.FormError.Render(f.errText) + "\n")
	}
	if f.infoText != "" {
		b.WriteString("\n" + theme.FormSuccess.Render(f.infoText) + "\n")
	}
	if f.busy {
		b.WriteString("\n" + theme.Subtle.Render("Saving...") + "\n")
	}
	b.WriteString("\n" + theme.Help.Render("enter save • esc back • ctrl+c quit"))
	return b.String()
}
