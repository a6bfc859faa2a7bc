package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

type confirmChoice int

const (
	confirmChoiceNone confirmChoice = iota
	confirmChoiceConfirm
	confirmChoiceCancel
)

const confirmMaxWidth = 60

// ConfirmDialog is a modal yes/no prompt. It owns no command state; the
// host decides what a confirm means.
type ConfirmDialog struct {
	active       bool
	title        string
	message      string
	confirmLabel string
	cancelLabel  string
	selected     int
}

func NewConfirmDialog() *ConfirmDialog {
	return &ConfirmDialog{}
}

func (c *ConfirmDialog) IsOpen() bool {
	return c != nil && c.active
}

func (c *ConfirmDialog) Open(title, message, confirmLabel, cancelLabel string) {
	if c == nil {
		return
	}
	c.active = true
	c.title = strings.TrimSpace(title)
	c.message = strings.TrimSpace(message)
	if confirmLabel == "" {
		confirmLabel = "Confirm"
	}
	if cancelLabel == "" {
		cancelLabel = "Cancel"
	}
	c.confirmLabel = confirmLabel
	c.cancelLabel = cancelLabel
	c.selected = 0
}

func (c *ConfirmDialog) Close() {
	if c == nil {
		return
	}
	c.active = false
	c.title = ""
	c.message = ""
	c.confirmLabel = ""
	c.cancelLabel = ""
	c.selected = 0
}

func (c *ConfirmDialog) HandleKey(msg tea.KeyMsg) (bool, confirmChoice) {
	if c == nil || !c.active {
		return false, confirmChoiceNone
	}
	switch msg.String() {
	case "esc", "q":
		return true, confirmChoiceCancel
	case "left", "h":
		c.selected = 0
		return true, confirmChoiceNone
	case "right", "l":
		c.selected = 1
		return true, confirmChoiceNone
	case "tab":
		c.selected = 1 - c.selected
		return true, confirmChoiceNone
	case "y":
		return true, confirmChoiceConfirm
	case "n":
		return true, confirmChoiceCancel
	case "enter":
		if c.selected == 0 {
			return true, confirmChoiceConfirm
		}
		return true, confirmChoiceCancel
	}
	return true, confirmChoiceNone
}

func (c *ConfirmDialog) View(theme Theme, maxWidth int) string {
	if c == nil || !c.active {
		return ""
	}
	width := confirmMaxWidth
	if maxWidth > 0 && width > maxWidth-2 {
		width = maxWidth - 2
	}
	if width < 20 {
		width = 20
	}
	contentWidth := width - 4

	title := c.title
	if title == "" {
		title = "Confirm"
	}
	lines := []string{theme.Label.Render(title)}
	if c.message != "" {
		lines = append(lines, xansi.Hardwrap(c.message, contentWidth, true))
	}

	confirm := "[" + c.confirmLabel + "]"
	cancel := "[" + c.cancelLabel + "]"
	if c.selected == 0 {
		confirm = theme.Selected.Render(confirm)
		cancel = theme.Subtle.Render(cancel)
	} else {
		confirm = theme.Subtle.Render(confirm)
		cancel = theme.Selected.Render(cancel)
	}
	lines = append(lines, "", confirm+"  "+cancel)
	return theme.Dialog.Width(width).Render(strings.Join(lines, "\n"))
}
