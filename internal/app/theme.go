package app

import "github.com/charmbracelet/lipgloss"

// Theme is the resolved style set for one of the two palettes. The dark
// flag is persisted; a Theme is derived from it at startup and on toggle.
type Theme struct {
	Dark bool

	Header       lipgloss.Style
	Subtle       lipgloss.Style
	Help         lipgloss.Style
	Banner       lipgloss.Style
	FormError    lipgloss.Style
	FormSuccess  lipgloss.Style
	Label        lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	CardMeta     lipgloss.Style
	Badge        lipgloss.Style
	FilterActive lipgloss.Style
	Dialog       lipgloss.Style
	Selected     lipgloss.Style
	Placeholder  lipgloss.Style
}

func NewTheme(dark bool) Theme {
	if dark {
		return Theme{
			Dark:         true,
			Header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
			Subtle:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Help:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Banner:       lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")).Bold(true).Padding(0, 1),
			FormError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			FormSuccess:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
			Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
			Card:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
			CardSelected: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1),
			CardTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
			CardMeta:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Faint(true),
			Badge:        lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1),
			FilterActive: lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
			Dialog:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("208")).Padding(0, 1),
			Selected:     lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236")),
			Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		}
	}
	return Theme{
		Header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("26")),
		Subtle:       lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Help:         lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		Banner:       lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Background(lipgloss.Color("224")).Bold(true).Padding(0, 1),
		FormError:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		FormSuccess:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Bold(true),
		Card:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1),
		CardSelected: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("26")).Padding(0, 1),
		CardTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
		CardMeta:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Badge:        lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("31")).Padding(0, 1),
		FilterActive: lipgloss.NewStyle().Foreground(lipgloss.Color("26")).Bold(true),
		Dialog:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("166")).Padding(0, 1),
		Selected:     lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("253")),
		Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
	}
}
