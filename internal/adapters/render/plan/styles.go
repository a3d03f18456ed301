package plan

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	number     lipgloss.Style
	url        lipgloss.Style
	announced  lipgloss.Style
	pending    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	batchKey   lipgloss.Style
	mention    lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		number:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		url:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		announced:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		pending:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		batchKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		mention:    lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
