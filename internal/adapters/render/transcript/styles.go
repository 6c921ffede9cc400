package transcript

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title       lipgloss.Style
	header      lipgloss.Style
	user        lipgloss.Style
	assistant   lipgloss.Style
	timestamp   lipgloss.Style
	detail      lipgloss.Style
	section     lipgloss.Style
	empty       lipgloss.Style
	warning     lipgloss.Style
	stepPending lipgloss.Style
	stepActive  lipgloss.Style
	stepDone    lipgloss.Style
	label       lipgloss.Style
	mode        lipgloss.Style
	hint        lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true),
		header:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		user:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		assistant:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		timestamp:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		detail:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section:     lipgloss.NewStyle().MarginTop(1),
		empty:       lipgloss.NewStyle().Faint(true),
		warning:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		stepPending: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		stepActive:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		stepDone:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		label:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("250")),
		mode:        lipgloss.NewStyle().Foreground(lipgloss.Color("183")),
		hint:        lipgloss.NewStyle().Faint(true),
	}
}
