package console

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorDanger  = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
)

const ruleWidth = 60

type styles struct {
	header      lipgloss.Style
	subHeader   lipgloss.Style
	rule        lipgloss.Style
	success     lipgloss.Style
	failure     lipgloss.Style
	warning     lipgloss.Style
	info        lipgloss.Style
	label       lipgloss.Style
	tableHeader lipgloss.Style
	tableCell   lipgloss.Style
	tableBorder lipgloss.Style
}

// newStyles returns the console palette, or unstyled text when color is off.
func newStyles(color bool) styles {
	plain := lipgloss.NewStyle()
	s := styles{
		header:      plain,
		subHeader:   plain,
		rule:        plain,
		success:     plain,
		failure:     plain,
		warning:     plain,
		info:        plain,
		label:       plain,
		tableHeader: plain,
		tableCell:   plain.Padding(0, 1),
		tableBorder: plain,
	}
	if !color {
		return s
	}

	s.header = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	s.subHeader = lipgloss.NewStyle().Bold(true)
	s.rule = lipgloss.NewStyle().Foreground(colorMuted)
	s.success = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	s.failure = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	s.warning = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	s.info = lipgloss.NewStyle().Foreground(colorInfo)
	s.label = lipgloss.NewStyle().Foreground(colorMuted)
	s.tableHeader = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Padding(0, 1)
	s.tableBorder = lipgloss.NewStyle().Foreground(colorMuted)
	return s
}
