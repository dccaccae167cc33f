package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorFgPrimary = lipgloss.Color("#ABB2BF")
	ColorFgMuted   = lipgloss.Color("#636B78")
	ColorRed       = lipgloss.Color("#E06C75")
	ColorGreen     = lipgloss.Color("#98C379")
	ColorBlue      = lipgloss.Color("#61AFEF")
	ColorMagenta   = lipgloss.Color("#C678DD")
	ColorBorder    = lipgloss.Color("#3F4451")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta).
			Bold(true).
			MarginBottom(1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted).
			Width(16)

	FocusedLabelStyle = LabelStyle.
				Foreground(ColorMagenta).
				Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary)

	TotalStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	ApprovedStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	NotApprovedStyle = lipgloss.NewStyle().
				Foreground(ColorRed)

	HelpStyle = lipgloss.NewStyle().
			MarginTop(1)
)

func barStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
