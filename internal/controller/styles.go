package controller

import "github.com/charmbracelet/lipgloss"

// Color constants for the graph viewer.
const (
	colorBlue   = "#58a6ff"
	colorGreen  = "#3fb950"
	colorRed    = "#f85149"
	colorGray   = "#8b949e"
	colorBright = "#f0f6fc"
)

// styles holds the lipgloss styles used by the TUI.
type styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Success  lipgloss.Style
	Failure  lipgloss.Style
	Code     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorBlue)),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)),
		Help:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color(colorGray)),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorBright)),
		Normal:   lipgloss.NewStyle(),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorGreen)),
		Failure:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorRed)),
		Code:     lipgloss.NewStyle().PaddingLeft(2),
	}
}
