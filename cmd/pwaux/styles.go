package main

import "github.com/charmbracelet/lipgloss"

// Semantic colors for diagnostic output.
var (
	colorError   = lipgloss.Color("#ef4444") // red-500
	colorWarning = lipgloss.Color("#eab308") // yellow-500
	colorOK      = lipgloss.Color("#10b981") // green-500
	colorPath    = lipgloss.Color("#3b82f6") // blue-500
	colorDim     = lipgloss.Color("#6b7280") // gray-500
)

// styles holds the lipgloss styles for check output.
type styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	OK      lipgloss.Style
	Path    lipgloss.Style
	Dim     lipgloss.Style
}

// newStyles returns the output styles; plain passthrough styles when
// color is off.
func newStyles(color bool) *styles {
	if !color {
		plain := lipgloss.NewStyle()

		return &styles{Error: plain, Warning: plain, OK: plain, Path: plain, Dim: plain}
	}

	return &styles{
		Error:   lipgloss.NewStyle().Foreground(colorError).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
		OK:      lipgloss.NewStyle().Foreground(colorOK).Bold(true),
		Path:    lipgloss.NewStyle().Foreground(colorPath),
		Dim:     lipgloss.NewStyle().Foreground(colorDim),
	}
}
