package tui

import "github.com/charmbracelet/lipgloss"

// ColorPrimary is the accent color.
var ColorPrimary = lipgloss.Color("39") // Blue

// BoxStyle frames full-screen prompts.
var BoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorPrimary).
	Padding(1, 2)
