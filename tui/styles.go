package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "255"})

	faceStyle   = lipgloss.NewStyle()
	sectorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	tickStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "250"})
	majorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "255"})
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "238", Dark: "252"})
	handStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 3)

	bigButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
			Background(lipgloss.Color("255")).
			Align(lipgloss.Center)

	fadedStyle = lipgloss.NewStyle().Faint(true)
)
