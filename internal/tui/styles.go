package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	styleHeader    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleCorrect   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true) // Green
	styleIncorrect = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)  // Red
	styleBlank     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true) // Yellow
	styleSubtle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleCursor    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleError     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 1)
	styleLadder    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleStumble   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	stylePlayer    = lipgloss.NewStyle().Background(lipgloss.Color("14")).Foreground(lipgloss.Color("0"))
	styleBox       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)
