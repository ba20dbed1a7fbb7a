package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Block        *lipgloss.Style
	BlockTitle   *lipgloss.Style
	Tab          *lipgloss.Style
	TabHotkey    *lipgloss.Style
	ActiveTab    *lipgloss.Style
	TabDivider   *lipgloss.Style
	Item         *lipgloss.Style
	SelectedItem *lipgloss.Style
	Welcome      *lipgloss.Style
	Brand        *lipgloss.Style
	TableHeader  *lipgloss.Style
	TableCell    *lipgloss.Style
	Footer       *lipgloss.Style
	Placeholder  *lipgloss.Style
	Error        *lipgloss.Style
	Info         *lipgloss.Style
}

var defaultStyles = Styles{
	Block: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	BlockTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Tab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	TabHotkey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Underline(true),
	),
	ActiveTab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	),
	TabDivider: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("226")).Bold(true),
	),
	Welcome: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Brand: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	),
	TableHeader: ptr(
		lipgloss.NewStyle().Bold(true),
	),
	TableCell: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
