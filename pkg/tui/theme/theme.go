// Package theme centralizes Lip Gloss styles for the Bubble Tea UI.
package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme groups the styles used by the calendar and the day editor.
type Theme struct {
	Calendar CalendarTheme
	Editor   EditorTheme
	Footer   lipgloss.Style
	Status   lipgloss.Style
}

// CalendarTheme styles the month grid.
type CalendarTheme struct {
	Title      lipgloss.Style
	Weekdays   lipgloss.Style
	Day        lipgloss.Style
	OtherMonth lipgloss.Style
	HasRecord  lipgloss.Style
	Today      lipgloss.Style
	Cursor     lipgloss.Style
}

// EditorTheme styles the day editor modal.
type EditorTheme struct {
	Frame        lipgloss.Style
	Title        lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Section      lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Calendar: CalendarTheme{
			Title:      lipgloss.NewStyle().Bold(true),
			Weekdays:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Day:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			OtherMonth: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			HasRecord:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Today:      lipgloss.NewStyle().Underline(true),
			Cursor:     lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		},
		Editor: EditorTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title:        lipgloss.NewStyle().Bold(true),
			Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			FocusedLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Section:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		},
		Footer: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}
