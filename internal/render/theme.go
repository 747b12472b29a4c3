package render

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles used for headline output.
type Theme struct {
	Title     lipgloss.Style
	Heading   lipgloss.Style
	QuoteMark lipgloss.Style
	URL       lipgloss.Style
	Separator lipgloss.Style

	Mark      string
	RuleWidth int
}

// DefaultTheme builds the yellow/blue headline skin on the given renderer so
// the color profile follows the destination writer.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		Title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFF00")),
		Heading:   r.NewStyle().Foreground(lipgloss.Color("#FFFF00")),
		QuoteMark: r.NewStyle().Foreground(lipgloss.Color("#FFFF00")),
		URL: r.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#0064FF")).
			Background(lipgloss.Color("#1C1C1C")),
		Separator: r.NewStyle().Faint(true),
		Mark:      "▐",
		RuleWidth: 48,
	}
}
