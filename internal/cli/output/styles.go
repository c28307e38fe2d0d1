package output

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles used in text mode.
type Styles struct {
	Header  lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	NodeID  lipgloss.Style
	Arrow   lipgloss.Style
}

// newStyles builds styles bound to r so color output follows the
// capabilities of the writer.
func newStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginBottom(1),
		Header2: r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:    r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		Success: r.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		NodeID:  r.NewStyle().Foreground(lipgloss.Color("6")),
		Arrow:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
