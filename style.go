package ask

import "github.com/charmbracelet/lipgloss"

// Styles bundles the lipgloss styles the Asker renders with. Zero-value
// styles render plain text, so any field may be left unset.
type Styles struct {
	Prompt     lipgloss.Style // the question text
	Input      lipgloss.Style // echoed user input (editor mode)
	Error      lipgloss.Style // response messages shown on failures
	Suggestion lipgloss.Style // completion candidates in the editor
	Selected   lipgloss.Style // the highlighted completion candidate
}

// DefaultStyles returns the stock look: cyan bold questions, red errors,
// dim suggestions.
func DefaultStyles() *Styles {
	return &Styles{
		Prompt:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		Input:      lipgloss.NewStyle(),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Suggestion: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	}
}

// PlainStyles returns styles that render without any escape sequences,
// useful for tests and non-TTY output.
func PlainStyles() *Styles {
	return &Styles{}
}
