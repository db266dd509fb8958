package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderError() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("Something went wrong")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	errMsg := "Unknown error"
	if a.state.err != nil {
		errMsg = a.state.err.Error()
	}

	errBox := styleBox.Copy().
		Width(min(60, max(a.width-4, 20))).
		BorderForeground(colorError).
		Render(errMsg)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
	b.WriteString("\n\n")

	var suggestions []string
	errLower := strings.ToLower(errMsg)

	switch {
	case strings.Contains(errLower, "no responder"):
		suggestions = append(suggestions, "Start chatbotely from the command line so the bot gets wired")
	case strings.Contains(errLower, "deadline") || strings.Contains(errLower, "canceled"):
		suggestions = append(suggestions, "Raise annotate_timeout in ~/.config/chatbotely/config.yaml")
	case strings.Contains(errLower, "model"):
		suggestions = append(suggestions, "Retrain the labeler: chatbotely train")
	}

	if len(suggestions) > 0 {
		suggBox := styleBox.Copy().
			Width(min(60, max(a.width-4, 20))).
			Render("Suggestions:\n" + strings.Join(suggestions, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, suggBox))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
