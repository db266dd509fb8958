package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := styleTitle.Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	commands := []string{
		"  /help, /h      Show this help",
		"  /settings, /s  Show settings",
		"  /trace, /t     Toggle intent trace",
		"  /clear, /c     Start a new conversation",
		"  /quit, /q      Quit chatbotely",
	}

	commandsBox := styleBox.Copy().
		Width(50).
		Render(strings.Join(commands, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, commandsBox))
	b.WriteString("\n\n")

	skills := []string{
		"  Greet it or say goodbye",
		"  Ask it to sing, or for a quote",
		"  Ask how it is doing",
		"",
		"  Several sentences get one reply each",
	}

	skillsTitle := styleSubtitle.Render("Things to say")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, skillsTitle))
	b.WriteString("\n\n")

	skillsBox := styleBox.Copy().
		Width(50).
		Render(strings.Join(skills, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, skillsBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
