package tui

import "github.com/charmbracelet/lipgloss"

const logo = `
  ___ _         _   _         _       _
 / __| |_  __ _| |_| |__  ___| |_ ___| |_  _
| (__| ' \/ _' |  _| '_ \/ _ \  _/ -_) | || |
 \___|_||_\__,_|\__|_.__/\___/\__\___|_|\_, |
                                        |__/
`

func (a *App) renderWelcome() string {
	logoRendered := styleLogo.Render(logo)

	subtitle := styleSubtitle.Render("A small bot that knows a few tricks")

	hints := styleSubtitle.Render("\nTry: hello  /  tell me a quote  /  sing something  /  how are you")

	inputBox := styleBox.Copy().
		Width(min(60, max(a.width-4, 20))).
		BorderForeground(colorPrimary).
		Render(a.state.input.View())

	statusBar := styleStatusBar.Render("[Enter] Send  [Esc] Quit  /help")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		hints,
		"",
		inputBox,
	)

	// Leave room for the status bar
	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}
