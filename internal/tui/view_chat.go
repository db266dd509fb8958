package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderChat() string {
	boxWidth := min(70, a.width-4)
	leftPad := (a.width - boxWidth) / 2
	if leftPad < 2 {
		leftPad = 2
	}
	indent := strings.Repeat(" ", leftPad)

	headerHeight := 3 // Title + session + blank line
	inputHeight := 4  // Input box + status bar

	availableHeight := a.height - headerHeight - inputHeight
	if availableHeight < 5 {
		availableHeight = 5
	}

	// === BUILD HEADER ===
	var header strings.Builder
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleTitle.Render("Chat")))
	header.WriteString("\n")

	session := styleSubtitle.Render("session " + truncate(a.state.sessionID, 8))
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, session))
	header.WriteString("\n\n")

	// === BUILD ALL MESSAGE LINES ===
	var messageLines []string

	for _, msg := range a.state.history {
		content := wrapText(msg.content, boxWidth-4)
		lines := strings.Split(content, "\n")

		if msg.role == roleUser {
			for j, line := range lines {
				prefix := "> "
				if j > 0 {
					prefix = "  "
				}
				styled := lipgloss.NewStyle().
					Foreground(colorSecondary).
					Render(prefix + line)
				messageLines = append(messageLines, indent+styled)
			}
		} else {
			for _, line := range lines {
				styled := lipgloss.NewStyle().
					Foreground(colorWhite).
					Render("  " + line)
				messageLines = append(messageLines, indent+styled)
			}
			if a.state.showTrace && len(msg.intents) > 0 {
				trace := styleSubtitle.Render("  [" + strings.Join(msg.intents, ", ") + "]")
				messageLines = append(messageLines, indent+trace)
			}
		}
		messageLines = append(messageLines, "")
	}

	if a.state.thinking {
		thinking := lipgloss.NewStyle().
			Foreground(colorPrimary).
			Render(a.state.spinner.View() + " Thinking...")
		messageLines = append(messageLines, indent+thinking)
	}

	// === APPLY SCROLL ===
	totalLines := len(messageLines)

	maxScroll := totalLines - availableHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if a.state.scrollOffset > maxScroll {
		a.state.scrollOffset = maxScroll
	}
	if a.state.scrollOffset < 0 {
		a.state.scrollOffset = 0
	}

	// Visible range, scrolled from the bottom
	endIdx := totalLines - a.state.scrollOffset
	startIdx := endIdx - availableHeight
	if startIdx < 0 {
		startIdx = 0
	}

	var visibleLines []string
	if startIdx < endIdx {
		visibleLines = messageLines[startIdx:endIdx]
	}

	// === BUILD INPUT/STATUS ===
	var footer strings.Builder

	inputBox := styleBox.Copy().
		Width(boxWidth).
		BorderForeground(colorMuted).
		Render(a.state.input.View())
	footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	footer.WriteString("\n")

	var statusParts []string
	if a.state.scrollOffset > 0 {
		statusParts = append(statusParts, fmt.Sprintf("[scroll: %d]", a.state.scrollOffset))
	}
	if a.state.showTrace {
		statusParts = append(statusParts, "[trace]")
	}
	statusParts = append(statusParts, "[PgUp/PgDn] Scroll  [Ctrl+L] Clear  [Esc] Quit")
	status := styleStatusBar.Render(strings.Join(statusParts, "  "))
	footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	// === COMBINE WITH FIXED LAYOUT ===
	var messageArea strings.Builder
	messageArea.WriteString(strings.Join(visibleLines, "\n"))

	messagePadding := availableHeight - len(visibleLines)
	if messagePadding > 0 {
		if len(visibleLines) > 0 {
			messageArea.WriteString("\n")
		}
		messageArea.WriteString(strings.Repeat("\n", messagePadding-1))
	}

	return header.String() + messageArea.String() + "\n" + footer.String()
}

// truncate shortens s to maxLen bytes
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
