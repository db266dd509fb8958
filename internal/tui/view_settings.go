package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func (a *App) renderSettings() string {
	var b strings.Builder

	title := styleTitle.Render("Settings")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	cfg := a.state.config

	seed := "random"
	if cfg.Seed != 0 {
		seed = fmt.Sprintf("%d", cfg.Seed)
	}

	transcript := "off"
	if cfg.Transcript.Enabled {
		path, err := cfg.TranscriptPath()
		if err != nil {
			path = "?"
		}
		transcript = path
	}

	configLines := []string{
		fmt.Sprintf("  Lexicon:    %s", orDefault(cfg.LexiconPath, "built-in")),
		fmt.Sprintf("  Corpus:     %s", orDefault(cfg.CorpusPath, "built-in")),
		fmt.Sprintf("  Model:      %s", orDefault(cfg.ModelPath, "trained at startup")),
		fmt.Sprintf("  Seed:       %s", seed),
		fmt.Sprintf("  Timeout:    %s", cfg.AnnotateTimeout),
		fmt.Sprintf("  Cache size: %d", cfg.CacheSize),
		fmt.Sprintf("  Transcript: %s", transcript),
	}

	configBox := styleBox.Copy().
		Width(60).
		Render(strings.Join(configLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, configBox))
	b.WriteString("\n\n")

	hint := styleSubtitle.Render("Edit ~/.config/chatbotely/config.yaml and restart to change these")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, hint))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
