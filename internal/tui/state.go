package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/chatbotely/internal/config"
)

const (
	roleUser = "user"
	roleBot  = "bot"
)

type state struct {
	config    *config.Config
	sessionID string

	// Input
	input textinput.Model

	// Conversation
	history      []message
	thinking     bool
	spinner      spinner.Model
	scrollOffset int
	showTrace    bool

	err error
}

type message struct {
	role    string
	content string
	// intents of a bot reply, one per sentence
	intents []string
}

func newState() *state {
	input := textinput.New()
	input.Placeholder = "Say hi, or /help for commands..."
	input.CharLimit = 500
	input.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return &state{
		input:   input,
		spinner: sp,
	}
}
