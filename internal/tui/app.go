package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sant0-9/chatbotely/internal/config"
	"github.com/sant0-9/chatbotely/internal/pipeline"
	"github.com/sant0-9/chatbotely/internal/transcript"
)

type view int

const (
	viewWelcome view = iota
	viewChat
	viewSettings
	viewHelp
	viewError
)

// Responder turns one user message into a reply trace
type Responder interface {
	Process(ctx context.Context, text string) (*pipeline.Result, error)
}

// Recorder stores finished turns
type Recorder interface {
	Append(ctx context.Context, t transcript.Turn) error
}

// Options wires the App to its collaborators
type Options struct {
	Responder Responder
	Recorder  Recorder
	Config    *config.Config
	Logger    *zap.Logger
}

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool

	responder Responder
	recorder  Recorder
	logger    *zap.Logger
}

func NewApp(opts Options) *App {
	s := newState()
	s.config = opts.Config
	if s.config == nil {
		s.config = config.DefaultConfig()
	}
	s.sessionID = transcript.NewSessionID()

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &App{
		view:      viewWelcome,
		state:     s,
		responder: opts.Responder,
		recorder:  opts.Recorder,
		logger:    logger,
	}
}

func (a *App) Init() tea.Cmd {
	a.state.input.Focus()
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

// replyMsg and replyErrorMsg carry the session they were asked in, so a
// reply that lands after /clear is dropped
type replyMsg struct {
	sessionID string
	input     string
	result    *pipeline.Result
}

type replyErrorMsg struct {
	sessionID string
	err       error
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if handled {
			return a, tea.Batch(cmds...)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case replyMsg:
		if msg.sessionID != a.state.sessionID {
			return a, nil
		}
		a.state.thinking = false
		if msg.result.Reply != "" {
			a.state.history = append(a.state.history, message{
				role:    roleBot,
				content: msg.result.Reply,
				intents: intentNames(msg.result),
			})
		}
		a.state.scrollOffset = 0
		return a, nil

	case replyErrorMsg:
		if msg.sessionID != a.state.sessionID {
			return a, nil
		}
		a.state.thinking = false
		a.state.err = msg.err
		a.view = viewError
		return a, nil

	case spinner.TickMsg:
		if !a.state.thinking {
			return a, nil
		}
		var cmd tea.Cmd
		a.state.spinner, cmd = a.state.spinner.Update(msg)
		return a, cmd
	}

	if a.view == viewWelcome || a.view == viewChat {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// handleKey reports whether the key was consumed and must not reach the input
func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		switch a.view {
		case viewSettings, viewHelp, viewError:
			a.view = a.homeView()
			return nil, true
		}
		a.quitting = true
		return tea.Quit, true

	case key.Matches(msg, keys.Enter):
		if a.view == viewWelcome || a.view == viewChat {
			return a.handleInput(), true
		}

	case key.Matches(msg, keys.ScrollUp):
		if a.view == viewChat {
			a.state.scrollOffset++
			return nil, true
		}

	case key.Matches(msg, keys.ScrollDown):
		if a.view == viewChat {
			a.state.scrollOffset--
			return nil, true
		}

	case key.Matches(msg, keys.Clear):
		a.clearHistory()
		return nil, true
	}

	return nil, false
}

func (a *App) homeView() view {
	if len(a.state.history) > 0 {
		return viewChat
	}
	return viewWelcome
}

func (a *App) handleInput() tea.Cmd {
	input := strings.TrimSpace(a.state.input.Value())
	if input == "" {
		return nil
	}

	if strings.HasPrefix(input, "/") {
		cmd := strings.ToLower(input)
		switch {
		case cmd == "/help" || cmd == "/h":
			a.view = viewHelp
			a.state.input.Reset()
			return nil
		case cmd == "/settings" || cmd == "/s":
			a.view = viewSettings
			a.state.input.Reset()
			return nil
		case cmd == "/trace" || cmd == "/t":
			a.state.showTrace = !a.state.showTrace
			a.state.input.Reset()
			return nil
		case cmd == "/clear" || cmd == "/c":
			a.clearHistory()
			return nil
		case cmd == "/quit" || cmd == "/q":
			a.quitting = true
			return tea.Quit
		}
	}

	// one turn in flight at a time
	if a.state.thinking {
		return nil
	}

	a.state.input.Reset()
	a.state.history = append(a.state.history, message{role: roleUser, content: input})
	a.state.thinking = true
	a.state.scrollOffset = 0
	a.view = viewChat

	return tea.Batch(a.state.spinner.Tick, a.respond(input))
}

func (a *App) clearHistory() {
	a.state.history = nil
	a.state.thinking = false
	a.state.scrollOffset = 0
	a.state.input.Reset()
	a.state.sessionID = transcript.NewSessionID()
	a.view = viewWelcome
}

// respond runs the responder off the update loop and records the turn
func (a *App) respond(input string) tea.Cmd {
	responder := a.responder
	recorder := a.recorder
	sessionID := a.state.sessionID
	logger := a.logger

	return func() tea.Msg {
		if responder == nil {
			return replyErrorMsg{sessionID: sessionID, err: errors.New("no responder configured")}
		}

		ctx := context.Background()
		res, err := responder.Process(ctx, input)
		if errors.Is(err, pipeline.ErrEmptyInput) {
			// nothing to answer; the bot stays silent
			res = &pipeline.Result{}
		} else if err != nil {
			return replyErrorMsg{sessionID: sessionID, err: err}
		}

		if recorder != nil && res.Reply != "" {
			turn := transcript.Turn{
				SessionID: sessionID,
				Input:     input,
				Reply:     res.Reply,
				Intents:   intentNames(res),
			}
			if err := recorder.Append(ctx, turn); err != nil {
				logger.Warn("failed to record turn", zap.Error(err))
			}
		}

		return replyMsg{sessionID: sessionID, input: input, result: res}
	}
}

func intentNames(res *pipeline.Result) []string {
	names := make([]string, len(res.Sentences))
	for i, in := range res.Intents() {
		names[i] = in.String()
	}
	return names
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewWelcome:
		return a.renderWelcome()
	case viewChat:
		return a.renderChat()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	case viewError:
		return a.renderError()
	default:
		return a.renderWelcome()
	}
}
