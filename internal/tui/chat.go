// Package tui is the terminal chat surface for playing a lesson. It is a
// thin driver over the turn engine's request/response contract: every
// submitted line becomes one turn, every response becomes transcript
// entries.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aulalab/aula/internal/state"
	"github.com/aulalab/aula/internal/turn"
)

type speaker int

const (
	speakerTutor speaker = iota
	speakerLearner
	speakerSystem
)

type entry struct {
	who  speaker
	text string
}

// turnDoneMsg carries one processed turn back into the update loop.
type turnDoneMsg struct {
	resp *turn.Response
	err  error
}

var (
	tutorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	learnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	systemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	scoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

// ChatModel is the root Bubble Tea model for `aula play`.
type ChatModel struct {
	engine     *turn.Engine
	sessionKey string
	planURL    string
	resume     bool

	transcript []entry
	input      textinput.Model
	waiting    bool
	done       bool
	errMsg     string

	width  int
	height int
}

// NewChat creates a chat model. With resume set, the prior session state
// for the key is picked up where it left off; otherwise it is discarded.
func NewChat(engine *turn.Engine, sessionKey, planURL string, resume bool) ChatModel {
	ti := textinput.New()
	ti.Placeholder = "Escribe tu respuesta..."
	ti.Focus()

	return ChatModel{
		engine:     engine,
		sessionKey: sessionKey,
		planURL:    planURL,
		resume:     resume,
		input:      ti,
	}
}

func (m ChatModel) Init() tea.Cmd {
	return tea.Batch(m.input.Focus(), m.firstTurn())
}

// firstTurn opens the session: resume keeps stored state, falling back to
// a reset when none exists.
func (m ChatModel) firstTurn() tea.Cmd {
	engine, key, url, resume := m.engine, m.sessionKey, m.planURL, m.resume
	return func() tea.Msg {
		ctx := context.Background()
		if resume {
			resp, err := engine.Play(ctx, turn.Request{SessionKey: key, PlanURL: url})
			if err == nil || !errors.Is(err, state.ErrNotFound) {
				return turnDoneMsg{resp: resp, err: err}
			}
		}
		resp, err := engine.Play(ctx, turn.Request{SessionKey: key, PlanURL: url, Reset: true})
		return turnDoneMsg{resp: resp, err: err}
	}
}

func (m ChatModel) submitTurn(text string) tea.Cmd {
	engine, key, url := m.engine, m.sessionKey, m.planURL
	return func() tea.Msg {
		resp, err := engine.Play(context.Background(), turn.Request{
			SessionKey: key,
			PlanURL:    url,
			UserInput:  text,
		})
		return turnDoneMsg{resp: resp, err: err}
	}
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case turnDoneMsg:
		m.waiting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.appendResponse(msg.resp)
		if msg.resp.State.Done {
			m.done = true
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.done || m.errMsg != "" {
				return m, tea.Quit
			}
			if m.waiting {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.transcript = append(m.transcript, entry{who: speakerLearner, text: text})
			m.input.SetValue("")
			m.waiting = true
			return m, m.submitTurn(text)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChatModel) appendResponse(resp *turn.Response) {
	if resp.Assessment != nil {
		m.transcript = append(m.transcript, entry{
			who:  speakerSystem,
			text: fmt.Sprintf("[%s · %.1f]", resp.Assessment.Level, resp.Assessment.Score),
		})
	}
	if resp.Message != "" {
		m.transcript = append(m.transcript, entry{who: speakerTutor, text: resp.Message})
	}
	if resp.FollowUp != "" {
		m.transcript = append(m.transcript, entry{who: speakerTutor, text: resp.FollowUp})
	}
}

func (m ChatModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}

	var b strings.Builder
	for _, line := range m.renderTranscript() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.errMsg != "":
		b.WriteString(systemStyle.Render("Error: " + m.errMsg + " (Enter para salir)"))
	case m.done:
		b.WriteString(scoreStyle.Render("Lección terminada. Enter para salir."))
	case m.waiting:
		b.WriteString(systemStyle.Render("..."))
	default:
		b.WriteString(m.input.View())
	}

	v.SetContent(b.String())
	return v
}

// renderTranscript wraps and trims the transcript to the last lines that
// fit above the input row.
func (m ChatModel) renderTranscript() []string {
	wrap := lipgloss.NewStyle().Width(m.width - 2)

	var lines []string
	for _, e := range m.transcript {
		var rendered string
		switch e.who {
		case speakerTutor:
			rendered = tutorStyle.Render("Tutor: ") + e.text
		case speakerLearner:
			rendered = learnerStyle.Render("Tú: ") + e.text
		default:
			rendered = systemStyle.Render(e.text)
		}
		lines = append(lines, strings.Split(wrap.Render(rendered), "\n")...)
	}

	avail := m.height - 3
	if avail > 0 && len(lines) > avail {
		lines = lines[len(lines)-avail:]
	}
	return lines
}

// Run starts the chat program and blocks until it exits.
func Run(engine *turn.Engine, sessionKey, planURL string, resume bool) error {
	p := tea.NewProgram(NewChat(engine, sessionKey, planURL, resume))
	_, err := p.Run()
	return err
}
