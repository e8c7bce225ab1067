// Package tui renders the chat controller in a terminal.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thefurer/PLdescubierto-chat/internal/chat"
	"github.com/thefurer/PLdescubierto-chat/internal/sanitize"
)

// Quick options surfaced to the user as function keys.
var quickOptions = []string{
	"¿Qué actividades hay en Puerto López?",
	"¿Cuándo es la temporada de ballenas?",
	"¿Cómo los contacto?",
}

// sentOutcomeMsg carries the result of one controller round-trip back
// into the update loop.
type sentOutcomeMsg struct {
	outcome chat.SendOutcome
}

// sendRejectedMsg is produced when the controller refused the send
// before any network I/O (validation failure or busy guard).
type sendRejectedMsg struct {
	err error
}

// Model is the bubbletea model for the chat window.
type Model struct {
	controller *chat.Controller

	viewport viewport.Model
	input    textarea.Model
	spinner  spinner.Model

	notice string
	width  int
	height int
	ready  bool
}

// New creates the chat TUI bound to a controller.
func New(controller *chat.Controller) Model {
	ta := textarea.New()
	ta.Placeholder = "Escribe tu pregunta sobre Puerto López..."
	ta.CharLimit = sanitize.MaxLength
	ta.SetHeight(2)
	ta.ShowLineNumbers = false
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		controller: controller,
		input:      ta,
		spinner:    sp,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - m.input.Height() - 4
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.refreshConversation()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyCtrlL:
			m.controller.Clear()
			m.notice = ""
			m.refreshConversation()
			return m, nil

		case tea.KeyEnter:
			return m.send(m.input.Value())

		case tea.KeyF1:
			return m.send(quickOptions[0])
		case tea.KeyF2:
			return m.send(quickOptions[1])
		case tea.KeyF3:
			return m.send(quickOptions[2])
		}

	case sentOutcomeMsg:
		m.notice = msg.outcome.Notice
		m.refreshConversation()
		return m, nil

	case sendRejectedMsg:
		m.notice = rejectionNotice(msg.err)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.controller.Sending() {
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// send hands text to the controller in a command goroutine. The
// controller's own guard keeps at most one request in flight.
func (m Model) send(text string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(text) == "" {
		m.notice = "Escribe un mensaje primero."
		return m, nil
	}
	if m.controller.Sending() {
		m.notice = "Espera la respuesta anterior."
		return m, nil
	}

	m.input.Reset()
	m.notice = ""

	controller := m.controller
	sendCmd := func() tea.Msg {
		outcome, err := controller.Send(context.Background(), text)
		if err != nil {
			return sendRejectedMsg{err: err}
		}
		return sentOutcomeMsg{outcome: outcome}
	}

	m.refreshConversation()
	return m, tea.Batch(sendCmd, m.spinner.Tick)
}

func rejectionNotice(err error) string {
	switch {
	case errors.Is(err, sanitize.ErrEmpty):
		return "El mensaje está vacío."
	case errors.Is(err, sanitize.ErrNoValidChars):
		return "El mensaje no contiene texto válido."
	case errors.Is(err, chat.ErrBusy):
		return "Espera la respuesta anterior."
	default:
		return err.Error()
	}
}

func (m *Model) refreshConversation() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()
}

func (m *Model) renderMessages() string {
	var b strings.Builder
	for _, msg := range m.controller.Messages() {
		label := assistantLabelStyle.Render("Asistente")
		if msg.Role == chat.RoleUser {
			label = userLabelStyle.Render("Tú")
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(messageStyle.Width(m.width - 4).Render(msg.Text))
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m Model) View() string {
	if !m.ready {
		return "Cargando..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Puerto López Descubierto — Asistente"))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.controller.Sending() {
		b.WriteString(m.spinner.View())
		b.WriteString(" escribiendo...\n")
	} else if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter enviar · F1-F3 preguntas rápidas · ctrl+l limpiar · esc salir"))
	return b.String()
}
