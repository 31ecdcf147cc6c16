package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/hermes-agent/hermes/internal/ui/models"
	"github.com/hermes-agent/hermes/internal/ui/services"
	"github.com/hermes-agent/hermes/internal/ui/views"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// BubbleTeaModel implements tea.Model.
type BubbleTeaModel struct {
	state    models.State
	renderer services.MarkdownRenderer

	inputReq      <-chan string
	inputResp     chan<- string
	statusChan    <-chan statusMsg
	messageChan   <-chan string
	toolEventChan <-chan string

	readyChan chan<- struct{}
}

func newBubbleTeaModel(
	inputReq <-chan string,
	inputResp chan<- string,
	statusChan <-chan statusMsg,
	messageChan <-chan string,
	toolEventChan <-chan string,
	readyChan chan<- struct{},
	renderer services.MarkdownRenderer,
	sidebar models.SidebarInfo,
) BubbleTeaModel {
	ti := textinput.New()
	ti.Placeholder = "Ask me about shipments, delays, routes, or warehouses..."
	ti.Focus()

	vp := viewport.New(80, 20)
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return BubbleTeaModel{
		state: models.State{
			Input:    ti,
			Viewport: vp,
			Spinner:  sp,
			Sidebar:  sidebar,
		},
		renderer:      renderer,
		inputReq:      inputReq,
		inputResp:     inputResp,
		statusChan:    statusChan,
		messageChan:   messageChan,
		toolEventChan: toolEventChan,
		readyChan:     readyChan,
	}
}

// Internal messages
type tickMsg time.Time
type inputRequestMsg string
type statusUpdateMsg statusMsg
type messageReceivedMsg string
type toolEventMsg string
type exportDoneMsg struct {
	path string
	err  error
}

// Init initializes the model.
func (m BubbleTeaModel) Init() tea.Cmd {
	if m.readyChan != nil {
		close(m.readyChan)
	}

	return tea.Batch(
		textinput.Blink,
		m.state.Spinner.Tick,
		tick(),
		listenForInput(m.inputReq),
		listenForStatus(m.statusChan),
		listenForMessages(m.messageChan),
		listenForToolEvents(m.toolEventChan),
	)
}

// Update handles messages.
func (m BubbleTeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.state.Viewport.Width = msg.Width
		m.state.Viewport.Height = msg.Height - 6 // Reserve space for input and status
		m.updateViewport()

	case tickMsg:
		m.state.DotCount = (m.state.DotCount + 1) % 4
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, tea.Batch(cmd, tick())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd

	case inputRequestMsg:
		m.state.CanSubmit = true
		return m, listenForInput(m.inputReq)

	case statusUpdateMsg:
		m.state.StatusPhase = msg.phase
		m.state.StatusMessage = msg.message
		return m, listenForStatus(m.statusChan)

	case messageReceivedMsg:
		m.state.Messages = append(m.state.Messages, models.Message{
			Role:    "assistant",
			Content: string(msg),
		})
		m.updateViewport()
		return m, listenForMessages(m.messageChan)

	case toolEventMsg:
		m.state.ToolEvents = append(m.state.ToolEvents, string(msg))
		return m, listenForToolEvents(m.toolEventChan)

	case exportDoneMsg:
		content := fmt.Sprintf("Transcript exported to %s", msg.path)
		if msg.err != nil {
			content = fmt.Sprintf("Export failed: %v", msg.err)
		}
		m.state.Messages = append(m.state.Messages, models.Message{
			Role:    "assistant",
			Content: content,
		})
		m.updateViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m BubbleTeaModel) View() string {
	return views.RenderRoot(m.state)
}

// handleKeyPress handles keyboard input.
func (m BubbleTeaModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		input := m.state.Input.Value()
		if input == "" {
			return m, nil
		}

		if strings.HasPrefix(input, "/") {
			return m.handleCommand(input)
		}

		if m.state.CanSubmit {
			m.state.Messages = append(m.state.Messages, models.Message{
				Role:    "user",
				Content: input,
			})
			m.updateViewport()

			m.inputResp <- input
			m.state.Input.SetValue("")
			m.state.CanSubmit = false
		}
	}

	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	return m, cmd
}

// handleCommand handles slash commands.
func (m BubbleTeaModel) handleCommand(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	switch parts[0] {
	case "/sidebar":
		m.state.ShowSidebar = !m.state.ShowSidebar
		m.state.Input.SetValue("")
		m.updateViewport()

	case "/export":
		messages := append([]models.Message(nil), m.state.Messages...)
		events := append([]string(nil), m.state.ToolEvents...)
		m.state.Input.SetValue("")
		return m, func() tea.Msg {
			path, err := ExportTranscript(messages, events, time.Now())
			return exportDoneMsg{path: path, err: err}
		}

	case "/help":
		m.state.Messages = append(m.state.Messages, models.Message{
			Role:    "assistant",
			Content: "Available commands:\n- /sidebar - Toggle the info panel\n- /export - Save the transcript to a markdown file\n- /help - Show this help",
		})
		m.updateViewport()
		m.state.Input.SetValue("")
	}

	return m, nil
}

// updateViewport refreshes the viewport content.
func (m *BubbleTeaModel) updateViewport() {
	width := m.state.Width - 4
	if m.state.ShowSidebar {
		width -= 40
	}
	content := views.FormatChatContent(m.state.Messages, width, m.renderer)
	m.state.Viewport.SetContent(content)
	m.state.Viewport.GotoBottom()
}

// Helper commands for listening to channels
func listenForInput(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		return inputRequestMsg(<-ch)
	}
}

func listenForStatus(ch <-chan statusMsg) tea.Cmd {
	return func() tea.Msg {
		return statusUpdateMsg(<-ch)
	}
}

func listenForMessages(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		return messageReceivedMsg(<-ch)
	}
}

func listenForToolEvents(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		return toolEventMsg(<-ch)
	}
}

func tick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
