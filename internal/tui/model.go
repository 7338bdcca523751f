package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/otascout/internal/listener"
	"github.com/muurk/otascout/internal/ui"
)

// Messages delivered by the sink
type startedMsg struct{ port int }
type eventMsg struct{ ev listener.Event }
type stoppedMsg struct{}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Background(ui.PrimaryColor).
			Bold(true).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			PaddingLeft(1)

	hintStyle = lipgloss.NewStyle().
			Foreground(ui.SuccessColor).
			Bold(true).
			PaddingLeft(1)

	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(ui.MutedColor)
)

// keyMap defines key bindings for the event table
type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// Model is the event table screen
type Model struct {
	table  table.Model
	help   help.Model
	keys   keyMap
	cancel context.CancelFunc

	port        int
	events      int
	tableHeight int
	lastHint    string
	stopping    bool
	stopped     bool
}

// NewModel creates the table screen. cancel is invoked when the user quits.
func NewModel(cancel context.CancelFunc) Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Time", Width: 8},
		{Title: "IP Address", Width: 15},
		{Title: "Device", Width: 8},
		{Title: "Message", Width: 32},
		{Title: "Action", Width: 21},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.MutedColor).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(ui.TextColor).
		Background(ui.PrimaryColor)
	t.SetStyles(styles)

	return Model{
		table:  t,
		help:   help.New(),
		cancel: cancel,
		keys: keyMap{
			Up: key.NewBinding(
				key.WithKeys("up", "k"),
				key.WithHelp("↑/k", "up"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j"),
				key.WithHelp("↓/j", "down"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "esc", "ctrl+c"),
				key.WithHelp("q", "stop listener"),
			),
		},
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			if !m.stopping && m.cancel != nil {
				m.cancel()
			}
			m.stopping = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		// Leave room for title, status, borders and help
		height := msg.Height - 8
		if height < 3 {
			height = 3
		}
		m.tableHeight = height
		m.table.SetHeight(height)
		return m, nil

	case startedMsg:
		m.port = msg.port
		return m, nil

	case eventMsg:
		m.events++
		m.lastHint = msg.ev.Hint()
		rows := append(m.table.Rows(), eventRow(m.events, msg.ev))
		m.table.SetRows(rows)
		m.table.GotoBottom()
		return m, nil

	case stoppedMsg:
		m.stopped = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func eventRow(n int, ev listener.Event) table.Row {
	device := ev.DeviceID
	if device == "" {
		device = "-"
	}
	return table.Row{
		fmt.Sprintf("%d", n),
		ev.ReceivedAt.Format("15:04:05"),
		ev.SourceIP,
		device,
		ev.Message,
		ev.Hint(),
	}
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("OTA DISCOVERY"))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(tableBorderStyle.Render(m.table.View()))
	b.WriteString("\n")
	if m.lastHint != "" {
		b.WriteString(hintStyle.Render("Next: connect via TCP to " + m.lastHint))
		b.WriteString("\n")
	}
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) status() string {
	switch {
	case m.stopped:
		return fmt.Sprintf("Stopped after %d event(s)", m.events)
	case m.stopping:
		return "Stopping listener..."
	case m.port == 0:
		return "Starting..."
	default:
		return fmt.Sprintf("Listening on UDP port %d • %d event(s)", m.port, m.events)
	}
}
