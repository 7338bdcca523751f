package tui

import (
	"net"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/otascout/internal/listener"
)

func testEvent(ip, msg string) listener.Event {
	src := &net.UDPAddr{IP: net.ParseIP(ip), Port: 55000}
	return listener.NewEvent(src, []byte(msg), false, listener.DefaultPort, time.Now())
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", next)
	}
	return model, cmd
}

func TestModel_EventsAppendInOrder(t *testing.T) {
	m := NewModel(nil)
	m, _ = update(t, m, startedMsg{port: 3232})
	m, _ = update(t, m, eventMsg{ev: testEvent("192.168.4.16", "MeshtasticOTA_a1b2c3")})
	m, _ = update(t, m, eventMsg{ev: testEvent("192.168.4.20", "hello")})

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0][2] != "192.168.4.16" || rows[0][3] != "a1b2c3" {
		t.Errorf("row 0 = %v, want 192.168.4.16 / a1b2c3", rows[0])
	}
	if rows[1][4] != "hello" || rows[1][3] != "-" {
		t.Errorf("row 1 = %v, want hello with no device id", rows[1])
	}
	if rows[1][5] != "192.168.4.20:3232" {
		t.Errorf("row 1 action = %v, want 192.168.4.20:3232", rows[1][5])
	}

	view := m.View()
	if !strings.Contains(view, "Listening on UDP port 3232") {
		t.Errorf("view missing status line:\n%s", view)
	}
	if !strings.Contains(view, "192.168.4.20:3232") {
		t.Errorf("view missing last hint:\n%s", view)
	}
}

func TestModel_QuitCancelsListener(t *testing.T) {
	cancelled := 0
	m := NewModel(func() { cancelled++ })

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd != nil {
		t.Error("quit key should wait for the listener to stop")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	if cancelled != 1 {
		t.Errorf("cancel called %d times, want 1", cancelled)
	}
	if !strings.Contains(m.View(), "Stopping listener...") {
		t.Errorf("view missing stopping status:\n%s", m.View())
	}
}

func TestModel_StoppedQuitsProgram(t *testing.T) {
	m := NewModel(nil)

	m, cmd := update(t, m, stoppedMsg{})
	if cmd == nil {
		t.Fatal("stopped should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("command returned %T, want tea.QuitMsg", cmd())
	}
	if !strings.Contains(m.View(), "Stopped after 0 event(s)") {
		t.Errorf("view missing stopped status:\n%s", m.View())
	}
}

func TestModel_WindowResize(t *testing.T) {
	m := NewModel(nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.tableHeight != 32 {
		t.Errorf("table height = %d, want 32", m.tableHeight)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 5})
	if m.tableHeight != 3 {
		t.Errorf("table height = %d, want 3", m.tableHeight)
	}
}
