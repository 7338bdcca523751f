package tui

import (
	"context"
	"net"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/otascout/internal/listener"
)

// Sink forwards listener output to a Bubble Tea program.
// Send blocks until the program accepts the message, which keeps rows in
// receipt order.
type Sink struct {
	program *tea.Program
}

// NewSink creates the program. cancel stops the listener when the user quits.
func NewSink(cancel context.CancelFunc, opts ...tea.ProgramOption) *Sink {
	return &Sink{
		program: tea.NewProgram(NewModel(cancel), opts...),
	}
}

// Run runs the program until the listener stops or Quit is called
func (s *Sink) Run() error {
	_, err := s.program.Run()
	return err
}

// Quit ends the program without waiting for the listener
func (s *Sink) Quit() {
	s.program.Quit()
}

func (s *Sink) Started(addr *net.UDPAddr) {
	port := 0
	if addr != nil {
		port = addr.Port
	}
	s.program.Send(startedMsg{port: port})
}

func (s *Sink) Report(ev listener.Event) error {
	s.program.Send(eventMsg{ev: ev})
	return nil
}

func (s *Sink) Stopped() {
	s.program.Send(stoppedMsg{})
}
