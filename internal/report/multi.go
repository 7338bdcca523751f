package report

import (
	"net"

	"github.com/muurk/otascout/internal/listener"
)

// Multi fans out to several sinks in order. Every sink sees every call; the
// first Report error is returned.
type Multi []listener.Sink

func (m Multi) Started(addr *net.UDPAddr) {
	for _, s := range m {
		s.Started(addr)
	}
}

func (m Multi) Report(ev listener.Event) error {
	var first error
	for _, s := range m {
		if err := s.Report(ev); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m Multi) Stopped() {
	for _, s := range m {
		s.Stopped()
	}
}
