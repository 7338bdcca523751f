package report

import (
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/otascout/internal/listener"
	"github.com/muurk/otascout/internal/ui"
)

// separatorWidth matches the width of the rule printed above each event
const separatorWidth = 40

// Console writes one block per event:
//
//	----------------------------------------
//	Device Found!
//	IP Address : 192.168.4.16
//	Message    : MeshtasticOTA_a1b2c3
//	Action     : You can now connect via TCP to 192.168.4.16:3232
type Console struct {
	out   io.Writer
	color bool

	titleStyle lipgloss.Style
	labelStyle lipgloss.Style
	hintStyle  lipgloss.Style
	mutedStyle lipgloss.Style
}

// NewConsole creates a console sink. Colour should only be enabled when out is a terminal.
func NewConsole(out io.Writer, color bool) *Console {
	c := &Console{out: out, color: color}
	if color {
		r := lipgloss.NewRenderer(out)
		c.titleStyle = r.NewStyle().Foreground(ui.SuccessColor).Bold(true)
		c.labelStyle = r.NewStyle().Foreground(ui.MutedColor)
		c.hintStyle = r.NewStyle().Foreground(ui.PrimaryColor).Bold(true)
		c.mutedStyle = r.NewStyle().Foreground(ui.MutedColor)
	}
	return c
}

func (c *Console) style(s lipgloss.Style, text string) string {
	if !c.color {
		return text
	}
	return s.Render(text)
}

// Started prints the listening banner
func (c *Console) Started(addr *net.UDPAddr) {
	port := 0
	if addr != nil {
		port = addr.Port
	}
	_, _ = fmt.Fprintf(c.out, "Listening for Meshtastic OTA broadcasts on UDP port %d...\n", port)
	_, _ = fmt.Fprintln(c.out, c.style(c.mutedStyle, "Press Ctrl+C to stop."))
}

// Report prints the event block
func (c *Console) Report(ev listener.Event) error {
	var b strings.Builder

	b.WriteString(c.style(c.mutedStyle, strings.Repeat("-", separatorWidth)))
	b.WriteString("\n")
	b.WriteString(c.style(c.titleStyle, "Device Found!"))
	b.WriteString("\n")
	c.line(&b, "IP Address", ev.SourceIP)
	c.line(&b, "Message", ev.Message)
	if ev.DeviceID != "" {
		c.line(&b, "Device ID", ev.DeviceID)
	}
	if ev.Truncated {
		c.line(&b, "Note", fmt.Sprintf("datagram truncated to %d bytes", len(ev.Payload)))
	}
	c.line(&b, "Action", "You can now connect via TCP to "+c.style(c.hintStyle, ev.Hint()))

	_, err := io.WriteString(c.out, b.String())
	return err
}

// line writes "Label      : value" with labels padded to a common width
func (c *Console) line(b *strings.Builder, label, value string) {
	b.WriteString(c.style(c.labelStyle, fmt.Sprintf("%-10s :", label)))
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteString("\n")
}

// Stopped prints the shutdown notice
func (c *Console) Stopped() {
	_, _ = fmt.Fprintln(c.out, "\nStopping listener...")
}
