package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header is a command banner with title, command and parameters
type Header struct {
	Title   string   // e.g., "OTA LISTENER"
	Command string   // e.g., "otascout listen"
	Params  []Detail // Shown below the divider in order
	Width   int      // Terminal width for responsive rendering
}

// NewHeader creates a new header with the given values
func NewHeader(title, command string) *Header {
	return &Header{
		Title:   title,
		Command: command,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// AddParam appends a parameter row
func (h *Header) AddParam(key, value string) *Header {
	h.Params = append(h.Params, Detail{Key: key, Value: value})
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := h.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	top := lipgloss.JoinVertical(lipgloss.Left,
		HeaderTitleStyle.Render(strings.ToUpper(h.Title)),
		HeaderCommandStyle.Render(h.Command),
	)

	content := top
	if len(h.Params) > 0 {
		dividerWidth := width - 6
		if dividerWidth < 10 {
			dividerWidth = 10
		}

		params := make([]string, 0, len(h.Params))
		for _, p := range h.Params {
			params = append(params, HeaderParamKeyStyle.Render(p.Key+":")+" "+HeaderParamValueStyle.Render(p.Value))
		}

		content = lipgloss.JoinVertical(lipgloss.Left,
			top,
			RenderHorizontalDivider(dividerWidth, "─"),
			strings.Join(params, "\n"),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(content)
}

// Print writes the header to w
func (h *Header) Print(w io.Writer) {
	_, _ = fmt.Fprintln(w, h.Render())
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}
