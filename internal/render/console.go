package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI sequence clearing the screen and homing the cursor.
const ansiClear = "\033[2J\033[H"

// Styling for the framed output. Colors degrade gracefully on terminals
// without color support; FrameStyle is only applied when color is on.
var (
	borderColor = lipgloss.Color("#43BF6D")
	BorderStyle = lipgloss.NewStyle().Foreground(borderColor)
	FrameStyle  = lipgloss.NewStyle().Bold(true)
)

// ConsoleSurface renders frames as a bordered box on an io.Writer. Render
// clears the screen first, so each frame fully replaces the previous one.
type ConsoleSurface struct {
	w         io.Writer
	color     bool
	clearable bool
}

// Option configures a ConsoleSurface.
type Option func(*ConsoleSurface)

// WithColor enables lipgloss styling of the border and frame content.
func WithColor() Option {
	return func(s *ConsoleSurface) { s.color = true }
}

// WithoutClear disables the ANSI clear before each frame. Useful when the
// writer is not a terminal (pipes, test buffers, log capture).
func WithoutClear() Option {
	return func(s *ConsoleSurface) { s.clearable = false }
}

// NewConsoleSurface creates a surface writing to w.
func NewConsoleSurface(w io.Writer, opts ...Option) *ConsoleSurface {
	s := &ConsoleSurface{w: w, clearable: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Render draws the frame inside a +----+ border. Every line arrives at
// exactly the declared column width, so the box edges always align.
func (s *ConsoleSurface) Render(lines []string, columns int) error {
	if err := s.Clear(); err != nil {
		return err
	}

	var b strings.Builder
	edge := "+" + strings.Repeat("-", columns) + "+"
	if s.color {
		edge = BorderStyle.Render(edge)
	}

	b.WriteString(edge)
	b.WriteByte('\n')
	for _, line := range lines {
		side := "|"
		if s.color {
			side = BorderStyle.Render("|")
			line = FrameStyle.Render(line)
		}
		b.WriteString(side)
		b.WriteString(line)
		b.WriteString(side)
		b.WriteByte('\n')
	}
	b.WriteString(edge)
	b.WriteByte('\n')

	if _, err := fmt.Fprint(s.w, b.String()); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

// Clear erases prior output with an ANSI escape, or does nothing when
// clearing is disabled.
func (s *ConsoleSurface) Clear() error {
	if !s.clearable {
		return nil
	}
	if _, err := fmt.Fprint(s.w, ansiClear); err != nil {
		return fmt.Errorf("failed to clear display: %w", err)
	}
	return nil
}
