package display

// Surface is the rendering target the controller draws onto. Implementations
// draw the given lines verbatim: no reflow, no reinterpretation. The
// controller guarantees every line is exactly columns characters wide and
// that len(lines) equals the configured row count.
//
// Concrete adapters live outside this package (console box drawing, the
// WebSocket frame broadcaster, the TUI capture surface); tests use a
// recording double.
type Surface interface {
	// Render draws one full frame.
	Render(lines []string, columns int) error

	// Clear erases prior output. Implementations whose Render already
	// repaints the whole area may treat this as a no-op.
	Clear() error
}
