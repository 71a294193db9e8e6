package display

import "errors"

// mockSurface records render calls for verification in tests.
type mockSurface struct {
	lastLines   []string
	lastColumns int
	renderCalls int
	clearCalls  int
	failRender  bool
}

func (m *mockSurface) Render(lines []string, columns int) error {
	if m.failRender {
		return errors.New("surface unavailable")
	}
	m.lastLines = append([]string(nil), lines...)
	m.lastColumns = columns
	m.renderCalls++
	return nil
}

func (m *mockSurface) Clear() error {
	m.clearCalls++
	return nil
}

func (m *mockSurface) reset() {
	m.lastLines = nil
	m.lastColumns = 0
	m.renderCalls = 0
	m.clearCalls = 0
}

// line returns one line of the last render, failing loudly on bad indexes.
func (m *mockSurface) line(i int) string {
	if i < 0 || i >= len(m.lastLines) {
		return ""
	}
	return m.lastLines[i]
}
