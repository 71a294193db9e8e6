package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/garrettcampbell3/display-library/internal/display"
	"github.com/garrettcampbell3/display-library/internal/input"
	"github.com/garrettcampbell3/display-library/internal/logging"
)

// keyMap defines the operator key bindings
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Deselect  key.Binding
	Increment key.Binding
	Decrement key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Increment, k.Decrement, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Deselect},
		{k.Increment, k.Decrement, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "select"),
		),
		Deselect: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "deselect"),
		),
		Increment: key.NewBinding(
			key.WithKeys("d", "+"),
			key.WithHelp("d/+", "increment"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("a", "-"),
			key.WithHelp("a/-", "decrement"),
		),
		Quit: key.NewBinding(
			key.WithKeys("x", "ctrl+c"),
			key.WithHelp("x", "quit"),
		),
	}
}

// captureSurface records the most recent frame for the view to embed.
type captureSurface struct {
	lines   []string
	columns int
}

func (s *captureSurface) Render(lines []string, columns int) error {
	s.lines = append(s.lines[:0], lines...)
	s.columns = columns
	return nil
}

func (s *captureSurface) Clear() error {
	s.lines = s.lines[:0]
	return nil
}

// Model is the Bubble Tea model driving the operator console.
type Model struct {
	inv     *display.Inventory[string, uint8]
	capture *captureSurface

	keys keyMap
	help help.Model

	width    int
	quitting bool
}

// NewModel builds the controller over the given cells and wires it to a
// capture surface, plus any mirror surfaces (for example a frame server).
func NewModel(shape display.Shape, cells []display.Cell[string, uint8], geom display.Geometry, mirrors ...display.Surface) (Model, error) {
	capture := &captureSurface{}

	var surface display.Surface = capture
	if len(mirrors) > 0 {
		surface = display.Tee(append([]display.Surface{capture}, mirrors...)...)
	}

	inv, err := display.NewInventory(shape, cells, surface, geom)
	if err != nil {
		return Model{}, err
	}

	return Model{
		inv:     inv,
		capture: capture,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}, nil
}

// Init renders the first frame.
func (m Model) Init() tea.Cmd {
	if err := m.inv.Render(); err != nil {
		logging.Warn("Initial render failed")
	}
	return nil
}

// Update maps keystrokes to navigation commands and applies them.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			logging.LogCommand(input.Up.String(), m.inv.NavigateUp())

		case key.Matches(msg, m.keys.Down):
			logging.LogCommand(input.Down.String(), m.inv.NavigateDown())

		case key.Matches(msg, m.keys.Select):
			logging.LogCommand(input.Select.String(), m.inv.SelectItem())

		case key.Matches(msg, m.keys.Deselect):
			logging.LogCommand(input.Deselect.String(), m.inv.DeselectItem())

		case key.Matches(msg, m.keys.Increment):
			err := m.inv.IncrementValue()
			logging.LogCommand(input.Increment.String(), err == nil)

		case key.Matches(msg, m.keys.Decrement):
			err := m.inv.DecrementValue()
			logging.LogCommand(input.Decrement.String(), err == nil)
		}
	}
	return m, nil
}

// View embeds the captured frame in the LCD box with status and help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(AppName))
	b.WriteByte('\n')
	b.WriteString(LCDStyle.Render(strings.Join(m.capture.lines, "\n")))
	b.WriteByte('\n')
	b.WriteString(m.statusLine())
	b.WriteByte('\n')
	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// statusLine summarizes cursor position, scrollability, and the edit flag.
func (m Model) statusLine() string {
	ctrl := m.inv.Controller()

	status := fmt.Sprintf("item %d/%d", ctrl.SelectedIndex()+1, ctrl.Len())
	if ctrl.Len() == 0 {
		status = "no items"
	}
	if ctrl.CanScroll() {
		status += "  (scrollable)"
	}

	line := StatusStyle.Render(status)
	if ctrl.IsSelected() {
		line += "  " + EditBadgeStyle.Render("[EDIT]")
	}
	return line
}

// Run starts the interactive console and blocks until the operator quits.
func Run(m Model) error {
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("operator console failed: %w", err)
	}
	return nil
}
