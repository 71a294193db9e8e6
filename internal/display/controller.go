package display

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/garrettcampbell3/display-library/internal/logging"
)

// Controller maintains a cursor over an ordered list of cells while exposing
// only a fixed window of visible rows. Every state-changing operation
// recomputes the window and pushes a full frame to the Surface; operations
// that change nothing render nothing.
//
// Invariants held after every public call (non-empty list):
//
//	windowStart <= selected <= windowStart + rows - 1
//	windowStart is the minimal value satisfying the above
//	windowStart == 0 whenever the whole list fits in the window
type Controller[K any, V any] struct {
	shape   Shape
	geom    Geometry
	cells   []Cell[K, V]
	surface Surface

	selected    int
	windowStart int
	selectedOn  bool
}

// NewController validates the configuration and builds a controller with the
// cursor on the first item, the window at the top, and the selection flag
// off. It does not render; callers trigger the first frame explicitly.
//
// The shape is passed explicitly rather than inferred from the cells so an
// empty list still gets its column-fit validation; every supplied cell must
// carry the same shape.
func NewController[K any, V any](shape Shape, cells []Cell[K, V], surface Surface, geom Geometry) (*Controller[K, V], error) {
	if surface == nil {
		return nil, fmt.Errorf("%w: surface is nil", ErrInvalidConfiguration)
	}
	if !shape.Valid() {
		return nil, fmt.Errorf("%w: shape %d/%d", ErrInvalidConfiguration, shape.KeyWidth, shape.ValueWidth)
	}
	if !geom.Valid() {
		return nil, fmt.Errorf("%w: geometry %dx%d", ErrInvalidConfiguration, geom.Rows, geom.Columns)
	}
	if required := shape.Width(); geom.Columns < required {
		return nil, fmt.Errorf("%w: %d columns cannot fit %d (1 navigator + %d key + 1 separator + %d value)",
			ErrInvalidConfiguration, geom.Columns, required, shape.KeyWidth, shape.ValueWidth)
	}
	for i := range cells {
		if cells[i].Shape() != shape {
			return nil, fmt.Errorf("%w: cell %d has shape %d/%d, list requires %d/%d",
				ErrInvalidConfiguration, i, cells[i].Shape().KeyWidth, cells[i].Shape().ValueWidth,
				shape.KeyWidth, shape.ValueWidth)
		}
	}

	return &Controller[K, V]{
		shape:   shape,
		geom:    geom,
		cells:   cells,
		surface: surface,
	}, nil
}

// NavigateDown moves the cursor to the next item, scrolling the window when
// the cursor crosses its bottom edge. Returns false without rendering when
// the list is empty or the cursor is already on the last item.
func (c *Controller[K, V]) NavigateDown() bool {
	if len(c.cells) == 0 || c.selected == len(c.cells)-1 {
		return false
	}
	c.selected++
	c.adjustWindow()
	c.renderLogged("navigate_down")
	return true
}

// NavigateUp moves the cursor to the previous item, scrolling the window
// when the cursor crosses its top edge. Returns false without rendering when
// the cursor is already on the first item.
func (c *Controller[K, V]) NavigateUp() bool {
	if c.selected == 0 {
		return false
	}
	c.selected--
	c.adjustWindow()
	c.renderLogged("navigate_up")
	return true
}

// SelectItem turns the selection flag on. Returns false without rendering
// when it was already on.
func (c *Controller[K, V]) SelectItem() bool {
	if c.selectedOn {
		return false
	}
	c.selectedOn = true
	c.renderLogged("select")
	return true
}

// DeselectItem turns the selection flag off. Returns false without rendering
// when it was already off.
func (c *Controller[K, V]) DeselectItem() bool {
	if !c.selectedOn {
		return false
	}
	c.selectedOn = false
	c.renderLogged("deselect")
	return true
}

// CurrentValue returns the value of the cell under the cursor.
func (c *Controller[K, V]) CurrentValue() (V, error) {
	if len(c.cells) == 0 {
		var zero V
		return zero, fmt.Errorf("%w: list is empty", ErrIndexOutOfRange)
	}
	return c.cells[c.selected].Value(), nil
}

// CurrentKey returns the key of the cell under the cursor.
func (c *Controller[K, V]) CurrentKey() (K, error) {
	if len(c.cells) == 0 {
		var zero K
		return zero, fmt.Errorf("%w: list is empty", ErrIndexOutOfRange)
	}
	return c.cells[c.selected].Key(), nil
}

// SetCurrentValue writes a new value into the cell under the cursor and
// renders unconditionally, even when the value is unchanged.
func (c *Controller[K, V]) SetCurrentValue(value V) error {
	if len(c.cells) == 0 {
		return fmt.Errorf("%w: list is empty", ErrIndexOutOfRange)
	}
	c.cells[c.selected].SetValue(value)
	c.renderLogged("set_value")
	return nil
}

// SetCurrentKey writes a new key into the cell under the cursor and renders
// unconditionally.
func (c *Controller[K, V]) SetCurrentKey(key K) error {
	if len(c.cells) == 0 {
		return fmt.Errorf("%w: list is empty", ErrIndexOutOfRange)
	}
	c.cells[c.selected].SetKey(key)
	c.renderLogged("set_key")
	return nil
}

// CanScroll reports whether the list is longer than the visible window.
func (c *Controller[K, V]) CanScroll() bool {
	return len(c.cells) > c.geom.Rows
}

// SelectedIndex returns the absolute index of the cursor row.
func (c *Controller[K, V]) SelectedIndex() int { return c.selected }

// WindowStart returns the absolute index of the first visible row.
func (c *Controller[K, V]) WindowStart() int { return c.windowStart }

// NavigatorRow returns the window-relative row the cursor glyph occupies.
func (c *Controller[K, V]) NavigatorRow() int { return c.selected - c.windowStart }

// IsSelected reports the state of the selection flag.
func (c *Controller[K, V]) IsSelected() bool { return c.selectedOn }

// Len returns the number of cells in the list.
func (c *Controller[K, V]) Len() int { return len(c.cells) }

// Geometry returns the display grid configuration.
func (c *Controller[K, V]) Geometry() Geometry { return c.geom }

// Render formats the visible window and pushes it to the surface. It mutates
// no controller state; the error is whatever the surface reported.
func (c *Controller[K, V]) Render() error {
	lines := make([]string, 0, c.geom.Rows)
	for row := 0; row < c.geom.Rows; row++ {
		lines = append(lines, c.formatRow(row))
	}
	return c.surface.Render(lines, c.geom.Columns)
}

// adjustWindow keeps the cursor inside the visible window, moving the window
// no further than necessary. An empty list pins the window to the top.
func (c *Controller[K, V]) adjustWindow() {
	if len(c.cells) == 0 {
		c.windowStart = 0
		return
	}
	if c.selected < c.windowStart {
		c.windowStart = c.selected
	} else if c.selected >= c.windowStart+c.geom.Rows {
		c.windowStart = c.selected - c.geom.Rows + 1
	}
}

// formatRow lays out one visible row: navigator column, key field, separator,
// value field, padded or truncated to the exact column count. Rows past the
// end of the list come out blank.
func (c *Controller[K, V]) formatRow(row int) string {
	var b strings.Builder
	b.Grow(c.geom.Columns)

	itemIndex := c.windowStart + row
	if itemIndex == c.selected && itemIndex < len(c.cells) {
		b.WriteByte(c.geom.Navigator)
	} else {
		b.WriteByte(' ')
	}

	if itemIndex < len(c.cells) {
		cell := &c.cells[itemIndex]
		b.WriteString(cell.FormattedKey())
		b.WriteByte(c.geom.Separator)
		b.WriteString(cell.FormattedValue())
	}

	return formatToWidth(b.String(), c.geom.Columns)
}

// renderLogged is the render path for state-changing operations: a surface
// failure is logged but never disturbs navigation state or bool returns.
func (c *Controller[K, V]) renderLogged(op string) {
	if err := c.Render(); err != nil {
		logging.Warn("Frame render failed",
			zap.String("operation", op),
			zap.Int("selected", c.selected),
			zap.Int("window_start", c.windowStart),
			zap.Error(err),
		)
	}
}
