package display

import (
	"fmt"
	"strings"
)

// Shape is the fixed field-width pairing shared by every cell in one list.
// It is set when a cell is created and checked by the controller at
// construction, so all rows of a display format identically.
type Shape struct {
	KeyWidth   int
	ValueWidth int
}

// Valid reports whether both field widths are usable.
func (s Shape) Valid() bool {
	return s.KeyWidth >= 1 && s.ValueWidth >= 1
}

// Width returns the total line width the shape requires on screen:
// one navigator column, the key field, one separator column, the value field.
func (s Shape) Width() int {
	return 1 + s.KeyWidth + 1 + s.ValueWidth
}

// Cell is one key/value row entry in a navigable list. The key and value
// types are arbitrary; formatting uses their default textual form, which
// renders integer types (including uint8 and int8) as decimal numbers.
type Cell[K any, V any] struct {
	shape Shape
	key   K
	value V
}

// NewCell creates a cell bound to the given shape.
func NewCell[K any, V any](shape Shape, key K, value V) Cell[K, V] {
	return Cell[K, V]{shape: shape, key: key, value: value}
}

// Shape returns the cell's field widths.
func (c *Cell[K, V]) Shape() Shape { return c.shape }

// Key returns the current key.
func (c *Cell[K, V]) Key() K { return c.key }

// Value returns the current value.
func (c *Cell[K, V]) Value() V { return c.value }

// SetKey replaces the key in place.
func (c *Cell[K, V]) SetKey(key K) { c.key = key }

// SetValue replaces the value in place.
func (c *Cell[K, V]) SetValue(value V) { c.value = value }

// FormattedKey returns the key's textual form at exactly KeyWidth
// characters: left-justified, space-padded, truncated from the right.
func (c *Cell[K, V]) FormattedKey() string {
	return formatToWidth(fmt.Sprint(c.key), c.shape.KeyWidth)
}

// FormattedValue returns the value's textual form at exactly ValueWidth
// characters, under the same padding and truncation rules.
func (c *Cell[K, V]) FormattedValue() string {
	return formatToWidth(fmt.Sprint(c.value), c.shape.ValueWidth)
}

// formatToWidth pads or truncates text to an exact width.
func formatToWidth(text string, width int) string {
	if len(text) < width {
		return text + strings.Repeat(" ", width-len(text))
	}
	return text[:width]
}
