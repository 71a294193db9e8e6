package display

import "errors"

var (
	// ErrInvalidConfiguration is returned when a controller cannot be
	// constructed: missing surface, invalid shape or geometry, mixed cell
	// shapes, or a column count too small for the cell widths.
	ErrInvalidConfiguration = errors.New("invalid display configuration")

	// ErrIndexOutOfRange is returned by current-item accessors when the
	// list is empty and no valid selection exists.
	ErrIndexOutOfRange = errors.New("item index out of range")
)
