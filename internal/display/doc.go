// Package display implements a windowed key/value list controller for
// fixed-size character displays such as 2x16 LCD panels.
//
// The central type is Controller, which owns an ordered list of cells,
// tracks a cursor and a visible window over the list, and formats each
// visible row into an exact-width line for a Surface to draw. The window
// follows a minimal-scroll policy: it moves only as far as needed to keep
// the cursor visible and never recenters.
//
// # Shapes
//
// Every cell in one list shares a single Shape: a fixed key width and value
// width. The controller validates this at construction, so a list can never
// mix 11/3 cells with 10/4 cells. Formatting is deterministic: text shorter
// than its field is space-padded on the right, longer text is truncated.
//
// # Rendering
//
// Each visible row is laid out as
//
//	[navigator or space][key][separator][value]
//
// padded or truncated to exactly Geometry.Columns characters. The navigator
// glyph appears only on the cursor row. Rows past the end of a short list
// render as blank lines of full width, so the Surface always receives
// exactly Geometry.Rows lines.
//
// # Usage
//
//	shape := display.Shape{KeyWidth: 11, ValueWidth: 3}
//	cells := []display.Cell[string, uint8]{
//	    display.NewCell(shape, "Bolts", uint8(12)),
//	    display.NewCell(shape, "Washers", uint8(40)),
//	}
//	ctrl, err := display.NewController(shape, cells, surface, display.DefaultGeometry())
//	if err != nil {
//	    return err
//	}
//	ctrl.Render()
//	ctrl.NavigateDown()
//
// Controller is not safe for concurrent use; it is designed for a single
// operator driving it from one goroutine. Callers that must share one
// controller across goroutines need to serialize access externally.
package display
