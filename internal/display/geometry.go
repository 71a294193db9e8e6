package display

// Geometry describes the fixed character grid the controller renders onto.
// It covers only the grid itself; field widths live in the list's Shape.
type Geometry struct {
	// Rows is the number of visible lines, at least 1.
	Rows int
	// Columns is the width of every rendered line in characters.
	Columns int
	// Navigator is the cursor glyph marking the selected row.
	Navigator byte
	// Separator is the glyph drawn between the key and value fields.
	Separator byte
}

// DefaultGeometry returns the classic 2x16 character LCD layout with a '>'
// cursor and ':' field separator.
func DefaultGeometry() Geometry {
	return Geometry{Rows: 2, Columns: 16, Navigator: '>', Separator: ':'}
}

// Valid reports whether the grid dimensions are usable. Whether Columns can
// fit a particular Shape is checked by the controller, which knows both.
func (g Geometry) Valid() bool {
	return g.Rows >= 1 && g.Columns >= 1
}
