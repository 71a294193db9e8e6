// Package render provides concrete display surfaces.
//
// ConsoleSurface draws a frame as a bordered character box on a terminal or
// any io.Writer, mimicking the look of a character LCD:
//
//	+----------------+
//	|>Bolts      :12 |
//	| Washers    :40 |
//	+----------------+
//
// When color is enabled the border and frame are styled with lipgloss;
// the line content itself is never reflowed or reinterpreted.
package render
