// Package input turns operator keystrokes into discrete navigation commands.
//
// A Source produces one Command per event and supports both a non-blocking
// Poll and a blocking WaitForNext, so callers can choose between a fixed
// poll interval and an event-driven loop. ConsoleListener is the concrete
// source for a terminal: it switches stdin into raw mode and decodes single
// keystrokes, including arrow-key escape sequences.
//
// Keymap:
//
//	w / up arrow     Up
//	s / down arrow   Down
//	e                Select
//	q                Deselect
//	d / +            Increment
//	a / -            Decrement
//	x / ctrl+c       Quit
package input
