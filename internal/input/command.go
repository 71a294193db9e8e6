package input

// Command is one discrete navigation intent produced by an input source.
type Command int

const (
	// None means no input was pending.
	None Command = iota
	// Up moves the cursor to the previous item.
	Up
	// Down moves the cursor to the next item.
	Down
	// Select turns the selection flag on.
	Select
	// Deselect turns the selection flag off.
	Deselect
	// Increment adds one to the value under the cursor.
	Increment
	// Decrement subtracts one from the value under the cursor.
	Decrement
	// Quit ends the operator session.
	Quit
)

// String returns the lowercase command name for logging.
func (c Command) String() string {
	switch c {
	case None:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Select:
		return "select"
	case Deselect:
		return "deselect"
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Source yields navigation commands from some device: a keyboard, a test
// script, hardware buttons.
type Source interface {
	// Poll returns the next pending command without blocking, or None
	// when nothing is waiting.
	Poll() Command

	// WaitForNext blocks the calling goroutine until a command arrives.
	WaitForNext() Command
}
