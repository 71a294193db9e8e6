package input

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/garrettcampbell3/display-library/internal/logging"
)

// ConsoleListener reads single keystrokes from a terminal and translates
// them into navigation commands. Start switches the terminal into raw mode
// and spawns a reader goroutine; Stop restores the terminal. Commands are
// buffered, so a burst of keystrokes is not lost between polls.
type ConsoleListener struct {
	in *os.File

	mu        sync.Mutex
	listening bool
	oldState  *term.State
	commands  chan Command
	done      chan struct{}
}

// NewConsoleListener creates a listener over stdin.
func NewConsoleListener() *ConsoleListener {
	return &ConsoleListener{in: os.Stdin}
}

// Start puts the terminal into raw mode and begins decoding keystrokes.
func (l *ConsoleListener) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.listening {
		return nil
	}

	state, err := term.MakeRaw(int(l.in.Fd()))
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}

	l.oldState = state
	l.commands = make(chan Command, 16)
	l.done = make(chan struct{})
	l.listening = true

	go l.readLoop(l.commands, l.done)
	return nil
}

// Stop restores the terminal state. Pending commands are discarded.
func (l *ConsoleListener) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.listening {
		return
	}
	l.listening = false
	close(l.done)
	if l.oldState != nil {
		if err := term.Restore(int(l.in.Fd()), l.oldState); err != nil {
			logging.Warn("Failed to restore terminal state", zap.Error(err))
		}
		l.oldState = nil
	}
}

// IsListening reports whether the listener is active.
func (l *ConsoleListener) IsListening() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.listening
}

// Poll returns the next pending command, or None when nothing is waiting
// or the listener is stopped.
func (l *ConsoleListener) Poll() Command {
	l.mu.Lock()
	ch := l.commands
	active := l.listening
	l.mu.Unlock()
	if !active {
		return None
	}
	select {
	case cmd := <-ch:
		return cmd
	default:
		return None
	}
}

// WaitForNext blocks until a command arrives. It returns Quit when the
// listener is stopped while waiting, so operator loops terminate cleanly.
func (l *ConsoleListener) WaitForNext() Command {
	l.mu.Lock()
	ch := l.commands
	done := l.done
	active := l.listening
	l.mu.Unlock()
	if !active {
		return Quit
	}
	select {
	case cmd := <-ch:
		return cmd
	case <-done:
		return Quit
	}
}

// Help returns the key mapping text shown to the operator.
func Help() string {
	return `=== Navigation Controls ===
  w / up     : Navigate Up
  s / down   : Navigate Down
  e          : Select Item
  q          : Deselect Item
  d / +      : Increment Value
  a / -      : Decrement Value
  x          : Exit
===========================`
}

// readLoop decodes keystrokes until the listener stops. It takes the
// channels as arguments so a Stop/Start cycle cannot race an old loop onto
// new channels.
func (l *ConsoleListener) readLoop(commands chan Command, done chan struct{}) {
	buf := make([]byte, 1)
	for {
		select {
		case <-done:
			return
		default:
		}

		n, err := l.in.Read(buf)
		if err != nil || n == 0 {
			return
		}

		cmd := l.decodeByte(buf[0])
		if cmd == None {
			continue
		}

		select {
		case commands <- cmd:
		case <-done:
			return
		}
	}
}

// decodeByte maps one input byte to a command. An ESC byte starts an
// arrow-key sequence, which is read inline.
func (l *ConsoleListener) decodeByte(b byte) Command {
	switch b {
	case 'w', 'W':
		return Up
	case 's', 'S':
		return Down
	case 'e', 'E':
		return Select
	case 'q', 'Q':
		return Deselect
	case 'd', 'D', '+':
		return Increment
	case 'a', 'A', '-':
		return Decrement
	case 'x', 'X', 0x03: // 0x03 is ctrl+c in raw mode
		return Quit
	case 0x1b:
		return l.decodeEscape()
	default:
		return None
	}
}

// decodeEscape consumes the "[A".."[D" tail of an arrow-key sequence.
func (l *ConsoleListener) decodeEscape() Command {
	seq := make([]byte, 2)
	if n, err := l.in.Read(seq); err != nil || n < 2 || seq[0] != '[' {
		return None
	}
	switch seq[1] {
	case 'A':
		return Up
	case 'B':
		return Down
	default:
		return None
	}
}
