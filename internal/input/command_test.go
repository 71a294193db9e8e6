package input

import (
	"strings"
	"testing"
)

func TestCommandStrings(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{None, "none"},
		{Up, "up"},
		{Down, "down"},
		{Select, "select"},
		{Deselect, "deselect"},
		{Increment, "increment"},
		{Decrement, "decrement"},
		{Quit, "quit"},
		{Command(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("Command(%d).String() = %q, want %q", tt.cmd, got, tt.want)
		}
	}
}

func TestDecodeByteKeymap(t *testing.T) {
	l := NewConsoleListener()

	tests := []struct {
		b    byte
		want Command
	}{
		{'w', Up}, {'W', Up},
		{'s', Down}, {'S', Down},
		{'e', Select}, {'E', Select},
		{'q', Deselect}, {'Q', Deselect},
		{'d', Increment}, {'D', Increment}, {'+', Increment},
		{'a', Decrement}, {'A', Decrement}, {'-', Decrement},
		{'x', Quit}, {'X', Quit}, {0x03, Quit},
		{'z', None}, {' ', None}, {'1', None},
	}

	for _, tt := range tests {
		if got := l.decodeByte(tt.b); got != tt.want {
			t.Errorf("decodeByte(%q) = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestPollOnStoppedListenerReturnsNone(t *testing.T) {
	l := NewConsoleListener()

	if got := l.Poll(); got != None {
		t.Errorf("Poll() = %v on a stopped listener, want None", got)
	}
	if l.IsListening() {
		t.Error("IsListening() = true before Start")
	}
}

func TestWaitOnStoppedListenerReturnsQuit(t *testing.T) {
	l := NewConsoleListener()

	if got := l.WaitForNext(); got != Quit {
		t.Errorf("WaitForNext() = %v on a stopped listener, want Quit", got)
	}
}

func TestStopWithoutStartIsSafe(t *testing.T) {
	l := NewConsoleListener()
	l.Stop()
	l.Stop()

	if l.IsListening() {
		t.Error("IsListening() = true after Stop")
	}
}

func TestHelpListsEveryAction(t *testing.T) {
	help := Help()
	for _, action := range []string{"Navigate Up", "Navigate Down", "Select", "Deselect", "Increment", "Decrement", "Exit"} {
		if !strings.Contains(help, action) {
			t.Errorf("Help() missing action %q", action)
		}
	}
}
