// Package tui is the interactive operator console.
//
// It wraps an inventory controller in a Bubble Tea program: keystrokes are
// mapped to navigation commands through bubbles key bindings, the controller
// renders into a capture surface, and the view embeds the captured frame in
// an LCD-styled box with a status line and a help footer.
//
// The controller stays the single source of truth for cursor, window, and
// selection state; the model only translates events and presents frames. A
// mirror surface (for example the WebSocket frame server) can be attached so
// spectators see exactly what the operator sees.
package tui
