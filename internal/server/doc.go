// Package server implements the WebSocket frame server.
//
// FrameServer is a display.Surface: every rendered frame is broadcast as a
// JSON message to all connected spectators, so a browser or another terminal
// can mirror the operator's display in real time. Spectators connect to
// /frames over a standard WebSocket upgrade; /healthz reports server status.
//
// # Frame Message Format
//
// Each broadcast is one JSON text message:
//
//	{
//	  "seq": 42,
//	  "columns": 16,
//	  "lines": [">Item1      :0  ", " Item2      :0  "],
//	  "ts": "2026-08-31T12:00:00Z"
//	}
//
// New spectators immediately receive the most recent frame, so they never
// stare at an empty screen waiting for the operator's next keystroke.
//
// # Spectator Lifecycle
//
// Writes are bounded by a deadline; a spectator that cannot keep up is
// dropped rather than allowed to stall the operator loop. All connection
// events are logged via the logging package.
//
// # Discovery
//
// Announce registers the server as an "_lcdframe._tcp" mDNS service so
// spectators on the local network can find it without configuration.
package server
