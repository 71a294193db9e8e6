package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/garrettcampbell3/display-library/internal/logging"
)

const (
	// Time allowed to write a frame to a spectator before it is dropped
	writeWait = 5 * time.Second

	// FramesPath is the WebSocket endpoint spectators connect to
	FramesPath = "/frames"

	// HealthPath reports server status
	HealthPath = "/healthz"
)

// Frame is one broadcast display frame.
type Frame struct {
	Seq     uint64    `json:"seq"`
	Columns int       `json:"columns"`
	Lines   []string  `json:"lines"`
	TS      time.Time `json:"ts"`
}

// FrameServer broadcasts rendered frames to WebSocket spectators. It
// implements display.Surface, so it can be injected into a controller
// directly or combined with a local surface by the caller.
type FrameServer struct {
	upgrader websocket.Upgrader
	httpSrv  *http.Server

	mu         sync.Mutex
	spectators map[*websocket.Conn]struct{}
	lastFrame  *Frame
	seq        uint64
}

// NewFrameServer creates a frame server that will listen on addr.
func NewFrameServer(addr string) *FrameServer {
	fs := &FrameServer{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Spectators are read-only mirrors on a trusted LAN
			CheckOrigin: func(*http.Request) bool { return true },
		},
		spectators: make(map[*websocket.Conn]struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(FramesPath, fs.handleFrames)
	mux.HandleFunc(HealthPath, fs.handleHealth)
	fs.httpSrv = &http.Server{Addr: addr, Handler: mux}

	return fs
}

// Render broadcasts one frame to every connected spectator. A spectator
// whose write misses the deadline is dropped. The frame is retained so
// late joiners get the current display state immediately.
func (fs *FrameServer) Render(lines []string, columns int) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.seq++
	frame := &Frame{
		Seq:     fs.seq,
		Columns: columns,
		Lines:   append([]string(nil), lines...),
		TS:      time.Now().UTC(),
	}
	fs.lastFrame = frame

	payload, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("failed to marshal frame: %w", err)
	}

	logging.LogFrame(frame.Seq, len(lines), columns)

	for conn := range fs.spectators {
		if err := fs.writeLocked(conn, payload); err != nil {
			logging.LogConnection(conn.RemoteAddr().String(), "spectator_dropped")
			_ = conn.Close()
			delete(fs.spectators, conn)
		}
	}
	return nil
}

// Clear broadcasts an empty frame, erasing spectator displays.
func (fs *FrameServer) Clear() error {
	return fs.Render(nil, 0)
}

// Start begins serving spectators and blocks until the listener fails or
// Shutdown is called.
func (fs *FrameServer) Start() error {
	logging.Info("Frame server listening", zap.String("addr", fs.httpSrv.Addr))
	if err := fs.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("frame server failed: %w", err)
	}
	return nil
}

// Shutdown stops the HTTP listener and closes all spectator connections.
func (fs *FrameServer) Shutdown(ctx context.Context) error {
	fs.mu.Lock()
	for conn := range fs.spectators {
		_ = conn.Close()
		delete(fs.spectators, conn)
	}
	fs.mu.Unlock()
	return fs.httpSrv.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (fs *FrameServer) Addr() string {
	return fs.httpSrv.Addr
}

// Port returns the numeric listen port, for the mDNS announcement.
func (fs *FrameServer) Port() (int, error) {
	_, portStr, err := net.SplitHostPort(fs.httpSrv.Addr)
	if err != nil {
		return 0, fmt.Errorf("cannot parse listen address %q: %w", fs.httpSrv.Addr, err)
	}
	var port int
	if _, err := fmt.Sscanf(portStr, "%d", &port); err != nil {
		return 0, fmt.Errorf("cannot parse listen port %q: %w", portStr, err)
	}
	return port, nil
}

// SpectatorCount returns the number of connected spectators.
func (fs *FrameServer) SpectatorCount() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.spectators)
}

// handleFrames upgrades the connection and registers the spectator.
func (fs *FrameServer) handleFrames(w http.ResponseWriter, r *http.Request) {
	conn, err := fs.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	logging.LogConnection(r.RemoteAddr, "spectator_connected")

	fs.mu.Lock()
	fs.spectators[conn] = struct{}{}
	// Catch the new spectator up with the current display state
	if fs.lastFrame != nil {
		if payload, err := json.Marshal(fs.lastFrame); err == nil {
			_ = fs.writeLocked(conn, payload)
		}
	}
	fs.mu.Unlock()

	// Drain (and discard) spectator messages so pings are answered and
	// closes are noticed.
	go fs.readLoop(conn, r.RemoteAddr)
}

// handleHealth reports basic server status as JSON.
func (fs *FrameServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	fs.mu.Lock()
	status := map[string]any{
		"status":     "ok",
		"spectators": len(fs.spectators),
		"frames":     fs.seq,
	}
	fs.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(status)
}

// readLoop consumes spectator messages until the connection dies, then
// unregisters it.
func (fs *FrameServer) readLoop(conn *websocket.Conn, remoteAddr string) {
	defer func() {
		fs.mu.Lock()
		delete(fs.spectators, conn)
		fs.mu.Unlock()
		_ = conn.Close()
		logging.LogConnection(remoteAddr, "spectator_disconnected")
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writeLocked sends one payload with a bounded deadline. Callers hold fs.mu.
func (fs *FrameServer) writeLocked(conn *websocket.Conn, payload []byte) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}
