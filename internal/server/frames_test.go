package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// dialTestServer upgrades a client connection against a FrameServer's
// handler mounted on an httptest server.
func dialTestServer(t *testing.T, fs *FrameServer) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(fs.handleFrames))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + FramesPath
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}
	var frame Frame
	if err := json.Unmarshal(payload, &frame); err != nil {
		t.Fatalf("Unmarshal() error = %v (payload %s)", err, payload)
	}
	return frame
}

func waitForSpectators(t *testing.T, fs *FrameServer, want int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for fs.SpectatorCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("SpectatorCount() = %d, want %d", fs.SpectatorCount(), want)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestRenderBroadcastsFrameToSpectator(t *testing.T) {
	fs := NewFrameServer(":0")
	conn := dialTestServer(t, fs)
	waitForSpectators(t, fs, 1)

	lines := []string{">Item1      :0  ", " Item2      :0  "}
	if err := fs.Render(lines, 16); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	frame := readFrame(t, conn)
	if frame.Seq != 1 {
		t.Errorf("frame.Seq = %d, want 1", frame.Seq)
	}
	if frame.Columns != 16 {
		t.Errorf("frame.Columns = %d, want 16", frame.Columns)
	}
	if len(frame.Lines) != 2 || frame.Lines[0] != lines[0] || frame.Lines[1] != lines[1] {
		t.Errorf("frame.Lines = %q, want %q", frame.Lines, lines)
	}
}

func TestLateJoinerReceivesLastFrame(t *testing.T) {
	fs := NewFrameServer(":0")

	if err := fs.Render([]string{"hello"}, 5); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	conn := dialTestServer(t, fs)
	frame := readFrame(t, conn)

	if frame.Seq != 1 || len(frame.Lines) != 1 || frame.Lines[0] != "hello" {
		t.Errorf("late joiner got %+v, want the retained frame", frame)
	}
}

func TestRenderWithNoSpectatorsStillCounts(t *testing.T) {
	fs := NewFrameServer(":0")

	if err := fs.Render([]string{"a"}, 1); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if err := fs.Render([]string{"b"}, 1); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.seq != 2 {
		t.Errorf("seq = %d after two renders, want 2", fs.seq)
	}
	if fs.lastFrame == nil || fs.lastFrame.Lines[0] != "b" {
		t.Errorf("lastFrame = %+v, want the second frame", fs.lastFrame)
	}
}

func TestHealthEndpointReportsStatus(t *testing.T) {
	fs := NewFrameServer(":0")
	_ = fs.Render([]string{"a"}, 1)

	rec := httptest.NewRecorder()
	fs.handleHealth(rec, httptest.NewRequest(http.MethodGet, HealthPath, nil))

	var status map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if status["status"] != "ok" {
		t.Errorf("status = %v, want ok", status["status"])
	}
	if status["frames"] != float64(1) {
		t.Errorf("frames = %v, want 1", status["frames"])
	}
}

func TestPortParsesListenAddress(t *testing.T) {
	fs := NewFrameServer(":8418")
	port, err := fs.Port()
	if err != nil {
		t.Fatalf("Port() error = %v", err)
	}
	if port != 8418 {
		t.Errorf("Port() = %d, want 8418", port)
	}

	fs = NewFrameServer("bogus")
	if _, err := fs.Port(); err == nil {
		t.Error("Port() = nil error for unparseable address, want error")
	}
}

func TestShutdownDisconnectsSpectators(t *testing.T) {
	fs := NewFrameServer(":0")
	conn := dialTestServer(t, fs)
	waitForSpectators(t, fs, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := fs.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("ReadMessage() = nil after shutdown, want closed connection")
	}
	if fs.SpectatorCount() != 0 {
		t.Errorf("SpectatorCount() = %d after shutdown, want 0", fs.SpectatorCount())
	}
}
