package display

import "testing"

func TestTeeForwardsToAllSurfaces(t *testing.T) {
	first := &mockSurface{}
	second := &mockSurface{}

	surface := Tee(first, second)
	if err := surface.Render([]string{"abc"}, 3); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for i, s := range []*mockSurface{first, second} {
		if s.renderCalls != 1 {
			t.Errorf("surface %d renderCalls = %d, want 1", i, s.renderCalls)
		}
		if s.line(0) != "abc" || s.lastColumns != 3 {
			t.Errorf("surface %d got (%q, %d), want (%q, 3)", i, s.line(0), s.lastColumns, "abc")
		}
	}

	if err := surface.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if first.clearCalls != 1 || second.clearCalls != 1 {
		t.Errorf("clearCalls = (%d, %d), want (1, 1)", first.clearCalls, second.clearCalls)
	}
}

func TestTeeStopsOnFirstError(t *testing.T) {
	failing := &mockSurface{failRender: true}
	second := &mockSurface{}

	surface := Tee(failing, second)
	if err := surface.Render([]string{"abc"}, 3); err == nil {
		t.Fatal("Render() error = nil, want surface failure")
	}
	if second.renderCalls != 0 {
		t.Errorf("second surface renderCalls = %d after upstream failure, want 0", second.renderCalls)
	}
}
