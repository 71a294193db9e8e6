package display

import (
	"errors"
	"testing"
)

func newTestInventory(t *testing.T, values ...uint8) (*Inventory[string, uint8], *mockSurface) {
	t.Helper()
	shape := Shape{KeyWidth: 11, ValueWidth: 3}
	cells := make([]Cell[string, uint8], 0, len(values))
	for i, v := range values {
		cells = append(cells, NewCell(shape, "Item"+string(rune('A'+i)), v))
	}

	surface := &mockSurface{}
	geom := DefaultGeometry()
	inv, err := NewInventory(shape, cells, surface, geom)
	if err != nil {
		t.Fatalf("NewInventory() error = %v", err)
	}
	return inv, surface
}

func TestIncrementValueAddsOneAndRendersOnce(t *testing.T) {
	inv, surface := newTestInventory(t, 5, 0)
	surface.reset()

	if err := inv.IncrementValue(); err != nil {
		t.Fatalf("IncrementValue() error = %v", err)
	}

	v, err := inv.Controller().CurrentValue()
	if err != nil {
		t.Fatalf("CurrentValue() error = %v", err)
	}
	if v != 6 {
		t.Errorf("CurrentValue() = %d, want 6", v)
	}
	if surface.renderCalls != 1 {
		t.Errorf("renderCalls = %d, want exactly 1", surface.renderCalls)
	}
}

func TestDecrementValueSubtractsOne(t *testing.T) {
	inv, _ := newTestInventory(t, 5)

	if err := inv.DecrementValue(); err != nil {
		t.Fatalf("DecrementValue() error = %v", err)
	}

	v, _ := inv.Controller().CurrentValue()
	if v != 4 {
		t.Errorf("CurrentValue() = %d, want 4", v)
	}
}

func TestIncrementTargetsSelectedItem(t *testing.T) {
	inv, _ := newTestInventory(t, 1, 2, 3)
	inv.NavigateDown()

	if err := inv.IncrementValue(); err != nil {
		t.Fatalf("IncrementValue() error = %v", err)
	}

	v, _ := inv.Controller().CurrentValue()
	if v != 3 {
		t.Errorf("CurrentValue() = %d, want 3 (second item incremented)", v)
	}
}

func TestIncrementWrapsAtDomainMaximum(t *testing.T) {
	// No clamping exists anywhere in the write path: a uint8 at 255 wraps
	// to 0, the value domain's natural arithmetic
	inv, _ := newTestInventory(t, 255)

	if err := inv.IncrementValue(); err != nil {
		t.Fatalf("IncrementValue() error = %v", err)
	}

	v, _ := inv.Controller().CurrentValue()
	if v != 0 {
		t.Errorf("CurrentValue() = %d after 255+1, want 0", v)
	}
}

func TestDecrementWrapsAtDomainMinimum(t *testing.T) {
	inv, _ := newTestInventory(t, 0)

	if err := inv.DecrementValue(); err != nil {
		t.Fatalf("DecrementValue() error = %v", err)
	}

	v, _ := inv.Controller().CurrentValue()
	if v != 255 {
		t.Errorf("CurrentValue() = %d after 0-1, want 255", v)
	}
}

func TestIncrementOnEmptyInventoryFails(t *testing.T) {
	inv, surface := newTestInventory(t)
	surface.reset()

	if err := inv.IncrementValue(); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("IncrementValue() error = %v, want ErrIndexOutOfRange", err)
	}
	if err := inv.DecrementValue(); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("DecrementValue() error = %v, want ErrIndexOutOfRange", err)
	}
	if surface.renderCalls != 0 {
		t.Errorf("renderCalls = %d after failed edits, want 0", surface.renderCalls)
	}
}

func TestInventoryForwardsNavigation(t *testing.T) {
	inv, _ := newTestInventory(t, 1, 2, 3)

	if !inv.NavigateDown() {
		t.Error("NavigateDown() = false, want true")
	}
	if !inv.NavigateUp() {
		t.Error("NavigateUp() = false, want true")
	}
	if !inv.SelectItem() {
		t.Error("SelectItem() = false, want true")
	}
	if !inv.DeselectItem() {
		t.Error("DeselectItem() = false, want true")
	}
}
