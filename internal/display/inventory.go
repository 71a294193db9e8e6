package display

// Integer is the value constraint for inventory-style lists: any fixed-width
// or platform integer kind. Arithmetic on these types wraps at the domain
// boundary, and the inventory inherits that: incrementing a uint8 at 255
// yields 0. No clamping is applied.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Inventory adapts a controller over integer-valued cells into the
// increment/decrement command surface an operator console needs. It owns no
// state of its own; every call delegates to the controller and inherits its
// rendering and error behavior.
type Inventory[K any, V Integer] struct {
	ctrl *Controller[K, V]
}

// NewInventory builds the controller from the same arguments as
// NewController and wraps it.
func NewInventory[K any, V Integer](shape Shape, cells []Cell[K, V], surface Surface, geom Geometry) (*Inventory[K, V], error) {
	ctrl, err := NewController(shape, cells, surface, geom)
	if err != nil {
		return nil, err
	}
	return &Inventory[K, V]{ctrl: ctrl}, nil
}

// IncrementValue adds one to the value under the cursor. The write renders
// unconditionally; on an empty list this fails with ErrIndexOutOfRange.
func (inv *Inventory[K, V]) IncrementValue() error {
	v, err := inv.ctrl.CurrentValue()
	if err != nil {
		return err
	}
	return inv.ctrl.SetCurrentValue(v + 1)
}

// DecrementValue subtracts one from the value under the cursor, with the
// same rendering and failure behavior as IncrementValue.
func (inv *Inventory[K, V]) DecrementValue() error {
	v, err := inv.ctrl.CurrentValue()
	if err != nil {
		return err
	}
	return inv.ctrl.SetCurrentValue(v - 1)
}

// NavigateUp forwards to the controller.
func (inv *Inventory[K, V]) NavigateUp() bool { return inv.ctrl.NavigateUp() }

// NavigateDown forwards to the controller.
func (inv *Inventory[K, V]) NavigateDown() bool { return inv.ctrl.NavigateDown() }

// SelectItem forwards to the controller.
func (inv *Inventory[K, V]) SelectItem() bool { return inv.ctrl.SelectItem() }

// DeselectItem forwards to the controller.
func (inv *Inventory[K, V]) DeselectItem() bool { return inv.ctrl.DeselectItem() }

// Render forwards to the controller.
func (inv *Inventory[K, V]) Render() error { return inv.ctrl.Render() }

// Controller exposes the wrapped controller for read accessors and
// operations the façade does not cover.
func (inv *Inventory[K, V]) Controller() *Controller[K, V] { return inv.ctrl }
