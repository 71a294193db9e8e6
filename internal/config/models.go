package config

import (
	"fmt"

	"github.com/garrettcampbell3/display-library/internal/display"
)

// Profile is the entire display profile file.
type Profile struct {
	Geometry GeometryConfig `yaml:"geometry"`
	Shape    ShapeConfig    `yaml:"shape"`
	Items    []ItemConfig   `yaml:"items,omitempty"`
	Server   ServerConfig   `yaml:"server,omitempty"`
}

// GeometryConfig mirrors display.Geometry with YAML-friendly glyph fields.
type GeometryConfig struct {
	Rows      int    `yaml:"rows"`
	Columns   int    `yaml:"columns"`
	Navigator string `yaml:"navigator"` // single ASCII character
	Separator string `yaml:"separator"` // single ASCII character
}

// ShapeConfig is the fixed key/value field width pairing for all items.
type ShapeConfig struct {
	KeyWidth   int `yaml:"key_width"`
	ValueWidth int `yaml:"value_width"`
}

// ItemConfig is one initial inventory entry.
type ItemConfig struct {
	Key   string `yaml:"key"`
	Value uint8  `yaml:"value"`
}

// ServerConfig holds frame-server settings for the serve command.
type ServerConfig struct {
	Listen   string `yaml:"listen,omitempty"`   // address for the WebSocket frame server
	Announce bool   `yaml:"announce,omitempty"` // advertise the server over mDNS
}

// DefaultServerListen is the frame-server address used when the profile
// does not set one.
const DefaultServerListen = ":8418"

// DefaultProfile returns the built-in demo profile: a 2x16 display with
// 11/3 field widths over ten zero-valued items.
func DefaultProfile() *Profile {
	p := &Profile{
		Geometry: GeometryConfig{Rows: 2, Columns: 16, Navigator: ">", Separator: ":"},
		Shape:    ShapeConfig{KeyWidth: 11, ValueWidth: 3},
		Server:   ServerConfig{Listen: DefaultServerListen, Announce: true},
	}
	for i := 1; i <= 10; i++ {
		p.Items = append(p.Items, ItemConfig{Key: fmt.Sprintf("Item%d", i), Value: 0})
	}
	return p
}

// Validate checks the profile for problems a controller construction would
// reject, so config errors surface with file-level context.
func (p *Profile) Validate() error {
	if p.Geometry.Rows < 1 || p.Geometry.Columns < 1 {
		return fmt.Errorf("invalid geometry: %dx%d", p.Geometry.Rows, p.Geometry.Columns)
	}
	if len(p.Geometry.Navigator) != 1 {
		return fmt.Errorf("navigator must be a single character, got %q", p.Geometry.Navigator)
	}
	if len(p.Geometry.Separator) != 1 {
		return fmt.Errorf("separator must be a single character, got %q", p.Geometry.Separator)
	}
	if p.Shape.KeyWidth < 1 || p.Shape.ValueWidth < 1 {
		return fmt.Errorf("invalid shape: key_width=%d value_width=%d", p.Shape.KeyWidth, p.Shape.ValueWidth)
	}
	if required := 1 + p.Shape.KeyWidth + 1 + p.Shape.ValueWidth; p.Geometry.Columns < required {
		return fmt.Errorf("%d columns cannot fit shape %d/%d (needs %d)",
			p.Geometry.Columns, p.Shape.KeyWidth, p.Shape.ValueWidth, required)
	}
	return nil
}

// DisplayGeometry converts the profile geometry for the display package.
func (p *Profile) DisplayGeometry() display.Geometry {
	return display.Geometry{
		Rows:      p.Geometry.Rows,
		Columns:   p.Geometry.Columns,
		Navigator: p.Geometry.Navigator[0],
		Separator: p.Geometry.Separator[0],
	}
}

// DisplayShape converts the profile shape for the display package.
func (p *Profile) DisplayShape() display.Shape {
	return display.Shape{KeyWidth: p.Shape.KeyWidth, ValueWidth: p.Shape.ValueWidth}
}

// Cells builds the initial inventory cells from the profile items.
func (p *Profile) Cells() []display.Cell[string, uint8] {
	shape := p.DisplayShape()
	cells := make([]display.Cell[string, uint8], 0, len(p.Items))
	for _, item := range p.Items {
		cells = append(cells, display.NewCell(shape, item.Key, item.Value))
	}
	return cells
}

// ListenAddr returns the frame-server address, falling back to the default.
func (p *Profile) ListenAddr() string {
	if p.Server.Listen == "" {
		return DefaultServerListen
	}
	return p.Server.Listen
}
