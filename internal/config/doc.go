// Package config loads and saves the display profile.
//
// A profile is a YAML file describing everything needed to stand up an
// operator console: display geometry, the field-width shape shared by all
// cells, the initial inventory items, and frame-server settings.
//
// The default location follows platform conventions via os.UserConfigDir
// (for example ~/.config/lcdnav/config.yaml on Linux). A missing file is
// not an error: LoadDefault falls back to the built-in demo profile, a
// 2x16 display over ten zero-valued items.
//
// Example profile:
//
//	geometry:
//	  rows: 2
//	  columns: 16
//	  navigator: ">"
//	  separator: ":"
//	shape:
//	  key_width: 11
//	  value_width: 3
//	items:
//	  - key: Bolts
//	    value: 12
//	  - key: Washers
//	    value: 40
//	server:
//	  listen: ":8418"
//	  announce: true
package config
