package palette

import (
	"maps"
	"slices"
)

// Built-in palette names.
const (
	NameDefault      = "default"
	NameHighContrast = "high-contrast"
	NameEarthy       = "earthy"
)

// builtins holds the shipped palettes. Construction cannot fail here:
// the color lists are fixed and covered by tests.
var builtins = map[string]Palette{
	NameDefault: {colors: []string{
		"#41484f", "#015651", "#49dd5b", "#48bfaf", "#4c2d83",
	}},
	NameHighContrast: {colors: []string{
		"#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00", "#ffff33", "#a65628", "#f781bf",
	}},
	NameEarthy: {colors: []string{
		"#b58900", "#cb4b16", "#268bd2", "#2aa198", "#859900", "#6c71c4", "#d33682", "#073642", "#fdf6e3",
	}},
}

// Builtin returns the named built-in palette and true, or a zero palette
// and false if the name is unknown.
func Builtin(name string) (Palette, bool) {
	p, ok := builtins[name]
	return p, ok
}

// Names returns the built-in palette names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(builtins))
}

// Default returns the default built-in palette.
func Default() Palette {
	return builtins[NameDefault]
}
