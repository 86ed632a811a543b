// Package palette assigns colors to Sankey nodes and links.
//
// Node colors cycle a fixed ordered palette by builder index, so color is a
// function of arrival order and palette size only, never of tier or value.
// Link colors are the translucent variant of the source node's color, which
// visually groups all flows leaving a node.
package palette

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// LinkAlpha is the fixed opacity of link colors.
const LinkAlpha = 0.3

var (
	// ErrEmptyPalette is returned by [New] for a palette with no colors.
	ErrEmptyPalette = errors.New("palette must contain at least one color")

	// ErrInvalidColor is returned by [New] and [LinkRGBA] for color strings
	// that are not 6-hex-digit "#rrggbb" values. Palettes fail fast at
	// configuration time rather than at render time.
	ErrInvalidColor = errors.New("invalid hex color")
)

// Palette is a validated, ordered list of hex colors.
type Palette struct {
	colors []string
}

// New builds a palette from hex color strings, validating each one.
// Colors must be in "#rrggbb" form; shorthand "#rgb" is rejected so that
// downstream RGBA derivation never has to guess at expansion.
func New(colors []string) (Palette, error) {
	if len(colors) == 0 {
		return Palette{}, ErrEmptyPalette
	}
	normalized := make([]string, len(colors))
	for i, c := range colors {
		hex := strings.ToLower(strings.TrimSpace(c))
		if !validHex(hex) {
			return Palette{}, fmt.Errorf("%w: %q", ErrInvalidColor, c)
		}
		normalized[i] = hex
	}
	return Palette{colors: normalized}, nil
}

// validHex reports whether hex is exactly "#" followed by six hex digits.
// Sscanf-based parsers accept trailing garbage ("#41484g" scans as three
// bytes), so every digit is checked explicitly before any conversion.
func validHex(hex string) bool {
	if len(hex) != 7 || hex[0] != '#' {
		return false
	}
	for _, r := range hex[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// Len returns the number of colors in the palette.
func (p Palette) Len() int { return len(p.colors) }

// Colors returns the palette's colors in order.
func (p Palette) Colors() []string { return slices.Clone(p.colors) }

// Color returns the color for the node at the given builder index,
// cycling through the palette.
func (p Palette) Color(index int) string {
	return p.colors[index%len(p.colors)]
}

// LinkRGBA converts a "#rrggbb" color into its translucent rgba() variant
// at [LinkAlpha] opacity, e.g. "#41484f" → "rgba(65,72,79,0.3)".
func LinkRGBA(hex string) (string, error) {
	if !validHex(hex) {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d,%d,%d,%g)", r, g, b, LinkAlpha), nil
}
