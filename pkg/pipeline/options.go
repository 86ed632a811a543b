// Package pipeline provides the core layout pipeline for sankey-app.
//
// This package implements the complete build → layout → label computation
// that can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Build: Validate the edge list and assemble the flow graph with tiers
//  2. Layout: Compute positions, aggregate values, and attach labels/colors
//
// The stages are pure functions of their input, so results are cached by
// content hash of the edges and options.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Mode:  pipeline.ModePercentages,
//	    Decimals: 1,
//	}
//	result, err := runner.Execute(ctx, edges, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	diagram.Write(result.Diagram, os.Stdout)
//
// Or compute directly without caching:
//
//	d, err := pipeline.Compute(edges, opts)
package pipeline

import (
	"github.com/charmbracelet/log"

	apperrors "github.com/blydeben/sankey-app/pkg/errors"
	"github.com/blydeben/sankey-app/pkg/format"
	"github.com/blydeben/sankey-app/pkg/palette"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultTitle is the diagram title when none is given.
	DefaultTitle = "Sankey Diagram"

	// DefaultUnits is the unit suffix for value labels.
	DefaultUnits = "kWh"

	// DefaultRoundFactor is the rounding granularity for value labels.
	DefaultRoundFactor = 10

	// DefaultDecimals is the decimal precision for percentage labels.
	DefaultDecimals = 0

	// DefaultPalette is the palette used when none is named.
	DefaultPalette = palette.NameDefault
)

// Mode constants for label display.
const (
	ModeValues      = "values"
	ModePercentages = "percentages"
)

// ValidModes is the set of supported display modes.
var ValidModes = map[string]bool{
	ModeValues:      true,
	ModePercentages: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests and TOML
// deserialization for config files.
type Options struct {
	// Diagram options
	Title string `json:"title,omitempty" toml:"title"`
	Units string `json:"units,omitempty" toml:"units"`

	// Label options
	Mode        string `json:"mode,omitempty" toml:"mode"`
	RoundFactor int    `json:"round_factor,omitempty" toml:"round_factor"`
	Decimals    int    `json:"decimals,omitempty" toml:"decimals"`

	// Color options. Colors overrides Palette when set.
	Palette string   `json:"palette,omitempty" toml:"palette"`
	Colors  []string `json:"colors,omitempty" toml:"colors"`

	// Refresh bypasses the cache and recomputes.
	Refresh bool `json:"refresh,omitempty" toml:"-"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`

	// Resolved during validation
	display format.Display
	colors  palette.Palette

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks option fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Units == "" {
		o.Units = DefaultUnits
	}
	if o.Mode == "" {
		o.Mode = ModeValues
	}
	if o.RoundFactor == 0 {
		o.RoundFactor = DefaultRoundFactor
	}
	if o.Palette == "" {
		o.Palette = DefaultPalette
	}

	display, err := o.buildDisplay()
	if err != nil {
		return err
	}
	colors, err := o.buildPalette()
	if err != nil {
		return err
	}

	o.display = display
	o.colors = colors
	o.validated = true
	return nil
}

// Display returns the label formatter resolved from Mode.
// ValidateAndSetDefaults must have been called.
func (o *Options) Display() format.Display { return o.display }

// ResolvedPalette returns the palette resolved from Palette/Colors.
// ValidateAndSetDefaults must have been called.
func (o *Options) ResolvedPalette() palette.Palette { return o.colors }

func (o *Options) buildDisplay() (format.Display, error) {
	switch o.Mode {
	case ModeValues:
		d := format.Values{RoundFactor: o.RoundFactor, Units: o.Units}
		if err := d.Validate(); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidOption, err, "invalid round factor")
		}
		return d, nil
	case ModePercentages:
		d := format.Percentages{Decimals: o.Decimals}
		if err := d.Validate(); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidOption, err, "invalid decimals")
		}
		return d, nil
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidOption,
			"invalid mode: %q (must be one of: values, percentages)", o.Mode)
	}
}

func (o *Options) buildPalette() (palette.Palette, error) {
	if len(o.Colors) > 0 {
		p, err := palette.New(o.Colors)
		if err != nil {
			return palette.Palette{}, apperrors.Wrap(apperrors.ErrCodeInvalidColor, err, "invalid custom colors")
		}
		return p, nil
	}
	p, ok := palette.Builtin(o.Palette)
	if !ok {
		return palette.Palette{}, apperrors.New(apperrors.ErrCodeInvalidOption,
			"unknown palette: %q (available: %v)", o.Palette, palette.Names())
	}
	return p, nil
}

// keyFields returns the fields that determine the computed diagram, for
// cache key derivation. Runtime fields like Refresh and Logger are
// deliberately excluded.
func (o *Options) keyFields() any {
	return struct {
		Title       string   `json:"title"`
		Units       string   `json:"units"`
		Mode        string   `json:"mode"`
		RoundFactor int      `json:"round_factor"`
		Decimals    int      `json:"decimals"`
		Palette     string   `json:"palette"`
		Colors      []string `json:"colors"`
	}{o.Title, o.Units, o.Mode, o.RoundFactor, o.Decimals, o.Palette, o.Colors}
}
