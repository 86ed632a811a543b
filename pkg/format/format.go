// Package format turns aggregated flow values into display strings.
//
// The two display modes are modeled as a tagged variant: [Values] and
// [Percentages] both implement [Display], so a mode never carries
// configuration that only the other mode reads.
package format

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/dustin/go-humanize"
)

var (
	// ErrZeroDenominator is returned by [Percentages.FormatValue] when the
	// tier-0 total is zero. Labels must never read "NaN%" or "+Inf%".
	ErrZeroDenominator = errors.New("tier-0 total is zero")

	// ErrInvalidRoundFactor is returned by [Values.Validate] for factors
	// outside the supported set.
	ErrInvalidRoundFactor = errors.New("invalid round factor")

	// ErrInvalidDecimals is returned by [Percentages.Validate] for decimal
	// counts outside 0–3.
	ErrInvalidDecimals = errors.New("decimals must be between 0 and 3")
)

// RoundFactors is the supported set of rounding granularities for Values mode.
var RoundFactors = []int{1, 10, 100, 1000, 10000}

// Display formats a node's aggregated value into its label text.
// tier0Total is the percentage denominator; Values mode ignores it.
type Display interface {
	FormatValue(value, tier0Total float64) (string, error)
}

// Values displays absolute magnitudes rounded to the nearest RoundFactor,
// with grouping separators and an optional unit suffix, e.g. "3,654,678 kWh".
type Values struct {
	RoundFactor int
	Units       string
}

// Validate checks that the round factor is one of [RoundFactors].
func (v Values) Validate() error {
	if !slices.Contains(RoundFactors, v.RoundFactor) {
		return fmt.Errorf("%w: %d (must be one of 1, 10, 100, 1000, 10000)", ErrInvalidRoundFactor, v.RoundFactor)
	}
	return nil
}

// FormatValue rounds value to the nearest RoundFactor multiple and formats
// it with thousands separators. Rounding is half away from zero (math.Round),
// so 15 at factor 10 displays as 20 and 10 at factor 100 displays as 0.
func (v Values) FormatValue(value, _ float64) (string, error) {
	if err := v.Validate(); err != nil {
		return "", err
	}
	factor := float64(v.RoundFactor)
	rounded := math.Round(value/factor) * factor

	text := humanize.Comma(int64(rounded))
	if v.Units != "" {
		text += " " + v.Units
	}
	return text, nil
}

// Percentages displays each value as a share of the total tier-0 outflow,
// at a fixed number of decimal places, e.g. "16.7%".
type Percentages struct {
	Decimals int
}

// Validate checks that the decimal count is between 0 and 3.
func (p Percentages) Validate() error {
	if p.Decimals < 0 || p.Decimals > 3 {
		return fmt.Errorf("%w: %d", ErrInvalidDecimals, p.Decimals)
	}
	return nil
}

// FormatValue formats value/tier0Total as a fixed-decimal percentage.
// Returns ErrZeroDenominator when tier0Total is zero.
func (p Percentages) FormatValue(value, tier0Total float64) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	if tier0Total == 0 {
		return "", ErrZeroDenominator
	}
	return strconv.FormatFloat(value/tier0Total*100, 'f', p.Decimals, 64) + "%", nil
}
