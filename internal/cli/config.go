package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/blydeben/sankey-app/pkg/pipeline"
)

// loadConfig reads layout defaults from a TOML file.
//
// Example config:
//
//	title = "Plant Energy Flow"
//	units = "kWh"
//	mode = "values"
//	round_factor = 10
//	palette = "earthy"
func loadConfig(path string) (pipeline.Options, error) {
	var opts pipeline.Options
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse config %s: %w", path, err)
	}
	return opts, nil
}

// applyConfig copies config-file values into opts for every option whose
// flag was not set on the command line. Explicit flags always win.
func applyConfig(flags *pflag.FlagSet, opts *pipeline.Options, file pipeline.Options) {
	if !flags.Changed("title") && file.Title != "" {
		opts.Title = file.Title
	}
	if !flags.Changed("units") && file.Units != "" {
		opts.Units = file.Units
	}
	if !flags.Changed("mode") && file.Mode != "" {
		opts.Mode = file.Mode
	}
	if !flags.Changed("round-factor") && file.RoundFactor != 0 {
		opts.RoundFactor = file.RoundFactor
	}
	if !flags.Changed("decimals") && file.Decimals != 0 {
		opts.Decimals = file.Decimals
	}
	if !flags.Changed("palette") && file.Palette != "" {
		opts.Palette = file.Palette
	}
	if !flags.Changed("colors") && len(file.Colors) > 0 {
		opts.Colors = file.Colors
	}
}
