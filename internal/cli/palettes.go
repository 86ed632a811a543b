package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/blydeben/sankey-app/pkg/palette"
)

// palettesCommand creates the palettes command for listing built-in palettes.
func (c *CLI) palettesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "List the built-in color palettes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range palette.Names() {
				p, _ := palette.Builtin(name)
				printKeyValue(name, swatches(p.Colors()))
			}
			return nil
		},
	}
}

// swatches renders each hex color as a colored block followed by its code.
func swatches(colors []string) string {
	var b strings.Builder
	for i, hex := range colors {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██"))
		b.WriteString(" " + StyleDim.Render(hex))
	}
	return b.String()
}
