package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/palette"
)

// palettesCommand lists the built-in and configured palettes.
func (c *CLI) palettesCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "List available colour palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			custom, err := c.Config.AccentPalettes()
			if err != nil {
				return err
			}
			all := append(palette.Builtins(), custom...)
			if asJSON {
				specs := make([]palette.Spec, len(all))
				for i, p := range all {
					specs[i] = palette.ToSpec(p)
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(specs)
			}
			fmt.Fprintln(cmd.OutOrStdout(), paletteTable(all, len(palette.Accents())))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print palettes as JSON")
	return cmd
}

// paletteTable renders one row per palette. The first accents rows are the
// built-in accent rotation and the neutral palette follows them.
func paletteTable(pals []palette.Palette, accents int) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(pals))
	for i, p := range pals {
		role := "accent"
		if i == accents {
			role = "neutral"
		} else if i > accents {
			role = "custom"
		}
		var sw strings.Builder
		for _, hex := range p.Hex() {
			sw.WriteString(swatch(hex))
		}
		rows = append(rows, []string{p.Name, role, fmt.Sprintf("%d", p.Len()), sw.String()})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Palette", "Role", "Colours", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		})
	return t.Render()
}
