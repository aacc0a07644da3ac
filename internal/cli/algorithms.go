package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/tilekit/tilekit/pkg/layout"
)

// newAlgorithmsCmd creates the algorithms command listing the registry.
func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the registered layout algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			registry := layout.NewRegistry(logger, layout.Builtins()...)

			rows := [][]string{}
			for _, alg := range registry.AllAlgorithms() {
				rows = append(rows, []string{
					alg.ID(),
					alg.Name(),
					yesNo(alg.SupportsMasterCount()),
					yesNo(alg.SupportsSplitRatio()),
					alg.Description(),
				})
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("ID", "Name", "Masters", "Ratio", "Description").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					if col == 0 {
						return lipgloss.NewStyle().Foreground(colorCyan)
					}
					return styleValue
				})

			cmd.Println(t.Render())
			cmd.Println(styleDim.Render("default: " + registry.DefaultAlgorithmID()))
			return nil
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "✓"
	}
	return "—"
}
