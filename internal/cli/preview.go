package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tilekit/tilekit/pkg/geometry"
	"github.com/tilekit/tilekit/pkg/layout"
)

// Preview diagram dimensions in terminal cells. The 2:1 aspect compensates
// for character cells being roughly twice as tall as wide.
const (
	previewCols = 64
	previewRows = 16
)

// newPreviewCmd creates the preview command for rendering algorithm layouts.
func newPreviewCmd() *cobra.Command {
	var (
		windows int
		asJSON  bool
		showAll bool
	)

	cmd := &cobra.Command{
		Use:   "preview [algorithm]",
		Short: "Render an algorithm's zones as a terminal diagram",
		Long: `Preview renders the zone layout an algorithm produces for a sample window
count, normalized to the terminal. Identical zones (monocle) are drawn with a
diagonal inset so every slot stays visible.

Without an argument, the default algorithm is previewed; --all previews every
registered algorithm.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			registry := layout.NewRegistry(logger, layout.Builtins()...)

			ids := registry.AvailableAlgorithms()
			if !showAll {
				id := registry.DefaultAlgorithmID()
				if len(args) == 1 {
					id = args[0]
				}
				if !registry.Has(id) {
					return fmt.Errorf("unknown algorithm %q (available: %v)", id, ids)
				}
				ids = []string{id}
			}

			for _, id := range ids {
				rects := registry.Preview(id, windows)
				if asJSON {
					if err := printPreviewJSON(cmd, id, windows, rects); err != nil {
						return err
					}
					continue
				}
				printPreviewDiagram(cmd, registry.Algorithm(id), rects)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&windows, "windows", "n", layout.PreviewWindowCount, "number of windows to lay out")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit normalized zone rects as JSON")
	cmd.Flags().BoolVar(&showAll, "all", false, "preview every registered algorithm")
	return cmd
}

func printPreviewDiagram(cmd *cobra.Command, alg layout.Algorithm, rects []geometry.RectF) {
	labels := make([]string, len(rects))
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}

	cmd.Println(styleTitle.Render(alg.Name()) + " " + styleDim.Render(alg.ID()))
	cmd.Println(styleDim.Render(alg.Description()))
	cmd.Println()
	cmd.Print(renderZoneDiagram(rects, previewCols, previewRows, labels))
	cmd.Println()
}

func printPreviewJSON(cmd *cobra.Command, id string, windows int, rects []geometry.RectF) error {
	out := struct {
		Algorithm string           `json:"algorithm"`
		Windows   int              `json:"windows"`
		Zones     []geometry.RectF `json:"zones"`
	}{Algorithm: id, Windows: windows, Zones: rects}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding preview: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
