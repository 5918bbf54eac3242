package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/colorpaps/colorpaps/internal/cloud"
	"github.com/colorpaps/colorpaps/internal/dataset"
)

var (
	// Palette command flags
	paletteOutputDir   string
	paletteSize        int
	palettePreviewSize int
	paletteRadius      int
)

// paletteCmd represents the palette command.
var paletteCmd = &cobra.Command{
	Use:   "palette <colour>[,<colour>...] <input>",
	Short: "Generate a multi-palette composition",
	Long: `Generate a composition of up to eight palette islands on one canvas.

Each named palette becomes a compact gaussian island at a fixed anchor for
that palette count. Every colour is claimed by exactly one palette, so
overlapping bands (grey inside blue, brown inside orange) never repeat a
nuance across islands.

Examples:
  colorpaps palette bleu,rouge distinct.txt -o generated/
  colorpaps palette bleu,vert,jaune,violet distinct.txt --radius 4 -o out/`,
	Args: cobra.ExactArgs(2),
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().StringVarP(&paletteOutputDir, "output-dir", "o", ".", "directory for the generated images")
	paletteCmd.Flags().IntVar(&paletteSize, "size", cloud.SizeFull, "canvas edge in pixels")
	paletteCmd.Flags().IntVar(&palettePreviewSize, "preview-size", cloud.SizePreview, "preview edge in pixels")
	paletteCmd.Flags().IntVar(&paletteRadius, "radius", cloud.DefaultRadius, "circle radius in pixels")
}

// runPalette executes the palette command.
func runPalette(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	names := splitPaletteNames(args[0])
	if len(names) == 0 {
		return fmt.Errorf("no palette names given")
	}
	if len(names) > 8 {
		return fmt.Errorf("at most 8 palettes per composition, got %d", len(names))
	}

	colors, err := dataset.Load(args[1])
	if err != nil {
		return err
	}

	selections, err := cloud.SelectDisjoint(colors, names)
	if err != nil {
		return err
	}
	total := 0
	for _, name := range names {
		n := len(selections[name].Colors)
		total += n
		logger.Debug("palette selected", "colour", name, "candidates", n)
	}
	if total == 0 {
		return fmt.Errorf("no colours match any of the requested palettes")
	}

	points := cloud.CompositionPoints(selections, names, paletteSize, paletteRadius)
	logger.Info("composition laid out", "palettes", len(names), "placed", len(points))

	label := strings.Join(names, "_")
	fullName := fmt.Sprintf("%d_%s_ColorPaps_HQ.png", len(points), label)
	return writeRenders(logger, points, renderParams{
		size:        paletteSize,
		radius:      paletteRadius,
		previewSize: palettePreviewSize,
		outputDir:   paletteOutputDir,
		fullName:    fullName,
		previewName: label + "_preview.png",
	})
}

// splitPaletteNames parses the comma-separated palette argument, dropping
// empty entries and duplicates while keeping the given order.
func splitPaletteNames(arg string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, part := range strings.Split(arg, ",") {
		name := strings.TrimSpace(part)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
