package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/colorpaps/colorpaps/internal/cloud"
	"github.com/colorpaps/colorpaps/internal/dataset"
)

var (
	// Cloud command flags
	cloudOutputDir   string
	cloudSize        int
	cloudPreviewSize int
	cloudRadius      int
	cloudSeed        int64
)

// cloudCmd represents the cloud command.
var cloudCmd = &cobra.Command{
	Use:   "cloud <colour> <input>",
	Short: "Generate a single-palette colour cloud",
	Long: `Generate a gaussian cloud of coloured circles for one named palette.

The palette is selected by HSV bands (bleu, rouge, vert, jaune, orange,
marron, gris, violet), reduced to discriminable nuances, and placed so the
lightest colours settle at the top and the darkest sink toward the centre.
The full-resolution render is written alongside a preview downscaled from
it.

Examples:
  colorpaps cloud bleu distinct.txt -o generated/
  colorpaps cloud rouge distinct.txt --size 4000 --radius 4 -o out/`,
	Args: cobra.ExactArgs(2),
	RunE: runCloud,
}

func init() {
	cloudCmd.Flags().StringVarP(&cloudOutputDir, "output-dir", "o", ".", "directory for the generated images")
	cloudCmd.Flags().IntVar(&cloudSize, "size", cloud.SizeFull, "canvas edge in pixels")
	cloudCmd.Flags().IntVar(&cloudPreviewSize, "preview-size", cloud.SizePreview, "preview edge in pixels")
	cloudCmd.Flags().IntVar(&cloudRadius, "radius", cloud.DefaultRadius, "circle radius in pixels")
	cloudCmd.Flags().Int64Var(&cloudSeed, "seed", cloud.DefaultSeed, "layout random seed")
}

// runCloud executes the cloud command.
func runCloud(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	colourName, inputPath := args[0], args[1]

	band, err := cloud.BandByName(colourName)
	if err != nil {
		return err
	}

	colors, err := dataset.Load(inputPath)
	if err != nil {
		return err
	}

	sel := cloud.Select(colors, band)
	logger.Info("palette selected", "colour", colourName, "candidates", len(sel.Colors))
	if len(sel.Colors) == 0 {
		return fmt.Errorf("no colours match the %q palette", colourName)
	}

	points := cloud.CloudPoints(sel, cloudSize, cloudRadius, cloudSeed)
	logger.Info("cloud laid out", "placed", len(points))

	fullName := fmt.Sprintf("%d_%s_ColorPaps_HQ.png", len(points), colourName)
	return writeRenders(logger, points, renderParams{
		size:        cloudSize,
		radius:      cloudRadius,
		previewSize: cloudPreviewSize,
		outputDir:   cloudOutputDir,
		fullName:    fullName,
		previewName: colourName + "_preview.png",
	})
}

// renderParams bundles the output settings shared by the art commands.
type renderParams struct {
	size        int
	radius      int
	previewSize int
	outputDir   string
	fullName    string
	previewName string
}

// writeRenders rasterises the points and writes the full image plus a
// preview downscaled from it.
func writeRenders(logger hclog.Logger, points []cloud.Point, p renderParams) error {
	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	img := cloud.Render(points, p.size, p.radius)

	fullPath := filepath.Join(p.outputDir, p.fullName)
	if err := cloud.SavePNG(fullPath, img); err != nil {
		return err
	}
	logger.Info("full render written", "path", fullPath, "size", p.size)

	previewPath := filepath.Join(p.outputDir, p.previewName)
	if err := cloud.SavePNG(previewPath, cloud.Preview(img, p.previewSize)); err != nil {
		return err
	}
	logger.Info("preview written", "path", previewPath, "size", p.previewSize)
	return nil
}
