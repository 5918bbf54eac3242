package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colorpaps/colorpaps/internal/cloud"
	"github.com/colorpaps/colorpaps/internal/dataset"
)

var (
	// Spectrum command flags
	spectrumOutputDir   string
	spectrumSize        int
	spectrumPreviewSize int
	spectrumRadius      int
)

// spectrumCmd represents the spectrum command.
var spectrumCmd = &cobra.Command{
	Use:   "spectrum <input>",
	Short: "Generate the eight-sphere spectrum artwork",
	Long: `Generate one canvas containing all eight palettes as separate spheres.

Every colour in the input is claimed by exactly one palette, green sits at
the centre and the others orbit it. Sphere size tracks how many distinct
nuances each palette holds.

Example:
  colorpaps spectrum distinct.txt -o generated/`,
	Args: cobra.ExactArgs(1),
	RunE: runSpectrum,
}

func init() {
	spectrumCmd.Flags().StringVarP(&spectrumOutputDir, "output-dir", "o", ".", "directory for the generated images")
	spectrumCmd.Flags().IntVar(&spectrumSize, "size", cloud.SizeFull, "canvas edge in pixels")
	spectrumCmd.Flags().IntVar(&spectrumPreviewSize, "preview-size", cloud.SizePreview, "preview edge in pixels")
	spectrumCmd.Flags().IntVar(&spectrumRadius, "radius", cloud.DefaultRadius, "circle radius in pixels")
}

// runSpectrum executes the spectrum command.
func runSpectrum(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	colors, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	selections, err := cloud.SelectDisjoint(colors, cloud.BandNames())
	if err != nil {
		return err
	}
	total := 0
	for name, sel := range selections {
		total += len(sel.Colors)
		logger.Debug("palette selected", "colour", name, "candidates", len(sel.Colors))
	}
	if total == 0 {
		return fmt.Errorf("no colours match any palette")
	}

	points := cloud.SpectrumPoints(selections, spectrumSize, spectrumRadius)
	logger.Info("spectrum laid out", "placed", len(points))

	fullName := fmt.Sprintf("%d_spectrum_ColorPaps_HQ.png", len(points))
	return writeRenders(logger, points, renderParams{
		size:        spectrumSize,
		radius:      spectrumRadius,
		previewSize: spectrumPreviewSize,
		outputDir:   spectrumOutputDir,
		fullName:    fullName,
		previewName: "spectrum_preview.png",
	})
}
