package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/colorpaps/colorpaps/internal/colour"
	"github.com/colorpaps/colorpaps/internal/dataset"
	"github.com/colorpaps/colorpaps/internal/dedupe"
	"github.com/colorpaps/colorpaps/internal/gamut"
)

var (
	// Filter command flags
	filterOutput     string
	filterProfile    string
	filterRoundtrip  string
	filterTolerance  int
	filterPreview    bool
	filterThresholds = dedupe.DefaultThresholds()
)

// filterCmd represents the filter command.
var filterCmd = &cobra.Command{
	Use:   "filter <input>",
	Short: "Remove perceptual near-duplicates from a colour list",
	Long: `Filter a colour list down to perceptually distinct nuances.

Colours are converted to CIELAB and compared with the CIEDE2000 formula.
Each colour belongs to a perceptual region with its own threshold: the eye
separates greys very finely (tight threshold) but is far more tolerant in
saturated hues (loose threshold). Within a conflicting pair, the lighter
colour survives.

When --roundtrip points to the same list transformed sRGB -> printer ->
sRGB by an external colour management engine, colours that the printer
would alter by more than --tolerance device units are removed before
deduplication.

Examples:
  # Perceptual filter only
  colorpaps filter colours.txt -o distinct.txt

  # Compose with a printer gamut check
  colorpaps filter colours.txt --roundtrip colours_p9000.txt -o distinct.txt

  # Validate the ICC profile up front and loosen the neutral threshold
  colorpaps filter colours.txt --profile p9000.icc --threshold-neutral 0.6 -o out.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringVarP(&filterOutput, "output", "o", "", "output colour list (required)")
	filterCmd.Flags().StringVar(&filterProfile, "profile", "", "ICC printer profile to validate before filtering")
	filterCmd.Flags().StringVar(&filterRoundtrip, "roundtrip", "", "externally round-tripped copy of the input for gamut checking")
	filterCmd.Flags().IntVar(&filterTolerance, "tolerance", gamut.DefaultTolerance, "max per-channel round-trip deviation still in gamut")
	filterCmd.Flags().BoolVar(&filterPreview, "preview", false, "show colour swatches of the first survivors")
	addThresholdFlags(filterCmd.Flags(), &filterThresholds)
	_ = filterCmd.MarkFlagRequired("output")
}

// addThresholdFlags registers the per-region CIEDE2000 threshold flags.
func addThresholdFlags(fs *pflag.FlagSet, th *dedupe.Thresholds) {
	fs.Float64Var(&th.Neutral, "threshold-neutral", th.Neutral, "CIEDE2000 threshold for greys and near-neutrals")
	fs.Float64Var(&th.Pastel, "threshold-pastel", th.Pastel, "CIEDE2000 threshold for light desaturated colours")
	fs.Float64Var(&th.Dark, "threshold-dark", th.Dark, "CIEDE2000 threshold for dark colours")
	fs.Float64Var(&th.Saturated, "threshold-saturated", th.Saturated, "CIEDE2000 threshold for vivid colours")
	fs.Float64Var(&th.VerySaturated, "threshold-very-saturated", th.VerySaturated, "CIEDE2000 threshold for highly saturated colours")
}

// runFilter executes the filter command.
func runFilter(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	inputPath := args[0]

	cfg := dedupe.Config{Thresholds: filterThresholds}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// External resources are checked before any computation starts.
	if filterProfile != "" {
		profile, err := gamut.LoadProfile(filterProfile)
		if err != nil {
			return err
		}
		logger.Debug("ICC profile validated", "path", filterProfile, "components", profile.ColorSpace.NumComponents())
	}

	colors, err := dataset.Load(inputPath)
	if err != nil {
		return err
	}
	logger.Info("colour list loaded", "path", inputPath, "colors", len(colors))
	initial := len(colors)

	if filterRoundtrip != "" {
		roundTripped, err := dataset.Load(filterRoundtrip)
		if err != nil {
			return err
		}
		mask, err := gamut.Mask(colors, roundTripped, filterTolerance)
		if err != nil {
			return err
		}
		colors, err = gamut.Apply(colors, mask)
		if err != nil {
			return err
		}
		logger.Info("gamut filter applied",
			"in_gamut", len(colors), "removed", initial-len(colors), "tolerance", filterTolerance)
	}

	engine, err := dedupe.NewEngine(cfg, logger.Named("dedupe"))
	if err != nil {
		return err
	}
	kept, result, err := engine.Filter(colors)
	if err != nil {
		return err
	}

	if err := dataset.Save(filterOutput, kept); err != nil {
		return err
	}
	logger.Info("colour list written",
		"path", filterOutput,
		"initial", initial,
		"final", len(kept),
		"duplicates_removed", result.Removed)
	if len(kept) == 0 {
		logger.Warn("no colours survived filtering")
	}

	if filterPreview {
		previewColours(cmd, kept)
	}
	return nil
}

// previewColours prints swatches for the first survivors when stdout is a
// terminal.
func previewColours(cmd *cobra.Command, colors []colour.RGB) {
	const maxPreview = 16
	if !stdoutIsTerminal() {
		return
	}
	for i, c := range colors {
		if i == maxPreview {
			cmd.Printf("... and %d more\n", len(colors)-maxPreview)
			break
		}
		cmd.Println(colour.FormatWithSwatch(c, 8))
	}
}
