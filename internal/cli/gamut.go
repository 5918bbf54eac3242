package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/colorpaps/colorpaps/internal/dataset"
	"github.com/colorpaps/colorpaps/internal/gamut"
)

var (
	// Gamut command flags
	gamutOutput     string
	gamutProfile    string
	gamutRoundtrip  string
	gamutTolerance  int
	gamutUniqueStep int
)

// gamutCmd represents the gamut command.
var gamutCmd = &cobra.Command{
	Use:   "gamut <input>",
	Short: "Keep only the colours a printer can reproduce",
	Long: `Filter a colour list against a printer gamut.

The device transform itself runs in an external colour management engine:
feed the input list through it (sRGB -> printer -> sRGB) and pass the
result as --roundtrip. A colour whose round trip moves any channel by more
than --tolerance device units is out of gamut and removed.

--unique-step additionally collapses colours that the device cannot tell
apart, keeping one colour per point of a step-sized RGB grid.

Examples:
  colorpaps gamut colours.txt --roundtrip colours_p9000.txt -o printable.txt
  colorpaps gamut colours.txt --roundtrip rt.txt --unique-step 2 -o printable.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runGamut,
}

func init() {
	gamutCmd.Flags().StringVarP(&gamutOutput, "output", "o", "", "output colour list (required)")
	gamutCmd.Flags().StringVar(&gamutProfile, "profile", "", "ICC printer profile to validate before filtering")
	gamutCmd.Flags().StringVar(&gamutRoundtrip, "roundtrip", "", "externally round-tripped copy of the input (required)")
	gamutCmd.Flags().IntVar(&gamutTolerance, "tolerance", gamut.DefaultTolerance, "max per-channel round-trip deviation still in gamut")
	gamutCmd.Flags().IntVar(&gamutUniqueStep, "unique-step", 0, "collapse colours identical on a step-sized device grid (0 disables)")
	_ = gamutCmd.MarkFlagRequired("output")
	_ = gamutCmd.MarkFlagRequired("roundtrip")
}

// runGamut executes the gamut command.
func runGamut(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	if gamutProfile != "" {
		if _, err := gamut.LoadProfile(gamutProfile); err != nil {
			return err
		}
		logger.Debug("ICC profile validated", "path", gamutProfile)
	}

	colors, err := dataset.Load(args[0])
	if err != nil {
		return err
	}
	roundTripped, err := dataset.Load(gamutRoundtrip)
	if err != nil {
		return err
	}
	initial := len(colors)

	mask, err := gamut.Mask(colors, roundTripped, gamutTolerance)
	if err != nil {
		return err
	}
	colors, err = gamut.Apply(colors, mask)
	if err != nil {
		return err
	}
	logger.Info("gamut filter applied",
		"initial", initial, "in_gamut", len(colors), "tolerance", gamutTolerance)

	if gamutUniqueStep > 0 {
		before := len(colors)
		colors = gamut.DeviceUnique(colors, uint8(gamutUniqueStep))
		logger.Info("device-unique reduction applied",
			"step", gamutUniqueStep, "kept", len(colors), "removed", before-len(colors))
	}

	if err := dataset.Save(gamutOutput, colors); err != nil {
		return err
	}
	logger.Info("colour list written", "path", gamutOutput, "colors", len(colors))
	if len(colors) == 0 {
		logger.Warn("no colours survived the gamut filter")
	}
	return nil
}

// stdoutIsTerminal reports whether stdout is attached to a terminal, which
// gates ANSI swatch previews.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
