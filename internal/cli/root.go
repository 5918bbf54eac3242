// Package cli provides the command-line interface for ColorPaps.
package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/colorpaps/colorpaps/internal/version"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "colorpaps",
	Short: "Perceptual colour deduplication and colour-cloud art generation",
	Long: `ColorPaps reduces very large colour sets (up to the full 16.7M sRGB cube)
to the nuances that are printable on a specific printer and genuinely
distinct to the human eye, then arranges the survivors into generated
artwork.

The perceptual filter converts colours to CIELAB, classifies each one into
a perceptual region (neutral, pastel, dark, saturated, very saturated) and
removes any colour closer than the region's CIEDE2000 threshold to a
lighter one, using a spatial grid to keep the scan fast at millions of
colours. Gamut filtering composes with an external colour management
engine through round-tripped colour lists.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// NewRootCmd returns the fully wired root command.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(gamutCmd)
	rootCmd.AddCommand(cloudCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(spectrumCmd)
}

// newLogger builds the stage logger from the global verbosity flags.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	if quiet {
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "colorpaps",
		Output: os.Stderr,
		Level:  level,
	})
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.String())
	},
}
