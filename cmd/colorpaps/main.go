// ColorPaps - perceptual colour deduplication and colour-cloud art
//
// ColorPaps reduces huge colour sets to printable, perceptually distinct
// nuances and arranges them into generated artwork.
package main

import (
	"os"

	"github.com/colorpaps/colorpaps/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
