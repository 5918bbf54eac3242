package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for truecolor terminal swatches.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Swatch returns an ANSI-coloured preview block for a colour.
// Width specifies how many characters wide the block should be.
func Swatch(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// FormatWithSwatch formats a colour with its preview block and RGB value.
func FormatWithSwatch(c RGB, width int) string {
	return fmt.Sprintf("%s %s %s", Swatch(c, width), c.Hex(), c.String())
}
