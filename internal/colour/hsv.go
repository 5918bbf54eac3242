package colour

// HSV holds hue, saturation and value, each normalised to [0, 1]. Hue wraps
// around so 0 and 1 are both red. This matches the fractional-hue convention
// the cloud band filters are defined in.
type HSV struct {
	H float64
	S float64
	V float64
}

// ToHSV converts an sRGB colour to HSV.
func ToHSV(c RGB) HSV {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxc := max(r, g, b)
	minc := min(r, g, b)
	v := maxc

	if maxc == minc {
		return HSV{H: 0, S: 0, V: v}
	}

	d := maxc - minc
	s := d / maxc

	var h float64
	switch maxc {
	case r:
		h = (g - b) / d
	case g:
		h = 2 + (b-r)/d
	default:
		h = 4 + (r-g)/d
	}
	h /= 6
	if h < 0 {
		h++
	}

	return HSV{H: h, S: s, V: v}
}
