package colour

import "math"

// pow25To7 is 25^7, the constant in the CIEDE2000 chroma correction terms.
const pow25To7 = 6103515625.0

// DeltaE2000 computes the CIEDE2000 colour difference between two L*a*b*
// colours with the parametric weighting factors kL = kC = kH = 1.
//
// All angle arithmetic is carried out in degrees, with hue differences
// wrapped into (-180, 180] and the mean hue handling the 360 wraparound,
// following Sharma, Wu & Dalal, "The CIEDE2000 Color-Difference Formula:
// Implementation Notes" (2005). The formula is symmetric in its arguments
// and degrades gracefully to the achromatic case when either chroma is zero.
func DeltaE2000(c1, c2 Lab) float64 {
	cab1 := math.Hypot(c1.A, c1.B)
	cab2 := math.Hypot(c2.A, c2.B)
	cabMean := (cab1 + cab2) / 2

	g := 0.5 * (1 - math.Sqrt(pow7(cabMean)/(pow7(cabMean)+pow25To7)))

	a1p := (1 + g) * c1.A
	a2p := (1 + g) * c2.A
	c1p := math.Hypot(a1p, c1.B)
	c2p := math.Hypot(a2p, c2.B)
	h1p := hueDegrees(c1.B, a1p)
	h2p := hueDegrees(c2.B, a2p)

	dL := c2.L - c1.L
	dC := c2p - c1p

	// Hue difference, wrapped into (-180, 180]. When either chroma is zero
	// the hue is undefined and the difference is taken as zero.
	var dh float64
	if c1p*c2p != 0 {
		dh = h2p - h1p
		if dh > 180 {
			dh -= 360
		} else if dh < -180 {
			dh += 360
		}
	}
	dH := 2 * math.Sqrt(c1p*c2p) * math.Sin(radians(dh/2))

	lMean := (c1.L + c2.L) / 2
	cMean := (c1p + c2p) / 2

	// Mean hue, with the near-180 wraparound special case.
	hSum := h1p + h2p
	var hMean float64
	switch {
	case c1p*c2p == 0:
		hMean = hSum
	case math.Abs(h1p-h2p) <= 180:
		hMean = hSum / 2
	case hSum < 360:
		hMean = (hSum + 360) / 2
	default:
		hMean = (hSum - 360) / 2
	}

	t := 1 -
		0.17*math.Cos(radians(hMean-30)) +
		0.24*math.Cos(radians(2*hMean)) +
		0.32*math.Cos(radians(3*hMean+6)) -
		0.20*math.Cos(radians(4*hMean-63))

	dTheta := 30 * math.Exp(-sq((hMean-275)/25))
	rc := 2 * math.Sqrt(pow7(cMean)/(pow7(cMean)+pow25To7))
	rt := -rc * math.Sin(radians(2*dTheta))

	sl := 1 + 0.015*sq(lMean-50)/math.Sqrt(20+sq(lMean-50))
	sc := 1 + 0.045*cMean
	sh := 1 + 0.015*cMean*t

	return math.Sqrt(
		sq(dL/sl) +
			sq(dC/sc) +
			sq(dH/sh) +
			rt*(dC/sc)*(dH/sh))
}

// hueDegrees returns the hue angle of (a, b) in degrees within [0, 360),
// or 0 for the achromatic case a == b == 0.
func hueDegrees(b, a float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func sq(x float64) float64 { return x * x }

func pow7(x float64) float64 {
	x2 := x * x
	x3 := x2 * x
	return x3 * x3 * x
}
