package colour

import (
	"math"
	"runtime"
	"sync"
)

// Lab is a colour in the CIE L*a*b* space under the D65 illuminant.
// L is lightness in [0, 100]; A and B are signed chroma axes, typically
// within [-128, 128] for colours derived from sRGB.
type Lab struct {
	L float64
	A float64
	B float64
}

// Chroma returns the chroma magnitude sqrt(a^2 + b^2).
func (l Lab) Chroma() float64 {
	return math.Hypot(l.A, l.B)
}

// sRGB to XYZ conversion matrix for the D65 illuminant.
var srgbToXYZ = [3][3]float64{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

// D65 reference white.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// CIE L*a*b* nonlinearity constants.
const (
	labEpsilon = 0.008856
	labKappa   = 903.3
)

// srgbToLinear applies the sRGB inverse gamma to a normalised channel value.
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// labF is the XYZ to L*a*b* forward nonlinearity.
func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// ToLab converts a single sRGB colour to CIE L*a*b*.
func ToLab(c RGB) Lab {
	r := srgbToLinear(float64(c.R) / 255.0)
	g := srgbToLinear(float64(c.G) / 255.0)
	b := srgbToLinear(float64(c.B) / 255.0)

	x := srgbToXYZ[0][0]*r + srgbToXYZ[0][1]*g + srgbToXYZ[0][2]*b
	y := srgbToXYZ[1][0]*r + srgbToXYZ[1][1]*g + srgbToXYZ[1][2]*b
	z := srgbToXYZ[2][0]*r + srgbToXYZ[2][1]*g + srgbToXYZ[2][2]*b

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// parallelThreshold is the batch size above which ToLabBatch splits the
// conversion across goroutines. The conversion is a pure per-element map,
// so chunks are independent.
const parallelThreshold = 1 << 16

// ToLabBatch converts a batch of sRGB colours to CIE L*a*b*. Large batches
// are converted in parallel across the available CPUs; the result order
// always matches the input order.
func ToLabBatch(colors []RGB) []Lab {
	labs := make([]Lab, len(colors))
	if len(colors) < parallelThreshold {
		for i, c := range colors {
			labs[i] = ToLab(c)
		}
		return labs
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(colors) + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < len(colors); start += chunk {
		end := min(start+chunk, len(colors))
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				labs[i] = ToLab(colors[i])
			}
		}(start, end)
	}
	wg.Wait()

	return labs
}
