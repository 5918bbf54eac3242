package colour

// Region is a coarse perceptual bucket used to select how tight a
// colour-difference threshold applies. Human discrimination is finest for
// near-neutral colours and loosens as saturation grows, so each region
// carries its own threshold in the deduplication configuration.
type Region int

const (
	RegionNeutral Region = iota
	RegionPastel
	RegionDark
	RegionSaturated
	RegionVerySaturated

	numRegions = int(RegionVerySaturated) + 1
)

// regionNames is indexed by Region.
var regionNames = [numRegions]string{
	"neutral",
	"pastel",
	"dark",
	"saturated",
	"very_saturated",
}

// String returns the region name.
func (r Region) String() string {
	if r < 0 || int(r) >= numRegions {
		return "unknown"
	}
	return regionNames[r]
}

// Regions lists all regions in increasing visual-tolerance order: the eye
// discriminates neutral colours most finely and very saturated ones least.
func Regions() []Region {
	return []Region{RegionNeutral, RegionPastel, RegionDark, RegionSaturated, RegionVerySaturated}
}

// Classify assigns a colour to its perceptual region from lightness L and
// chroma C. Chroma bands are evaluated in priority order; lightness then
// subdivides within the band.
func Classify(l, chroma float64) Region {
	switch {
	case chroma < 10:
		return RegionNeutral
	case chroma < 30:
		if l < 30 {
			return RegionDark
		}
		return RegionPastel
	case chroma < 60:
		if l < 30 {
			return RegionDark
		}
		return RegionSaturated
	default:
		return RegionVerySaturated
	}
}

// ClassifyLab assigns a L*a*b* colour to its perceptual region.
func ClassifyLab(lab Lab) Region {
	return Classify(lab.L, lab.Chroma())
}
