// Package cloud turns deduplicated colour lists into generated artwork:
// gaussian point clouds of coloured circles, multi-palette compositions and
// the eight-sphere spectrum layout. It consumes colour sets that are
// already free of perceptual near-duplicates, so placement density reflects
// genuinely distinct nuances.
package cloud

import (
	"fmt"
	"sort"

	"github.com/colorpaps/colorpaps/internal/colour"
	"github.com/colorpaps/colorpaps/internal/gamut"
)

// Band selects the colours belonging to one named palette by HSV ranges.
// Hue, saturation and value are all fractions in [0, 1]; hue ranges may
// wrap around red by listing two intervals.
type Band struct {
	Name      string
	HueRanges [][2]float64
	SatMin    float64
	SatMax    float64
	ValMin    float64
	ValMax    float64
}

// Contains reports whether an HSV colour falls inside the band.
func (b Band) Contains(h colour.HSV) bool {
	if h.S < b.SatMin || h.S > b.SatMax || h.V < b.ValMin || h.V > b.ValMax {
		return false
	}
	for _, r := range b.HueRanges {
		if h.H >= r[0] && h.H <= r[1] {
			return true
		}
	}
	return false
}

// bands defines the eight named palettes.
var bands = map[string]Band{
	"bleu": {
		Name:      "bleu",
		HueRanges: [][2]float64{{0.55, 0.70}},
		SatMin:    0.15, SatMax: 1.0,
		ValMin: 0.08, ValMax: 1.0,
	},
	"rouge": {
		Name:      "rouge",
		HueRanges: [][2]float64{{0.95, 1.0}, {0.0, 0.05}},
		SatMin:    0.20, SatMax: 1.0,
		ValMin: 0.10, ValMax: 1.0,
	},
	"vert": {
		Name:      "vert",
		HueRanges: [][2]float64{{0.25, 0.45}},
		SatMin:    0.15, SatMax: 1.0,
		ValMin: 0.08, ValMax: 1.0,
	},
	"jaune": {
		Name:      "jaune",
		HueRanges: [][2]float64{{0.12, 0.20}},
		SatMin:    0.20, SatMax: 1.0,
		ValMin: 0.15, ValMax: 1.0,
	},
	"orange": {
		Name:      "orange",
		HueRanges: [][2]float64{{0.05, 0.12}},
		SatMin:    0.25, SatMax: 1.0,
		ValMin: 0.15, ValMax: 1.0,
	},
	"marron": {
		Name:      "marron",
		HueRanges: [][2]float64{{0.02, 0.10}},
		SatMin:    0.20, SatMax: 0.70,
		ValMin: 0.10, ValMax: 0.55,
	},
	"gris": {
		Name:      "gris",
		HueRanges: [][2]float64{{0.0, 1.0}},
		SatMin:    0.0, SatMax: 0.25,
		ValMin: 0.05, ValMax: 0.95,
	},
	"violet": {
		Name:      "violet",
		HueRanges: [][2]float64{{0.70, 0.85}},
		SatMin:    0.15, SatMax: 1.0,
		ValMin: 0.08, ValMax: 1.0,
	},
}

// priorityOrder resolves overlaps when several bands are selected together:
// each colour is claimed by the first matching band in this order.
var priorityOrder = []string{"gris", "marron", "rouge", "orange", "jaune", "vert", "bleu", "violet"}

// BandNames returns the known palette names, sorted.
func BandNames() []string {
	names := make([]string, 0, len(bands))
	for name := range bands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BandByName looks up a palette band.
func BandByName(name string) (Band, error) {
	b, ok := bands[name]
	if !ok {
		return Band{}, fmt.Errorf("unknown colour %q (choices: %v)", name, BandNames())
	}
	return b, nil
}

// Selection is the subset of a colour list matched by a band, with the
// saturation and value of each member for topographic sorting.
type Selection struct {
	Colors []colour.RGB
	Sat    []float64
	Val    []float64
}

// quantizeStep collapses nuances closer than 2 device units before layout;
// they are not discriminable once printed as circles.
const quantizeStep = 2

// Select reduces colors to device-unique members and keeps those inside
// the band.
func Select(colors []colour.RGB, b Band) Selection {
	unique := gamut.DeviceUnique(colors, quantizeStep)

	var sel Selection
	for _, c := range unique {
		hsv := colour.ToHSV(c)
		if b.Contains(hsv) {
			sel.Colors = append(sel.Colors, c)
			sel.Sat = append(sel.Sat, hsv.S)
			sel.Val = append(sel.Val, hsv.V)
		}
	}
	return sel
}

// SelectDisjoint partitions colors across the named bands so each colour
// belongs to at most one palette, claimed in priority order.
func SelectDisjoint(colors []colour.RGB, names []string) (map[string]Selection, error) {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		if _, err := BandByName(name); err != nil {
			return nil, err
		}
		wanted[name] = true
	}

	unique := gamut.DeviceUnique(colors, quantizeStep)
	assigned := make([]bool, len(unique))
	result := make(map[string]Selection, len(names))

	for _, name := range priorityOrder {
		if !wanted[name] {
			continue
		}
		band := bands[name]
		var sel Selection
		for i, c := range unique {
			if assigned[i] {
				continue
			}
			hsv := colour.ToHSV(c)
			if band.Contains(hsv) {
				assigned[i] = true
				sel.Colors = append(sel.Colors, c)
				sel.Sat = append(sel.Sat, hsv.S)
				sel.Val = append(sel.Val, hsv.V)
			}
		}
		result[name] = sel
	}
	return result, nil
}
