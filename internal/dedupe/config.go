// Package dedupe removes perceptual near-duplicates from large colour sets.
//
// Colours are converted to CIE L*a*b*, bucketed into a uniform 3D grid, and
// processed in descending lightness order; any not-yet-processed neighbour
// closer than the current colour's region threshold (CIEDE2000) is dropped.
// The two-phase structure (coarse grid filter, then exact distance check)
// keeps the scan near-linear for millions of colours while preserving exact
// CIEDE2000 semantics for every decision.
package dedupe

import (
	"fmt"

	"github.com/colorpaps/colorpaps/internal/colour"
)

// Thresholds maps each perceptual region to its CIEDE2000 drop threshold.
// Two colours in a region closer than its threshold are considered printing
// duplicates. The eye discriminates neutrals most finely, so thresholds
// must not decrease from neutral through very saturated.
type Thresholds struct {
	Neutral       float64
	Pastel        float64
	Dark          float64
	Saturated     float64
	VerySaturated float64
}

// DefaultThresholds returns the thresholds tuned for fine-art print runs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Neutral:       0.5,
		Pastel:        0.7,
		Dark:          0.8,
		Saturated:     1.2,
		VerySaturated: 1.5,
	}
}

// For returns the threshold that applies to a region.
func (t Thresholds) For(r colour.Region) float64 {
	switch r {
	case colour.RegionNeutral:
		return t.Neutral
	case colour.RegionPastel:
		return t.Pastel
	case colour.RegionDark:
		return t.Dark
	case colour.RegionSaturated:
		return t.Saturated
	default:
		return t.VerySaturated
	}
}

// Min returns the tightest threshold across all regions.
func (t Thresholds) Min() float64 {
	m := t.Neutral
	for _, v := range []float64{t.Pastel, t.Dark, t.Saturated, t.VerySaturated} {
		if v < m {
			m = v
		}
	}
	return m
}

// Validate checks that every threshold is positive and that thresholds do
// not decrease as regions get more saturated.
func (t Thresholds) Validate() error {
	ordered := []struct {
		name  string
		value float64
	}{
		{"neutral", t.Neutral},
		{"pastel", t.Pastel},
		{"dark", t.Dark},
		{"saturated", t.Saturated},
		{"very_saturated", t.VerySaturated},
	}
	for i, r := range ordered {
		if r.value <= 0 {
			return fmt.Errorf("threshold for %s must be positive, got %g", r.name, r.value)
		}
		if i > 0 && r.value < ordered[i-1].value {
			return fmt.Errorf("threshold for %s (%g) must not be tighter than %s (%g)",
				r.name, r.value, ordered[i-1].name, ordered[i-1].value)
		}
	}
	return nil
}

// Grid bounds of the L*a*b* space covered by the spatial index.
const (
	gridLMin  = 0.0
	gridABMin = -128.0
)

// Config is the immutable configuration for a deduplication Engine.
// Separate engines may carry different threshold policies side by side.
type Config struct {
	Thresholds Thresholds
}

// DefaultConfig returns a Config with the default threshold table.
func DefaultConfig() Config {
	return Config{Thresholds: DefaultThresholds()}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := c.Thresholds.Validate(); err != nil {
		return fmt.Errorf("invalid thresholds: %w", err)
	}
	return nil
}

// CellSize returns the grid cell edge length in L*a*b* units. Sizing cells
// at twice the tightest threshold guarantees that every pair of colours
// within any applicable threshold lands within the Chebyshev-radius-2
// neighbourhood searched by the engine.
func (c Config) CellSize() float64 {
	return 2 * c.Thresholds.Min()
}
