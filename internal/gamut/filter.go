package gamut

import (
	"fmt"

	"github.com/colorpaps/colorpaps/internal/colour"
)

// DefaultTolerance is the maximum per-channel round-trip deviation, in
// device units, for a colour to count as inside the printer gamut. It
// absorbs the rounding noise of the external transform.
const DefaultTolerance = 2

// Transform maps a batch of device colours through an external colour
// management engine. Implementations must return one output colour per
// input colour, in order.
type Transform interface {
	Apply(colors []colour.RGB) ([]colour.RGB, error)
}

// TransformFunc adapts a function to the Transform interface.
type TransformFunc func(colors []colour.RGB) ([]colour.RGB, error)

// Apply implements Transform.
func (f TransformFunc) Apply(colors []colour.RGB) ([]colour.RGB, error) {
	return f(colors)
}

// RoundTrip composes the forward and inverse device transforms
// (sRGB -> printer space -> sRGB).
type RoundTrip struct {
	To   Transform
	From Transform
}

// Mask runs the round trip and reports, per colour, whether the printed
// result deviates from the original by at most tolerance on every channel.
func (rt RoundTrip) Mask(colors []colour.RGB, tolerance int) ([]bool, error) {
	printed, err := rt.To.Apply(colors)
	if err != nil {
		return nil, fmt.Errorf("forward transform failed: %w", err)
	}
	back, err := rt.From.Apply(printed)
	if err != nil {
		return nil, fmt.Errorf("inverse transform failed: %w", err)
	}
	return Mask(colors, back, tolerance)
}

// Mask compares original colours against their externally round-tripped
// counterparts. A colour is in gamut when no channel moved by more than
// tolerance device units.
func Mask(original, roundTripped []colour.RGB, tolerance int) ([]bool, error) {
	if len(original) != len(roundTripped) {
		return nil, fmt.Errorf("round-trip length mismatch: %d original vs %d round-tripped",
			len(original), len(roundTripped))
	}
	mask := make([]bool, len(original))
	for i := range original {
		mask[i] = channelDelta(original[i], roundTripped[i]) <= tolerance
	}
	return mask, nil
}

// channelDelta returns the largest absolute per-channel difference.
func channelDelta(a, b colour.RGB) int {
	d := absDiff(a.R, b.R)
	if g := absDiff(a.G, b.G); g > d {
		d = g
	}
	if bd := absDiff(a.B, b.B); bd > d {
		d = bd
	}
	return d
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// Apply selects the colours whose mask entry is true, preserving input
// order.
func Apply(colors []colour.RGB, mask []bool) ([]colour.RGB, error) {
	if len(colors) != len(mask) {
		return nil, fmt.Errorf("mask length mismatch: %d colours vs %d mask entries",
			len(colors), len(mask))
	}
	kept := make([]colour.RGB, 0, len(colors))
	for i, c := range colors {
		if mask[i] {
			kept = append(kept, c)
		}
	}
	return kept, nil
}

// DeviceUnique keeps the first colour of every group that quantizes to the
// same point on a grid of the given step, in input order. Colours that
// collapse onto the same grid point cannot be told apart on the device.
func DeviceUnique(colors []colour.RGB, step uint8) []colour.RGB {
	seen := make(map[colour.RGB]struct{}, len(colors))
	kept := make([]colour.RGB, 0, len(colors))
	for _, c := range colors {
		q := c.Quantize(step)
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		kept = append(kept, c)
	}
	return kept
}
