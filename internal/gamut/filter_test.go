package gamut

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/icc"

	"github.com/colorpaps/colorpaps/internal/colour"
)

// clampingTransform simulates a printer that cannot reach full saturation:
// every channel is clamped into [16, 240].
func clampingTransform(colors []colour.RGB) ([]colour.RGB, error) {
	out := make([]colour.RGB, len(colors))
	for i, c := range colors {
		out[i] = colour.RGB{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B)}
	}
	return out, nil
}

func clamp(v uint8) uint8 {
	if v < 16 {
		return 16
	}
	if v > 240 {
		return 240
	}
	return v
}

func identityTransform(colors []colour.RGB) ([]colour.RGB, error) {
	return colors, nil
}

func TestRoundTripMask(t *testing.T) {
	rt := RoundTrip{
		To:   TransformFunc(clampingTransform),
		From: TransformFunc(identityTransform),
	}
	colors := []colour.RGB{
		{R: 128, G: 128, B: 128}, // untouched, in gamut
		{R: 255, G: 0, B: 0},     // clamped far beyond tolerance
		{R: 240, G: 17, B: 100},  // at the clamp edges, within tolerance
	}

	mask, err := rt.Mask(colors, DefaultTolerance)
	if err != nil {
		t.Fatalf("Mask: %v", err)
	}
	want := []bool{true, false, true}
	if diff := cmp.Diff(want, mask); diff != "" {
		t.Errorf("mask mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripTransformError(t *testing.T) {
	failing := TransformFunc(func([]colour.RGB) ([]colour.RGB, error) {
		return nil, errors.New("engine unavailable")
	})
	rt := RoundTrip{To: failing, From: failing}
	if _, err := rt.Mask([]colour.RGB{{}}, DefaultTolerance); err == nil {
		t.Fatal("Mask swallowed a transform error")
	}
}

func TestMaskLengthMismatch(t *testing.T) {
	if _, err := Mask(make([]colour.RGB, 2), make([]colour.RGB, 3), 2); err == nil {
		t.Fatal("Mask accepted mismatched lengths")
	}
}

func TestMaskTolerance(t *testing.T) {
	original := []colour.RGB{{R: 100, G: 100, B: 100}}
	tests := []struct {
		name        string
		roundTrip   colour.RGB
		tolerance   int
		wantInGamut bool
	}{
		{name: "exact", roundTrip: colour.RGB{R: 100, G: 100, B: 100}, tolerance: 0, wantInGamut: true},
		{name: "at tolerance", roundTrip: colour.RGB{R: 102, G: 98, B: 100}, tolerance: 2, wantInGamut: true},
		{name: "one past tolerance", roundTrip: colour.RGB{R: 103, G: 100, B: 100}, tolerance: 2, wantInGamut: false},
		{name: "single channel decides", roundTrip: colour.RGB{R: 100, G: 100, B: 90}, tolerance: 2, wantInGamut: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask, err := Mask(original, []colour.RGB{tt.roundTrip}, tt.tolerance)
			if err != nil {
				t.Fatalf("Mask: %v", err)
			}
			if mask[0] != tt.wantInGamut {
				t.Errorf("in gamut = %v, want %v", mask[0], tt.wantInGamut)
			}
		})
	}
}

func TestApply(t *testing.T) {
	colors := []colour.RGB{{R: 1}, {R: 2}, {R: 3}}
	kept, err := Apply(colors, []bool{true, false, true})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := []colour.RGB{{R: 1}, {R: 3}}
	if diff := cmp.Diff(want, kept); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}

	if _, err := Apply(colors, []bool{true}); err == nil {
		t.Fatal("Apply accepted a short mask")
	}
}

func TestApplyCanEmptyTheSet(t *testing.T) {
	kept, err := Apply([]colour.RGB{{R: 1}, {R: 2}}, []bool{false, false})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(kept) != 0 {
		t.Errorf("Apply = %v, want empty survivor set", kept)
	}
}

func TestDeviceUnique(t *testing.T) {
	colors := []colour.RGB{
		{R: 10, G: 20, B: 30},
		{R: 11, G: 21, B: 31}, // quantizes with the first at step 2
		{R: 12, G: 20, B: 30},
		{R: 10, G: 20, B: 30}, // exact duplicate
	}
	got := DeviceUnique(colors, 2)
	want := []colour.RGB{
		{R: 10, G: 20, B: 30},
		{R: 12, G: 20, B: 30},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DeviceUnique mismatch (-want +got):\n%s", diff)
	}
}

func TestDeviceUniqueStepOneKeepsDistinct(t *testing.T) {
	colors := []colour.RGB{{R: 10}, {R: 11}, {R: 10}}
	got := DeviceUnique(colors, 1)
	want := []colour.RGB{{R: 10}, {R: 11}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DeviceUnique mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadProfileMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "printer.icc")
	_, err := LoadProfile(path)
	if err == nil {
		t.Fatal("LoadProfile of a missing file succeeded")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the resolved path", err)
	}
}

// writeProfile encodes a minimal profile of the given colour space and
// writes it to a temp file.
func writeProfile(t *testing.T, space icc.ColorSpace) string {
	t.Helper()
	data := (&icc.Profile{
		Class:      icc.OutputDeviceProfile,
		ColorSpace: space,
		PCS:        icc.CIEXYZSpace,
	}).Encode()
	path := filepath.Join(t.TempDir(), "printer.icc")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing profile: %v", err)
	}
	return path
}

func TestLoadProfileRGB(t *testing.T) {
	path := writeProfile(t, icc.RGBSpace)
	profile, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if profile.ColorSpace != icc.RGBSpace {
		t.Errorf("ColorSpace = %v, want RGB", profile.ColorSpace)
	}
}

func TestLoadProfileRejectsNonRGB(t *testing.T) {
	path := writeProfile(t, icc.CMYKSpace)
	_, err := LoadProfile(path)
	if err == nil {
		t.Fatal("LoadProfile accepted a CMYK profile")
	}
	if !strings.Contains(err.Error(), "not an RGB profile") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadProfileGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.icc")
	if err := os.WriteFile(path, []byte("not an icc profile"), 0o644); err != nil {
		t.Fatalf("writing profile: %v", err)
	}
	if _, err := LoadProfile(path); err == nil {
		t.Fatal("LoadProfile accepted garbage data")
	}
}
