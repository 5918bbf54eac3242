package cloud

import (
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/colorpaps/colorpaps/internal/colour"
)

func TestBandByName(t *testing.T) {
	b, err := BandByName("bleu")
	if err != nil {
		t.Fatalf("BandByName(bleu): %v", err)
	}
	if b.Name != "bleu" {
		t.Errorf("Name = %q, want bleu", b.Name)
	}

	if _, err := BandByName("magenta"); err == nil {
		t.Fatal("BandByName accepted an unknown palette")
	}
}

func TestBandNamesComplete(t *testing.T) {
	want := []string{"bleu", "gris", "jaune", "marron", "orange", "rouge", "vert", "violet"}
	if diff := cmp.Diff(want, BandNames()); diff != "" {
		t.Errorf("BandNames mismatch (-want +got):\n%s", diff)
	}
}

func TestBandContains(t *testing.T) {
	tests := []struct {
		name   string
		band   string
		colour colour.RGB
		want   bool
	}{
		{name: "pure blue in bleu", band: "bleu", colour: colour.RGB{B: 255}, want: true},
		{name: "pure red not in bleu", band: "bleu", colour: colour.RGB{R: 255}, want: false},
		{name: "pure red in rouge via wrap", band: "rouge", colour: colour.RGB{R: 255}, want: true},
		{name: "grey in gris", band: "gris", colour: colour.RGB{R: 128, G: 128, B: 128}, want: true},
		{name: "near-white outside gris value band", band: "gris", colour: colour.RGB{R: 250, G: 250, B: 250}, want: false},
		{name: "saturated blue not in gris", band: "gris", colour: colour.RGB{B: 255}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := BandByName(tt.band)
			if err != nil {
				t.Fatalf("BandByName: %v", err)
			}
			if got := b.Contains(colour.ToHSV(tt.colour)); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	colors := []colour.RGB{
		{B: 255},            // bleu
		{B: 254},            // quantizes with the first, dropped
		{R: 255},            // not bleu
		{R: 30, B: 200},     // bleu
		{R: 128, G: 128, B: 128}, // grey, not bleu
	}
	b, err := BandByName("bleu")
	if err != nil {
		t.Fatalf("BandByName: %v", err)
	}

	sel := Select(colors, b)
	want := []colour.RGB{{B: 255}, {R: 30, B: 200}}
	if diff := cmp.Diff(want, sel.Colors); diff != "" {
		t.Errorf("Select mismatch (-want +got):\n%s", diff)
	}
	if len(sel.Sat) != len(sel.Colors) || len(sel.Val) != len(sel.Colors) {
		t.Errorf("Sat/Val lengths %d/%d, want %d", len(sel.Sat), len(sel.Val), len(sel.Colors))
	}
}

func TestSelectDisjoint(t *testing.T) {
	colors := []colour.RGB{
		{B: 255},                 // bleu
		{R: 255},                 // rouge
		{R: 128, G: 128, B: 128}, // gris claims greys before any hue band
	}
	got, err := SelectDisjoint(colors, []string{"bleu", "rouge", "gris"})
	if err != nil {
		t.Fatalf("SelectDisjoint: %v", err)
	}

	assigned := 0
	for name, sel := range got {
		assigned += len(sel.Colors)
		for _, c := range sel.Colors {
			for other, otherSel := range got {
				if other == name {
					continue
				}
				for _, oc := range otherSel.Colors {
					if c == oc {
						t.Errorf("colour %v assigned to both %s and %s", c, name, other)
					}
				}
			}
		}
	}
	if assigned != len(colors) {
		t.Errorf("assigned %d colours, want %d", assigned, len(colors))
	}

	if _, err := SelectDisjoint(colors, []string{"nope"}); err == nil {
		t.Fatal("SelectDisjoint accepted an unknown palette")
	}
}

func makeSelection(n int) Selection {
	var sel Selection
	for i := 0; i < n; i++ {
		c := colour.RGB{R: uint8(i), G: uint8(i / 2), B: uint8(200 - i%100)}
		hsv := colour.ToHSV(c)
		sel.Colors = append(sel.Colors, c)
		sel.Sat = append(sel.Sat, hsv.S)
		sel.Val = append(sel.Val, hsv.V)
	}
	return sel
}

func TestCloudPointsDeterministic(t *testing.T) {
	sel := makeSelection(200)
	first := CloudPoints(sel, 500, 4, DefaultSeed)
	second := CloudPoints(sel, 500, 4, DefaultSeed)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed produced different layouts (-first +second):\n%s", diff)
	}
	if len(first) == 0 {
		t.Fatal("CloudPoints placed nothing")
	}
	if len(first) > len(sel.Colors) {
		t.Errorf("placed %d points from %d colours", len(first), len(sel.Colors))
	}
}

func TestCloudPointsEmptySelection(t *testing.T) {
	if got := CloudPoints(Selection{}, 500, 4, DefaultSeed); got != nil {
		t.Errorf("CloudPoints(empty) = %v, want nil", got)
	}
}

func TestCloudPointsRespectsBounds(t *testing.T) {
	const size, radius = 300, 6
	points := CloudPoints(makeSelection(500), size, radius, DefaultSeed)
	for _, pt := range points {
		if pt.X < 0 || pt.X >= size || pt.Y < 0 || pt.Y >= size {
			t.Fatalf("point (%g, %g) outside %dpx canvas", pt.X, pt.Y, size)
		}
	}
}

func TestCompositionPointsSharedOccupancy(t *testing.T) {
	selections := map[string]Selection{
		"bleu":  makeSelection(150),
		"rouge": makeSelection(100),
	}
	const size, radius = 400, 4
	points := CompositionPoints(selections, []string{"bleu", "rouge"}, size, radius)
	if len(points) == 0 {
		t.Fatal("CompositionPoints placed nothing")
	}

	// All palettes share one occupancy grid: no two points may claim the
	// same radius*2 cell.
	const grid = radius * 2
	seen := make(map[[2]int]bool)
	for _, pt := range points {
		key := [2]int{
			int(math.Floor(pt.X/grid)) * grid,
			int(math.Floor(pt.Y/grid)) * grid,
		}
		if seen[key] {
			t.Fatalf("two points share occupancy cell %v", key)
		}
		seen[key] = true
	}

	// Reflection keeps every point inside the drawable area.
	for _, pt := range points {
		if pt.X < radius || pt.X > size-radius-1 || pt.Y < radius || pt.Y > size-radius-1 {
			t.Fatalf("point (%g, %g) escaped the reflected bounds", pt.X, pt.Y)
		}
	}
}

func TestSpectrumPointsDeterministic(t *testing.T) {
	selections := map[string]Selection{
		"vert": makeSelection(120),
		"bleu": makeSelection(80),
	}
	first := SpectrumPoints(selections, 400, 2)
	second := SpectrumPoints(selections, 400, 2)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("spectrum layout not deterministic (-first +second):\n%s", diff)
	}
	if len(first) == 0 {
		t.Fatal("SpectrumPoints placed nothing")
	}
}

func TestRender(t *testing.T) {
	points := []Point{
		{X: 50, Y: 50, Colour: colour.RGB{R: 255}},
	}
	img := Render(points, 100, 5)

	if got := img.RGBAAt(50, 50); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("centre pixel = %v, want opaque red", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("corner pixel = %v, want white background", got)
	}
	// Pixels well outside the circle stay white.
	if got := img.RGBAAt(70, 50); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("outside pixel = %v, want white", got)
	}
}

func TestPreviewSize(t *testing.T) {
	img := Render(nil, 200, 4)
	preview := Preview(img, 50)
	if b := preview.Bounds(); b.Dx() != 50 || b.Dy() != 50 {
		t.Errorf("preview bounds = %v, want 50x50", b)
	}
}
