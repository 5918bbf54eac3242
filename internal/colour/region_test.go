package colour

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		l      float64
		chroma float64
		want   Region
	}{
		{name: "white is neutral", l: 100, chroma: 0, want: RegionNeutral},
		{name: "black is neutral", l: 0, chroma: 0, want: RegionNeutral},
		{name: "mid grey is neutral", l: 50, chroma: 5, want: RegionNeutral},
		{name: "low chroma is neutral regardless of lightness", l: 15, chroma: 9.99, want: RegionNeutral},
		{name: "light low-saturation is pastel", l: 80, chroma: 20, want: RegionPastel},
		{name: "mid low-saturation is pastel", l: 50, chroma: 20, want: RegionPastel},
		{name: "dark low-saturation is dark", l: 20, chroma: 20, want: RegionDark},
		{name: "dark mid-saturation is dark", l: 20, chroma: 45, want: RegionDark},
		{name: "light mid-saturation is saturated", l: 60, chroma: 45, want: RegionSaturated},
		{name: "high chroma is very saturated", l: 50, chroma: 60, want: RegionVerySaturated},
		{name: "dark high chroma is still very saturated", l: 10, chroma: 90, want: RegionVerySaturated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.l, tt.chroma); got != tt.want {
				t.Errorf("Classify(%g, %g) = %v, want %v", tt.l, tt.chroma, got, tt.want)
			}
		})
	}
}

func TestClassifyBandBoundaries(t *testing.T) {
	// The first matching chroma band wins; band edges are half-open.
	tests := []struct {
		chroma float64
		l      float64
		want   Region
	}{
		{chroma: 10, l: 50, want: RegionPastel},
		{chroma: 30, l: 50, want: RegionSaturated},
		{chroma: 30, l: 29.9, want: RegionDark},
		{chroma: 60, l: 50, want: RegionVerySaturated},
	}
	for _, tt := range tests {
		if got := Classify(tt.l, tt.chroma); got != tt.want {
			t.Errorf("Classify(%g, %g) = %v, want %v", tt.l, tt.chroma, got, tt.want)
		}
	}
}

func TestRegionString(t *testing.T) {
	tests := []struct {
		region Region
		want   string
	}{
		{RegionNeutral, "neutral"},
		{RegionPastel, "pastel"},
		{RegionDark, "dark"},
		{RegionSaturated, "saturated"},
		{RegionVerySaturated, "very_saturated"},
		{Region(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.region.String(); got != tt.want {
			t.Errorf("Region(%d).String() = %q, want %q", tt.region, got, tt.want)
		}
	}
}

func TestClassifyLab(t *testing.T) {
	if got := ClassifyLab(ToLab(RGB{R: 255, G: 255, B: 255})); got != RegionNeutral {
		t.Errorf("ClassifyLab(white) = %v, want %v", got, RegionNeutral)
	}
	if got := ClassifyLab(ToLab(RGB{R: 255})); got != RegionVerySaturated {
		t.Errorf("ClassifyLab(pure red) = %v, want %v", got, RegionVerySaturated)
	}
}
