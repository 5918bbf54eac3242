package dedupe

import (
	"testing"

	"github.com/colorpaps/colorpaps/internal/colour"
)

func TestDefaultThresholdsMonotonic(t *testing.T) {
	th := DefaultThresholds()
	regions := colour.Regions()
	for i := 1; i < len(regions); i++ {
		prev, cur := th.For(regions[i-1]), th.For(regions[i])
		if cur < prev {
			t.Errorf("threshold(%v) = %g is tighter than threshold(%v) = %g",
				regions[i], cur, regions[i-1], prev)
		}
	}
}

func TestThresholdsValidate(t *testing.T) {
	tests := []struct {
		name    string
		th      Thresholds
		wantErr bool
	}{
		{name: "defaults are valid", th: DefaultThresholds(), wantErr: false},
		{
			name:    "zero threshold rejected",
			th:      Thresholds{Neutral: 0, Pastel: 0.7, Dark: 0.8, Saturated: 1.2, VerySaturated: 1.5},
			wantErr: true,
		},
		{
			name:    "negative threshold rejected",
			th:      Thresholds{Neutral: 0.5, Pastel: -0.7, Dark: 0.8, Saturated: 1.2, VerySaturated: 1.5},
			wantErr: true,
		},
		{
			name:    "non-monotonic ordering rejected",
			th:      Thresholds{Neutral: 0.5, Pastel: 0.7, Dark: 0.8, Saturated: 1.5, VerySaturated: 1.2},
			wantErr: true,
		},
		{
			name:    "equal thresholds allowed",
			th:      Thresholds{Neutral: 1, Pastel: 1, Dark: 1, Saturated: 1, VerySaturated: 1},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.th.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestThresholdsMin(t *testing.T) {
	if got := DefaultThresholds().Min(); got != 0.5 {
		t.Errorf("Min() = %g, want 0.5", got)
	}
}

func TestConfigCellSize(t *testing.T) {
	// Twice the tightest threshold, in L*a*b* units.
	if got := DefaultConfig().CellSize(); got != 1.0 {
		t.Errorf("CellSize() = %g, want 1.0", got)
	}
}

func TestThresholdsFor(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		region colour.Region
		want   float64
	}{
		{colour.RegionNeutral, 0.5},
		{colour.RegionPastel, 0.7},
		{colour.RegionDark, 0.8},
		{colour.RegionSaturated, 1.2},
		{colour.RegionVerySaturated, 1.5},
	}
	for _, tt := range tests {
		if got := th.For(tt.region); got != tt.want {
			t.Errorf("For(%v) = %g, want %g", tt.region, got, tt.want)
		}
	}
}
