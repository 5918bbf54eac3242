// Package gamut decides which colours a printer can reproduce. The device
// transform itself (sRGB -> printer -> sRGB) is an external colour
// management engine; this package validates the ICC profile, applies the
// round-trip tolerance policy, and reduces colour sets to device-unique
// members.
package gamut

import (
	"fmt"
	"os"
	"path/filepath"

	"seehuhn.de/go/icc"
)

// LoadProfile reads and decodes an ICC profile, checking that it describes
// an RGB device. Missing or unparseable profiles abort with an error naming
// the resolved path, before any colour computation starts.
func LoadProfile(path string) (*icc.Profile, error) {
	resolved, err := filepath.Abs(path)
	if err != nil {
		resolved = path
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("ICC profile not found: %s", resolved)
		}
		return nil, fmt.Errorf("failed to read ICC profile %s: %w", resolved, err)
	}

	profile, err := icc.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ICC profile %s: %w", resolved, err)
	}
	if profile.ColorSpace != icc.RGBSpace {
		return nil, fmt.Errorf("ICC profile %s is not an RGB profile (%d components)",
			resolved, profile.ColorSpace.NumComponents())
	}

	return profile, nil
}
