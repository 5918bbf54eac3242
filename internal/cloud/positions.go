package cloud

// position is a normalised (0..1) layout anchor on the square canvas.
type position struct {
	x, y float64
}

// compositionPositions returns the anchors for a multi-palette composition
// of n palettes (1 to 8).
func compositionPositions(n int) []position {
	switch n {
	case 1:
		return []position{{0.5, 0.5}}
	case 2:
		return []position{{0.32, 0.42}, {0.68, 0.58}}
	case 3:
		return []position{{0.5, 0.3}, {0.3, 0.7}, {0.7, 0.7}}
	case 4:
		return []position{{0.3, 0.3}, {0.7, 0.3}, {0.3, 0.7}, {0.7, 0.7}}
	case 5:
		return []position{{0.5, 0.25}, {0.25, 0.5}, {0.75, 0.5}, {0.35, 0.8}, {0.65, 0.8}}
	case 6:
		return []position{
			{0.3, 0.25}, {0.7, 0.25}, {0.2, 0.55}, {0.8, 0.55}, {0.35, 0.82}, {0.65, 0.82},
		}
	case 7:
		return []position{
			{0.5, 0.18}, {0.25, 0.4}, {0.75, 0.4}, {0.5, 0.55},
			{0.2, 0.78}, {0.5, 0.85}, {0.8, 0.78},
		}
	default:
		return []position{
			{0.5, 0.15}, {0.2, 0.35}, {0.8, 0.35}, {0.35, 0.55},
			{0.65, 0.55}, {0.2, 0.78}, {0.5, 0.85}, {0.8, 0.78},
		}
	}
}

// spherePositions anchors the eight spectrum spheres: green at the centre
// (the most massive palette), the others spread organically around it.
var spherePositions = map[string]position{
	"vert":   {0.50, 0.50},
	"bleu":   {0.18, 0.25},
	"violet": {0.82, 0.78},
	"rouge":  {0.82, 0.22},
	"jaune":  {0.22, 0.80},
	"orange": {0.50, 0.15},
	"marron": {0.50, 0.85},
	"gris":   {0.18, 0.52},
}
