package cloud

import (
	"hash/fnv"
	"math"
	"math/rand"
	"sort"

	"github.com/colorpaps/colorpaps/internal/colour"
)

// Canvas defaults: one square metre at 300 DPI, with a 1000px preview.
const (
	SizeFull      = 11811
	SizePreview   = 1000
	DefaultRadius = 6
	DefaultSeed   = 42
)

// Point is one placed circle of the artwork.
type Point struct {
	X, Y   float64
	Colour colour.RGB
}

// placer enforces minimum spacing through an occupancy grid: only one
// circle may land in each gridSize-sized square. With checkBounds set,
// points whose quantised cell touches the canvas edge are rejected.
type placer struct {
	size        int
	radius      int
	gridSize    int
	checkBounds bool
	occupied    map[[2]int]struct{}
}

func newPlacer(size, radius, gridSize int, checkBounds bool) *placer {
	if gridSize < 1 {
		gridSize = 1
	}
	return &placer{
		size:        size,
		radius:      radius,
		gridSize:    gridSize,
		checkBounds: checkBounds,
		occupied:    make(map[[2]int]struct{}),
	}
}

// tryPlace claims the cell under (x, y). It reports false when the cell is
// already taken or out of bounds.
func (p *placer) tryPlace(x, y float64) bool {
	qx := int(math.Floor(x/float64(p.gridSize))) * p.gridSize
	qy := int(math.Floor(y/float64(p.gridSize))) * p.gridSize
	if p.checkBounds {
		if qx < p.radius || qx >= p.size-p.radius || qy < p.radius || qy >= p.size-p.radius {
			return false
		}
	}
	key := [2]int{qx, qy}
	if _, ok := p.occupied[key]; ok {
		return false
	}
	p.occupied[key] = struct{}{}
	return true
}

// topographic ordering: positions sorted top-to-bottom (weighted by the
// distance from the cluster centre), colours sorted light-to-dark, so the
// brightest nuances settle at the top and the darkest sink to the centre.
func positionOrder(x, y []float64, cx, cy float64) []int {
	keys := make([]float64, len(x))
	for i := range x {
		r := math.Hypot(x[i]-cx, y[i]-cy)
		keys[i] = y[i]*10.0 + r
	}
	return argsort(keys)
}

func colourOrder(sel Selection) []int {
	keys := make([]float64, len(sel.Colors))
	for i := range sel.Colors {
		keys[i] = -sel.Val[i]*10.0 + (1.0 - sel.Sat[i])
	}
	return argsort(keys)
}

// argsort returns the indices that sort keys ascending, stable in the
// original order for ties.
func argsort(keys []float64) []int {
	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return keys[idx[a]] < keys[idx[b]] })
	return idx
}

// normalPoints draws n gaussian samples around (cx, cy).
func normalPoints(rng *rand.Rand, n int, cx, cy, sigma float64) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = cx + rng.NormFloat64()*sigma
		ys[i] = cy + rng.NormFloat64()*sigma
	}
	return xs, ys
}

// reflect folds a coordinate back into [lo, hi] by mirroring at the edges.
func reflect(v, lo, hi float64) float64 {
	for range 10 {
		switch {
		case v < lo:
			v = 2*lo - v
		case v > hi:
			v = 2*hi - v
		default:
			return v
		}
	}
	return math.Min(math.Max(v, lo), hi)
}

// nameSeed derives a deterministic per-palette seed.
func nameSeed(name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return int64(h.Sum64() & math.MaxInt64)
}

// CloudPoints lays out a single palette as one centred gaussian cloud.
func CloudPoints(sel Selection, size, radius int, seed int64) []Point {
	n := len(sel.Colors)
	if n == 0 {
		return nil
	}

	center := float64(size) / 2
	sigma := float64(size) / 6.8
	rng := rand.New(rand.NewSource(seed))
	xs, ys := normalPoints(rng, n, center, center, sigma)

	posIdx := positionOrder(xs, ys, center, center)
	colIdx := colourOrder(sel)

	p := newPlacer(size, radius, int(float64(radius)*1.5), true)
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		px, py := xs[posIdx[i]], ys[posIdx[i]]
		if p.tryPlace(px, py) {
			points = append(points, Point{X: px, Y: py, Colour: sel.Colors[colIdx[i]]})
		}
	}
	return points
}

// CompositionPoints lays out several palettes as compact islands at the
// standard anchors for that palette count. Island size scales with the
// square root of the palette's colour count so area tracks density. All
// islands share one occupancy grid, so palettes never overlap a cell.
func CompositionPoints(selections map[string]Selection, names []string, size, radius int) []Point {
	anchors := compositionPositions(len(names))
	maxCount := 1
	for _, name := range names {
		if n := len(selections[name].Colors); n > maxCount {
			maxCount = n
		}
	}

	p := newPlacer(size, radius, radius*2, false)
	var points []Point
	lo, hi := float64(radius), float64(size-radius-1)

	for idx, name := range names {
		sel := selections[name]
		n := len(sel.Colors)
		if n == 0 {
			continue
		}

		cx := anchors[idx].x * float64(size)
		cy := anchors[idx].y * float64(size)
		baseSigma := float64(size) / float64(8+len(names))
		sigma := baseSigma * (0.5 + 0.5*math.Sqrt(float64(n)/float64(maxCount)))

		rng := rand.New(rand.NewSource(nameSeed(name)))
		xs, ys := normalPoints(rng, n, cx, cy, sigma)

		// Radial distance is taken before reflection so points mirrored
		// back from the edge keep their original depth in the island.
		rs := make([]float64, n)
		for i := range xs {
			rs[i] = math.Hypot(xs[i]-cx, ys[i]-cy)
			xs[i] = reflect(xs[i], lo, hi)
			ys[i] = reflect(ys[i], lo, hi)
		}

		keys := make([]float64, n)
		for i := range keys {
			keys[i] = ys[i]*10.0 + rs[i]
		}
		posIdx := argsort(keys)
		colIdx := colourOrder(sel)

		for i := 0; i < n; i++ {
			px, py := xs[posIdx[i]], ys[posIdx[i]]
			if p.tryPlace(px, py) {
				points = append(points, Point{X: px, Y: py, Colour: sel.Colors[colIdx[i]]})
			}
		}
	}
	return points
}

// SpectrumPoints lays out all eight palettes as separate spheres at their
// fixed anchors, green at the centre. Sphere radius scales with colour
// density; sphere draw order is shuffled deterministically so the overlap
// pattern stays organic but reproducible.
func SpectrumPoints(selections map[string]Selection, size, radius int) []Point {
	names := make([]string, 0, len(spherePositions))
	for name := range spherePositions {
		if len(selections[name].Colors) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	rand.New(rand.NewSource(DefaultSeed)).Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})

	maxCount := 1
	for _, sel := range selections {
		if n := len(sel.Colors); n > maxCount {
			maxCount = n
		}
	}

	const margin = 0.15
	p := newPlacer(size, radius, radius*2, false)
	var points []Point

	for _, name := range names {
		sel := selections[name]
		n := len(sel.Colors)

		anchor := spherePositions[name]
		cx := (margin + anchor.x*(1-2*margin)) * float64(size)
		cy := (margin + anchor.y*(1-2*margin)) * float64(size)

		baseSigma := float64(size) / 14
		sigma := baseSigma * (0.5 + 0.5*math.Sqrt(float64(n)/float64(maxCount)))

		rng := rand.New(rand.NewSource(nameSeed(name)))
		xs, ys := normalPoints(rng, n, cx, cy, sigma)

		posIdx := positionOrder(xs, ys, cx, cy)
		colIdx := colourOrder(sel)

		for i := 0; i < n; i++ {
			px, py := xs[posIdx[i]], ys[posIdx[i]]
			if px < float64(radius) || px >= float64(size-radius) ||
				py < float64(radius) || py >= float64(size-radius) {
				continue
			}
			if p.tryPlace(px, py) {
				points = append(points, Point{X: px, Y: py, Colour: sel.Colors[colIdx[i]]})
			}
		}
	}
	return points
}
