package dedupe

import (
	"github.com/colorpaps/colorpaps/internal/colour"
)

// cellKey is the integer coordinate of a grid cell in L*a*b* space.
type cellKey struct {
	l, a, b int32
}

// grid buckets colour indices into a uniform 3D grid over L*a*b* space.
// It is built once and read-only afterwards; indices of colours dropped
// later remain in their cells and are filtered by the caller's keep check.
type grid struct {
	cellSize float64
	cells    map[cellKey][]int32
}

// buildGrid inserts every colour into the cell containing its L*a*b*
// coordinate.
func buildGrid(labs []colour.Lab, cellSize float64) *grid {
	g := &grid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int32),
	}
	for i, lab := range labs {
		key := g.cellOf(lab)
		g.cells[key] = append(g.cells[key], int32(i))
	}
	return g
}

// cellOf returns the cell coordinate for a L*a*b* colour.
func (g *grid) cellOf(lab colour.Lab) cellKey {
	return cellKey{
		l: int32((lab.L - gridLMin) / g.cellSize),
		a: int32((lab.A - gridABMin) / g.cellSize),
		b: int32((lab.B - gridABMin) / g.cellSize),
	}
}

// neighbourRadius is the Chebyshev radius of the candidate search, giving
// the 5x5x5 cell neighbourhood. Generous relative to the cell sizing so no
// true perceptual neighbour is missed; false candidates are rejected by the
// exact distance check.
const neighbourRadius = 2

// neighbours appends the indices of every colour in the 5x5x5 neighbourhood
// of key to out and returns it. The caller owns filtering (self index,
// already-dropped colours).
func (g *grid) neighbours(key cellKey, out []int32) []int32 {
	for dl := int32(-neighbourRadius); dl <= neighbourRadius; dl++ {
		for da := int32(-neighbourRadius); da <= neighbourRadius; da++ {
			for db := int32(-neighbourRadius); db <= neighbourRadius; db++ {
				if cell, ok := g.cells[cellKey{key.l + dl, key.a + da, key.b + db}]; ok {
					out = append(out, cell...)
				}
			}
		}
	}
	return out
}
