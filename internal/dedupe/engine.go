package dedupe

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/colorpaps/colorpaps/internal/colour"
)

// progressInterval is how many processed colours pass between progress logs.
const progressInterval = 100_000

// Engine removes perceptual near-duplicates from a colour set.
type Engine struct {
	cfg Config
	log hclog.Logger
}

// NewEngine creates an Engine with the given configuration. A nil logger
// disables progress logging.
func NewEngine(cfg Config, logger hclog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Engine{cfg: cfg, log: logger}, nil
}

// Result describes one deduplication run.
type Result struct {
	// Keep flags each input index; true means the colour survived.
	Keep []bool

	// Removed is the number of colours dropped as near-duplicates.
	Removed int

	// RegionCounts is the input distribution across perceptual regions.
	RegionCounts map[colour.Region]int
}

// Survivors returns the indices still kept, in ascending input order.
func (r *Result) Survivors() []int {
	out := make([]int, 0, len(r.Keep)-r.Removed)
	for i, kept := range r.Keep {
		if kept {
			out = append(out, i)
		}
	}
	return out
}

// Run deduplicates the colour set and reports which indices survive.
//
// Colours are processed from lightest to darkest (stable ties broken by
// input index) so that when two near-duplicates conflict, the lighter and
// more visually prominent colour is the one retained. Each colour that is
// still kept when its turn comes drops every not-yet-processed neighbour
// closer than its own region's threshold; a processed colour is never
// revisited and a dropped flag never flips back.
func (e *Engine) Run(colors []colour.RGB) (*Result, error) {
	n := len(colors)
	result := &Result{
		Keep:         make([]bool, n),
		RegionCounts: make(map[colour.Region]int),
	}
	for i := range result.Keep {
		result.Keep[i] = true
	}
	if n == 0 {
		return result, nil
	}

	e.log.Debug("converting to CIELAB", "colors", n)
	labs := colour.ToLabBatch(colors)

	regions := make([]colour.Region, n)
	for i, lab := range labs {
		regions[i] = colour.ClassifyLab(lab)
		result.RegionCounts[regions[i]]++
	}
	for _, r := range colour.Regions() {
		e.log.Debug("region distribution",
			"region", r.String(),
			"colors", result.RegionCounts[r],
			"threshold", e.cfg.Thresholds.For(r))
	}

	cellSize := e.cfg.CellSize()
	index := buildGrid(labs, cellSize)
	e.log.Debug("spatial grid built", "cell_size", cellSize, "occupied_cells", len(index.cells))

	// Lightest first; ties broken by input index for reproducibility.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(x, y int) bool {
		li, lj := labs[order[x]].L, labs[order[y]].L
		if li != lj {
			return li > lj
		}
		return order[x] < order[y]
	})

	var candidates []int32
	processed := 0
	for _, i := range order {
		processed++
		if processed%progressInterval == 0 {
			e.log.Debug("deduplication progress",
				"processed", processed, "total", n, "removed", result.Removed)
		}
		if !result.Keep[i] {
			continue
		}

		threshold := e.cfg.Thresholds.For(regions[i])
		candidates = index.neighbours(index.cellOf(labs[i]), candidates[:0])

		for _, j := range candidates {
			// The grid keeps indices of colours dropped earlier; filter
			// them here rather than rebuilding cells.
			if int(j) == i || !result.Keep[j] {
				continue
			}
			if colour.DeltaE2000(labs[i], labs[j]) < threshold {
				result.Keep[j] = false
				result.Removed++
			}
		}
	}

	e.log.Info("deduplication complete",
		"input", n, "kept", n-result.Removed, "removed", result.Removed)
	return result, nil
}

// Filter runs deduplication and returns the surviving colours in their
// original input order.
func (e *Engine) Filter(colors []colour.RGB) ([]colour.RGB, *Result, error) {
	result, err := e.Run(colors)
	if err != nil {
		return nil, nil, err
	}
	kept := make([]colour.RGB, 0, len(colors)-result.Removed)
	for i, keep := range result.Keep {
		if keep {
			kept = append(kept, colors[i])
		}
	}
	return kept, result, nil
}
