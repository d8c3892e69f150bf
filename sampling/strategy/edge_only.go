package strategy

import (
	"math"
	"sort"

	"github.com/yschiang/sampling-wizard/sampling"
)

// EdgeOnly restricts candidates to an annular band at the wafer boundary
// and picks dies at regular angular positions. The output uses an
// edge-first ordering (radial distance descending) instead of the canonical
// one, and by definition never includes the center die (0,0): the band
// excludes it.
type EdgeOnly struct{}

func (EdgeOnly) ID() string      { return sampling.StrategyEdgeOnly }
func (EdgeOnly) Version() string { return "1.0" }

// Select implements sampling.Strategy for EdgeOnly.
func (s EdgeOnly) Select(wafer sampling.WaferMapSpec, process sampling.ProcessContext,
	tool sampling.ToolProfile, cfg sampling.StrategyConfig) (sampling.SamplingOutput, sampling.SelectionStats, error) {

	advanced := cfg.Advanced.(sampling.EdgeOnlyConfig)
	rotation := sampling.RotationOffset(cfg.Common.RotationSeed)

	valid := validCandidates(wafer, cfg.Common)
	effective := sampling.EffectiveRadius(wafer, cfg.Common.EdgeExclusionMM)
	band := bandDies(valid, wafer, effective, advanced.EdgeBandWidthMM)

	if err := ensureMinimum(len(band), process); err != nil {
		return sampling.SamplingOutput{}, sampling.SelectionStats{}, err
	}
	target := sampling.ResolveTargetCount(cfg.Common.TargetPointCount, s.ID(), process, tool)

	selected := selectAngular(band, wafer, advanced, rotation, target)
	if len(selected) < target {
		selected = fillFromRemainder(selected, sampling.SortEdgeFirst(band, wafer, rotation), target)
	}

	ordered := sampling.SortEdgeFirst(selected, wafer, rotation)
	ordered = truncateToTarget(ordered, target)

	stats := sampling.SelectionStats{ValidCandidates: len(band), TargetCount: target}
	return buildOutput(s.ID(), s.Version(), ordered), stats, nil
}

// bandDies keeps the dies whose radial distance falls inside the annular
// band [effective-width, effective].
func bandDies(valid []sampling.DiePoint, wafer sampling.WaferMapSpec, effectiveRadius, widthMM float64) []sampling.DiePoint {
	inner := effectiveRadius - widthMM
	kept := make([]sampling.DiePoint, 0, len(valid))
	for _, p := range valid {
		d := sampling.RadialDistance(p, wafer)
		if d >= inner && d <= effectiveRadius {
			kept = append(kept, p)
		}
	}
	return kept
}

// selectAngular picks one band die per angular position, positions spaced
// by angular_spacing_deg and rotated by the rotation offset. With
// prioritize_corners, positions nearest the diagonals (45°, 135°, 225°,
// 315°) are served first so corner coverage survives tighter targets.
func selectAngular(band []sampling.DiePoint, wafer sampling.WaferMapSpec,
	advanced sampling.EdgeOnlyConfig, rotation float64, target int) []sampling.DiePoint {

	positions := angularPositions(advanced, rotation)
	taken := make(map[sampling.DiePoint]struct{})
	var selected []sampling.DiePoint

	for _, pos := range positions {
		if len(selected) >= target {
			break
		}
		best, ok := nearestByAngle(band, wafer, rotation, pos, taken)
		if !ok {
			continue
		}
		taken[best] = struct{}{}
		selected = append(selected, best)
	}
	return selected
}

func angularPositions(advanced sampling.EdgeOnlyConfig, rotation float64) []float64 {
	count := int(360 / advanced.AngularSpacingDeg)
	positions := make([]float64, 0, count)
	for k := 0; k < count; k++ {
		positions = append(positions, sampling.RotateAngle(float64(k)*advanced.AngularSpacingDeg, rotation))
	}
	if advanced.PrioritizeCorners {
		sort.SliceStable(positions, func(i, j int) bool {
			di, dj := cornerDistance(positions[i]), cornerDistance(positions[j])
			if di != dj {
				return di < dj
			}
			return positions[i] < positions[j]
		})
	}
	return positions
}

// cornerDistance returns the angular distance to the nearest diagonal.
func cornerDistance(angleDeg float64) float64 {
	best := math.MaxFloat64
	for _, corner := range []float64{45, 135, 225, 315} {
		if d := angularDiff(angleDeg, corner); d < best {
			best = d
		}
	}
	return best
}

// angularDiff is the circular distance between two angles in degrees.
func angularDiff(a, b float64) float64 {
	diff := math.Abs(math.Mod(a-b, 360))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// nearestByAngle finds the untaken band die closest in angle to pos.
// Ties prefer the outermost die, then (die_x, die_y) ascending.
func nearestByAngle(band []sampling.DiePoint, wafer sampling.WaferMapSpec,
	rotation, pos float64, taken map[sampling.DiePoint]struct{}) (sampling.DiePoint, bool) {

	var best sampling.DiePoint
	bestDiff, bestDist := math.MaxFloat64, -1.0
	found := false
	for _, p := range band {
		if _, used := taken[p]; used {
			continue
		}
		diff := angularDiff(sampling.PointAngle(p, wafer, rotation), pos)
		dist := sampling.RadialDistance(p, wafer)
		switch {
		case diff < bestDiff:
		case diff == bestDiff && dist > bestDist:
		case diff == bestDiff && dist == bestDist && pointLess(p, best):
		default:
			continue
		}
		best, bestDiff, bestDist, found = p, diff, dist, true
	}
	return best, found
}

func pointLess(a, b sampling.DiePoint) bool {
	if a.DieX != b.DieX {
		return a.DieX < b.DieX
	}
	return a.DieY < b.DieY
}
