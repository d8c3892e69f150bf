package sampling

import (
	"math"
	"sort"
)

// PhysicalPosition converts a die coordinate to its physical position in mm
// relative to wafer center: each axis is die index times die pitch.
func PhysicalPosition(p DiePoint, wafer WaferMapSpec) (float64, float64) {
	return float64(p.DieX) * wafer.DiePitchXMM, float64(p.DieY) * wafer.DiePitchYMM
}

// RadialDistance returns the distance of a die from wafer center in mm.
func RadialDistance(p DiePoint, wafer WaferMapSpec) float64 {
	x, y := PhysicalPosition(p, wafer)
	return math.Hypot(x, y)
}

// RotationOffset converts an optional rotation seed into a rotation offset
// in degrees. A nil seed means no rotation.
func RotationOffset(seed *int) float64 {
	if seed == nil {
		return 0
	}
	return float64(*seed)
}

// RotateAngle applies a rotation offset to an angle and normalizes the
// result to [0, 360).
func RotateAngle(angleDeg, offsetDeg float64) float64 {
	rotated := math.Mod(angleDeg+offsetDeg, 360)
	if rotated < 0 {
		rotated += 360
	}
	return rotated
}

// PointAngle returns the angular position of a die in degrees in [0, 360),
// with the given rotation offset applied. The center die has angle 0.
func PointAngle(p DiePoint, wafer WaferMapSpec, rotationDeg float64) float64 {
	x, y := PhysicalPosition(p, wafer)
	angle := math.Atan2(y, x) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	return RotateAngle(angle, rotationDeg)
}

// SortCanonical returns a new slice sorted by the canonical ordering:
// radial distance ascending (center to edge), then rotated angle ascending,
// tie-broken by (die_x, die_y) ascending. This ordering is load-bearing for
// determinism: identical inputs must produce byte-identical sequences.
func SortCanonical(points []DiePoint, wafer WaferMapSpec, rotationDeg float64) []DiePoint {
	sorted := make([]DiePoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return canonicalLess(sorted[i], sorted[j], wafer, rotationDeg)
	})
	return sorted
}

// SortEdgeFirst returns a new slice sorted edge-to-center: radial distance
// descending, then rotated angle ascending, tie-broken by (die_x, die_y).
// EDGE_ONLY documents this ordering in place of the canonical one.
func SortEdgeFirst(points []DiePoint, wafer WaferMapSpec, rotationDeg float64) []DiePoint {
	sorted := make([]DiePoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := RadialDistance(sorted[i], wafer), RadialDistance(sorted[j], wafer)
		if di != dj {
			return di > dj
		}
		ai, aj := PointAngle(sorted[i], wafer, rotationDeg), PointAngle(sorted[j], wafer, rotationDeg)
		if ai != aj {
			return ai < aj
		}
		return lessXY(sorted[i], sorted[j])
	})
	return sorted
}

func canonicalLess(a, b DiePoint, wafer WaferMapSpec, rotationDeg float64) bool {
	da, db := RadialDistance(a, wafer), RadialDistance(b, wafer)
	if da != db {
		return da < db
	}
	aa, ab := PointAngle(a, wafer, rotationDeg), PointAngle(b, wafer, rotationDeg)
	if aa != ab {
		return aa < ab
	}
	return lessXY(a, b)
}

func lessXY(a, b DiePoint) bool {
	if a.DieX != b.DieX {
		return a.DieX < b.DieX
	}
	return a.DieY < b.DieY
}

// GenerateCandidates produces every die whose center lies within the wafer
// radius, in row-major scan order. Engines filter and re-order the result;
// the scan order itself carries no meaning.
func GenerateCandidates(wafer WaferMapSpec) []DiePoint {
	radius := wafer.Radius()
	maxX := int(radius/wafer.DiePitchXMM) + 1
	maxY := int(radius/wafer.DiePitchYMM) + 1

	var candidates []DiePoint
	for x := -maxX; x <= maxX; x++ {
		for y := -maxY; y <= maxY; y++ {
			p := DiePoint{DieX: x, DieY: y}
			if RadialDistance(p, wafer) <= radius {
				candidates = append(candidates, p)
			}
		}
	}
	return candidates
}

// ApplyMask filters candidates through the wafer's valid-die mask,
// preserving order. An unrecognized mask type is permissive.
func ApplyMask(candidates []DiePoint, wafer WaferMapSpec) []DiePoint {
	mask := wafer.ValidDieMask
	switch mask.Type {
	case MaskEdgeExclusion:
		if mask.RadiusMM <= 0 {
			return candidates
		}
		return filterWithinRadius(candidates, wafer, mask.RadiusMM)
	case MaskExplicitList:
		if len(mask.ValidDies) == 0 {
			return candidates
		}
		allowed := make(map[DiePoint]struct{}, len(mask.ValidDies))
		for _, p := range mask.ValidDies {
			allowed[p] = struct{}{}
		}
		kept := make([]DiePoint, 0, len(candidates))
		for _, p := range candidates {
			if _, ok := allowed[p]; ok {
				kept = append(kept, p)
			}
		}
		return kept
	default:
		return candidates
	}
}

// ApplyEdgeExclusion removes dies closer than edgeExclusionMM to the wafer
// edge, preserving order. A non-positive width is a no-op.
func ApplyEdgeExclusion(candidates []DiePoint, wafer WaferMapSpec, edgeExclusionMM float64) []DiePoint {
	if edgeExclusionMM <= 0 {
		return candidates
	}
	return filterWithinRadius(candidates, wafer, wafer.Radius()-edgeExclusionMM)
}

func filterWithinRadius(candidates []DiePoint, wafer WaferMapSpec, maxRadiusMM float64) []DiePoint {
	kept := make([]DiePoint, 0, len(candidates))
	for _, p := range candidates {
		if RadialDistance(p, wafer) <= maxRadiusMM {
			kept = append(kept, p)
		}
	}
	return kept
}

// EffectiveRadius returns the largest radius a selected die may occupy once
// the edge-exclusion width and an EDGE_EXCLUSION mask are both applied.
func EffectiveRadius(wafer WaferMapSpec, edgeExclusionMM float64) float64 {
	radius := wafer.Radius()
	if edgeExclusionMM > 0 {
		radius -= edgeExclusionMM
	}
	if wafer.ValidDieMask.Type == MaskEdgeExclusion && wafer.ValidDieMask.RadiusMM > 0 {
		radius = math.Min(radius, wafer.ValidDieMask.RadiusMM)
	}
	return radius
}

// StrideSelect picks target evenly spaced points from an ordered candidate
// list using deterministic floor-index striding. Returns all candidates when
// target meets or exceeds their count.
func StrideSelect(candidates []DiePoint, target int) []DiePoint {
	if target <= 0 || len(candidates) == 0 {
		return nil
	}
	if target >= len(candidates) {
		return candidates
	}
	stride := float64(len(candidates)) / float64(target)
	selected := make([]DiePoint, 0, target)
	for i := 0; i < target; i++ {
		selected = append(selected, candidates[int(float64(i)*stride)])
	}
	return selected
}

// DedupePoints removes duplicate die coordinates, keeping the first
// occurrence in order.
func DedupePoints(points []DiePoint) []DiePoint {
	seen := make(map[DiePoint]struct{}, len(points))
	unique := make([]DiePoint, 0, len(points))
	for _, p := range points {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}

// strategyDefaultTargets holds the per-strategy default point counts used
// when target_point_count is absent.
var strategyDefaultTargets = map[string]int{
	StrategyCenterEdge:  20,
	StrategyGridUniform: 30,
	StrategyEdgeOnly:    15,
	StrategyZoneRingN:   25,
}

const fallbackDefaultTarget = 20

// ResolveTargetCount resolves the effective point target:
// requested (or the strategy default) clamped to
// [min_sampling_points, min(max_sampling_points, tool max)].
func ResolveTargetCount(requested *int, strategyID string, process ProcessContext, tool ToolProfile) int {
	base := fallbackDefaultTarget
	if requested != nil {
		base = *requested
	} else if d, ok := strategyDefaultTargets[strategyID]; ok {
		base = d
	}

	upper := process.MaxSamplingPoints
	if tool.MaxPointsPerWafer < upper {
		upper = tool.MaxPointsPerWafer
	}
	if base > upper {
		base = upper
	}
	if base < process.MinSamplingPoints {
		base = process.MinSamplingPoints
	}
	return base
}
