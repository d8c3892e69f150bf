package strategy

import (
	"github.com/yschiang/sampling-wizard/sampling"
)

// validCandidates runs the shared candidate pipeline every engine applies
// before its own geometry: generate all in-wafer dies, filter through the
// valid-die mask, then apply the common edge-exclusion width.
func validCandidates(wafer sampling.WaferMapSpec, common sampling.CommonConfig) []sampling.DiePoint {
	candidates := sampling.GenerateCandidates(wafer)
	candidates = sampling.ApplyMask(candidates, wafer)
	return sampling.ApplyEdgeExclusion(candidates, wafer, common.EdgeExclusionMM)
}

// ensureMinimum fails with a constraint error when fewer valid dies remain
// after masking than the process minimum. The classification of this
// condition is blocking by policy.
func ensureMinimum(available int, process sampling.ProcessContext) error {
	if available >= process.MinSamplingPoints {
		return nil
	}
	return sampling.NewConstraintError(
		"cannot meet min_sampling_points: need %d, only %d valid dies remain after masking",
		process.MinSamplingPoints, available)
}

// pointSet builds a membership set for O(1) lookups.
func pointSet(points []sampling.DiePoint) map[sampling.DiePoint]struct{} {
	set := make(map[sampling.DiePoint]struct{}, len(points))
	for _, p := range points {
		set[p] = struct{}{}
	}
	return set
}

// fillFromRemainder appends points from ordered (skipping ones already
// selected) until selected reaches target or ordered is exhausted.
func fillFromRemainder(selected, ordered []sampling.DiePoint, target int) []sampling.DiePoint {
	taken := pointSet(selected)
	for _, p := range ordered {
		if len(selected) >= target {
			break
		}
		if _, ok := taken[p]; ok {
			continue
		}
		taken[p] = struct{}{}
		selected = append(selected, p)
	}
	return selected
}

// truncateToTarget keeps the leading target points of an ordered selection.
// Dropping from the tail keeps the points nearest wafer center for
// canonically ordered selections.
func truncateToTarget(points []sampling.DiePoint, target int) []sampling.DiePoint {
	if len(points) <= target {
		return points
	}
	return points[:target]
}

// buildOutput assembles the engine result with trace metadata.
func buildOutput(id, version string, points []sampling.DiePoint) sampling.SamplingOutput {
	return sampling.SamplingOutput{
		StrategyID:     id,
		SelectedPoints: points,
		Trace:          sampling.NewTrace(version),
	}
}
