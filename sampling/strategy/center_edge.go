package strategy

import (
	"math"

	"github.com/yschiang/sampling-wizard/sampling"
)

// CenterEdge selects along concentric rings anchored on the wafer center.
// Ring count and radial spacing come from the advanced config; the
// center_weight fraction of the non-center budget goes to the inner half of
// the rings. The center die (0,0) is always included when valid.
type CenterEdge struct{}

func (CenterEdge) ID() string      { return sampling.StrategyCenterEdge }
func (CenterEdge) Version() string { return "1.0" }

// Select implements sampling.Strategy for CenterEdge.
func (s CenterEdge) Select(wafer sampling.WaferMapSpec, process sampling.ProcessContext,
	tool sampling.ToolProfile, cfg sampling.StrategyConfig) (sampling.SamplingOutput, sampling.SelectionStats, error) {

	advanced := cfg.Advanced.(sampling.CenterEdgeConfig)
	rotation := sampling.RotationOffset(cfg.Common.RotationSeed)

	valid := validCandidates(wafer, cfg.Common)
	if err := ensureMinimum(len(valid), process); err != nil {
		return sampling.SamplingOutput{}, sampling.SelectionStats{}, err
	}
	target := sampling.ResolveTargetCount(cfg.Common.TargetPointCount, s.ID(), process, tool)

	selected := selectRings(valid, wafer, advanced, rotation, target, cfg.Common.EdgeExclusionMM)

	// Canonical output ordering: center first, then outward.
	ordered := sampling.SortCanonical(selected, wafer, rotation)
	ordered = truncateToTarget(ordered, target)

	stats := sampling.SelectionStats{ValidCandidates: len(valid), TargetCount: target}
	return buildOutput(s.ID(), s.Version(), ordered), stats, nil
}

// selectRings anchors the center, assigns the remaining valid dies to their
// nearest ring radius, allocates the budget across rings by center_weight,
// and stride-selects within each ring in canonical order. Any shortfall is
// filled from the canonical remainder so the target is met whenever enough
// valid dies exist.
func selectRings(valid []sampling.DiePoint, wafer sampling.WaferMapSpec,
	advanced sampling.CenterEdgeConfig, rotation float64, target int, edgeExclusionMM float64) []sampling.DiePoint {

	center := sampling.DiePoint{DieX: 0, DieY: 0}
	validSet := pointSet(valid)

	var selected []sampling.DiePoint
	budget := target
	if _, ok := validSet[center]; ok {
		selected = append(selected, center)
		budget--
	}

	radii := ringRadii(advanced, sampling.EffectiveRadius(wafer, edgeExclusionMM))
	rings := assignToRings(valid, wafer, radii)
	quotas := ringQuotas(len(radii), budget, advanced.CenterWeight)

	for k := range radii {
		ring := sampling.SortCanonical(rings[k], wafer, rotation)
		selected = append(selected, sampling.StrideSelect(ring, quotas[k])...)
	}
	selected = sampling.DedupePoints(selected)

	if len(selected) < target {
		selected = fillFromRemainder(selected, sampling.SortCanonical(valid, wafer, rotation), target)
	}
	return selected
}

// ringRadii places ring_count radii across the effective radius. UNIFORM
// spacing is r_k = kR/n; EXPONENTIAL doubles each step outward,
// r_k = R(2^k-1)/(2^n-1).
func ringRadii(advanced sampling.CenterEdgeConfig, effectiveRadius float64) []float64 {
	n := advanced.RingCount
	radii := make([]float64, n)
	switch advanced.RadialSpacing {
	case sampling.SpacingExponential:
		denom := math.Pow(2, float64(n)) - 1
		for k := 1; k <= n; k++ {
			radii[k-1] = effectiveRadius * (math.Pow(2, float64(k)) - 1) / denom
		}
	default: // UNIFORM
		for k := 1; k <= n; k++ {
			radii[k-1] = effectiveRadius * float64(k) / float64(n)
		}
	}
	return radii
}

// assignToRings maps each non-center die to the ring radius nearest its own
// radial distance; ties go to the inner ring.
func assignToRings(valid []sampling.DiePoint, wafer sampling.WaferMapSpec, radii []float64) [][]sampling.DiePoint {
	rings := make([][]sampling.DiePoint, len(radii))
	for _, p := range valid {
		if p.DieX == 0 && p.DieY == 0 {
			continue
		}
		dist := sampling.RadialDistance(p, wafer)
		best, bestDiff := 0, math.Abs(dist-radii[0])
		for k := 1; k < len(radii); k++ {
			if diff := math.Abs(dist - radii[k]); diff < bestDiff {
				best, bestDiff = k, diff
			}
		}
		rings[best] = append(rings[best], p)
	}
	return rings
}

// ringQuotas splits the budget between the inner and outer halves of the
// rings: the inner half shares centerWeight of the budget, the outer half
// the rest. Within a half the quota spreads evenly, remainders going to the
// outermost rings of that half.
func ringQuotas(ringCount, budget int, centerWeight float64) []int {
	quotas := make([]int, ringCount)
	if budget <= 0 {
		return quotas
	}
	innerCount := (ringCount + 1) / 2
	innerBudget := int(math.Round(float64(budget) * centerWeight))
	outerBudget := budget - innerBudget

	spread := func(start, count, groupBudget int) {
		if count == 0 || groupBudget <= 0 {
			return
		}
		each := groupBudget / count
		rem := groupBudget % count
		for i := 0; i < count; i++ {
			quotas[start+i] = each
		}
		for i := count - 1; i >= 0 && rem > 0; i-- {
			quotas[start+i]++
			rem--
		}
	}
	spread(0, innerCount, innerBudget)
	spread(innerCount, ringCount-innerCount, outerBudget)
	return quotas
}
