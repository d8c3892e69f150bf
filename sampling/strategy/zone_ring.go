package strategy

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/yschiang/sampling-wizard/sampling"
)

// ZoneRingN partitions the effective wafer area into num_rings concentric
// zones of equal radial width and spreads the target count across them
// according to the allocation mode.
type ZoneRingN struct{}

func (ZoneRingN) ID() string      { return sampling.StrategyZoneRingN }
func (ZoneRingN) Version() string { return "1.0" }

// Select implements sampling.Strategy for ZoneRingN.
func (s ZoneRingN) Select(wafer sampling.WaferMapSpec, process sampling.ProcessContext,
	tool sampling.ToolProfile, cfg sampling.StrategyConfig) (sampling.SamplingOutput, sampling.SelectionStats, error) {

	advanced := cfg.Advanced.(sampling.ZoneRingConfig)
	rotation := sampling.RotationOffset(cfg.Common.RotationSeed)

	valid := validCandidates(wafer, cfg.Common)
	if err := ensureMinimum(len(valid), process); err != nil {
		return sampling.SamplingOutput{}, sampling.SelectionStats{}, err
	}
	target := sampling.ResolveTargetCount(cfg.Common.TargetPointCount, s.ID(), process, tool)
	effective := sampling.EffectiveRadius(wafer, cfg.Common.EdgeExclusionMM)

	zones := assignZones(valid, wafer, effective, advanced.NumRings)
	quotas := zoneQuotas(zones, advanced, target)

	var selected []sampling.DiePoint
	for k, zone := range zones {
		ordered := sampling.SortCanonical(zone, wafer, rotation)
		selected = append(selected, sampling.StrideSelect(ordered, quotas[k])...)
	}

	ordered := sampling.SortCanonical(selected, wafer, rotation)
	ordered = truncateToTarget(ordered, target)

	stats := sampling.SelectionStats{ValidCandidates: len(valid), TargetCount: target}
	return buildOutput(s.ID(), s.Version(), ordered), stats, nil
}

// assignZones buckets dies by ring index int(dist / ringWidth), clamped so
// boundary dies land in the outermost ring.
func assignZones(valid []sampling.DiePoint, wafer sampling.WaferMapSpec, effectiveRadius float64, numRings int) [][]sampling.DiePoint {
	zones := make([][]sampling.DiePoint, numRings)
	width := effectiveRadius / float64(numRings)
	for _, p := range valid {
		k := int(sampling.RadialDistance(p, wafer) / width)
		if k >= numRings {
			k = numRings - 1
		}
		zones[k] = append(zones[k], p)
	}
	return zones
}

// zoneQuotas distributes the target across rings by the allocation mode's
// normalized weights, then hands leftover points to the outermost rings
// that still have spare dies.
func zoneQuotas(zones [][]sampling.DiePoint, advanced sampling.ZoneRingConfig, target int) []int {
	weights := zoneWeights(advanced)
	total := floats.Sum(weights)

	quotas := make([]int, len(zones))
	assigned := 0
	for k := range zones {
		q := int(math.Floor(float64(target) * weights[k] / total))
		if q > len(zones[k]) {
			q = len(zones[k])
		}
		quotas[k] = q
		assigned += q
	}
	for k := len(zones) - 1; k >= 0 && assigned < target; k-- {
		spare := len(zones[k]) - quotas[k]
		if spare <= 0 {
			continue
		}
		take := target - assigned
		if take > spare {
			take = spare
		}
		quotas[k] += take
		assigned += take
	}
	return quotas
}

func zoneWeights(advanced sampling.ZoneRingConfig) []float64 {
	weights := make([]float64, advanced.NumRings)
	for k := range weights {
		switch advanced.AllocationMode {
		case sampling.AllocAreaProportional:
			outer, inner := float64(k+1), float64(k)
			weights[k] = outer*outer - inner*inner
		case sampling.AllocEdgeHeavy:
			weights[k] = float64(k + 1)
		default:
			weights[k] = 1
		}
	}
	return weights
}
