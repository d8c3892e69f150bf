package strategy

import (
	"math"
	"math/rand"

	"github.com/yschiang/sampling-wizard/sampling"
)

// GridUniform lays a regular grid over the valid area and snaps each
// intersection to its nearest die. Pitch comes from the advanced config or
// is auto-derived from the resolved target count; alignment anchors the
// grid on the wafer center or offsets it by half a pitch (CORNER).
type GridUniform struct{}

func (GridUniform) ID() string      { return sampling.StrategyGridUniform }
func (GridUniform) Version() string { return "1.0" }

// Select implements sampling.Strategy for GridUniform.
func (s GridUniform) Select(wafer sampling.WaferMapSpec, process sampling.ProcessContext,
	tool sampling.ToolProfile, cfg sampling.StrategyConfig) (sampling.SamplingOutput, sampling.SelectionStats, error) {

	advanced := cfg.Advanced.(sampling.GridUniformConfig)
	rotation := sampling.RotationOffset(cfg.Common.RotationSeed)

	valid := validCandidates(wafer, cfg.Common)
	validSet := pointSet(valid)
	target := sampling.ResolveTargetCount(cfg.Common.TargetPointCount, s.ID(), process, tool)

	effective := sampling.EffectiveRadius(wafer, cfg.Common.EdgeExclusionMM)
	pitch := gridPitch(advanced, effective, target)
	snapped := snapGrid(wafer, validSet, advanced, cfg.Common, pitch, effective)

	if err := ensureMinimum(len(snapped), process); err != nil {
		return sampling.SamplingOutput{}, sampling.SelectionStats{}, err
	}

	ordered := sampling.SortCanonical(snapped, wafer, rotation)
	if len(ordered) > target {
		ordered = sampling.SortCanonical(sampling.StrideSelect(ordered, target), wafer, rotation)
	}

	stats := sampling.SelectionStats{ValidCandidates: len(snapped), TargetCount: target}
	return buildOutput(s.ID(), s.Version(), ordered), stats, nil
}

// gridPitch resolves the grid spacing: the configured pitch, or one derived
// so that roughly target intersections fall inside the effective area.
func gridPitch(advanced sampling.GridUniformConfig, effectiveRadius float64, target int) float64 {
	if advanced.GridPitchMM != nil {
		return *advanced.GridPitchMM
	}
	if target <= 0 {
		return effectiveRadius
	}
	return math.Sqrt(math.Pi * effectiveRadius * effectiveRadius / float64(target))
}

// snapGrid walks the grid intersections inside the effective radius in a
// fixed scan order, applies optional deterministic jitter, and snaps each
// intersection to its nearest die. Intersections snapping onto invalid dies
// are skipped; duplicates keep the first occurrence.
func snapGrid(wafer sampling.WaferMapSpec, validSet map[sampling.DiePoint]struct{},
	advanced sampling.GridUniformConfig, common sampling.CommonConfig,
	pitch, effectiveRadius float64) []sampling.DiePoint {

	var offset float64
	if advanced.GridAlignment == sampling.AlignCorner {
		offset = pitch / 2
	}

	var rng *rand.Rand
	if advanced.JitterRatio > 0 {
		rng = rand.New(rand.NewSource(common.RNGSeed()))
	}

	steps := int(effectiveRadius/pitch) + 1
	var snapped []sampling.DiePoint
	seen := make(map[sampling.DiePoint]struct{})
	for kx := -steps; kx <= steps; kx++ {
		for ky := -steps; ky <= steps; ky++ {
			gx := offset + float64(kx)*pitch
			gy := offset + float64(ky)*pitch
			if rng != nil {
				gx += (rng.Float64() - 0.5) * 2 * advanced.JitterRatio * pitch
				gy += (rng.Float64() - 0.5) * 2 * advanced.JitterRatio * pitch
			}
			if math.Hypot(gx, gy) > effectiveRadius {
				continue
			}
			die := sampling.DiePoint{
				DieX: int(math.Round(gx / wafer.DiePitchXMM)),
				DieY: int(math.Round(gy / wafer.DiePitchYMM)),
			}
			if _, ok := validSet[die]; !ok {
				continue
			}
			if _, dup := seen[die]; dup {
				continue
			}
			seen[die] = struct{}{}
			snapped = append(snapped, die)
		}
	}
	return snapped
}
