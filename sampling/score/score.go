// Package score evaluates the quality of a sampling plan without modifying
// it. Evaluate is a pure read-only pass over a SamplingOutput: it never
// reorders, adds, or removes points, and calling it is always optional.
package score

import (
	"github.com/montanaflynn/stats"

	"github.com/yschiang/sampling-wizard/sampling"
)

// EvaluatorVersion identifies the scoring formula in effect. Bump it when
// any component formula or weight changes.
const EvaluatorVersion = "1.0"

// Component weights for the overall score.
const (
	coverageWeight    = 0.3
	statisticalWeight = 0.4
	riskWeight        = 0.3
)

// Fraction of the [min, max] point range at which statistical confidence
// is considered fully achieved.
const statisticalTargetFraction = 0.5

// Report carries the component scores, the combined score, and the advisory
// warnings raised during evaluation. All scores lie in [0, 1].
type Report struct {
	CoverageScore      float64            `json:"coverage_score" yaml:"coverage_score"`
	StatisticalScore   float64            `json:"statistical_score" yaml:"statistical_score"`
	RiskAlignmentScore float64            `json:"risk_alignment_score" yaml:"risk_alignment_score"`
	OverallScore       float64            `json:"overall_score" yaml:"overall_score"`
	Warnings           []sampling.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	EvaluatorVersion   string             `json:"evaluator_version" yaml:"evaluator_version"`
}

// Evaluate scores a sampling plan against the wafer geometry and process
// context. The output is taken by value and never mutated.
func Evaluate(wafer sampling.WaferMapSpec, process sampling.ProcessContext,
	tool sampling.ToolProfile, output sampling.SamplingOutput) (Report, error) {

	if err := sampling.ValidateContext(wafer, process, tool); err != nil {
		return Report{}, err
	}

	report := Report{EvaluatorVersion: EvaluatorVersion}
	report.CoverageScore = coverageScore(wafer, output.SelectedPoints)
	report.StatisticalScore = statisticalScore(len(output.SelectedPoints), process)
	report.RiskAlignmentScore = riskScore(wafer, process, output.SelectedPoints)
	report.OverallScore = clamp01(coverageWeight*report.CoverageScore +
		statisticalWeight*report.StatisticalScore +
		riskWeight*report.RiskAlignmentScore)

	report.Warnings = evaluationWarnings(wafer, process, tool, output, report)
	return report, nil
}

// coverageScore measures how many of the three radial zones (inner, middle,
// outer third of the wafer radius) contain at least one point.
func coverageScore(wafer sampling.WaferMapSpec, points []sampling.DiePoint) float64 {
	if len(points) == 0 {
		return 0
	}
	third := wafer.Radius() / 3
	var hit [3]bool
	for _, p := range points {
		k := int(sampling.RadialDistance(p, wafer) / third)
		if k > 2 {
			k = 2
		}
		hit[k] = true
	}
	covered := 0
	for _, h := range hit {
		if h {
			covered++
		}
	}
	return float64(covered) / 3
}

// statisticalScore rates the point count against the process window: full
// confidence at or above the midpoint of [min, max], linear down to zero at
// the minimum.
func statisticalScore(count int, process sampling.ProcessContext) float64 {
	min := float64(process.MinSamplingPoints)
	max := float64(process.MaxSamplingPoints)
	ideal := min + statisticalTargetFraction*(max-min)
	if float64(count) >= ideal {
		return 1
	}
	if ideal <= min {
		return 1
	}
	return clamp01((float64(count) - min) / (ideal - min))
}

// riskScore penalizes plans that leave the outer third of a high-criticality
// wafer unmeasured. Edge defects dominate yield loss on such layers.
func riskScore(wafer sampling.WaferMapSpec, process sampling.ProcessContext, points []sampling.DiePoint) float64 {
	if process.Criticality != sampling.CriticalityHigh {
		return 1
	}
	if hasOuterThirdPoint(wafer, points) {
		return 1
	}
	return 0.5
}

func hasOuterThirdPoint(wafer sampling.WaferMapSpec, points []sampling.DiePoint) bool {
	if len(points) == 0 {
		return false
	}
	distances := make([]float64, len(points))
	for i, p := range points {
		distances[i] = sampling.RadialDistance(p, wafer)
	}
	farthest, err := stats.Max(distances)
	if err != nil {
		return false
	}
	return farthest > 2*wafer.Radius()/3
}

func evaluationWarnings(wafer sampling.WaferMapSpec, process sampling.ProcessContext,
	tool sampling.ToolProfile, output sampling.SamplingOutput, report Report) []sampling.Warning {

	var warnings []sampling.Warning

	if process.Criticality == sampling.CriticalityHigh && !hasOuterThirdPoint(wafer, output.SelectedPoints) {
		warnings = append(warnings, sampling.NewWarning(sampling.WarnHighCriticalityNoEdge,
			"high criticality process has no points in the outer third of the wafer"))
	}

	ceiling := process.MaxSamplingPoints
	if tool.MaxPointsPerWafer < ceiling {
		ceiling = tool.MaxPointsPerWafer
	}
	if ceiling > 0 && float64(len(output.SelectedPoints)) >= 0.9*float64(ceiling) {
		warnings = append(warnings, sampling.NewWarning(sampling.WarnPointCountNearLimit,
			"point count %d is within 10%% of the effective maximum %d",
			len(output.SelectedPoints), ceiling))
	}

	if report.CoverageScore < 0.5 {
		warnings = append(warnings, sampling.NewWarning(sampling.WarnPoorSpatialCoverage,
			"coverage score %.2f leaves radial zones unmeasured", report.CoverageScore))
	}
	if report.OverallScore < 0.6 {
		warnings = append(warnings, sampling.NewWarning(sampling.WarnOverallQualityLow,
			"overall score %.2f is below the quality threshold", report.OverallScore))
	}
	return warnings
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
