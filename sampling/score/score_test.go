package score

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yschiang/sampling-wizard/sampling"
	"github.com/yschiang/sampling-wizard/sampling/internal/testutil"
)

func testWafer() sampling.WaferMapSpec {
	return sampling.WaferMapSpec{
		WaferSizeMM:      300,
		DiePitchXMM:      10,
		DiePitchYMM:      10,
		Origin:           sampling.OriginCenter,
		CoordinateSystem: sampling.CoordMM,
		ValidDieMask:     sampling.ValidDieMask{Type: sampling.MaskEdgeExclusion, RadiusMM: 145},
	}
}

func testProcess() sampling.ProcessContext {
	return sampling.ProcessContext{
		Criticality:       sampling.CriticalityHigh,
		MinSamplingPoints: 5,
		MaxSamplingPoints: 50,
	}
}

func testTool() sampling.ToolProfile {
	return sampling.ToolProfile{
		ToolType:          "ellipsometer",
		CoordinateSystems: []sampling.CoordinateSystem{sampling.CoordMM},
		MaxPointsPerWafer: 50,
	}
}

func outputWith(points ...sampling.DiePoint) sampling.SamplingOutput {
	return sampling.SamplingOutput{
		StrategyID:     sampling.StrategyCenterEdge,
		SelectedPoints: points,
		Trace:          sampling.Trace{StrategyVersion: "1.0", GeneratedAt: "2026-01-01T00:00:00Z"},
	}
}

// spreadOutput covers all three radial zones with a mid-window point count.
func spreadOutput() sampling.SamplingOutput {
	points := []sampling.DiePoint{
		{DieX: 0, DieY: 0}, {DieX: 1, DieY: 0}, {DieX: 2, DieY: 0},
		{DieX: 6, DieY: 0}, {DieX: 0, DieY: 6}, {DieX: 7, DieY: 0},
		{DieX: 11, DieY: 0}, {DieX: 0, DieY: 11}, {DieX: 12, DieY: 0},
	}
	// Twenty-five extra inner dies push the count past the statistical
	// midpoint of the [5, 50] window.
	for x := 1; x <= 5; x++ {
		for y := 1; y <= 5; y++ {
			points = append(points, sampling.DiePoint{DieX: x, DieY: y})
		}
	}
	return outputWith(points...)
}

func TestEvaluate_FullMarksForBalancedPlan(t *testing.T) {
	report, err := Evaluate(testWafer(), testProcess(), testTool(), spreadOutput())
	require.NoError(t, err)

	assert.Equal(t, 1.0, report.CoverageScore)
	assert.Equal(t, 1.0, report.StatisticalScore)
	assert.Equal(t, 1.0, report.RiskAlignmentScore)
	assert.Equal(t, 1.0, report.OverallScore)
	assert.Empty(t, report.Warnings)
	assert.Equal(t, EvaluatorVersion, report.EvaluatorVersion)
}

func TestEvaluate_NeverMutatesPlan(t *testing.T) {
	output := spreadOutput()
	original := spreadOutput()

	_, err := Evaluate(testWafer(), testProcess(), testTool(), output)
	require.NoError(t, err)

	if diff := cmp.Diff(original, output); diff != "" {
		t.Errorf("Evaluate mutated its input (-want +got):\n%s", diff)
	}
}

func TestEvaluate_CoverageCountsDistinctZones(t *testing.T) {
	// All points in the inner third: one zone out of three.
	report, err := Evaluate(testWafer(), testProcess(), testTool(),
		outputWith(
			sampling.DiePoint{DieX: 0, DieY: 0},
			sampling.DiePoint{DieX: 1, DieY: 0},
			sampling.DiePoint{DieX: 2, DieY: 0},
			sampling.DiePoint{DieX: 0, DieY: 1},
			sampling.DiePoint{DieX: 0, DieY: 2},
		))
	require.NoError(t, err)

	assert.InDelta(t, 1.0/3.0, report.CoverageScore, 1e-9)
	assert.Contains(t, warningCodes(report.Warnings), sampling.WarnPoorSpatialCoverage)
}

func TestEvaluate_StatisticalScoreScalesWithCount(t *testing.T) {
	// Window [5, 50] puts the midpoint at 27.5 points.
	wafer, process, tool := testWafer(), testProcess(), testTool()

	atMinimum := outputWith(
		sampling.DiePoint{DieX: 0, DieY: 0}, sampling.DiePoint{DieX: 6, DieY: 0},
		sampling.DiePoint{DieX: 12, DieY: 0}, sampling.DiePoint{DieX: 0, DieY: 12},
		sampling.DiePoint{DieX: 0, DieY: 6},
	)
	report, err := Evaluate(wafer, process, tool, atMinimum)
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.StatisticalScore)

	halfway := spreadOutput()
	report, err = Evaluate(wafer, process, tool, halfway)
	require.NoError(t, err)
	assert.Equal(t, 1.0, report.StatisticalScore)
}

func TestEvaluate_HighCriticalityWithoutEdgePenalized(t *testing.T) {
	innerOnly := outputWith(
		sampling.DiePoint{DieX: 0, DieY: 0},
		sampling.DiePoint{DieX: 1, DieY: 0},
		sampling.DiePoint{DieX: 6, DieY: 0},
		sampling.DiePoint{DieX: 0, DieY: 6},
		sampling.DiePoint{DieX: 3, DieY: 3},
	)

	report, err := Evaluate(testWafer(), testProcess(), testTool(), innerOnly)
	require.NoError(t, err)

	assert.Equal(t, 0.5, report.RiskAlignmentScore)
	assert.Contains(t, warningCodes(report.Warnings), sampling.WarnHighCriticalityNoEdge)
}

func TestEvaluate_LowCriticalityIgnoresEdgeCoverage(t *testing.T) {
	process := testProcess()
	process.Criticality = sampling.CriticalityLow

	report, err := Evaluate(testWafer(), process, testTool(),
		outputWith(sampling.DiePoint{DieX: 0, DieY: 0}))
	require.NoError(t, err)

	assert.Equal(t, 1.0, report.RiskAlignmentScore)
	assert.NotContains(t, warningCodes(report.Warnings), sampling.WarnHighCriticalityNoEdge)
}

func TestEvaluate_OverallUsesFixedWeights(t *testing.T) {
	report, err := Evaluate(testWafer(), testProcess(), testTool(),
		outputWith(
			sampling.DiePoint{DieX: 0, DieY: 0},
			sampling.DiePoint{DieX: 1, DieY: 0},
			sampling.DiePoint{DieX: 2, DieY: 0},
			sampling.DiePoint{DieX: 0, DieY: 1},
			sampling.DiePoint{DieX: 0, DieY: 2},
		))
	require.NoError(t, err)

	want := 0.3*report.CoverageScore + 0.4*report.StatisticalScore + 0.3*report.RiskAlignmentScore
	assert.InDelta(t, want, report.OverallScore, 1e-9)
	assert.Contains(t, warningCodes(report.Warnings), sampling.WarnOverallQualityLow)
}

func TestEvaluate_NearCeilingWarning(t *testing.T) {
	tool := testTool()
	tool.MaxPointsPerWafer = 20

	points := make([]sampling.DiePoint, 0, 18)
	for x := 0; x < 18; x++ {
		points = append(points, sampling.DiePoint{DieX: x % 10, DieY: x / 10 * 12})
	}
	report, err := Evaluate(testWafer(), testProcess(), tool, outputWith(points...))
	require.NoError(t, err)

	assert.Contains(t, warningCodes(report.Warnings), sampling.WarnPointCountNearLimit)
}

func TestEvaluate_ScoresStayInUnitRange(t *testing.T) {
	scenarios := map[string]sampling.SamplingOutput{
		"balanced":   spreadOutput(),
		"single":     outputWith(sampling.DiePoint{DieX: 0, DieY: 0}),
		"edge heavy": outputWith(sampling.DiePoint{DieX: 14, DieY: 0}, sampling.DiePoint{DieX: 0, DieY: 14}),
		"empty":      outputWith(),
	}
	for name, output := range scenarios {
		t.Run(name, func(t *testing.T) {
			report, err := Evaluate(testWafer(), testProcess(), testTool(), output)
			require.NoError(t, err)

			testutil.AssertScoreInUnitRange(t, "coverage_score", report.CoverageScore)
			testutil.AssertScoreInUnitRange(t, "statistical_score", report.StatisticalScore)
			testutil.AssertScoreInUnitRange(t, "risk_alignment_score", report.RiskAlignmentScore)
			testutil.AssertScoreInUnitRange(t, "overall_score", report.OverallScore)
		})
	}
}

func TestEvaluate_RejectsMalformedContext(t *testing.T) {
	wafer := testWafer()
	wafer.WaferSizeMM = 0

	_, err := Evaluate(wafer, testProcess(), testTool(), spreadOutput())

	require.Error(t, err)
	assert.Equal(t, sampling.CodeValidation, sampling.CodeOf(err))
}

func warningCodes(warnings []sampling.Warning) []sampling.WarningCode {
	codes := make([]sampling.WarningCode, 0, len(warnings))
	for _, w := range warnings {
		codes = append(codes, w.Code)
	}
	return codes
}
