package strategy

import (
	"github.com/yschiang/sampling-wizard/sampling"
)

// Shared fixtures for the engine tests: a 300mm wafer with 10mm pitch and a
// 145mm valid-die mask, a permissive process window, and a 50-point tool.

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
		ProcessStep:       "M1_CMP",
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

func configFor(advanced sampling.AdvancedConfig) sampling.StrategyConfig {
	return sampling.StrategyConfig{Common: sampling.CommonConfig{}, Advanced: advanced}
}

func meanDistance(points []sampling.DiePoint, wafer sampling.WaferMapSpec) float64 {
	if len(points) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range points {
		total += sampling.RadialDistance(p, wafer)
	}
	return total / float64(len(points))
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func float64Ptr(v float64) *float64 { return &v }
