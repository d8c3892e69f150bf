package sampling

// Shared fixtures for the core package tests: a standard 300mm wafer with
// 10mm die pitch, a permissive process window, and an MM-capable tool.

func testWafer() WaferMapSpec {
	return WaferMapSpec{
		WaferSizeMM:      300,
		DiePitchXMM:      10,
		DiePitchYMM:      10,
		Origin:           OriginCenter,
		CoordinateSystem: CoordMM,
		ValidDieMask:     ValidDieMask{Type: MaskEdgeExclusion, RadiusMM: 145},
		Version:          "wafer-v1",
	}
}

func testProcess() ProcessContext {
	return ProcessContext{
		ProcessStep:       "M1_CMP",
		MeasurementIntent: "thickness",
		Criticality:       CriticalityHigh,
		MinSamplingPoints: 5,
		MaxSamplingPoints: 50,
		Version:           "process-v1",
	}
}

func testTool() ToolProfile {
	return ToolProfile{
		ToolType:          "ellipsometer",
		Vendor:            "KLA",
		CoordinateSystems: []CoordinateSystem{CoordMM, CoordDieGrid},
		MaxPointsPerWafer: 50,
		EdgeDieSupported:  true,
		OrderingRequired:  true,
		RecipeFormat:      RecipeFormat{Type: "json", Version: "2.1"},
		Version:           "tool-v1",
	}
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func float64Ptr(v float64) *float64 { return &v }
