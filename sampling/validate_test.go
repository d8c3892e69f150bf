package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_EmptyPayloadFillsDefaults(t *testing.T) {
	cfg, err := ValidateConfig(StrategyCenterEdge, RawStrategyConfig{}, testWafer())
	require.NoError(t, err)

	advanced, ok := cfg.Advanced.(CenterEdgeConfig)
	require.True(t, ok)
	assert.Equal(t, 0.2, advanced.CenterWeight)
	assert.Equal(t, 3, advanced.RingCount)
	assert.Equal(t, SpacingUniform, advanced.RadialSpacing)
}

func TestValidateConfig_CommonRangeViolation(t *testing.T) {
	raw := RawStrategyConfig{Common: &CommonConfig{RotationSeed: intPtr(400)}}

	_, err := ValidateConfig(StrategyCenterEdge, raw, testWafer())

	require.Error(t, err)
	assert.Equal(t, CodeInvalidStrategyConfig, CodeOf(err))
	assert.Contains(t, err.Error(), "rotation_seed")
}

func TestValidateConfig_EdgeExclusionBeyondRadius(t *testing.T) {
	raw := RawStrategyConfig{Common: &CommonConfig{EdgeExclusionMM: 200}}

	_, err := ValidateConfig(StrategyCenterEdge, raw, testWafer())

	require.Error(t, err)
	assert.Equal(t, CodeInvalidStrategyConfig, CodeOf(err))
	assert.Contains(t, err.Error(), "edge_exclusion_mm")
}

func TestValidateConfig_UnknownAdvancedFieldRejected(t *testing.T) {
	raw := RawStrategyConfig{Advanced: map[string]any{"ring_countt": 3}}

	_, err := ValidateConfig(StrategyCenterEdge, raw, testWafer())

	require.Error(t, err)
	assert.Equal(t, CodeInvalidStrategyConfig, CodeOf(err))
}

func TestValidateConfig_AdvancedRangeViolations(t *testing.T) {
	cases := []struct {
		name     string
		strategy string
		advanced map[string]any
	}{
		{"ring count above limit", StrategyCenterEdge, map[string]any{"ring_count": 6}},
		{"center weight above one", StrategyCenterEdge, map[string]any{"center_weight": 1.5}},
		{"jitter above limit", StrategyGridUniform, map[string]any{"jitter_ratio": 0.5}},
		{"band width below limit", StrategyEdgeOnly, map[string]any{"edge_band_width_mm": 2}},
		{"angular spacing above limit", StrategyEdgeOnly, map[string]any{"angular_spacing_deg": 120}},
		{"ring count below limit", StrategyZoneRingN, map[string]any{"num_rings": 1}},
		{"bad allocation mode", StrategyZoneRingN, map[string]any{"allocation_mode": "RANDOM"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateConfig(tc.strategy, RawStrategyConfig{Advanced: tc.advanced}, testWafer())
			require.Error(t, err)
			assert.Equal(t, CodeInvalidStrategyConfig, CodeOf(err))
		})
	}
}

func TestValidateConfig_JitterRequiresSeed(t *testing.T) {
	raw := RawStrategyConfig{Advanced: map[string]any{"jitter_ratio": 0.1}}

	_, err := ValidateConfig(StrategyGridUniform, raw, testWafer())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jitter_ratio")

	raw.Common = &CommonConfig{DeterministicSeed: int64Ptr(7)}
	_, err = ValidateConfig(StrategyGridUniform, raw, testWafer())
	assert.NoError(t, err)
}

func TestValidateConfig_GridPitchBeyondRadius(t *testing.T) {
	raw := RawStrategyConfig{Advanced: map[string]any{"grid_pitch_mm": 200.0}}

	_, err := ValidateConfig(StrategyGridUniform, raw, testWafer())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid_pitch_mm")
}

func TestValidateConfig_UnknownStrategy(t *testing.T) {
	_, err := ValidateConfig("SPIRAL", RawStrategyConfig{}, testWafer())

	require.Error(t, err)
	assert.Equal(t, CodeDisallowedStrategy, CodeOf(err))
}

func TestValidateContext_RejectsMalformedDocuments(t *testing.T) {
	wafer, process, tool := testWafer(), testProcess(), testTool()

	assert.NoError(t, ValidateContext(wafer, process, tool))

	bad := wafer
	bad.WaferSizeMM = 0
	assert.Equal(t, CodeValidation, CodeOf(ValidateContext(bad, process, tool)))

	bad = wafer
	bad.DiePitchXMM = -1
	assert.Equal(t, CodeValidation, CodeOf(ValidateContext(bad, process, tool)))

	badProcess := process
	badProcess.MaxSamplingPoints = 2
	assert.Equal(t, CodeValidation, CodeOf(ValidateContext(wafer, badProcess, tool)))

	badTool := tool
	badTool.MaxPointsPerWafer = 0
	assert.Equal(t, CodeValidation, CodeOf(ValidateContext(wafer, process, badTool)))
}
