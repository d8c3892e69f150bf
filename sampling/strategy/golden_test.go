package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yschiang/sampling-wizard/sampling"
	"github.com/yschiang/sampling-wizard/sampling/internal/testutil"
)

// Pins every engine's default selection on the reference wafer to a golden
// fixture: the exact point sequence, not just its shape. Any drift in the
// candidate pipeline, quota math, or output ordering shows up here first.
func TestEngineDefaults_MatchGoldenSelections(t *testing.T) {
	cases := []struct {
		name     string
		engine   sampling.Strategy
		advanced sampling.AdvancedConfig
		golden   string
	}{
		{
			name:     "center edge",
			engine:   CenterEdge{},
			advanced: sampling.CenterEdgeConfig{CenterWeight: 0.2, RingCount: 3, RadialSpacing: sampling.SpacingUniform},
			golden:   "center_edge_default.json",
		},
		{
			name:     "grid uniform",
			engine:   GridUniform{},
			advanced: sampling.GridUniformConfig{JitterRatio: 0, GridAlignment: sampling.AlignCenter},
			golden:   "grid_uniform_default.json",
		},
		{
			name:     "edge only",
			engine:   EdgeOnly{},
			advanced: sampling.EdgeOnlyConfig{EdgeBandWidthMM: 10, AngularSpacingDeg: 45, PrioritizeCorners: true},
			golden:   "edge_only_default.json",
		},
		{
			name:     "zone ring",
			engine:   ZoneRingN{},
			advanced: sampling.ZoneRingConfig{NumRings: 3, AllocationMode: sampling.AllocAreaProportional},
			golden:   "zone_ring_default.json",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			output, _, err := tc.engine.Select(testWafer(), testProcess(), testTool(), configFor(tc.advanced))
			require.NoError(t, err)

			var want []sampling.DiePoint
			testutil.LoadGolden(t, tc.golden, &want)
			assert.Equal(t, want, output.SelectedPoints)
		})
	}
}
