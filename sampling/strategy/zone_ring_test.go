package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yschiang/sampling-wizard/sampling"
)

func zoneRing(mode sampling.AllocationMode) sampling.ZoneRingConfig {
	return sampling.ZoneRingConfig{NumRings: 3, AllocationMode: mode}
}

// ringCounts buckets selected points by ring index over the effective radius.
func ringCounts(points []sampling.DiePoint, wafer sampling.WaferMapSpec, numRings int, effectiveRadius float64) []int {
	counts := make([]int, numRings)
	width := effectiveRadius / float64(numRings)
	for _, p := range points {
		k := int(sampling.RadialDistance(p, wafer) / width)
		if k >= numRings {
			k = numRings - 1
		}
		counts[k]++
	}
	return counts
}

func TestZoneRingN_MeetsTargetWithinMask(t *testing.T) {
	wafer := testWafer()
	output, stats, err := ZoneRingN{}.Select(wafer, testProcess(), testTool(),
		configFor(zoneRing(sampling.AllocAreaProportional)))
	require.NoError(t, err)

	assert.Len(t, output.SelectedPoints, 25)
	assert.Equal(t, 25, stats.TargetCount)
	for _, p := range output.SelectedPoints {
		assert.LessOrEqual(t, sampling.RadialDistance(p, wafer), 145.0)
	}
}

func TestZoneRingN_UniformAllocationSpreadsEvenly(t *testing.T) {
	wafer := testWafer()
	output, _, err := ZoneRingN{}.Select(wafer, testProcess(), testTool(),
		configFor(zoneRing(sampling.AllocUniform)))
	require.NoError(t, err)

	// floor(25/3) per ring, the leftover going to the outermost ring.
	counts := ringCounts(output.SelectedPoints, wafer, 3, 145)
	assert.Equal(t, []int{8, 8, 9}, counts)
}

func TestZoneRingN_AreaProportionalFavorsOuterRings(t *testing.T) {
	wafer := testWafer()
	output, _, err := ZoneRingN{}.Select(wafer, testProcess(), testTool(),
		configFor(zoneRing(sampling.AllocAreaProportional)))
	require.NoError(t, err)

	// Ring areas scale 1:3:5; floors give 2, 8, 13 with the remainder of two
	// landing on the outermost ring.
	counts := ringCounts(output.SelectedPoints, wafer, 3, 145)
	assert.Equal(t, []int{2, 8, 15}, counts)
}

func TestZoneRingN_EdgeHeavyOutweighsInner(t *testing.T) {
	wafer := testWafer()
	output, _, err := ZoneRingN{}.Select(wafer, testProcess(), testTool(),
		configFor(zoneRing(sampling.AllocEdgeHeavy)))
	require.NoError(t, err)

	counts := ringCounts(output.SelectedPoints, wafer, 3, 145)
	assert.Greater(t, counts[2], counts[0])
	assert.Equal(t, 25, counts[0]+counts[1]+counts[2])
}

func TestZoneRingN_CanonicalOrdering(t *testing.T) {
	wafer := testWafer()
	output, _, err := ZoneRingN{}.Select(wafer, testProcess(), testTool(),
		configFor(zoneRing(sampling.AllocUniform)))
	require.NoError(t, err)

	points := output.SelectedPoints
	for i := 1; i < len(points); i++ {
		assert.LessOrEqual(t,
			sampling.RadialDistance(points[i-1], wafer),
			sampling.RadialDistance(points[i], wafer))
	}
}

func TestZoneWeights_Modes(t *testing.T) {
	assert.Equal(t, []float64{1, 3, 5}, zoneWeights(zoneRing(sampling.AllocAreaProportional)))
	assert.Equal(t, []float64{1, 1, 1}, zoneWeights(zoneRing(sampling.AllocUniform)))
	assert.Equal(t, []float64{1, 2, 3}, zoneWeights(zoneRing(sampling.AllocEdgeHeavy)))
}
