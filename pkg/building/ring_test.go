package building

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRingsSingleLevel(t *testing.T) {
	rings := BuildRings([]Level{{Height: 2, BaseRadius: 1, TopRadius: 0.5}})
	assert.Equal(t, []Ring{{0, 1}, {2, 0.5}}, rings)
	assert.NoError(t, CheckRings(rings))
}

func TestBuildRingsFlushJoint(t *testing.T) {
	rings := BuildRings([]Level{
		{Height: 1, BaseRadius: 2, TopRadius: 1.5},
		{Height: 1, BaseRadius: 1.5, TopRadius: 1},
	})
	require.Len(t, rings, 3)
	assert.Equal(t, []Ring{{0, 2}, {1, 1.5}, {2, 1}}, rings)
	assert.NoError(t, CheckRings(rings))
}

func TestBuildRingsSteppedJoint(t *testing.T) {
	// The upper level starts narrower than the lower one ends: both rings
	// at elevation 1 are kept and form a horizontal ledge.
	rings := BuildRings([]Level{
		{Height: 1, BaseRadius: 2, TopRadius: 2},
		{Height: 3, BaseRadius: 1, TopRadius: 1},
	})
	assert.Equal(t, []Ring{{0, 2}, {1, 2}, {1, 1}, {4, 1}}, rings)
	assert.NoError(t, CheckRings(rings))
}

func TestBuildRingsOrdering(t *testing.T) {
	levels := []Level{
		{3, 4, 3}, {1, 3, 3}, {2, 2.5, 1}, {0.5, 1, 0.25},
	}
	rings := BuildRings(levels)
	for i := 1; i < len(rings); i++ {
		assert.GreaterOrEqual(t, rings[i].Elevation, rings[i-1].Elevation)
		assert.NotEqual(t, rings[i], rings[i-1])
	}
	assert.Equal(t, 0.0, rings[0].Elevation)
	assert.InDelta(t, 6.5, TopElevation(rings), 1e-12)
	// Joints 0-1 and 2-3 are flush, joint 1-2 is stepped.
	assert.Len(t, rings, 6)
}

func TestCheckRings(t *testing.T) {
	tests := []struct {
		name  string
		rings []Ring
	}{
		{"empty", nil},
		{"single", []Ring{{0, 1}}},
		{"offset start", []Ring{{1, 1}, {2, 1}}},
		{"zero radius", []Ring{{0, 1}, {1, 0}}},
		{"descending", []Ring{{0, 1}, {2, 1}, {1, 1}}},
		{"coincident", []Ring{{0, 1}, {1, 1}, {1, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, CheckRings(tt.rings), ErrDegenerateGeometry)
		})
	}
}

func TestTopElevation(t *testing.T) {
	assert.Equal(t, 0.0, TopElevation(nil))
	assert.Equal(t, 3.0, TopElevation([]Ring{{0, 1}, {3, 1}}))
}
