package building

import (
	"errors"
	"fmt"
	"slices"
)

// ErrDegenerateGeometry is returned when a ring sequence would produce a
// triangle with no area.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// Ring is a horizontal circular cross-section.
type Ring struct {
	Elevation float64
	Radius    float64
}

// BuildRings walks the levels bottom to top and emits one ring per distinct
// level boundary. A ring equal to one already emitted is skipped, so a flush
// joint (top radius == next base radius) collapses into a single ring.
func BuildRings(levels []Level) []Ring {
	rings := make([]Ring, 0, 2*len(levels))
	add := func(r Ring) {
		if !slices.Contains(rings, r) {
			rings = append(rings, r)
		}
	}

	var elevation float64
	for _, l := range levels {
		add(Ring{Elevation: elevation, Radius: l.BaseRadius})
		elevation += l.Height
		add(Ring{Elevation: elevation, Radius: l.TopRadius})
	}
	return rings
}

// CheckRings verifies the ordering invariants the mesh kernels rely on:
// at least two rings, positive radii, non-decreasing elevation, a first
// ring at elevation 0, and no two adjacent identical rings.
func CheckRings(rings []Ring) error {
	if len(rings) < 2 {
		return fmt.Errorf("%w: need at least 2 rings, got %d", ErrDegenerateGeometry, len(rings))
	}
	if rings[0].Elevation != 0 {
		return fmt.Errorf("%w: first ring at elevation %g, want 0", ErrDegenerateGeometry, rings[0].Elevation)
	}
	for i, r := range rings {
		if !(r.Radius > 0) {
			return fmt.Errorf("%w: ring %d has radius %g", ErrDegenerateGeometry, i, r.Radius)
		}
		if i == 0 {
			continue
		}
		prev := rings[i-1]
		if r.Elevation < prev.Elevation {
			return fmt.Errorf("%w: ring %d elevation %g below ring %d elevation %g",
				ErrDegenerateGeometry, i, r.Elevation, i-1, prev.Elevation)
		}
		if r == prev {
			return fmt.Errorf("%w: rings %d and %d coincide at elevation %g radius %g",
				ErrDegenerateGeometry, i-1, i, r.Elevation, r.Radius)
		}
	}
	return nil
}

// TopElevation returns the elevation of the last ring, or 0 for none.
func TopElevation(rings []Ring) float64 {
	if len(rings) == 0 {
		return 0
	}
	return rings[len(rings)-1].Elevation
}
