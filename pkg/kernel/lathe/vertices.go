package lathe

import (
	"math"

	"github.com/chazu/storey/pkg/building"
	"github.com/chazu/storey/pkg/geom"
)

// Vertices returns 2 + len(rings)·sides positions. Sample i uses the same
// angle on every ring, so vertex ringVertex(r, i) for fixed i lies on one
// generatrix line.
func Vertices(rings []building.Ring, sides int) []geom.V3 {
	out := make([]geom.V3, 0, ringStart+len(rings)*sides)
	out = append(out,
		geom.V3{},
		geom.V3{Y: building.TopElevation(rings)},
	)

	step := 2 * math.Pi / float64(sides)
	for _, r := range rings {
		for i := 0; i < sides; i++ {
			out = append(out, geom.OnCircle(r.Radius, float64(i)*step, r.Elevation))
		}
	}
	return out
}
