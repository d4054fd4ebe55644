package lathe

import (
	"fmt"

	"github.com/chazu/storey/pkg/geom"
	"github.com/chazu/storey/pkg/kernel"
)

// Normals returns 2 + (ringCount-1)·sides unit normals for vertices laid out
// by Vertices. The cap normals are the constants -Y and +Y. Each lateral
// normal comes from the first triangle of its quad, (lo[i], lo[i+1],
// up[i+1]), as (up[i+1] - lo[i]) × (lo[i+1] - lo[i]); the second triangle
// of the quad shares it.
//
// That operand order points outward for contracting, expanding and
// straight bands alike, and points straight up or down for a zero-height
// ledge between two radii.
func Normals(vertices []geom.V3, ringCount, sides int) ([]geom.V3, error) {
	want := ringStart + ringCount*sides
	if len(vertices) != want {
		return nil, fmt.Errorf("normals: have %d vertices, want %d", len(vertices), want)
	}

	out := make([]geom.V3, 0, normalStart+(ringCount-1)*sides)
	out = append(out, geom.Down, geom.Up)

	for b := 0; b < ringCount-1; b++ {
		for i := 0; i < sides; i++ {
			next := (i + 1) % sides
			v1 := vertices[ringVertex(b, i, sides)]
			v2 := vertices[ringVertex(b, next, sides)]
			v3 := vertices[ringVertex(b+1, next, sides)]

			n, err := geom.TriangleNormal(v1, v2, v3)
			if err != nil {
				return nil, fmt.Errorf("%w: band %d sample %d: %v", kernel.ErrDegenerateGeometry, b, i, err)
			}
			out = append(out, n)
		}
	}
	return out, nil
}
