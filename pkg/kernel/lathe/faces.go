package lathe

import "github.com/chazu/storey/pkg/kernel"

// Faces triangulates a profile of ringCount rings into the base cap, the top
// cap and the lateral bands. Corners are 0-based.
//
// Base:  (center, ring0[i+1], ring0[i])       reversed, faces -Y
// Top:   (center, ringN[i], ringN[i+1])
// Sides: (lo[i], lo[i+1], up[i+1]) and (lo[i], up[i+1], up[i])
func Faces(ringCount, sides int) (base, top, lateral []kernel.Triangle) {
	base = make([]kernel.Triangle, 0, sides)
	top = make([]kernel.Triangle, 0, sides)
	lateral = make([]kernel.Triangle, 0, 2*(ringCount-1)*sides)

	last := ringCount - 1
	for i := 0; i < sides; i++ {
		next := (i + 1) % sides
		base = append(base, kernel.Triangle{
			{Vertex: centerBase, Normal: normalBase},
			{Vertex: ringVertex(0, next, sides), Normal: normalBase},
			{Vertex: ringVertex(0, i, sides), Normal: normalBase},
		})
		top = append(top, kernel.Triangle{
			{Vertex: centerTop, Normal: normalTop},
			{Vertex: ringVertex(last, i, sides), Normal: normalTop},
			{Vertex: ringVertex(last, next, sides), Normal: normalTop},
		})
	}

	for b := 0; b < last; b++ {
		for i := 0; i < sides; i++ {
			next := (i + 1) % sides
			n := bandNormal(b, i, sides)
			loCur := kernel.Corner{Vertex: ringVertex(b, i, sides), Normal: n}
			loNext := kernel.Corner{Vertex: ringVertex(b, next, sides), Normal: n}
			upCur := kernel.Corner{Vertex: ringVertex(b+1, i, sides), Normal: n}
			upNext := kernel.Corner{Vertex: ringVertex(b+1, next, sides), Normal: n}

			lateral = append(lateral,
				kernel.Triangle{loCur, loNext, upNext},
				kernel.Triangle{loCur, upNext, upCur},
			)
		}
	}
	return base, top, lateral
}
