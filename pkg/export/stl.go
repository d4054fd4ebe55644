package export

import (
	"github.com/chazu/storey/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
)

// STLTriangles converts m to sdfx triangles. STL derives facet normals from
// the winding, (b-a)×(c-a), so each corner order is flipped from the mesh's
// (c-a)×(b-a) convention.
func STLTriangles(m *kernel.Mesh) ([]*sdf.Triangle3, error) {
	out := make([]*sdf.Triangle3, 0, m.TriangleCount())
	for _, t := range m.Triangles() {
		if err := checkTriangle(m, t); err != nil {
			return nil, err
		}
		c := m.Corners(t)
		out = append(out, &sdf.Triangle3{c[0], c[2], c[1]})
	}
	return out, nil
}

// WriteSTL writes m as a binary STL file.
func WriteSTL(path string, m *kernel.Mesh) error {
	tris, err := STLTriangles(m)
	if err != nil {
		return err
	}
	return render.SaveSTL(path, tris)
}
