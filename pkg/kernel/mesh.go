package kernel

import (
	"math"

	"github.com/chazu/storey/pkg/geom"
)

// Corner is one triangle corner: a vertex index and a normal index, both
// 0-based into the owning Mesh's buffers.
type Corner struct {
	Vertex int `json:"v"`
	Normal int `json:"n"`
}

// Triangle is three corners, wound so the visible side is outward.
type Triangle [3]Corner

// Mesh is an indexed triangle mesh with flat normals. Vertices and normals
// are separate buffers; triangles are kept in three groups so exporters
// can label the caps and the sides.
type Mesh struct {
	Name     string     `json:"name"`
	Vertices []geom.V3  `json:"vertices"`
	Normals  []geom.V3  `json:"normals"`
	Base     []Triangle `json:"base"`
	Top      []Triangle `json:"top"`
	Sides    []Triangle `json:"sides"`
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// NormalCount returns the number of normals.
func (m *Mesh) NormalCount() int {
	return len(m.Normals)
}

// TriangleCount returns the number of triangles across all groups.
func (m *Mesh) TriangleCount() int {
	return len(m.Base) + len(m.Top) + len(m.Sides)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Triangles returns every triangle: base cap, then top cap, then sides.
func (m *Mesh) Triangles() []Triangle {
	all := make([]Triangle, 0, m.TriangleCount())
	all = append(all, m.Base...)
	all = append(all, m.Top...)
	return append(all, m.Sides...)
}

// Corners returns the vertex positions of t.
func (m *Mesh) Corners(t Triangle) [3]geom.V3 {
	return [3]geom.V3{m.Vertices[t[0].Vertex], m.Vertices[t[1].Vertex], m.Vertices[t[2].Vertex]}
}

// BoundingBox returns the axis-aligned bounding box of the vertices.
// An empty mesh returns zero bounds.
func (m *Mesh) BoundingBox() (min, max [3]float64) {
	if m.IsEmpty() {
		return min, max
	}
	min = [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range m.Vertices {
		p := [3]float64{v.X, v.Y, v.Z}
		for i := 0; i < 3; i++ {
			min[i] = math.Min(min[i], p[i])
			max[i] = math.Max(max[i], p[i])
		}
	}
	return min, max
}
