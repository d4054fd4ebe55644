package export

import (
	"fmt"

	"github.com/chazu/storey/pkg/kernel"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// GLTFDocument builds a single-mesh glTF document. glTF has one normal per
// vertex, so every triangle gets its own three vertices carrying the
// triangle's flat normal. Corners are emitted (a, c, b) so the front face
// is counter-clockwise.
func GLTFDocument(m *kernel.Mesh) (*gltf.Document, error) {
	tris := m.Triangles()
	positions := make([][3]float32, 0, 3*len(tris))
	normals := make([][3]float32, 0, 3*len(tris))
	indices := make([]uint32, 0, 3*len(tris))

	for _, t := range tris {
		if err := checkTriangle(m, t); err != nil {
			return nil, err
		}
		for _, c := range [3]kernel.Corner{t[0], t[2], t[1]} {
			v := m.Vertices[c.Vertex]
			n := m.Normals[c.Normal]
			indices = append(indices, uint32(len(positions)))
			positions = append(positions, [3]float32{float32(v.X), float32(v.Y), float32(v.Z)})
			normals = append(normals, [3]float32{float32(n.X), float32(n.Y), float32(n.Z)})
		}
	}

	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, positions)
	nrm := modeler.WriteNormal(doc, normals)
	idx := modeler.WriteIndices(doc, indices)

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: m.Name,
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idx),
			Attributes: map[string]int{"POSITION": pos, "NORMAL": nrm},
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: m.Name, Mesh: gltf.Index(len(doc.Meshes) - 1)})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	return doc, nil
}

// WriteGLB writes m as a binary glTF file.
func WriteGLB(path string, m *kernel.Mesh) error {
	doc, err := GLTFDocument(m)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("failed to save GLB: %w", err)
	}
	return nil
}
