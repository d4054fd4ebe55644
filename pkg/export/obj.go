package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/chazu/storey/pkg/kernel"
)

// WriteOBJ writes m as Wavefront OBJ: "v" and "vn" lines at 4 decimals,
// then faces as "f v//vn v//vn v//vn" in base, top, sides groups.
func WriteOBJ(w io.Writer, m *kernel.Mesh, info Info) error {
	bw := bufio.NewWriter(w)
	name := objName(m.Name)

	fmt.Fprintf(bw, "# %s\n", name)
	fmt.Fprintf(bw, "# sides %d, rings %d, levels %d\n", info.Sides, info.Rings, info.Levels)
	fmt.Fprintf(bw, "# vertices %d, normals %d, faces %d\n", m.VertexCount(), m.NormalCount(), m.TriangleCount())
	fmt.Fprintf(bw, "o %s\n", name)

	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %.4f %.4f %.4f\n", v.X, v.Y, v.Z)
	}
	for _, n := range m.Normals {
		fmt.Fprintf(bw, "vn %.4f %.4f %.4f\n", n.X, n.Y, n.Z)
	}

	groups := []struct {
		name string
		tris []kernel.Triangle
	}{
		{"base", m.Base},
		{"top", m.Top},
		{"sides", m.Sides},
	}
	for _, g := range groups {
		if len(g.tris) == 0 {
			continue
		}
		fmt.Fprintf(bw, "g %s\n", g.name)
		for _, t := range g.tris {
			if err := checkTriangle(m, t); err != nil {
				return err
			}
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n",
				t[0].Vertex+1, t[0].Normal+1,
				t[1].Vertex+1, t[1].Normal+1,
				t[2].Vertex+1, t[2].Normal+1)
		}
	}

	return bw.Flush()
}

// checkTriangle rejects corners that would point outside the buffers.
func checkTriangle(m *kernel.Mesh, t kernel.Triangle) error {
	for _, c := range t {
		if c.Vertex < 0 || c.Vertex >= m.VertexCount() {
			return fmt.Errorf("vertex index %d out of range [0,%d)", c.Vertex, m.VertexCount())
		}
		if c.Normal < 0 || c.Normal >= m.NormalCount() {
			return fmt.Errorf("normal index %d out of range [0,%d)", c.Normal, m.NormalCount())
		}
	}
	return nil
}

// objName keeps the name on one line; control characters become '_'.
func objName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return '_'
		}
		return r
	}, name)
}
