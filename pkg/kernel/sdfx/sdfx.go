// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library. The profile is modelled as
// a union of cone frustums and meshed with marching cubes, which gives a
// smooth approximation of the building rather than the exact faceted
// surface the lathe kernel produces.
package sdfx

import (
	"fmt"
	"math"

	"github.com/chazu/storey/pkg/building"
	"github.com/chazu/storey/pkg/geom"
	"github.com/chazu/storey/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// DefaultMeshCells controls marching cubes tessellation resolution.
const DefaultMeshCells = 200

// capThreshold is the |normal.Y| above which a triangle is filed as a cap.
const capThreshold = 0.999

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct {
	cells int
}

// New returns a new SdfxKernel with DefaultMeshCells resolution.
func New() *SdfxKernel {
	return &SdfxKernel{cells: DefaultMeshCells}
}

// NewWithCells returns a kernel meshing with the given number of cells
// along the longest bounding box axis.
func NewWithCells(cells int) *SdfxKernel {
	if cells <= 0 {
		cells = DefaultMeshCells
	}
	return &SdfxKernel{cells: cells}
}

// Name returns "sdfx".
func (k *SdfxKernel) Name() string { return "sdfx" }

// Cells returns the marching cubes resolution.
func (k *SdfxKernel) Cells() int { return k.cells }

// Solid builds the implicit solid for a ring profile: one frustum per band
// of non-zero height, stood on the Y axis. Zero-height bands are ledges and
// are already covered by the frustums above and below them.
func Solid(rings []building.Ring) (sdf.SDF3, error) {
	if err := building.CheckRings(rings); err != nil {
		return nil, err
	}

	var parts []sdf.SDF3
	for b := 0; b+1 < len(rings); b++ {
		lo, up := rings[b], rings[b+1]
		h := up.Elevation - lo.Elevation
		if h == 0 {
			continue
		}
		cone, err := sdf.Cone3D(h, lo.Radius, up.Radius, 0)
		if err != nil {
			return nil, fmt.Errorf("sdfx.Cone3D band %d: %w", b, err)
		}
		// Cone3D is centered on the origin along Z; stand it on Y.
		m := sdf.Translate3d(v3.Vec{X: 0, Y: lo.Elevation + h/2, Z: 0}).Mul(sdf.RotateX(-math.Pi / 2))
		parts = append(parts, sdf.Transform3D(cone, m))
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: profile has no height", kernel.ErrDegenerateGeometry)
	}
	return sdf.Union3D(parts...), nil
}

// Revolve meshes the profile with marching cubes. sides is validated but
// otherwise unused since the SDF surface is smooth.
func (k *SdfxKernel) Revolve(rings []building.Ring, sides int) (m *kernel.Mesh, err error) {
	if sides < building.MinSides || sides > building.MaxSides {
		return nil, fmt.Errorf("sdfx: %w: sides %d outside [%d, %d]",
			building.ErrInvalidParameter, sides, building.MinSides, building.MaxSides)
	}
	s, err := Solid(rings)
	if err != nil {
		return nil, fmt.Errorf("sdfx: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			m, err = nil, fmt.Errorf("sdfx: panic during meshing: %v", r)
		}
	}()

	renderer := render.NewMarchingCubesUniform(k.cells)
	triangles := render.ToTriangles(s, renderer)

	m = &kernel.Mesh{
		Vertices: make([]geom.V3, 0, len(triangles)*3),
		Normals:  make([]geom.V3, 0, len(triangles)),
	}
	for _, tri := range triangles {
		// sdfx winds (a, b, c) with normal (b-a)×(c-a); store (a, c, b)
		// so the mesh follows the (c-a)×(b-a) convention of geom.
		a, b, c := tri[0], tri[2], tri[1]
		n, nerr := geom.TriangleNormal(a, b, c)
		if nerr != nil {
			// Marching cubes emits zero-area slivers on flat regions.
			continue
		}

		vi := len(m.Vertices)
		ni := len(m.Normals)
		m.Vertices = append(m.Vertices, a, b, c)
		m.Normals = append(m.Normals, n)
		t := kernel.Triangle{
			{Vertex: vi, Normal: ni},
			{Vertex: vi + 1, Normal: ni},
			{Vertex: vi + 2, Normal: ni},
		}

		switch {
		case n.Y <= -capThreshold:
			m.Base = append(m.Base, t)
		case n.Y >= capThreshold:
			m.Top = append(m.Top, t)
		default:
			m.Sides = append(m.Sides, t)
		}
	}
	if m.IsEmpty() {
		return nil, fmt.Errorf("sdfx: %w: marching cubes produced no triangles", kernel.ErrDegenerateGeometry)
	}
	return m, nil
}
