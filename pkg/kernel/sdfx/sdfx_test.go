package sdfx

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/storey/pkg/building"
	"github.com/chazu/storey/pkg/kernel"
	"github.com/chazu/storey/pkg/kernel/lathe"
)

// testCells keeps marching cubes fast in tests.
const testCells = 48

func TestSolidBoundingBox(t *testing.T) {
	rings := building.BuildRings([]building.Level{
		{Height: 4, BaseRadius: 2, TopRadius: 1.5},
		{Height: 2, BaseRadius: 1, TopRadius: 0.5},
	})
	s, err := Solid(rings)
	if err != nil {
		t.Fatalf("Solid failed: %v", err)
	}
	bb := s.BoundingBox()

	const tol = 0.01
	expectMin := [3]float64{-2, 0, -2}
	expectMax := [3]float64{2, 6, 2}
	got := [2][3]float64{{bb.Min.X, bb.Min.Y, bb.Min.Z}, {bb.Max.X, bb.Max.Y, bb.Max.Z}}
	for i := 0; i < 3; i++ {
		if math.Abs(got[0][i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected %f", i, got[0][i], expectMin[i])
		}
		if math.Abs(got[1][i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected %f", i, got[1][i], expectMax[i])
		}
	}
}

func TestSolidRejectsDegenerate(t *testing.T) {
	_, err := Solid([]building.Ring{{Elevation: 0, Radius: 1}})
	if !errors.Is(err, kernel.ErrDegenerateGeometry) {
		t.Errorf("error = %v, want ErrDegenerateGeometry", err)
	}
}

func TestRevolveCylinder(t *testing.T) {
	k := NewWithCells(testCells)
	rings := building.BuildRings([]building.Level{{Height: 2, BaseRadius: 1, TopRadius: 1}})
	mesh, err := k.Revolve(rings, 8)
	if err != nil {
		t.Fatalf("Revolve failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if len(mesh.Base) == 0 || len(mesh.Top) == 0 || len(mesh.Sides) == 0 {
		t.Errorf("expected all groups populated, got base=%d top=%d sides=%d",
			len(mesh.Base), len(mesh.Top), len(mesh.Sides))
	}
	if mesh.NormalCount() != mesh.TriangleCount() {
		t.Errorf("normal count %d != triangle count %d", mesh.NormalCount(), mesh.TriangleCount())
	}
	if mesh.VertexCount() != 3*mesh.TriangleCount() {
		t.Errorf("vertex count %d != 3 * triangle count %d", mesh.VertexCount(), mesh.TriangleCount())
	}
	t.Logf("cylinder triangle count: %d", mesh.TriangleCount())
}

func TestRevolveAgreesWithLathe(t *testing.T) {
	rings := building.BuildRings([]building.Level{
		{Height: 3, BaseRadius: 2, TopRadius: 2},
		{Height: 1, BaseRadius: 2, TopRadius: 1},
	})
	smooth, err := NewWithCells(testCells).Revolve(rings, 36)
	if err != nil {
		t.Fatalf("sdfx Revolve failed: %v", err)
	}
	exact, err := lathe.New().Revolve(rings, 36)
	if err != nil {
		t.Fatalf("lathe Revolve failed: %v", err)
	}

	sMin, sMax := smooth.BoundingBox()
	eMin, eMax := exact.BoundingBox()

	// One marching cubes cell along the longest axis, plus slack.
	tol := 2 * 4.0 / testCells
	for i := 0; i < 3; i++ {
		if math.Abs(sMin[i]-eMin[i]) > tol {
			t.Errorf("min[%d]: sdfx %f, lathe %f", i, sMin[i], eMin[i])
		}
		if math.Abs(sMax[i]-eMax[i]) > tol {
			t.Errorf("max[%d]: sdfx %f, lathe %f", i, sMax[i], eMax[i])
		}
	}
}

func TestRevolveRejectsSides(t *testing.T) {
	rings := []building.Ring{{Elevation: 0, Radius: 1}, {Elevation: 1, Radius: 1}}
	_, err := New().Revolve(rings, 40)
	if !errors.Is(err, building.ErrInvalidParameter) {
		t.Errorf("error = %v, want ErrInvalidParameter", err)
	}
}

func TestNewWithCellsDefault(t *testing.T) {
	if got := NewWithCells(0).Cells(); got != DefaultMeshCells {
		t.Errorf("Cells() = %d, want %d", got, DefaultMeshCells)
	}
}
