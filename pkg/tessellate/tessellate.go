// Package tessellate runs the mesh pipeline: validate the building
// parameters, derive the ring profile, and hand it to a geometry kernel.
// One mesh is produced per building.
package tessellate

import (
	"fmt"

	"github.com/chazu/storey/pkg/building"
	"github.com/chazu/storey/pkg/kernel"
)

// Result is a finished mesh together with the profile it was built from.
type Result struct {
	Mesh  *kernel.Mesh
	Rings []building.Ring
}

// Tessellate validates p and builds its mesh with k. Invalid parameters
// are reported as building.ErrInvalidParameter and never reach the kernel;
// an unusable ring profile is reported as kernel.ErrDegenerateGeometry.
// The pipeline is pure: identical input yields an identical mesh.
func Tessellate(p building.Params, k kernel.Kernel) (*Result, error) {
	if k == nil {
		return nil, fmt.Errorf("tessellate: nil kernel")
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("tessellate: %w", err)
	}

	rings := building.BuildRings(p.Levels)
	if err := building.CheckRings(rings); err != nil {
		return nil, fmt.Errorf("tessellate: %w", err)
	}

	mesh, err := k.Revolve(rings, p.Sides)
	if err != nil {
		return nil, fmt.Errorf("tessellate: %s kernel failed for %q: %w", k.Name(), p.DisplayName(), err)
	}
	mesh.Name = p.DisplayName()

	return &Result{Mesh: mesh, Rings: rings}, nil
}

// Rings returns the ring profile for p without building a mesh.
func Rings(p building.Params) ([]building.Ring, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("tessellate: %w", err)
	}
	rings := building.BuildRings(p.Levels)
	if err := building.CheckRings(rings); err != nil {
		return nil, fmt.Errorf("tessellate: %w", err)
	}
	return rings, nil
}
