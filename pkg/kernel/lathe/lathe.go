// Package lathe implements kernel.Kernel by sweeping a ring profile around
// the Y axis into a faceted solid: a fan for each cap and a quad strip for
// each band between adjacent rings. Normals are flat, one per cap and one
// per lateral quad.
//
// Vertex layout for N sides and R rings:
//
//	0              bottom center
//	1              top center
//	2 + r·N + i    ring r, sample i (angle i·2π/N)
//
// Normal layout: 0 is the base normal, 1 the top normal, and 2 + b·N + i
// the normal of band b (rings b and b+1) at sample i.
package lathe

import (
	"fmt"

	"github.com/chazu/storey/pkg/building"
	"github.com/chazu/storey/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*LatheKernel)(nil)

// Fixed vertex and normal slots.
const (
	centerBase = 0
	centerTop  = 1
	ringStart  = 2

	normalBase  = 0
	normalTop   = 1
	normalStart = 2
)

// LatheKernel implements kernel.Kernel with an exact faceted surface.
type LatheKernel struct{}

// New returns a new LatheKernel.
func New() *LatheKernel {
	return &LatheKernel{}
}

// Name returns "lathe".
func (k *LatheKernel) Name() string { return "lathe" }

// Revolve builds vertices, faces and normals for the profile.
func (k *LatheKernel) Revolve(rings []building.Ring, sides int) (*kernel.Mesh, error) {
	if sides < building.MinSides || sides > building.MaxSides {
		return nil, fmt.Errorf("lathe: %w: sides %d outside [%d, %d]",
			building.ErrInvalidParameter, sides, building.MinSides, building.MaxSides)
	}
	if err := building.CheckRings(rings); err != nil {
		return nil, fmt.Errorf("lathe: %w", err)
	}

	vertices := Vertices(rings, sides)
	normals, err := Normals(vertices, len(rings), sides)
	if err != nil {
		return nil, fmt.Errorf("lathe: %w", err)
	}
	base, top, lateral := Faces(len(rings), sides)

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Base:     base,
		Top:      top,
		Sides:    lateral,
	}, nil
}

// ringVertex returns the vertex index of sample i on ring r.
func ringVertex(r, i, sides int) int {
	return ringStart + r*sides + i
}

// bandNormal returns the normal index of band b at sample i.
func bandNormal(b, i, sides int) int {
	return normalStart + b*sides + i
}
