// Package kernel defines the abstract geometry kernel interface.
// A kernel turns a ring profile into a triangle mesh. Implementations
// (lathe, sdfx) sit behind this interface so the pipeline and the
// exporters do not depend on how the surface is produced.
package kernel

import "github.com/chazu/storey/pkg/building"

// ErrDegenerateGeometry is building.ErrDegenerateGeometry, re-exported so
// kernel callers can match it without importing building.
var ErrDegenerateGeometry = building.ErrDegenerateGeometry

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Name identifies the kernel in logs and CLI flags.
	Name() string

	// Revolve sweeps the ring profile around the Y axis with the given
	// angular resolution and returns a closed mesh. Rings must satisfy
	// building.CheckRings.
	Revolve(rings []building.Ring, sides int) (*Mesh, error)
}
