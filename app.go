package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/chazu/storey/pkg/building"
	"github.com/chazu/storey/pkg/config"
	"github.com/chazu/storey/pkg/engine"
	"github.com/chazu/storey/pkg/export"
	"github.com/chazu/storey/pkg/kernel"
	"github.com/chazu/storey/pkg/kernel/lathe"
	"github.com/chazu/storey/pkg/kernel/sdfx"
	"github.com/chazu/storey/pkg/tessellate"
)

// DefaultSides is used when neither the flags nor the building source set
// an angular resolution.
const DefaultSides = 12

// App ties the building sources, the geometry kernel and the exporters
// together. The CLI commands are thin wrappers around it.
type App struct {
	engine *engine.Engine
	kernel kernel.Kernel
}

// Inputs names where a building definition comes from. Exactly one of
// Script, Config or Levels must be set. A non-nil Sides and a non-empty Name
// override whatever the source declares.
type Inputs struct {
	Script string   // path to a Lisp building script
	Config string   // path to a .toml/.yaml building file
	Levels []string // "height,base,top" or "height,radius" per level
	Sides  *int
	Name   string
}

// NewApp creates an App with a script engine that meshes with k.
func NewApp(k kernel.Kernel) *App {
	return &App{
		engine: engine.NewEngine(),
		kernel: k,
	}
}

// KernelByName returns the kernel for a CLI name. cells only applies to sdfx.
func KernelByName(name string, cells int) (kernel.Kernel, error) {
	switch name {
	case "", "lathe":
		return lathe.New(), nil
	case "sdfx":
		return sdfx.NewWithCells(cells), nil
	}
	return nil, fmt.Errorf("unknown kernel %q (want lathe or sdfx)", name)
}

// Script evaluates Lisp source into building parameters. Script errors are
// joined into one error, each carrying its line number. The result is not
// validated.
func (a *App) Script(source string) (building.Params, error) {
	p, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		return building.Params{}, err
	}
	if len(evalErrs) > 0 {
		errs := make([]error, len(evalErrs))
		for i, e := range evalErrs {
			errs[i] = e
		}
		return building.Params{}, errors.Join(errs...)
	}
	return *p, nil
}

// Generate meshes p with the App's kernel.
func (a *App) Generate(p building.Params) (*tessellate.Result, error) {
	res, err := tessellate.Tessellate(p, a.kernel)
	if err != nil {
		log.Printf("Generate error: %v", err)
		return nil, err
	}
	return res, nil
}

// Load resolves in into validated building parameters.
func (a *App) Load(in Inputs) (building.Params, error) {
	sources := 0
	for _, set := range []bool{in.Script != "", in.Config != "", len(in.Levels) > 0} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return building.Params{}, fmt.Errorf("exactly one of --script, --config or --level is required, got %d", sources)
	}

	var p building.Params
	switch {
	case in.Script != "":
		src, err := os.ReadFile(in.Script)
		if err != nil {
			return building.Params{}, fmt.Errorf("failed to read script: %w", err)
		}
		sp, err := a.Script(string(src))
		if err != nil {
			return building.Params{}, fmt.Errorf("%s: %w", in.Script, err)
		}
		p = sp

	case in.Config != "":
		cp, err := config.Load(in.Config)
		if err != nil {
			return building.Params{}, err
		}
		p = cp

	default:
		for i, raw := range in.Levels {
			l, err := ParseLevel(raw)
			if err != nil {
				return building.Params{}, fmt.Errorf("--level %d: %w", i+1, err)
			}
			p.Levels = append(p.Levels, l)
		}
	}

	// A source that leaves sides at zero gets the default; an explicit
	// override is taken as given and validated below.
	if in.Sides != nil {
		p.Sides = *in.Sides
	} else if p.Sides == 0 {
		p.Sides = DefaultSides
	}
	if in.Name != "" {
		p.Name = in.Name
	}

	if err := p.Validate(); err != nil {
		if src := in.Script + in.Config; src != "" {
			return building.Params{}, fmt.Errorf("%s: %w", src, err)
		}
		return building.Params{}, err
	}
	return p, nil
}

// Export writes res to path. An empty path derives one from the building
// name and format; an empty format is taken from the path extension, or OBJ.
func (a *App) Export(res *tessellate.Result, p building.Params, path string, format string) (string, error) {
	var f export.Format
	var err error
	switch {
	case format != "":
		f, err = export.ParseFormat(format)
	case path != "":
		f, err = export.FormatFromPath(path)
	default:
		f = export.FormatOBJ
	}
	if err != nil {
		return "", err
	}
	if path == "" {
		path = export.DefaultPath(p.DisplayName(), f)
	}

	info := export.Info{Sides: p.Sides, Rings: len(res.Rings), Levels: len(p.Levels)}
	if err := export.WriteFile(path, f, res.Mesh, info); err != nil {
		return "", err
	}
	log.Printf("wrote %s (%s kernel, %d vertices, %d faces)", path, a.kernel.Name(), res.Mesh.VertexCount(), res.Mesh.TriangleCount())
	return path, nil
}

// ParseLevel parses "height,base,top" or "height,radius".
func ParseLevel(raw string) (building.Level, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return building.Level{}, fmt.Errorf("%w: level %q: want height,base,top or height,radius",
			building.ErrInvalidParameter, raw)
	}
	vals := make([]float64, len(parts))
	for i, s := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return building.Level{}, fmt.Errorf("%w: level %q: %v", building.ErrInvalidParameter, raw, err)
		}
		vals[i] = v
	}
	if len(vals) == 2 {
		return building.NewLevel(vals[0], vals[1], vals[1])
	}
	return building.NewLevel(vals[0], vals[1], vals[2])
}
