// Package export writes finished meshes to disk. OBJ is the primary format
// and is written with the exact precision and face layout downstream tools
// expect; STL and GLB are provided for slicers and viewers.
//
// Meshes use 0-based indices internally; OBJ's 1-based indices are applied
// here and nowhere else.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chazu/storey/pkg/kernel"
)

// Format is an output file format.
type Format string

const (
	FormatOBJ Format = "obj"
	FormatSTL Format = "stl"
	FormatGLB Format = "glb"
)

// Formats lists the supported formats, default first.
var Formats = []Format{FormatOBJ, FormatSTL, FormatGLB}

// ErrUnknownFormat is returned for an unsupported format name or extension.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat converts a format name (case-insensitive, optional dot) to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(s, ".")))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// DefaultPath returns "<name>.<format>" with path-unsafe characters replaced.
func DefaultPath(name string, f Format) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
	if safe == "" {
		safe = "building"
	}
	return safe + "." + string(f)
}

// Info is descriptive metadata written into formats that carry comments.
type Info struct {
	Sides  int
	Rings  int
	Levels int
}

// WriteFile writes m to path in format f. The mesh must be complete. Output
// goes to a temporary file in the same directory that is renamed over path
// only after a successful write, so a failure never touches an existing path.
func WriteFile(path string, f Format, m *kernel.Mesh, info Info) error {
	if m == nil || m.IsEmpty() {
		return fmt.Errorf("export: empty mesh")
	}

	var write func(path string) error
	switch f {
	case FormatOBJ:
		write = func(p string) error { return writeOBJFile(p, m, info) }
	case FormatSTL:
		write = func(p string) error { return WriteSTL(p, m) }
	case FormatGLB:
		write = func(p string) error { return WriteGLB(p, m) }
	default:
		return fmt.Errorf("export: %w: %q", ErrUnknownFormat, f)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("export %s: %w", f, err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("export %s: %w", f, err)
	}

	if err := write(tmpPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("export %s: %w", f, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("export %s: %w", f, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("export %s: %w", f, err)
	}
	return nil
}

func writeOBJFile(path string, m *kernel.Mesh, info Info) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create OBJ file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteOBJ(f, m, info)
}
