// Command storey generates triangulated building meshes from stacked
// frustum levels and writes them as OBJ, STL or GLB.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/chazu/storey/pkg/building"
	"github.com/chazu/storey/pkg/kernel/sdfx"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("storey: ")
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// sourceFlags are shared by every command that reads a building.
type sourceFlags struct {
	in         Inputs
	sides      int
	kernelName string
	cells      int
}

func (s *sourceFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&s.in.Script, "script", "", "Lisp building script")
	fs.StringVarP(&s.in.Config, "config", "c", "", "TOML or YAML building file")
	fs.StringArrayVarP(&s.in.Levels, "level", "l", nil, `level as "height,base,top" or "height,radius", bottom first (repeatable)`)
	fs.IntVarP(&s.sides, "sides", "n", DefaultSides, fmt.Sprintf("angular resolution, %d to %d, overrides the source", building.MinSides, building.MaxSides))
	fs.StringVar(&s.in.Name, "name", "", "building name")
	fs.StringVarP(&s.kernelName, "kernel", "k", "lathe", "geometry kernel: lathe or sdfx")
	fs.IntVar(&s.cells, "cells", sdfx.DefaultMeshCells, "marching cubes resolution for the sdfx kernel")
}

// load builds the App for the chosen kernel and resolves the building.
// --sides overrides the source only when it was given on the command line.
func (s *sourceFlags) load(cmd *cobra.Command) (*App, building.Params, error) {
	k, err := KernelByName(s.kernelName, s.cells)
	if err != nil {
		return nil, building.Params{}, err
	}
	in := s.in
	if cmd.Flags().Changed("sides") {
		in.Sides = &s.sides
	}
	a := NewApp(k)
	p, err := a.Load(in)
	if err != nil {
		return nil, building.Params{}, err
	}
	return a, p, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "storey",
		Short:        "Generate triangulated building meshes from stacked frustum levels",
		SilenceUsage: true,
	}
	root.AddCommand(newGenerateCmd(), newInspectCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	var (
		src    sourceFlags
		output string
		format string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a mesh and write it to a file",
		Example: `  storey generate -n 4 -l 1,1 -o cylinder.obj
  storey generate --script examples/pagoda.lisp --format glb
  storey generate -c examples/pagoda.toml -k sdfx -o pagoda.stl`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, p, err := src.load(cmd)
			if err != nil {
				return err
			}
			res, err := a.Generate(p)
			if err != nil {
				return err
			}
			path, err := a.Export(res, p, output, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	src.register(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <name>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: obj, stl or glb (default from --output, else obj)")
	return cmd
}

func newInspectCmd() *cobra.Command {
	var src sourceFlags
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the ring table and mesh counts without writing a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, p, err := src.load(cmd)
			if err != nil {
				return err
			}
			res, err := a.Generate(p)
			if err != nil {
				return err
			}
			return printInspect(cmd.OutOrStdout(), p, res.Rings, res.Mesh.VertexCount(), res.Mesh.NormalCount(), res.Mesh.TriangleCount())
		},
	}
	src.register(cmd.Flags())
	return cmd
}

func printInspect(w io.Writer, p building.Params, rings []building.Ring, vertices, normals, faces int) error {
	fmt.Fprintf(w, "building %s: %d sides, %d levels, height %.4f\n", p.DisplayName(), p.Sides, len(p.Levels), p.Height())
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "ring\televation\tradius\t")
	for i, r := range rings {
		fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t\n", i, r.Elevation, r.Radius)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "vertices %d, normals %d, faces %d\n", vertices, normals, faces)
	return err
}
