// rtpack is a CLI utility for packing scene files into ray-tracing records.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/rtscene/internal/geometry"
	"github.com/Faultbox/rtscene/internal/logger"
	"github.com/Faultbox/rtscene/internal/scene"
	"github.com/Faultbox/rtscene/internal/scenefile"
	"github.com/Faultbox/rtscene/pkg/primitive"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "stats", "info":
		cmdStats(args)
	case "dump", "x":
		cmdDump(args)
	case "shapes":
		cmdShapes()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`rtpack - ray-tracing scene packer

Usage:
  rtpack <command> [options]

Commands:
  stats <scene.yaml>           Pack the scene and print record counts
  dump <scene.yaml> <outdir>   Write spheres.bin and triangles.bin
  shapes                       List built-in mesh shapes

Options:
  -v                           Debug logging

Examples:
  rtpack stats scene.yaml
  rtpack dump -v scene.yaml ./out`)
}

func setupLogging(verbose bool) {
	level := "warn"
	if verbose {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func packFile(path string) (*scenefile.Scene, *scene.PackedScene) {
	s, err := scenefile.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	packed, err := scene.NewPacker().Pack(s.SphereSources(), s.MeshSources())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return s, packed
}

func cmdStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Debug logging")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: rtpack stats <scene.yaml>")
		os.Exit(1)
	}
	setupLogging(*verbose)
	defer logger.Sync()

	s, packed := packFile(fs.Arg(0))
	st := packed.Stats()

	emissive := 0
	for _, sp := range packed.Spheres {
		if sp.Material.IsEmissive() {
			emissive++
		}
	}
	for _, tri := range packed.Triangles {
		if tri.Material.IsEmissive() {
			emissive++
		}
	}

	fmt.Printf("Scene:     %s\n", fs.Arg(0))
	fmt.Printf("Spheres:   %d (%d bytes)\n", st.Spheres, st.SphereBytes)
	fmt.Printf("Triangles: %d (%d bytes)\n", st.Triangles, st.TriangleBytes)
	fmt.Printf("Emissive:  %d\n", emissive)

	if len(s.Meshes) > 0 {
		fmt.Println()
		fmt.Println("Meshes:")
		for _, m := range s.Meshes {
			data := geometry.MeshData{Vertices: m.Vertices, Indices: m.Indices}
			size := geometry.LocalBounds(m.Vertices).Size()
			fmt.Printf("  %-16s %6d tris  size %.2f x %.2f x %.2f\n",
				m.Name, data.TriangleCount(), size.X(), size.Y(), size.Z())
		}
	}
}

func cmdDump(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Debug logging")
	fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: rtpack dump <scene.yaml> <outdir>")
		os.Exit(1)
	}
	setupLogging(*verbose)
	defer logger.Sync()

	_, packed := packFile(fs.Arg(0))
	outDir := fs.Arg(1)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outputs := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"spheres.bin", func(w io.Writer) error { return primitive.WriteSpheres(w, packed.Spheres) }},
		{"triangles.bin", func(w io.Writer) error { return primitive.WriteTriangles(w, packed.Triangles) }},
	}
	for _, out := range outputs {
		path := filepath.Join(outDir, out.name)
		if err := writeFile(path, out.write); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Debug("wrote records", zap.String("path", path))
		fmt.Printf("Wrote %s\n", path)
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func cmdShapes() {
	for _, name := range scenefile.ShapeNames() {
		fmt.Println(name)
	}
}
