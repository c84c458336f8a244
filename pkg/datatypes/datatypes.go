// Package datatypes registers the scientific and engineering data formats
// the platform exchanges, keyed by file extension. The set mirrors the
// formats the host workflow system knows about; tools use it to recognise
// inputs and to pick an exporter for an output path.
package datatypes

import (
	"path/filepath"
	"sort"
	"strings"
)

// Kind categorises a format.
type Kind string

const (
	KindMesh       Kind = "mesh"       // surface/volume mesh data
	KindCAD        Kind = "cad"        // boundary-representation CAD models
	KindSimulation Kind = "simulation" // solver inputs and outputs
	KindData       Kind = "data"       // generic structured data
)

// Format describes one registered data format.
type Format struct {
	Extension string // without the leading dot
	Name      string
	Kind      Kind
}

var registry = map[string]Format{}

func register(ext, name string, kind Kind) {
	registry[ext] = Format{Extension: ext, Name: name, Kind: kind}
}

func init() {
	register("vtp", "VTK PolyData", KindMesh)
	register("vtk", "VTK Legacy", KindMesh)
	register("vtu", "VTK Unstructured Grid", KindMesh)
	register("pvtu", "VTK Parallel Unstructured Grid", KindMesh)
	register("usd", "Universal Scene Description", KindMesh)
	register("usda", "Universal Scene Description (ASCII)", KindMesh)
	register("usdc", "Universal Scene Description (Crate)", KindMesh)
	register("usdz", "Universal Scene Description (Zip)", KindMesh)
	register("obj", "Wavefront OBJ", KindMesh)
	register("stl", "Stereolithography", KindMesh)
	register("3mf", "3D Manufacturing Format", KindMesh)
	register("stp", "STEP AP214", KindCAD)
	register("step", "STEP AP214", KindCAD)
	register("h5", "HDF5", KindData)
	register("h5m", "MOAB Mesh", KindMesh)
	register("out", "Solver Output", KindSimulation)
	register("xml", "XML", KindData)
	register("npz", "NumPy Archive", KindData)
	register("yaml", "YAML", KindData)
	register("odb", "Abaqus Output Database", KindSimulation)
	register("inp", "Abaqus Input Deck", KindSimulation)
	register("pth", "PyTorch Checkpoint", KindData)
}

// Lookup returns the format registered for an extension (with or without
// the leading dot, case-insensitive).
func Lookup(ext string) (Format, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	f, ok := registry[ext]
	return f, ok
}

// ByPath returns the format registered for a file path's extension.
func ByPath(path string) (Format, bool) {
	return Lookup(filepath.Ext(path))
}

// Extensions returns all registered extensions in sorted order.
func Extensions() []string {
	exts := make([]string, 0, len(registry))
	for ext := range registry {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
