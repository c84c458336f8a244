// Package export writes tessellated solids to interchange files. The
// writer is chosen by the output path's extension through the datatypes
// registry: step/stp (faceted boundary representation), 3mf and stl.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Metaverse-Colab-for-Fusion-Energy/mcfe-galaxy/pkg/datatypes"
	"github.com/Metaverse-Colab-for-Fusion-Energy/mcfe-galaxy/pkg/kernel"
)

// ErrEmptyMesh indicates there is no geometry to export.
var ErrEmptyMesh = errors.New("export: mesh has no geometry")

// Export writes the mesh to path, picking the writer from the extension.
// The model name embedded in the file is the path's base name without
// extension.
func Export(path string, m *kernel.Mesh) error {
	if m == nil || m.IsEmpty() {
		return ErrEmptyMesh
	}

	format, ok := datatypes.ByPath(path)
	if !ok {
		return fmt.Errorf("export: unrecognised output extension %q", filepath.Ext(path))
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	switch format.Extension {
	case "step", "stp":
		return writeFile(path, func(f *os.File) error { return WriteSTEP(f, m, name) })
	case "stl":
		return writeFile(path, func(f *os.File) error { return WriteSTL(f, m, name) })
	case "3mf":
		return Write3MF(path, m)
	default:
		return fmt.Errorf("export: no writer for %s (.%s)", format.Name, format.Extension)
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
