package export

import (
	"fmt"

	"github.com/hpinc/go3mf"

	"github.com/Metaverse-Colab-for-Fusion-Energy/mcfe-galaxy/pkg/kernel"
)

// Write3MF writes the mesh as a 3MF package at path.
func Write3MF(path string, m *kernel.Mesh) error {
	if m == nil || m.IsEmpty() {
		return ErrEmptyMesh
	}

	mesh := new(go3mf.Mesh)
	for v := 0; v < m.VertexCount(); v++ {
		mesh.Vertices.Vertex = append(mesh.Vertices.Vertex, go3mf.Point3D{
			m.Vertices[v*3], m.Vertices[v*3+1], m.Vertices[v*3+2],
		})
	}
	for i := 0; i < m.TriangleCount(); i++ {
		mesh.Triangles.Triangle = append(mesh.Triangles.Triangle, go3mf.Triangle{
			V1: m.Indices[i*3],
			V2: m.Indices[i*3+1],
			V3: m.Indices[i*3+2],
		})
	}

	model := new(go3mf.Model)
	model.Resources.Objects = append(model.Resources.Objects, &go3mf.Object{
		ID:   1,
		Mesh: mesh,
	})
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: 1})

	w, err := go3mf.CreateWriter(path)
	if err != nil {
		return fmt.Errorf("export: 3mf: %w", err)
	}
	if err := w.Encode(model); err != nil {
		w.Close()
		return fmt.Errorf("export: 3mf encode: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("export: 3mf: %w", err)
	}
	return nil
}
