package kernel

import (
	"math"
	"testing"
)

// unitTetrahedron returns a closed, outward-oriented tetrahedron mesh with
// corners at the origin and the three unit axis points. Its volume is 1/6.
func unitTetrahedron() *Mesh {
	return &Mesh{
		Vertices: []float32{
			0, 0, 0, // 0
			1, 0, 0, // 1
			0, 1, 0, // 2
			0, 0, 1, // 3
		},
		Normals: []float32{
			0, 0, -1,
			0, -1, 0,
			-1, 0, 0,
			1, 1, 1,
		},
		Indices: []uint32{
			0, 2, 1, // bottom (z=0)
			0, 1, 3, // front (y=0)
			0, 3, 2, // side (x=0)
			1, 2, 3, // slanted
		},
	}
}

func TestMeshCounts(t *testing.T) {
	m := unitTetrahedron()
	if got := m.VertexCount(); got != 4 {
		t.Errorf("VertexCount = %d, want 4", got)
	}
	if got := m.TriangleCount(); got != 4 {
		t.Errorf("TriangleCount = %d, want 4", got)
	}
	if m.IsEmpty() {
		t.Error("IsEmpty = true for a non-empty mesh")
	}
}

func TestMeshVolume(t *testing.T) {
	m := unitTetrahedron()
	want := 1.0 / 6.0
	if got := m.Volume(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Volume = %v, want %v", got, want)
	}
}

func TestMeshBoundingBox(t *testing.T) {
	m := unitTetrahedron()
	min, max := m.BoundingBox()
	if min != [3]float64{0, 0, 0} {
		t.Errorf("min = %v, want origin", min)
	}
	if max != [3]float64{1, 1, 1} {
		t.Errorf("max = %v, want (1,1,1)", max)
	}
}

func TestEmptyMesh(t *testing.T) {
	m := &Mesh{}
	if !m.IsEmpty() {
		t.Error("IsEmpty = false for an empty mesh")
	}
	if got := m.Volume(); got != 0 {
		t.Errorf("Volume = %v, want 0", got)
	}
	min, max := m.BoundingBox()
	if min != max {
		t.Errorf("empty mesh bounds differ: %v vs %v", min, max)
	}
}
