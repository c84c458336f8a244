package kernel

// Mesh is a triangle mesh produced by tessellating a solid.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 // [nx0,ny0,nz0, ...]
	Indices  []uint32  // [i0,i1,i2, ...] triangles
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Triangle returns the three vertices of triangle i as [3][3]float64.
func (m *Mesh) Triangle(i int) [3][3]float64 {
	var tri [3][3]float64
	for j := 0; j < 3; j++ {
		vi := int(m.Indices[i*3+j]) * 3
		tri[j] = [3]float64{
			float64(m.Vertices[vi]),
			float64(m.Vertices[vi+1]),
			float64(m.Vertices[vi+2]),
		}
	}
	return tri
}

// Volume returns the enclosed volume of the mesh computed as the sum of
// signed tetrahedron volumes against the origin. The result is only
// meaningful for closed, consistently oriented meshes, which is what the
// kernel tessellators produce.
func (m *Mesh) Volume() float64 {
	var vol float64
	for i := 0; i < m.TriangleCount(); i++ {
		t := m.Triangle(i)
		a, b, c := t[0], t[1], t[2]
		vol += (a[0]*(b[1]*c[2]-b[2]*c[1]) -
			a[1]*(b[0]*c[2]-b[2]*c[0]) +
			a[2]*(b[0]*c[1]-b[1]*c[0])) / 6.0
	}
	if vol < 0 {
		vol = -vol
	}
	return vol
}

// BoundingBox returns the axis-aligned bounds of the mesh vertices.
// Returns zero bounds for an empty mesh.
func (m *Mesh) BoundingBox() (min, max [3]float64) {
	if m.IsEmpty() {
		return min, max
	}
	for i := 0; i < 3; i++ {
		min[i] = float64(m.Vertices[i])
		max[i] = float64(m.Vertices[i])
	}
	for v := 0; v < m.VertexCount(); v++ {
		for i := 0; i < 3; i++ {
			c := float64(m.Vertices[v*3+i])
			if c < min[i] {
				min[i] = c
			}
			if c > max[i] {
				max[i] = c
			}
		}
	}
	return min, max
}
