// Package kernel defines the abstract geometry kernel interface.
// Implementations (sdfx, manifold) provide solid modeling and
// boolean operations behind this interface. The kernel abstraction
// allows swapping backends without changing the rest of the system.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation. Solids are
// immutable: every construction, boolean, or transform yields a new one.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
//
// Primitive constructors return an error when the backend rejects the
// requested dimensions (zero or negative extents, chamfer larger than the
// body). Such failures are not recoverable by the caller and must abort
// the whole build.
type Kernel interface {
	// Primitives. All are centered on the origin with Z as the axis
	// of rotational symmetry.
	Box(x, y, z float64) (Solid, error)
	Cylinder(height, radius float64) (Solid, error)
	Sphere(radius float64) (Solid, error)

	// ChamferedCylinder is a cylinder whose top edge is beveled at 45
	// degrees by the given chamfer distance, tapering the top radius to
	// radius-chamfer. Requires 0 < chamfer < height and chamfer < radius.
	ChamferedCylinder(height, radius, chamfer float64) (Solid, error)

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
