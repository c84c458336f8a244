package sdfx

import (
	"math"
	"testing"
)

func TestBox(t *testing.T) {
	k := NewWithResolution(64)
	box, err := k.Box(100, 50, 25)
	if err != nil {
		t.Fatalf("Box failed: %v", err)
	}
	mesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if mesh.VertexCount() == 0 {
		t.Fatal("expected non-zero vertex count")
	}
	// Verify vertex and index array sizes are consistent.
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != mesh.TriangleCount()*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(mesh.Indices), mesh.TriangleCount()*3)
	}
}

func TestBoxBoundingBox(t *testing.T) {
	k := New()
	box, err := k.Box(100, 50, 25)
	if err != nil {
		t.Fatalf("Box failed: %v", err)
	}
	min, max := box.BoundingBox()

	const tol = 0.01
	expectMin := [3]float64{-50, -25, -12.5}
	expectMax := [3]float64{50, 25, 12.5}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected %f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected %f", i, max[i], expectMax[i])
		}
	}
}

func TestBoxInvalidDimensions(t *testing.T) {
	k := New()
	if _, err := k.Box(-1, 10, 10); err == nil {
		t.Fatal("Box with negative dimension returned no error")
	}
}

func TestCylinder(t *testing.T) {
	k := NewWithResolution(64)
	cyl, err := k.Cylinder(50, 10)
	if err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}
	mesh, err := k.ToMesh(cyl)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.TriangleCount() == 0 {
		t.Fatal("expected non-zero triangle count")
	}

	min, max := cyl.BoundingBox()
	const tol = 0.01
	if math.Abs(min[2]+25) > tol || math.Abs(max[2]-25) > tol {
		t.Errorf("z bounds [%f, %f], expected [-25, 25]", min[2], max[2])
	}
}

func TestCylinderInvalidDimensions(t *testing.T) {
	k := New()
	if _, err := k.Cylinder(0, 10); err == nil {
		t.Fatal("Cylinder with zero height returned no error")
	}
	if _, err := k.Cylinder(10, -1); err == nil {
		t.Fatal("Cylinder with negative radius returned no error")
	}
}

func TestSphere(t *testing.T) {
	k := New()
	s, err := k.Sphere(8)
	if err != nil {
		t.Fatalf("Sphere failed: %v", err)
	}
	min, max := s.BoundingBox()
	const tol = 0.01
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]+8) > tol || math.Abs(max[i]-8) > tol {
			t.Errorf("axis %d bounds [%f, %f], expected [-8, 8]", i, min[i], max[i])
		}
	}

	if _, err := k.Sphere(-2); err == nil {
		t.Fatal("Sphere with negative radius returned no error")
	}
}

func TestChamferedCylinder(t *testing.T) {
	k := NewWithResolution(64)
	s, err := k.ChamferedCylinder(4, 3, 1)
	if err != nil {
		t.Fatalf("ChamferedCylinder failed: %v", err)
	}

	min, max := s.BoundingBox()
	const tol = 0.01
	if math.Abs(min[2]+2) > tol || math.Abs(max[2]-2) > tol {
		t.Errorf("z bounds [%f, %f], expected [-2, 2]", min[2], max[2])
	}
	if math.Abs(max[0]-3) > tol {
		t.Errorf("max x = %f, expected 3", max[0])
	}

	// The tapered body must enclose less volume than the plain cylinder.
	plain, err := k.Cylinder(4, 3)
	if err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}
	chamferedMesh, err := k.ToMesh(s)
	if err != nil {
		t.Fatalf("ToMesh(chamfered) failed: %v", err)
	}
	plainMesh, err := k.ToMesh(plain)
	if err != nil {
		t.Fatalf("ToMesh(plain) failed: %v", err)
	}
	if chamferedMesh.Volume() >= plainMesh.Volume() {
		t.Errorf("chamfered volume %f >= plain cylinder volume %f",
			chamferedMesh.Volume(), plainMesh.Volume())
	}
}

func TestChamferedCylinderInvalidChamfer(t *testing.T) {
	k := New()
	tests := []struct {
		name                    string
		height, radius, chamfer float64
	}{
		{"zero chamfer", 4, 3, 0},
		{"chamfer equals height", 4, 3, 4},
		{"chamfer exceeds radius", 4, 3, 3.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := k.ChamferedCylinder(tt.height, tt.radius, tt.chamfer); err == nil {
				t.Fatalf("ChamferedCylinder(%v,%v,%v) returned no error",
					tt.height, tt.radius, tt.chamfer)
			}
		})
	}
}

func TestDifference(t *testing.T) {
	k := NewWithResolution(64)

	box, err := k.Box(100, 100, 100)
	if err != nil {
		t.Fatalf("Box failed: %v", err)
	}
	cyl, err := k.Cylinder(120, 20)
	if err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}

	diff := k.Difference(box, cyl)
	boxMesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh(box) failed: %v", err)
	}
	diffMesh, err := k.ToMesh(diff)
	if err != nil {
		t.Fatalf("ToMesh(diff) failed: %v", err)
	}
	if diffMesh.IsEmpty() {
		t.Fatal("difference mesh is empty")
	}
	// A box with a hole encloses less volume than the plain box.
	if diffMesh.Volume() >= boxMesh.Volume() {
		t.Fatalf("difference volume %f >= box volume %f", diffMesh.Volume(), boxMesh.Volume())
	}
}

func TestUnion(t *testing.T) {
	k := NewWithResolution(64)
	box1, err := k.Box(50, 50, 50)
	if err != nil {
		t.Fatalf("Box failed: %v", err)
	}
	box2, err := k.Box(50, 50, 50)
	if err != nil {
		t.Fatalf("Box failed: %v", err)
	}
	u := k.Union(box1, k.Translate(box2, 30, 0, 0))
	mesh, err := k.ToMesh(u)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("union mesh is empty")
	}

	min, max := u.BoundingBox()
	const tol = 0.5
	if math.Abs(min[0]+25) > tol || math.Abs(max[0]-55) > tol {
		t.Errorf("x bounds [%f, %f], expected [-25, 55]", min[0], max[0])
	}
}

func TestTranslate(t *testing.T) {
	k := New()
	box, err := k.Box(10, 10, 10)
	if err != nil {
		t.Fatalf("Box failed: %v", err)
	}
	translated := k.Translate(box, 100, 200, 300)

	min, max := translated.BoundingBox()

	// Translated box(10,10,10) by (100,200,300) should be centered at (100,200,300).
	const tol = 0.5
	expectMin := [3]float64{95, 195, 295}
	expectMax := [3]float64{105, 205, 305}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected ~%f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected ~%f", i, max[i], expectMax[i])
		}
	}
}
