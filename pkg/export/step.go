package export

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/Metaverse-Colab-for-Fusion-Energy/mcfe-galaxy/pkg/kernel"
)

// WriteSTEP writes the mesh as an ISO 10303-21 (STEP AP214) file containing
// a single FACETED_BREP solid. Every triangle becomes one planar
// FACE_SURFACE bound by a POLY_LOOP and carrying its own PLANE, so readers
// that rebuild solids from face geometry can import the file. Shared
// vertices are deduplicated into common CARTESIAN_POINT entities.
//
// No Go library writes STEP, so the part-21 encoding is done here directly.
// The entity graph follows the minimal faceted-brep product structure that
// mainstream CAD importers accept.
func WriteSTEP(w io.Writer, m *kernel.Mesh, name string) error {
	if m == nil || m.IsEmpty() {
		return ErrEmptyMesh
	}

	bw := bufio.NewWriter(w)

	// Header section.
	fmt.Fprintln(bw, "ISO-10303-21;")
	fmt.Fprintln(bw, "HEADER;")
	fmt.Fprintf(bw, "FILE_DESCRIPTION(('faceted brep model of %s'),'2;1');\n", name)
	fmt.Fprintf(bw, "FILE_NAME('%s.step','%s',(''),(''),'mcfe-galaxy','','');\n",
		name, time.Now().UTC().Format("2006-01-02T15:04:05"))
	fmt.Fprintln(bw, "FILE_SCHEMA(('AUTOMOTIVE_DESIGN { 1 0 10303 214 1 1 1 1 }'));")
	fmt.Fprintln(bw, "ENDSEC;")
	fmt.Fprintln(bw, "DATA;")

	id := 0
	next := func() int {
		id++
		return id
	}
	entity := func(format string, args ...interface{}) int {
		n := next()
		fmt.Fprintf(bw, "#%d=", n)
		fmt.Fprintf(bw, format, args...)
		fmt.Fprintln(bw, ";")
		return n
	}

	// Product and representation scaffolding.
	appCtx := entity("APPLICATION_CONTEXT('automotive design')")
	entity("APPLICATION_PROTOCOL_DEFINITION('international standard','automotive_design',2010,#%d)", appCtx)
	prodCtx := entity("PRODUCT_CONTEXT('',#%d,'mechanical')", appCtx)
	product := entity("PRODUCT('%s','%s','',(#%d))", name, name, prodCtx)
	formation := entity("PRODUCT_DEFINITION_FORMATION('','',#%d)", product)
	defCtx := entity("PRODUCT_DEFINITION_CONTEXT('part definition',#%d,'design')", appCtx)
	prodDef := entity("PRODUCT_DEFINITION('design','',#%d,#%d)", formation, defCtx)
	prodShape := entity("PRODUCT_DEFINITION_SHAPE('','',#%d)", prodDef)

	lengthUnit := entity("(LENGTH_UNIT()NAMED_UNIT(*)SI_UNIT(.MILLI.,.METRE.))")
	angleUnit := entity("(NAMED_UNIT(*)PLANE_ANGLE_UNIT()SI_UNIT($,.RADIAN.))")
	solidAngleUnit := entity("(NAMED_UNIT(*)SI_UNIT($,.STERADIAN.)SOLID_ANGLE_UNIT())")
	uncertainty := entity("UNCERTAINTY_MEASURE_WITH_UNIT(LENGTH_MEASURE(1.E-06),#%d,'distance_accuracy_value','')", lengthUnit)
	geomCtx := entity("(GEOMETRIC_REPRESENTATION_CONTEXT(3)GLOBAL_UNCERTAINTY_ASSIGNED_CONTEXT((#%d))GLOBAL_UNIT_ASSIGNED_CONTEXT((#%d,#%d,#%d))REPRESENTATION_CONTEXT('',''))",
		uncertainty, lengthUnit, angleUnit, solidAngleUnit)

	origin := entity("CARTESIAN_POINT('',(0.,0.,0.))")
	axis := entity("DIRECTION('',(0.,0.,1.))")
	refDir := entity("DIRECTION('',(1.,0.,0.))")
	placement := entity("AXIS2_PLACEMENT_3D('',#%d,#%d,#%d)", origin, axis, refDir)

	// Deduplicated vertex points.
	type vec3 [3]float32
	pointID := make(map[vec3]int)
	pointFor := func(idx uint32) int {
		vi := int(idx) * 3
		v := vec3{m.Vertices[vi], m.Vertices[vi+1], m.Vertices[vi+2]}
		if n, ok := pointID[v]; ok {
			return n
		}
		n := entity("CARTESIAN_POINT('',(%s,%s,%s))", stepFloat(v[0]), stepFloat(v[1]), stepFloat(v[2]))
		pointID[v] = n
		return n
	}

	// One planar face per triangle. Degenerate triangles (repeated or
	// collinear points) are skipped: a poly loop needs three distinct
	// vertices and the face needs a well-defined plane.
	faces := make([]int, 0, m.TriangleCount())
	for i := 0; i < m.TriangleCount(); i++ {
		p0 := pointFor(m.Indices[i*3])
		p1 := pointFor(m.Indices[i*3+1])
		p2 := pointFor(m.Indices[i*3+2])
		if p0 == p1 || p1 == p2 || p0 == p2 {
			continue
		}
		normal, ref, ok := planeFrame(m.Triangle(i))
		if !ok {
			continue
		}
		loop := entity("POLY_LOOP('',(#%d,#%d,#%d))", p0, p1, p2)
		bound := entity("FACE_OUTER_BOUND('',#%d,.T.)", loop)
		normalDir := entity("DIRECTION('',(%s,%s,%s))",
			stepFloat(float32(normal[0])), stepFloat(float32(normal[1])), stepFloat(float32(normal[2])))
		faceRefDir := entity("DIRECTION('',(%s,%s,%s))",
			stepFloat(float32(ref[0])), stepFloat(float32(ref[1])), stepFloat(float32(ref[2])))
		facePlacement := entity("AXIS2_PLACEMENT_3D('',#%d,#%d,#%d)", p0, normalDir, faceRefDir)
		plane := entity("PLANE('',#%d)", facePlacement)
		faces = append(faces, entity("FACE_SURFACE('',(#%d),#%d,.T.)", bound, plane))
	}
	if len(faces) == 0 {
		return fmt.Errorf("export: mesh contains no non-degenerate triangles")
	}

	shell := next()
	fmt.Fprintf(bw, "#%d=CLOSED_SHELL('',(", shell)
	for i, f := range faces {
		if i > 0 {
			bw.WriteByte(',')
		}
		fmt.Fprintf(bw, "#%d", f)
	}
	fmt.Fprintln(bw, "));")

	brep := entity("FACETED_BREP('',#%d)", shell)
	repr := entity("FACETED_BREP_SHAPE_REPRESENTATION('%s',(#%d,#%d),#%d)", name, placement, brep, geomCtx)
	entity("SHAPE_DEFINITION_REPRESENTATION(#%d,#%d)", prodShape, repr)

	fmt.Fprintln(bw, "ENDSEC;")
	fmt.Fprintln(bw, "END-ISO-10303-21;")

	return bw.Flush()
}

// planeFrame derives a triangle's plane normal and an in-plane reference
// direction, both unit length. ok is false for degenerate (zero-area)
// triangles, which cannot carry a plane.
func planeFrame(t [3][3]float64) (normal, ref [3]float64, ok bool) {
	var e1, e2 [3]float64
	for i := 0; i < 3; i++ {
		e1[i] = t[1][i] - t[0][i]
		e2[i] = t[2][i] - t[0][i]
	}
	normal = [3]float64{
		e1[1]*e2[2] - e1[2]*e2[1],
		e1[2]*e2[0] - e1[0]*e2[2],
		e1[0]*e2[1] - e1[1]*e2[0],
	}
	nLen := math.Sqrt(normal[0]*normal[0] + normal[1]*normal[1] + normal[2]*normal[2])
	eLen := math.Sqrt(e1[0]*e1[0] + e1[1]*e1[1] + e1[2]*e1[2])
	if nLen == 0 || eLen == 0 {
		return normal, ref, false
	}
	for i := 0; i < 3; i++ {
		normal[i] /= nLen
		ref[i] = e1[i] / eLen
	}
	return normal, ref, true
}

// stepFloat formats a float for part-21 output, which requires a decimal
// point in every real literal.
func stepFloat(f float32) string {
	s := fmt.Sprintf("%g", f)
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return s
		}
	}
	return s + "."
}
