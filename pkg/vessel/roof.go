package vessel

import (
	"fmt"

	"github.com/Metaverse-Colab-for-Fusion-Energy/mcfe-galaxy/pkg/kernel"
)

// RoofKind selects the roof construction of the containment building.
type RoofKind string

const (
	RoofFlat  RoofKind = "flat"
	RoofDomed RoofKind = "domed"
	RoofCone  RoofKind = "cone"
)

// ParseRoofKind validates a roof kind string from the parameter document.
func ParseRoofKind(s string) (RoofKind, error) {
	switch RoofKind(s) {
	case RoofFlat, RoofDomed, RoofCone:
		return RoofKind(s), nil
	}
	return "", fmt.Errorf("%w: %q (want flat, domed or cone)", ErrInvalidRoofType, s)
}

const (
	// roofThickness is the slab thickness shared by all roof kinds.
	roofThickness = 0.3

	// coneWallThickness is the wall thickness of the conical roof cap.
	coneWallThickness = 0.2
)

// buildRoof constructs the roof solid for the given kind, sized to the
// building radius and positioned to sit on top of a building of the given
// height (buildings are centered on z=0).
func buildRoof(k kernel.Kernel, kind RoofKind, radius, buildingHeight, containThickness float64) (kernel.Solid, error) {
	offset := buildingHeight/2 + roofThickness/2

	switch kind {
	case RoofFlat:
		disk, err := k.Cylinder(roofThickness, radius)
		if err != nil {
			return nil, fmt.Errorf("flat roof: %w", err)
		}
		return k.Translate(disk, 0, 0, offset), nil

	case RoofDomed:
		outer, err := k.Sphere(radius)
		if err != nil {
			return nil, fmt.Errorf("domed roof outer sphere: %w", err)
		}
		inner, err := k.Sphere(radius - containThickness)
		if err != nil {
			return nil, fmt.Errorf("domed roof inner sphere: %w", err)
		}
		shell := k.Translate(k.Difference(outer, inner), 0, 0, offset)

		// Remove everything below the building's top plane so only the
		// dome cap remains, sitting flush on the shell.
		cut, err := k.Box(3*radius, 3*radius, 2*radius)
		if err != nil {
			return nil, fmt.Errorf("domed roof cut box: %w", err)
		}
		cut = k.Translate(cut, 0, 0, buildingHeight/2-radius)
		return k.Difference(shell, cut), nil

	case RoofCone:
		coneHeight := 4 * roofThickness
		chamfer := 0.75 * coneHeight

		outer, err := k.ChamferedCylinder(coneHeight, radius, chamfer)
		if err != nil {
			return nil, fmt.Errorf("cone roof outer: %w", err)
		}
		inner, err := k.ChamferedCylinder(coneHeight, radius-coneWallThickness, chamfer)
		if err != nil {
			return nil, fmt.Errorf("cone roof inner: %w", err)
		}
		// Drop the inner taper so the cap keeps a closed top.
		inner = k.Translate(inner, 0, 0, -roofThickness)

		cap := k.Difference(outer, inner)
		return k.Translate(cap, 0, 0, offset), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidRoofType, kind)
}
