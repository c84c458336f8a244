package vessel

import (
	"fmt"

	"github.com/Metaverse-Colab-for-Fusion-Energy/mcfe-galaxy/pkg/kernel"
)

const (
	// slabThickness is the thickness of floors and support rings.
	slabThickness = 0.3

	// cutBoxSize is the edge length of the half-section cut box.
	cutBoxSize = 100.0
)

// hollowCylinder constructs an annular shell: the set-difference of two
// coaxial cylinders sharing height and z offset. The outer radius must
// strictly exceed the inner radius; equal radii are rejected rather than
// producing a zero-volume solid.
func hollowCylinder(k kernel.Kernel, height, outer, inner, zOffset float64) (kernel.Solid, error) {
	if outer <= inner {
		return nil, fmt.Errorf("%w: outer radius %g must exceed inner radius %g", ErrInvalidGeometry, outer, inner)
	}

	outerCyl, err := k.Cylinder(height, outer)
	if err != nil {
		return nil, err
	}
	innerCyl, err := k.Cylinder(height, inner)
	if err != nil {
		return nil, err
	}

	shell := k.Difference(outerCyl, innerCyl)
	if zOffset != 0 {
		shell = k.Translate(shell, 0, 0, zOffset)
	}
	return shell, nil
}

// disk constructs a flat cylindrical slab centered at the given z offset.
func disk(k kernel.Kernel, thickness, radius, zOffset float64) (kernel.Solid, error) {
	d, err := k.Cylinder(thickness, radius)
	if err != nil {
		return nil, err
	}
	return k.Translate(d, 0, 0, zOffset), nil
}

// Build constructs the full containment building solid: reactor shielding,
// scaled building shell, core and building floors, three support rings and
// the roof, unioned into one body, with one half of the assembly removed by
// a large cut box to expose the cross section.
//
// The build is all-or-nothing: the first invalid dimension or kernel
// failure aborts with no partial result.
func Build(k kernel.Kernel, p Params) (kernel.Solid, error) {
	dims := Derive(p)
	coreRadius := dims.CoreRadius
	coreHeight := dims.CoreHeight
	buildingRadius := coreRadius * p.ScaleFactor
	buildingHeight := coreHeight * p.ScaleFactor

	shielding, err := hollowCylinder(k, coreHeight, coreRadius, coreRadius-p.ShieldThickness, 0)
	if err != nil {
		return nil, fmt.Errorf("reactor shielding: %w", err)
	}

	shell, err := hollowCylinder(k, buildingHeight, buildingRadius, buildingRadius-p.ContainmentThickness, 0)
	if err != nil {
		return nil, fmt.Errorf("building shell: %w", err)
	}

	coreFloor, err := disk(k, slabThickness, coreRadius, -coreHeight/2)
	if err != nil {
		return nil, fmt.Errorf("core floor: %w", err)
	}

	buildingFloor, err := disk(k, slabThickness, buildingRadius, -buildingHeight/2)
	if err != nil {
		return nil, fmt.Errorf("building floor: %w", err)
	}

	// Annular support rings tie the shielding to the building shell at the
	// core's upper, middle and lower planes.
	supportUpper, err := hollowCylinder(k, slabThickness, buildingRadius, coreRadius, coreHeight/2)
	if err != nil {
		return nil, fmt.Errorf("upper support ring: %w", err)
	}
	supportMiddle, err := hollowCylinder(k, slabThickness, buildingRadius, coreRadius, 0)
	if err != nil {
		return nil, fmt.Errorf("middle support ring: %w", err)
	}
	supportLower, err := hollowCylinder(k, slabThickness, buildingRadius, coreRadius, -coreHeight/2)
	if err != nil {
		return nil, fmt.Errorf("lower support ring: %w", err)
	}

	roofKind := p.Roof
	if roofKind == "" {
		roofKind = RoofCone
	}
	roof, err := buildRoof(k, roofKind, buildingRadius, buildingHeight, p.ContainmentThickness)
	if err != nil {
		return nil, fmt.Errorf("roof: %w", err)
	}

	total := k.Union(shielding, shell)
	total = k.Union(total, coreFloor)
	total = k.Union(total, buildingFloor)
	total = k.Union(total, supportUpper)
	total = k.Union(total, supportMiddle)
	total = k.Union(total, supportLower)
	total = k.Union(total, roof)

	// Half-section cut: remove the y > 0 half of the assembly so the
	// exported model exposes the internal structure.
	cut, err := k.Box(cutBoxSize, cutBoxSize, cutBoxSize)
	if err != nil {
		return nil, fmt.Errorf("section cut box: %w", err)
	}
	cut = k.Translate(cut, 0, cutBoxSize/2, 0)

	return k.Difference(total, cut), nil
}
