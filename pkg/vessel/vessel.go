package vessel

import (
	"errors"
)

// ErrInvalidGeometry indicates a primitive construction was requested with
// dimensions that cannot form a valid solid, e.g. a hollow cylinder whose
// outer radius does not exceed its inner radius. The build aborts with no
// partial result.
var ErrInvalidGeometry = errors.New("invalid geometry")

// ErrInvalidRoofType indicates a roof kind outside the supported set.
var ErrInvalidRoofType = errors.New("invalid roof type")

// Params holds the input configuration for a containment building.
// Values are read once from the parameter document and never mutated.
type Params struct {
	// RadialBuild is the ordered sequence of radial distances of the
	// reactor core build, innermost first.
	RadialBuild []float64

	// MajorRadius is the plasma major radius,
	// derived as aspect_ratio * RadialBuild[0] by the config loader.
	MajorRadius float64

	// ScaleFactor scales the core dimensions up to the building shell.
	ScaleFactor float64

	// ShieldThickness is the radial thickness of the reactor shielding.
	ShieldThickness float64

	// ContainmentThickness is the wall thickness of the containment shell.
	ContainmentThickness float64

	// Roof selects the roof construction. Empty defaults to RoofCone.
	Roof RoofKind
}

// Dimensions are the scalar quantities derived from Params.
type Dimensions struct {
	CoreRadius float64
	CoreHeight float64
}

// coreRadiusOffset is the fixed clearance added to the radial build when
// sizing the reactor core.
const coreRadiusOffset = 0.8

// Derive computes the core dimensions from the build parameters:
// the core radius is the radial build total plus the fixed offset plus the
// major radius, and the core height is twice the core radius.
//
// Derive performs no validation; the config loader rejects malformed
// parameters before any geometry work begins.
func Derive(p Params) Dimensions {
	var total float64
	for _, r := range p.RadialBuild {
		total += r
	}
	radius := total + coreRadiusOffset + p.MajorRadius
	return Dimensions{
		CoreRadius: radius,
		CoreHeight: 2 * radius,
	}
}
