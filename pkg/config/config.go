// Package config loads and validates the containment-vessel parameter
// document. All input validation happens here, before any geometry work
// begins; the vessel builder trusts the Params it receives.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Metaverse-Colab-for-Fusion-Energy/mcfe-galaxy/pkg/vessel"
)

// Document is the on-disk parameter document. The canonical form is JSON;
// a YAML file with the same structure is accepted by extension.
type Document struct {
	Geometry          GeometrySection    `json:"geometry" yaml:"geometry"`
	ContainmentVessel ContainmentSection `json:"containment_vessel" yaml:"containment_vessel"`
}

// GeometrySection describes the reactor core geometry.
type GeometrySection struct {
	AspectRatio float64   `json:"aspect_ratio" yaml:"aspect_ratio"`
	RadialBuild []float64 `json:"radial_build" yaml:"radial_build"`
}

// ContainmentSection describes the containment building.
type ContainmentSection struct {
	BuildingScaleFactor        float64 `json:"building_scale_factor" yaml:"building_scale_factor"`
	ShieldThickness            float64 `json:"shield_thickness" yaml:"shield_thickness"`
	ContainmentVesselThickness float64 `json:"containment_vessel_thickness" yaml:"containment_vessel_thickness"`

	// RoofType is optional and defaults to "cone".
	RoofType string `json:"roof_type,omitempty" yaml:"roof_type,omitempty"`
}

// fieldErr reports a missing or malformed field by its document path.
func fieldErr(field, reason string) error {
	return fmt.Errorf("config: field %q %s", field, reason)
}

// Load reads and decodes a parameter document. Files ending in .yaml or
// .yml are decoded as YAML, everything else as JSON.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var doc Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	return &doc, nil
}

// Params validates the document and converts it into build parameters.
// The major radius is derived as aspect_ratio times the innermost radial
// build entry.
func (d *Document) Params() (vessel.Params, error) {
	if len(d.Geometry.RadialBuild) == 0 {
		return vessel.Params{}, fieldErr("geometry.radial_build", "must be a non-empty sequence")
	}
	for i, r := range d.Geometry.RadialBuild {
		if r < 0 {
			return vessel.Params{}, fieldErr(
				fmt.Sprintf("geometry.radial_build[%d]", i), fmt.Sprintf("is %g, must be non-negative", r))
		}
	}
	if d.Geometry.AspectRatio < 0 {
		return vessel.Params{}, fieldErr("geometry.aspect_ratio", fmt.Sprintf("is %g, must be non-negative", d.Geometry.AspectRatio))
	}

	cv := d.ContainmentVessel
	if cv.BuildingScaleFactor <= 1 {
		return vessel.Params{}, fieldErr("containment_vessel.building_scale_factor",
			fmt.Sprintf("is %g, must exceed 1 so the building encloses the core", cv.BuildingScaleFactor))
	}
	if cv.ShieldThickness <= 0 {
		return vessel.Params{}, fieldErr("containment_vessel.shield_thickness",
			fmt.Sprintf("is %g, must be positive", cv.ShieldThickness))
	}
	if cv.ContainmentVesselThickness <= 0 {
		return vessel.Params{}, fieldErr("containment_vessel.containment_vessel_thickness",
			fmt.Sprintf("is %g, must be positive", cv.ContainmentVesselThickness))
	}

	roof := vessel.RoofCone
	if cv.RoofType != "" {
		parsed, err := vessel.ParseRoofKind(cv.RoofType)
		if err != nil {
			return vessel.Params{}, fmt.Errorf("config: field %q: %w", "containment_vessel.roof_type", err)
		}
		roof = parsed
	}

	return vessel.Params{
		RadialBuild:          d.Geometry.RadialBuild,
		MajorRadius:          d.Geometry.AspectRatio * d.Geometry.RadialBuild[0],
		ScaleFactor:          cv.BuildingScaleFactor,
		ShieldThickness:      cv.ShieldThickness,
		ContainmentThickness: cv.ContainmentVesselThickness,
		Roof:                 roof,
	}, nil
}
