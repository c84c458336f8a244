package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Metaverse-Colab-for-Fusion-Energy/mcfe-galaxy/pkg/config"
	"github.com/Metaverse-Colab-for-Fusion-Energy/mcfe-galaxy/pkg/export"
	"github.com/Metaverse-Colab-for-Fusion-Energy/mcfe-galaxy/pkg/kernel"
	"github.com/Metaverse-Colab-for-Fusion-Energy/mcfe-galaxy/pkg/kernel/manifold"
	"github.com/Metaverse-Colab-for-Fusion-Energy/mcfe-galaxy/pkg/kernel/sdfx"
	"github.com/Metaverse-Colab-for-Fusion-Energy/mcfe-galaxy/pkg/vessel"
)

var (
	buildOutput    string
	buildRoofType  string
	buildMeshCells int
	buildKernel    string
)

var buildCmd = &cobra.Command{
	Use:   "build <parameters-file>",
	Short: "Build the containment building and export it",
	Long: `Build the containment building solid from a parameter document and
export it. The document is JSON (or YAML by extension) with the fields:

  geometry.aspect_ratio                            float
  geometry.radial_build                            [float, ...]
  containment_vessel.building_scale_factor         float
  containment_vessel.shield_thickness              float
  containment_vessel.containment_vessel_thickness  float
  containment_vessel.roof_type                     flat|domed|cone (optional)

The output format is chosen by the output path's extension
(step/stp, 3mf, stl).

Examples:
  containment-vessel build parameters.json
  containment-vessel build parameters.json -o models/containment.3mf
  containment-vessel build parameters.yaml --roof domed`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "containment.step", "Output file path; extension selects the format")
	buildCmd.Flags().StringVar(&buildRoofType, "roof", "", "Override the roof type (flat, domed, cone)")
	buildCmd.Flags().IntVar(&buildMeshCells, "mesh-cells", 0, "Tessellation resolution in marching cubes cells (0 = kernel default)")
	buildCmd.Flags().StringVar(&buildKernel, "kernel", "sdfx", "Geometry kernel backend (sdfx, manifold)")
}

// newKernel constructs the selected geometry kernel backend.
func newKernel() (kernel.Kernel, error) {
	switch buildKernel {
	case "sdfx":
		if buildMeshCells > 0 {
			return sdfx.NewWithResolution(buildMeshCells), nil
		}
		return sdfx.New(), nil
	case "manifold":
		return manifold.New()
	}
	return nil, fmt.Errorf("unknown kernel backend %q (want sdfx or manifold)", buildKernel)
}

func runBuild(cmd *cobra.Command, args []string) error {
	doc, err := config.Load(args[0])
	if err != nil {
		return err
	}
	params, err := doc.Params()
	if err != nil {
		return err
	}

	if buildRoofType != "" {
		roof, err := vessel.ParseRoofKind(buildRoofType)
		if err != nil {
			return err
		}
		params.Roof = roof
	}

	k, err := newKernel()
	if err != nil {
		return err
	}

	dims := vessel.Derive(params)
	logger.Info("building containment vessel",
		zap.Float64("core_radius", dims.CoreRadius),
		zap.Float64("core_height", dims.CoreHeight),
		zap.Float64("scale_factor", params.ScaleFactor),
		zap.String("roof", string(params.Roof)))

	solid, err := vessel.Build(k, params)
	if err != nil {
		return fmt.Errorf("building containment vessel: %w", err)
	}

	mesh, err := k.ToMesh(solid)
	if err != nil {
		return fmt.Errorf("tessellating containment vessel: %w", err)
	}
	logger.Debug("tessellated",
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Float64("volume", mesh.Volume()))

	if err := export.Export(buildOutput, mesh); err != nil {
		return err
	}

	logger.Info("exported containment vessel",
		zap.String("path", buildOutput),
		zap.Int("triangles", mesh.TriangleCount()))
	return nil
}
