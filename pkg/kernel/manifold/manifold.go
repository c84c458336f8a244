// Package manifold is a placeholder for a CGo-based geometry kernel
// binding to the Manifold library (https://github.com/elalish/manifold).
// The binding is not wired up in this tree; New reports the backend as
// unavailable so callers can fall back to the sdfx kernel.
package manifold

import (
	"errors"

	"github.com/Metaverse-Colab-for-Fusion-Energy/mcfe-galaxy/pkg/kernel"
)

// New returns an error indicating the Manifold backend is not available.
func New() (kernel.Kernel, error) {
	return nil, errors.New("manifold kernel not available in this build")
}
