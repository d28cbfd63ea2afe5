// Package readiness computes the technical readiness coefficient (KTG) of
// mining-site equipment after a hydraulic-hose maintenance system is
// introduced, and generates parameter sweeps for analysis.
package readiness

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// A readiness coefficient is a fraction of 1: 1.0 means the equipment is
// always available. Every computed coefficient is clamped to this range.
const (
	MinCoefficient = 0.01
	MaxCoefficient = 1.0
)

// ErrInvalidArgument is returned when an input is outside its domain.
var ErrInvalidArgument = errors.New("invalid argument")

// Params is the full parameter set a caller supplies on each recompute.
// It is passed by value: there is no session state anywhere in this package.
type Params struct {
	// Baseline is the readiness coefficient before the maintenance system
	// is introduced, in [MinCoefficient, MaxCoefficient].
	Baseline float64 `json:"baseline"`
	// SystemTime is the planned repair duration (hours) after the
	// maintenance system is introduced.
	SystemTime float64 `json:"systemTime"`
	// TMin and TMax bound the historical repair durations (hours) the
	// sweep covers.
	TMin float64 `json:"tMin"`
	TMax float64 `json:"tMax"`
}

// Compute returns the readiness coefficient after the maintenance system is
// introduced: baseline * systemTime / historicalTime, clamped to
// [MinCoefficient, MaxCoefficient].
//
// historicalTime must be positive and baseline must already be a valid
// coefficient. systemTime is not validated: a zero or negative value is
// accepted and the result clamps to the floor.
func Compute(baseline, systemTime, historicalTime float64) (float64, error) {
	if historicalTime <= 0 {
		return 0, pkgerrors.Wrapf(ErrInvalidArgument, "historical recovery time must be greater than 0, got %g", historicalTime)
	}
	if baseline < MinCoefficient || baseline > MaxCoefficient {
		return 0, pkgerrors.Wrapf(ErrInvalidArgument, "baseline coefficient must be in [%g, %g], got %g", MinCoefficient, MaxCoefficient, baseline)
	}

	raw := baseline * (systemTime / historicalTime)

	return clamp(raw, MinCoefficient, MaxCoefficient), nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
