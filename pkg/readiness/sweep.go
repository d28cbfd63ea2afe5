package readiness

import (
	pkgerrors "github.com/pkg/errors"
)

// SweepStep is the historical-time increment of the primary sweep, in hours.
const SweepStep = 0.5

// Axes of the secondary two-dimensional grid. The system-time axis runs
// 1.0 <= t < GridSystemMax in GridSystemStep increments; the historical axis
// runs tMin..tMax inclusive in GridHistoricalStep increments.
const (
	GridSystemMin      = 1.0
	GridSystemMax      = 6.0
	GridSystemStep     = 0.5
	GridHistoricalStep = 1.0
)

// stepEpsilon absorbs float error when deciding whether a step still falls
// inside an inclusive range bound.
const stepEpsilon = 1e-9

// Sweep holds the fully materialized result of sweeping the historical
// recovery time. The three slices are parallel; ChangePercent is relative to
// the baseline coefficient.
type Sweep struct {
	Times         []float64 `json:"times"`
	Values        []float64 `json:"values"`
	ChangePercent []float64 `json:"changePercent"`
}

// Len returns the number of sweep points.
func (s *Sweep) Len() int {
	return len(s.Times)
}

// GenerateSweep computes the readiness coefficient for every historical
// recovery time from tMin to tMax inclusive, stepping by SweepStep. Bounds
// must be positive and tMin must not exceed tMax.
func GenerateSweep(baseline, systemTime, tMin, tMax float64) (*Sweep, error) {
	if tMin <= 0 || tMax <= 0 {
		return nil, pkgerrors.Wrapf(ErrInvalidArgument, "sweep bounds must be greater than 0, got [%g, %g]", tMin, tMax)
	}
	if tMin > tMax {
		return nil, pkgerrors.Wrapf(ErrInvalidArgument, "sweep lower bound %g exceeds upper bound %g", tMin, tMax)
	}

	n := int((tMax-tMin)/SweepStep + stepEpsilon)
	s := &Sweep{
		Times:         make([]float64, 0, n+1),
		Values:        make([]float64, 0, n+1),
		ChangePercent: make([]float64, 0, n+1),
	}

	for i := 0; i <= n; i++ {
		t := tMin + float64(i)*SweepStep
		v, err := Compute(baseline, systemTime, t)
		if err != nil {
			return nil, err
		}
		s.Times = append(s.Times, t)
		s.Values = append(s.Values, v)
		s.ChangePercent = append(s.ChangePercent, changePercent(v, baseline))
	}

	return s, nil
}

// Grid is the secondary two-dimensional sweep used for the heatmap view.
// Values[i][j] is the coefficient at SystemTimes[i] and HistoricalTimes[j].
type Grid struct {
	SystemTimes     []float64   `json:"systemTimes"`
	HistoricalTimes []float64   `json:"historicalTimes"`
	Values          [][]float64 `json:"values"`
}

// GenerateGrid sweeps both the system recovery time (fixed small range) and
// the historical recovery time (tMin..tMax) and computes the coefficient for
// every cell. The per-cell computation is exactly Compute.
func GenerateGrid(baseline, tMin, tMax float64) (*Grid, error) {
	if tMin <= 0 || tMax <= 0 {
		return nil, pkgerrors.Wrapf(ErrInvalidArgument, "grid bounds must be greater than 0, got [%g, %g]", tMin, tMax)
	}
	if tMin > tMax {
		return nil, pkgerrors.Wrapf(ErrInvalidArgument, "grid lower bound %g exceeds upper bound %g", tMin, tMax)
	}

	g := &Grid{}
	for t := GridSystemMin; t < GridSystemMax-stepEpsilon; t += GridSystemStep {
		g.SystemTimes = append(g.SystemTimes, t)
	}
	n := int((tMax-tMin)/GridHistoricalStep + stepEpsilon)
	for j := 0; j <= n; j++ {
		g.HistoricalTimes = append(g.HistoricalTimes, tMin+float64(j)*GridHistoricalStep)
	}

	g.Values = make([][]float64, len(g.SystemTimes))
	for i, sysT := range g.SystemTimes {
		row := make([]float64, len(g.HistoricalTimes))
		for j, histT := range g.HistoricalTimes {
			v, err := Compute(baseline, sysT, histT)
			if err != nil {
				return nil, err
			}
			row[j] = v
		}
		g.Values[i] = row
	}

	return g, nil
}

// changePercent is the change of v relative to the baseline, in percent.
// Baseline is validated to be at least MinCoefficient before any sweep runs;
// the zero guard stays so a misbehaving caller gets 0 instead of +Inf.
func changePercent(v, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (v - baseline) / baseline * 100
}
