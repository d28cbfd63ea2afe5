// Package analysis derives read-only statistics, ratings, and maintenance
// recommendations from a readiness sweep.
package analysis

import (
	"math"

	"github.com/oneflow1982/ktg/pkg/readiness"
)

// fullReadiness is the threshold above which a coefficient is treated as
// having reached the ceiling of 1.0, absorbing float rounding.
const fullReadiness = 0.999

// Summary aggregates a sweep into the headline numbers shown next to the
// chart and embedded in exported reports.
type Summary struct {
	Mean                  float64 `json:"mean"`
	Min                   float64 `json:"min"`
	Max                   float64 `json:"max"`
	MaxImprovementPercent float64 `json:"maxImprovementPercent"`
	// ReachesFull reports whether the sweep hits full readiness, and
	// FullAtTime is the largest historical time at which it still does.
	ReachesFull bool    `json:"reachesFull"`
	FullAtTime  float64 `json:"fullAtTime,omitempty"`
}

// Summarize computes mean/min/max of the sweep values and the maximum
// improvement over the baseline. An empty sweep yields a zero Summary.
func Summarize(s *readiness.Sweep, baseline float64) Summary {
	if s == nil || s.Len() == 0 {
		return Summary{}
	}

	sum := Summary{Min: math.Inf(1), Max: math.Inf(-1)}
	total := 0.0
	for i, v := range s.Values {
		total += v
		if v < sum.Min {
			sum.Min = v
		}
		if v > sum.Max {
			sum.Max = v
		}
		if v >= fullReadiness {
			// Values fall as historical time grows, so full
			// readiness holds for a prefix of the sweep. Keep the
			// last time of that prefix.
			sum.ReachesFull = true
			sum.FullAtTime = s.Times[i]
		}
	}
	sum.Mean = total / float64(s.Len())

	if baseline > 0 {
		sum.MaxImprovementPercent = (sum.Max - baseline) / baseline * 100
	}

	return sum
}

// KeyPoint is the sweep sample nearest to one of the canonical hour marks.
type KeyPoint struct {
	Mark          float64 `json:"mark"`
	Time          float64 `json:"time"`
	Value         float64 `json:"value"`
	ChangePercent float64 `json:"changePercent"`
}

// keyMarks are the historical-time marks called out beside the chart.
var keyMarks = []float64{4, 8, 12, 16, 20, 24}

// KeyPoints returns, for every canonical mark inside the sweep range, the
// nearest sweep sample.
func KeyPoints(s *readiness.Sweep) []KeyPoint {
	if s == nil || s.Len() == 0 {
		return nil
	}

	var points []KeyPoint
	lo, hi := s.Times[0], s.Times[s.Len()-1]
	for _, mark := range keyMarks {
		if mark < lo || mark > hi {
			continue
		}
		best := 0
		for i, t := range s.Times {
			if math.Abs(t-mark) < math.Abs(s.Times[best]-mark) {
				best = i
			}
		}
		points = append(points, KeyPoint{
			Mark:          mark,
			Time:          s.Times[best],
			Value:         s.Values[best],
			ChangePercent: s.ChangePercent[best],
		})
	}

	return points
}

// Rating classifies the effectiveness of the maintenance system by the
// maximum improvement it yields over the baseline.
type Rating string

const (
	RatingHigh   Rating = "high"
	RatingMedium Rating = "medium"
	RatingLow    Rating = "low"
)

// Rate maps a maximum improvement percentage to a Rating.
func Rate(improvementPercent float64) Rating {
	switch {
	case improvementPercent > 50:
		return RatingHigh
	case improvementPercent > 20:
		return RatingMedium
	default:
		return RatingLow
	}
}

// Status tells whether a single sweep point improved on the baseline.
func Status(changePercent float64) string {
	if changePercent >= 0 {
		return "improvement"
	}
	return "degradation"
}
