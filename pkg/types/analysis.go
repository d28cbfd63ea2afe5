// Package types holds wire types shared between the daemon and its clients.
package types

import (
	"github.com/oneflow1982/ktg/pkg/analysis"
	"github.com/oneflow1982/ktg/pkg/readiness"
)

// AnalysisResult is the daemon's combined sweep + analysis payload, so a
// presentation client can render chart, table, and summary from one call.
type AnalysisResult struct {
	Params    readiness.Params        `json:"params"`
	Sweep     *readiness.Sweep        `json:"sweep"`
	Summary   analysis.Summary        `json:"summary"`
	KeyPoints []analysis.KeyPoint     `json:"keyPoints,omitempty"`
	Rating    analysis.Rating         `json:"rating"`
	Advice    analysis.Recommendation `json:"advice"`
}
