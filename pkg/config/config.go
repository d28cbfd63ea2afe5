package config

import (
	"github.com/sirupsen/logrus"

	"github.com/oneflow1982/ktg/pkg/readiness"
)

// Config stores the default calculation parameters the daemon and CLI fall
// back to when the caller does not supply their own.
type Config interface {
	Baseline() float64
	SystemTime() float64
	TMin() float64
	TMax() float64

	SetBaseline(float64)
	SetSystemTime(float64)
	SetRange(tMin, tMax float64)

	// Params returns the stored defaults as one immutable parameter set.
	Params() readiness.Params

	LogrusFields() logrus.Fields

	// Load reads the configuration from the source.
	Load() error
	// Save saves the configuration to the source.
	Save() error
}
