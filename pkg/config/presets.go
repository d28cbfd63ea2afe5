package config

import (
	pkgerrors "github.com/pkg/errors"
)

// Preset is a named pair of default parameters for quick setup.
type Preset struct {
	Baseline   float64
	SystemTime float64
}

// Presets are the quick settings of the field methodology: the optimistic
// plan assumes the maintenance crew repairs a hose in 1.5 h, the realistic
// one in 2 h.
var Presets = map[string]Preset{
	"optimistic": {Baseline: 0.05, SystemTime: 1.5},
	"realistic":  {Baseline: 0.05, SystemTime: 2.0},
}

// ApplyPreset writes a named preset into the config and saves it.
func ApplyPreset(c Config, name string) error {
	p, ok := Presets[name]
	if !ok {
		return pkgerrors.Errorf("unknown preset %q", name)
	}

	c.SetBaseline(p.Baseline)
	c.SetSystemTime(p.SystemTime)

	return c.Save()
}
