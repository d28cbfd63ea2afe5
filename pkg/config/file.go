package config

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/oneflow1982/ktg/pkg/readiness"
	"github.com/oneflow1982/ktg/pkg/utils/ptr"
)

var defaultFileConfig = &RawFileConfig{
	Baseline:   ptr.To(0.05),
	SystemTime: ptr.To(2.0),
	TMin:       ptr.To(4.0),
	TMax:       ptr.To(24.0),
}

var _ Config = &File{}

// File is a Config backed by a JSON file on disk.
type File struct {
	c        *RawFileConfig
	mu       *sync.RWMutex
	filepath string
}

func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
		mu:       &sync.RWMutex{},
	}
	err := f.Load()
	if err != nil {
		return nil, err
	}

	return f, nil
}

func NewFileFromConfig(c *RawFileConfig, configPath string) *File {
	if c == nil {
		c = defaultFileConfig
	}

	f := &File{
		c:        c,
		mu:       &sync.RWMutex{},
		filepath: configPath,
	}

	return f
}

// RawFileConfig is the on-disk shape. Fields are pointers so an absent key
// falls back to the default instead of a zero.
type RawFileConfig struct {
	Baseline   *float64 `json:"baseline,omitempty"`
	SystemTime *float64 `json:"systemTime,omitempty"`
	TMin       *float64 `json:"tMin,omitempty"`
	TMax       *float64 `json:"tMax,omitempty"`
}

func NewRawFileConfigFromConfig(c Config) (*RawFileConfig, error) {
	if c == nil {
		return nil, pkgerrors.New("config is nil")
	}

	rawConfig := &RawFileConfig{
		Baseline:   ptr.To(c.Baseline()),
		SystemTime: ptr.To(c.SystemTime()),
		TMin:       ptr.To(c.TMin()),
		TMax:       ptr.To(c.TMax()),
	}

	return rawConfig, nil
}

func (f *File) Baseline() float64 {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.Baseline != nil {
		return *f.c.Baseline
	}
	return *defaultFileConfig.Baseline
}

func (f *File) SystemTime() float64 {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.SystemTime != nil {
		return *f.c.SystemTime
	}
	return *defaultFileConfig.SystemTime
}

func (f *File) TMin() float64 {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.TMin != nil {
		return *f.c.TMin
	}
	return *defaultFileConfig.TMin
}

func (f *File) TMax() float64 {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c.TMax != nil {
		return *f.c.TMax
	}
	return *defaultFileConfig.TMax
}

func (f *File) SetBaseline(v float64) {
	if f.c == nil {
		panic("config is nil")
	}

	if v < readiness.MinCoefficient || v > readiness.MaxCoefficient {
		panic("baseline must be a valid readiness coefficient")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.Baseline = &v
}

func (f *File) SetSystemTime(v float64) {
	if f.c == nil {
		panic("config is nil")
	}

	if v <= 0 {
		panic("system recovery time must be greater than 0")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.SystemTime = &v
}

func (f *File) SetRange(tMin, tMax float64) {
	if f.c == nil {
		panic("config is nil")
	}

	if tMin <= 0 || tMax <= 0 || tMin > tMax {
		panic("analysis range must be positive and ordered")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.TMin = &tMin
	f.c.TMax = &tMax
}

func (f *File) Params() readiness.Params {
	return readiness.Params{
		Baseline:   f.Baseline(),
		SystemTime: f.SystemTime(),
		TMin:       f.TMin(),
		TMax:       f.TMax(),
	}
}

func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	fp, err := os.Open(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			// If the file does not exist, return the empty config.
			// Do not make f.c a nil.
			f.c = &RawFileConfig{}
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	// Since we want to tell if the file is empty, using json.Decoder will
	// not work.
	b, err := io.ReadAll(fp)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read file %s", f.filepath)
	}

	if strings.TrimSpace(string(b)) == "" {
		// If the file is empty, return the empty config.
		// Do not make f.c a nil.
		f.c = &RawFileConfig{}
		return nil
	}

	conf := RawFileConfig{}
	err = json.Unmarshal(b, &conf)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal config from file %s", f.filepath)
	}
	f.c = &conf

	return nil
}

func (f *File) Save() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		return pkgerrors.New("config is nil")
	}

	fp, err := os.OpenFile(f.filepath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	enc := json.NewEncoder(fp)
	enc.SetIndent("", "  ")
	err = enc.Encode(f.c)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to encode config to file %s", f.filepath)
	}

	return nil
}

func (f *File) LogrusFields() logrus.Fields {
	if f.c == nil {
		panic("config is nil")
	}

	return logrus.Fields{
		"baseline":   f.Baseline(),
		"systemTime": f.SystemTime(),
		"tMin":       f.TMin(),
		"tMax":       f.TMax(),
	}
}
