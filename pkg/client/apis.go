package client

import (
	"encoding/json"
	"fmt"
	"strconv"

	pkgerrors "github.com/pkg/errors"

	"github.com/oneflow1982/ktg/pkg/config"
	"github.com/oneflow1982/ktg/pkg/readiness"
	"github.com/oneflow1982/ktg/pkg/types"
)

func (c *Client) Compute(baseline, systemTime, historicalTime float64) (float64, error) {
	payload, err := json.Marshal(map[string]float64{
		"baseline":       baseline,
		"systemTime":     systemTime,
		"historicalTime": historicalTime,
	})
	if err != nil {
		return 0, err
	}

	ret, err := c.Post("/compute", string(payload))
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "failed to compute readiness coefficient")
	}

	v, err := strconv.ParseFloat(ret, 64)
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "failed to parse compute response")
	}
	return v, nil
}

func (c *Client) Sweep(p readiness.Params) (*readiness.Sweep, error) {
	ret, err := c.postParams("/sweep", p)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to generate sweep")
	}

	var s readiness.Sweep
	if err := json.Unmarshal([]byte(ret), &s); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal sweep")
	}
	return &s, nil
}

func (c *Client) Grid(p readiness.Params) (*readiness.Grid, error) {
	ret, err := c.postParams("/grid", p)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to generate grid")
	}

	var g readiness.Grid
	if err := json.Unmarshal([]byte(ret), &g); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal grid")
	}
	return &g, nil
}

func (c *Client) Analysis(p readiness.Params) (*types.AnalysisResult, error) {
	ret, err := c.postParams("/analysis", p)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to analyze sweep")
	}

	var res types.AnalysisResult
	if err := json.Unmarshal([]byte(ret), &res); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal analysis")
	}
	return &res, nil
}

func (c *Client) Report(p readiness.Params) (string, error) {
	ret, err := c.postParams("/report", p)
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to generate report")
	}
	return ret, nil
}

func (c *Client) GetConfig() (*config.RawFileConfig, error) {
	ret, err := c.Get("/config")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get config")
	}

	var conf config.RawFileConfig
	if err := json.Unmarshal([]byte(ret), &conf); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal config")
	}
	return &conf, nil
}

func (c *Client) SetBaseline(v float64) (string, error) {
	return c.Put("/baseline", strconv.FormatFloat(v, 'g', -1, 64))
}

func (c *Client) SetSystemTime(v float64) (string, error) {
	return c.Put("/system-time", strconv.FormatFloat(v, 'g', -1, 64))
}

func (c *Client) SetRange(tMin, tMax float64) (string, error) {
	return c.Put("/range", fmt.Sprintf(`{"tMin":%g,"tMax":%g}`, tMin, tMax))
}

func (c *Client) GetVersion() (string, error) {
	ret, err := c.Get("/version")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get version")
	}
	// Remove "" around JSON string. I don't want to use a JSON decoder just for this.
	if len(ret) >= 2 && ret[0] == '"' {
		ret = ret[1 : len(ret)-1]
	}
	return ret, nil
}

func (c *Client) postParams(path string, p readiness.Params) (string, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return c.Post(path, string(payload))
}
