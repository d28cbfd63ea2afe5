package daemon

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oneflow1982/ktg/pkg/analysis"
	"github.com/oneflow1982/ktg/pkg/config"
	"github.com/oneflow1982/ktg/pkg/readiness"
	"github.com/oneflow1982/ktg/pkg/report"
	"github.com/oneflow1982/ktg/pkg/types"
	"github.com/oneflow1982/ktg/pkg/version"
)

// computeRequest carries the three scalars of a single calculation.
type computeRequest struct {
	Baseline       float64 `json:"baseline"`
	SystemTime     float64 `json:"systemTime"`
	HistoricalTime float64 `json:"historicalTime"`
}

// abortWithComputeError maps core validation failures to 400 and everything
// else to 500.
func abortWithComputeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, readiness.ErrInvalidArgument) {
		status = http.StatusBadRequest
	}
	c.IndentedJSON(status, err.Error())
	_ = c.AbortWithError(status, err)
}

// bindParams decodes a request body into Params, filling absent fields from
// the stored defaults.
func bindParams(c *gin.Context) (readiness.Params, bool) {
	p := conf.Params()
	if err := c.BindJSON(&p); err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return readiness.Params{}, false
	}
	return p, true
}

func postCompute(c *gin.Context) {
	var req computeRequest
	if err := c.BindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	v, err := readiness.Compute(req.Baseline, req.SystemTime, req.HistoricalTime)
	if err != nil {
		abortWithComputeError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, v)
}

func postSweep(c *gin.Context) {
	p, ok := bindParams(c)
	if !ok {
		return
	}

	s, err := readiness.GenerateSweep(p.Baseline, p.SystemTime, p.TMin, p.TMax)
	if err != nil {
		abortWithComputeError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, s)
}

func postGrid(c *gin.Context) {
	p, ok := bindParams(c)
	if !ok {
		return
	}

	g, err := readiness.GenerateGrid(p.Baseline, p.TMin, p.TMax)
	if err != nil {
		abortWithComputeError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, g)
}

func postAnalysis(c *gin.Context) {
	p, ok := bindParams(c)
	if !ok {
		return
	}

	res, err := analyze(p)
	if err != nil {
		abortWithComputeError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, res)
}

func postReport(c *gin.Context) {
	p, ok := bindParams(c)
	if !ok {
		return
	}

	res, err := analyze(p)
	if err != nil {
		abortWithComputeError(c, err)
		return
	}

	c.String(http.StatusOK, report.Text(p, res.Summary, res.Advice))
}

// analyze runs the full recompute for one parameter set. Every request does
// this from scratch: the sweep is cheap and carries no state worth caching.
func analyze(p readiness.Params) (*types.AnalysisResult, error) {
	s, err := readiness.GenerateSweep(p.Baseline, p.SystemTime, p.TMin, p.TMax)
	if err != nil {
		return nil, err
	}

	sum := analysis.Summarize(s, p.Baseline)
	return &types.AnalysisResult{
		Params:    p,
		Sweep:     s,
		Summary:   sum,
		KeyPoints: analysis.KeyPoints(s),
		Rating:    analysis.Rate(sum.MaxImprovementPercent),
		Advice:    analysis.Recommend(p.Baseline, p.SystemTime),
	}, nil
}

func getConfig(c *gin.Context) {
	fc, err := config.NewRawFileConfigFromConfig(conf)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.IndentedJSON(http.StatusOK, fc)
}

func setBaseline(c *gin.Context) {
	var v float64
	if err := c.BindJSON(&v); err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	if v < readiness.MinCoefficient || v > readiness.MaxCoefficient {
		err := fmt.Errorf("baseline must be between %g and %g, got %g", readiness.MinCoefficient, readiness.MaxCoefficient, v)
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	conf.SetBaseline(v)
	if err := conf.Save(); err != nil {
		logrus.Errorf("saveConfig failed: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	logrus.Infof("set default baseline to %g", v)
	c.IndentedJSON(http.StatusCreated, fmt.Sprintf("set default baseline to %g", v))
}

func setSystemTime(c *gin.Context) {
	var v float64
	if err := c.BindJSON(&v); err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	if v <= 0 {
		err := fmt.Errorf("system recovery time must be greater than 0, got %g", v)
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	conf.SetSystemTime(v)
	if err := conf.Save(); err != nil {
		logrus.Errorf("saveConfig failed: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	logrus.Infof("set default system recovery time to %g h", v)
	c.IndentedJSON(http.StatusCreated, fmt.Sprintf("set default system recovery time to %g h", v))
}

// rangeRequest is the body of PUT /range.
type rangeRequest struct {
	TMin float64 `json:"tMin"`
	TMax float64 `json:"tMax"`
}

func setRange(c *gin.Context) {
	var req rangeRequest
	if err := c.BindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	if req.TMin <= 0 || req.TMax <= 0 || req.TMin > req.TMax {
		err := fmt.Errorf("analysis range must be positive and ordered, got [%g, %g]", req.TMin, req.TMax)
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	conf.SetRange(req.TMin, req.TMax)
	if err := conf.Save(); err != nil {
		logrus.Errorf("saveConfig failed: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	logrus.Infof("set analysis range to [%g, %g] h", req.TMin, req.TMax)
	c.IndentedJSON(http.StatusCreated, fmt.Sprintf("set analysis range to [%g, %g] h", req.TMin, req.TMax))
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Version)
}
