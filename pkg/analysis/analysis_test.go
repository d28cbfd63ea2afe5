package analysis

import (
	"math"
	"testing"

	"github.com/oneflow1982/ktg/pkg/readiness"
)

func mustSweep(t *testing.T, baseline, systemTime, tMin, tMax float64) *readiness.Sweep {
	t.Helper()
	s, err := readiness.GenerateSweep(baseline, systemTime, tMin, tMax)
	if err != nil {
		t.Fatalf("GenerateSweep returned error: %v", err)
	}
	return s
}

func TestSummarize(t *testing.T) {
	s := mustSweep(t, 0.05, 2.0, 4, 6)
	sum := Summarize(s, 0.05)

	if math.Abs(sum.Max-0.025) > 1e-12 {
		t.Errorf("Max = %g, want 0.025", sum.Max)
	}
	if math.Abs(sum.Min-0.05/3.0) > 1e-12 {
		t.Errorf("Min = %g, want %g", sum.Min, 0.05/3.0)
	}
	if sum.Mean <= sum.Min || sum.Mean >= sum.Max {
		t.Errorf("Mean %g not between Min %g and Max %g", sum.Mean, sum.Min, sum.Max)
	}
	// Max is 0.025, half the baseline: improvement is -50%.
	if math.Abs(sum.MaxImprovementPercent-(-50)) > 1e-9 {
		t.Errorf("MaxImprovementPercent = %g, want -50", sum.MaxImprovementPercent)
	}
	if sum.ReachesFull {
		t.Error("sweep should not reach full readiness")
	}
}

func TestSummarizeReachesFull(t *testing.T) {
	// baseline 0.5, system 8h: full readiness for historical times <= 4h.
	s := mustSweep(t, 0.5, 8.0, 1, 24)
	sum := Summarize(s, 0.5)

	if !sum.ReachesFull {
		t.Fatal("sweep should reach full readiness")
	}
	if math.Abs(sum.FullAtTime-4.0) > 1e-9 {
		t.Errorf("FullAtTime = %g, want 4", sum.FullAtTime)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(&readiness.Sweep{}, 0.05)
	if sum != (Summary{}) {
		t.Fatalf("empty sweep should yield zero summary, got %+v", sum)
	}
}

func TestKeyPoints(t *testing.T) {
	s := mustSweep(t, 0.05, 2.0, 4, 24)
	points := KeyPoints(s)

	if len(points) != 6 {
		t.Fatalf("got %d key points, want 6", len(points))
	}
	for _, p := range points {
		if p.Time != p.Mark {
			t.Errorf("mark %g matched time %g, want exact hit on 0.5 grid", p.Mark, p.Time)
		}
	}

	// Range 5..10 covers only the 8h mark.
	points = KeyPoints(mustSweep(t, 0.05, 2.0, 5, 10))
	if len(points) != 1 || points[0].Mark != 8 {
		t.Fatalf("got %+v, want single point at mark 8", points)
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		improvement float64
		want        Rating
	}{
		{120, RatingHigh},
		{50.5, RatingHigh},
		{50, RatingMedium},
		{21, RatingMedium},
		{20, RatingLow},
		{-50, RatingLow},
	}

	for _, tt := range tests {
		if got := Rate(tt.improvement); got != tt.want {
			t.Errorf("Rate(%g) = %s, want %s", tt.improvement, got, tt.want)
		}
	}
}

func TestStatus(t *testing.T) {
	if Status(12.5) != "improvement" {
		t.Error("positive change should be an improvement")
	}
	if Status(0) != "improvement" {
		t.Error("zero change should count as improvement")
	}
	if Status(-3) != "degradation" {
		t.Error("negative change should be a degradation")
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name          string
		baseline      float64
		systemTime    float64
		wantSituation Situation
		wantVerdict   SystemTimeVerdict
	}{
		{"critical fleet, fast repair", 0.05, 0.5, SituationCritical, VerdictExcellent},
		{"needs improvement, good repair", 0.45, 2.0, SituationNeedsImprovement, VerdictGood},
		{"stable fleet, slow repair", 0.8, 5.0, SituationStable, VerdictNeedsOptimization},
		{"boundary at 0.3", 0.3, 1.0, SituationNeedsImprovement, VerdictGood},
		{"boundary at 0.6", 0.6, 3.0, SituationStable, VerdictNeedsOptimization},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Recommend(tt.baseline, tt.systemTime)
			if rec.Situation != tt.wantSituation {
				t.Errorf("Situation = %s, want %s", rec.Situation, tt.wantSituation)
			}
			if rec.SystemTimeVerdict != tt.wantVerdict {
				t.Errorf("SystemTimeVerdict = %s, want %s", rec.SystemTimeVerdict, tt.wantVerdict)
			}
			if len(rec.Actions) == 0 {
				t.Error("recommendation should carry action items")
			}
		})
	}
}
