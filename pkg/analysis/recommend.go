package analysis

// Situation classifies the state of the fleet before the maintenance system
// is introduced, judged by the baseline coefficient alone.
type Situation string

const (
	// SituationCritical: the fleet is mostly unavailable; rollout is urgent.
	SituationCritical Situation = "critical"
	// SituationNeedsImprovement: the system will pay off on a planned rollout.
	SituationNeedsImprovement Situation = "needs-improvement"
	// SituationStable: the system mainly hardens reliability.
	SituationStable Situation = "stable"
)

// SystemTimeVerdict grades the planned repair duration.
type SystemTimeVerdict string

const (
	VerdictExcellent         SystemTimeVerdict = "excellent"
	VerdictGood              SystemTimeVerdict = "good"
	VerdictNeedsOptimization SystemTimeVerdict = "needs-optimization"
)

// Recommendation bundles the situation classification with concrete action
// items and a verdict on the planned repair duration.
type Recommendation struct {
	Situation         Situation         `json:"situation"`
	Actions           []string          `json:"actions"`
	SystemTimeVerdict SystemTimeVerdict `json:"systemTimeVerdict"`
}

// Recommend classifies the baseline readiness and the planned repair
// duration and returns matching maintenance actions.
func Recommend(baseline, systemTime float64) Recommendation {
	var rec Recommendation

	switch {
	case baseline < 0.3:
		rec.Situation = SituationCritical
		rec.Actions = []string{
			"introduce the maintenance system as a top priority",
			"increase the service crew headcount",
			"stock spare parts on site",
		}
	case baseline < 0.6:
		rec.Situation = SituationNeedsImprovement
		rec.Actions = []string{
			"schedule a planned rollout of the maintenance system",
			"train the service personnel",
			"streamline spare-part logistics",
		}
	default:
		rec.Situation = SituationStable
		rec.Actions = []string{
			"focus on preventive maintenance",
			"optimize the existing service processes",
			"introduce condition monitoring",
		}
	}

	switch {
	case systemTime < 1:
		rec.SystemTimeVerdict = VerdictExcellent
	case systemTime < 3:
		rec.SystemTimeVerdict = VerdictGood
	default:
		rec.SystemTimeVerdict = VerdictNeedsOptimization
	}

	return rec
}
