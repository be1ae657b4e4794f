package pipeline

import (
	"math"

	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
)

// Aggregator folds the four dimension scores into one overall trust
// score. The critical override is a separate step from the weighted
// sum so both rules stay independently testable.
type Aggregator struct {
	weights map[trust.Category]float64
}

// NewAggregator assumes the weights were validated at configuration
// load; it does not re-check them per call.
func NewAggregator(weights map[trust.Category]float64) *Aggregator {
	return &Aggregator{weights: weights}
}

// Aggregate returns the weighted sum rounded to one decimal place.
func (a *Aggregator) Aggregate(scores map[trust.Category]trust.DimensionScore) float64 {
	sum := 0.0
	for _, category := range trust.Categories() {
		sum += a.weights[category] * scores[category].Score
	}
	return roundToOneDecimal(sum)
}

// ApplyCriticalOverride caps the overall score when any dimension
// carries a critical finding: a single critical signal dominates the
// weighted average.
func (a *Aggregator) ApplyCriticalOverride(overall float64, scores map[trust.Category]trust.DimensionScore) float64 {
	for _, score := range scores {
		if score.HasCritical() && overall > trust.CriticalScoreCeiling {
			return trust.CriticalScoreCeiling
		}
	}
	return overall
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
