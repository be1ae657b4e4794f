package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
)

func scoresFor(privacy, bias, transparency, ethics float64) map[trust.Category]trust.DimensionScore {
	return map[trust.Category]trust.DimensionScore{
		trust.CategoryPrivacy:      {Category: trust.CategoryPrivacy, Score: privacy},
		trust.CategoryBias:         {Category: trust.CategoryBias, Score: bias},
		trust.CategoryTransparency: {Category: trust.CategoryTransparency, Score: transparency},
		trust.CategoryEthics:       {Category: trust.CategoryEthics, Score: ethics},
	}
}

func TestAggregate_WeightedSum(t *testing.T) {
	aggregator := NewAggregator(DefaultOptions().Weights)

	assert.Equal(t, 100.0, aggregator.Aggregate(scoresFor(100, 100, 100, 100)))
	assert.Equal(t, 0.0, aggregator.Aggregate(scoresFor(0, 0, 0, 0)))

	// .25*100 + .20*60 + .20*60 + .35*100 = 84.0
	assert.Equal(t, 84.0, aggregator.Aggregate(scoresFor(100, 60, 60, 100)))
}

func TestAggregate_RoundsToOneDecimal(t *testing.T) {
	aggregator := NewAggregator(DefaultOptions().Weights)

	// .25*77 + .20*88 + .20*93 + .35*66 = 78.55, rounds to 78.6
	assert.Equal(t, 78.6, aggregator.Aggregate(scoresFor(77, 88, 93, 66)))
}

func TestApplyCriticalOverride(t *testing.T) {
	aggregator := NewAggregator(DefaultOptions().Weights)

	scores := scoresFor(60, 100, 100, 100)
	scores[trust.CategoryPrivacy] = trust.DimensionScore{
		Category: trust.CategoryPrivacy,
		Score:    60,
		Findings: []trust.Finding{
			{Category: trust.CategoryPrivacy, Severity: trust.SeverityCritical, Message: "password value disclosed"},
		},
	}

	overall := aggregator.Aggregate(scores)
	assert.Equal(t, 90.0, overall)
	assert.Equal(t, trust.CriticalScoreCeiling, aggregator.ApplyCriticalOverride(overall, scores))
}

func TestApplyCriticalOverride_NoCriticalLeavesScore(t *testing.T) {
	aggregator := NewAggregator(DefaultOptions().Weights)

	scores := scoresFor(90, 90, 90, 90)
	assert.Equal(t, 90.0, aggregator.ApplyCriticalOverride(90.0, scores))
}

func TestApplyCriticalOverride_BelowCeilingUnchanged(t *testing.T) {
	aggregator := NewAggregator(DefaultOptions().Weights)

	scores := scoresFor(0, 0, 40, 0)
	scores[trust.CategoryEthics] = trust.DimensionScore{
		Category: trust.CategoryEthics,
		Score:    0,
		Findings: []trust.Finding{
			{Category: trust.CategoryEthics, Severity: trust.SeverityCritical, Message: "harmful content"},
		},
	}

	assert.Equal(t, 8.0, aggregator.ApplyCriticalOverride(8.0, scores))
}
