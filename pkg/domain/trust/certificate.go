package trust

import (
	"fmt"
	"time"

	"github.com/VeritasAI/TrustScope/pkg/domain"
	"github.com/google/uuid"
)

// TrustCertificate is the immutable audit record of one verification
// run. It is built exactly once per run and never mutated afterwards;
// every field serializes losslessly to JSON for the audit sink.
type TrustCertificate struct {
	ID              uuid.UUID                   `json:"id"`
	InputText       string                      `json:"input_text"`
	ResponseText    string                      `json:"response_text"`
	DimensionScores map[Category]DimensionScore `json:"dimension_scores"`
	OverallScore    float64                     `json:"overall_score"`
	Decision        Decision                    `json:"decision"`
	TrustLevel      string                      `json:"trust_level"`
	Recommendations []string                    `json:"recommendations"`
	CreatedAt       time.Time                   `json:"created_at"`
}

// NewCertificate assembles a certificate from the pipeline components'
// outputs, enforcing the data-model invariants. A violation means a
// detector or the aggregator broke its contract; the run is aborted
// with a ValidationError and no certificate.
func NewCertificate(
	inputText string,
	responseText string,
	scores map[Category]DimensionScore,
	overallScore float64,
	decision Decision,
	recommendations []string,
	now time.Time,
) (*TrustCertificate, error) {
	if len(scores) != len(Categories()) {
		return nil, domain.NewValidationError(
			"dimension_scores",
			fmt.Sprintf("expected %d categories, got %d", len(Categories()), len(scores)),
		)
	}

	for _, category := range Categories() {
		score, ok := scores[category]
		if !ok {
			return nil, domain.NewValidationError(
				"dimension_scores",
				fmt.Sprintf("missing category %q", category),
			)
		}
		if score.Category != category {
			return nil, domain.NewValidationError(
				"dimension_scores",
				fmt.Sprintf("score keyed as %q reports category %q", category, score.Category),
			)
		}
		if score.Score < 0 || score.Score > 100 {
			return nil, domain.NewValidationError(
				string(category),
				fmt.Sprintf("score %.2f out of range [0,100]", score.Score),
			)
		}
		if score.HasCritical() && score.Score > CriticalScoreCeiling {
			return nil, domain.NewValidationError(
				string(category),
				fmt.Sprintf("critical finding with score %.2f above ceiling %.0f", score.Score, CriticalScoreCeiling),
			)
		}
		for _, finding := range score.Findings {
			if finding.Category != category {
				return nil, domain.NewValidationError(
					string(category),
					fmt.Sprintf("finding reports category %q", finding.Category),
				)
			}
		}
	}

	if overallScore < 0 || overallScore > 100 {
		return nil, domain.NewValidationError(
			"overall_score",
			fmt.Sprintf("score %.2f out of range [0,100]", overallScore),
		)
	}
	if !decision.Valid() {
		return nil, domain.NewValidationError("decision", fmt.Sprintf("unknown decision %q", decision))
	}

	// Copy the caller's map and slice so later mutation by the caller
	// cannot reach into the issued certificate.
	scoresCopy := make(map[Category]DimensionScore, len(scores))
	for category, score := range scores {
		findings := make([]Finding, len(score.Findings))
		copy(findings, score.Findings)
		score.Findings = findings
		scoresCopy[category] = score
	}
	recommendationsCopy := make([]string, len(recommendations))
	copy(recommendationsCopy, recommendations)

	return &TrustCertificate{
		ID:              uuid.New(),
		InputText:       inputText,
		ResponseText:    responseText,
		DimensionScores: scoresCopy,
		OverallScore:    overallScore,
		Decision:        decision,
		TrustLevel:      TrustLevelFor(overallScore),
		Recommendations: recommendationsCopy,
		CreatedAt:       now,
	}, nil
}

// TrustLevelFor maps an overall score to its human-readable band.
func TrustLevelFor(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Good"
	case score >= 70:
		return "Moderate"
	case score >= 60:
		return "Low"
	default:
		return "Very Low"
	}
}
