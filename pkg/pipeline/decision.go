package pipeline

import (
	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
)

// DecisionEngine maps an overall score and the per-dimension results
// to a delivery action. It is a pure threshold classification with one
// escape hatch: a critical ethics finding blocks unconditionally.
type DecisionEngine struct {
	warnThreshold    float64
	proceedThreshold float64
}

func NewDecisionEngine(warnThreshold, proceedThreshold float64) *DecisionEngine {
	return &DecisionEngine{
		warnThreshold:    warnThreshold,
		proceedThreshold: proceedThreshold,
	}
}

var decisionSummaries = map[trust.Decision]string{
	trust.DecisionProceed: "Response is safe to deliver",
	trust.DecisionWarn:    "Review content before sending",
	trust.DecisionBlock:   "Request blocked: regenerate response",
}

var categoryRecommendations = map[trust.Category]string{
	trust.CategoryPrivacy:      "Remove or redact personal information before delivery",
	trust.CategoryBias:         "Consider using more inclusive language",
	trust.CategoryTransparency: "Add citations and improve explanation of reasoning",
	trust.CategoryEthics:       "Remove harmful content and provide a safe alternative",
}

// Decide classifies the run and produces its recommendation list: one
// summary line for the decision followed by one templated line per
// finding above low severity.
func (e *DecisionEngine) Decide(
	overall float64,
	scores map[trust.Category]trust.DimensionScore,
) (trust.Decision, []string) {
	decision := e.classify(overall, scores)

	recommendations := []string{decisionSummaries[decision]}
	for _, category := range trust.Categories() {
		for _, finding := range scores[category].Findings {
			if finding.Severity.AtLeast(trust.SeverityMedium) {
				recommendations = append(recommendations, categoryRecommendations[category])
			}
		}
	}

	return decision, recommendations
}

func (e *DecisionEngine) classify(overall float64, scores map[trust.Category]trust.DimensionScore) trust.Decision {
	if scores[trust.CategoryEthics].HasCritical() {
		return trust.DecisionBlock
	}
	switch {
	case overall < e.warnThreshold:
		return trust.DecisionBlock
	case overall < e.proceedThreshold:
		return trust.DecisionWarn
	default:
		return trust.DecisionProceed
	}
}
