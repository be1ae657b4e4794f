// Package trust holds the verification data model: findings, per-dimension
// scores and the trust certificate emitted for every verified response.
package trust

// Category identifies one of the four risk dimensions a response is
// analyzed against.
type Category string

const (
	CategoryPrivacy      Category = "privacy"
	CategoryBias         Category = "bias"
	CategoryTransparency Category = "transparency"
	CategoryEthics       Category = "ethics"
)

// Categories returns the four dimensions in their canonical order.
// Detector results are always combined by category key, never by
// position, but a fixed order keeps serialized output deterministic.
func Categories() []Category {
	return []Category{
		CategoryPrivacy,
		CategoryBias,
		CategoryTransparency,
		CategoryEthics,
	}
}

// Severity ranks how serious a single finding is.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityRank = map[Severity]int{
	SeverityInfo:     0,
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Rank returns the ordinal position of the severity; unknown values
// rank below info.
func (s Severity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return -1
}

func (s Severity) AtLeast(other Severity) bool {
	return s.Rank() >= other.Rank()
}

// Finding is one flagged issue reported by a detector. Evidence holds
// the matched substring and may be empty for heuristic signals that
// have no single triggering span.
type Finding struct {
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Evidence string   `json:"evidence,omitempty"`
}

// DimensionScore is the output of a single detector: 100 means no
// concern in that dimension, 0 means maximal concern.
type DimensionScore struct {
	Category Category  `json:"category"`
	Score    float64   `json:"score"`
	Findings []Finding `json:"findings"`
}

func (d DimensionScore) HasCritical() bool {
	for _, f := range d.Findings {
		if f.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// CriticalScoreCeiling is the highest score a detector may report
// alongside a critical finding, and the cap applied to the overall
// score when any dimension carries one. A single critical signal can
// never be diluted by high scores elsewhere.
const CriticalScoreCeiling = 60.0

// CapToCriticalCeiling enforces the critical/score invariant on a
// detector result before it leaves the detector.
func CapToCriticalCeiling(score float64, findings []Finding) float64 {
	for _, f := range findings {
		if f.Severity == SeverityCritical {
			if score > CriticalScoreCeiling {
				return CriticalScoreCeiling
			}
			return score
		}
	}
	return score
}

// DegradedScore is the neutral result substituted when a detector's
// internal scan fails. The pipeline always completes; degradation is
// recorded as an info finding, never surfaced as an error.
func DegradedScore(category Category, reason string) DimensionScore {
	return DimensionScore{
		Category: category,
		Score:    50,
		Findings: []Finding{
			{
				Category: category,
				Severity: SeverityInfo,
				Message:  "detector degraded, neutral score substituted: " + reason,
			},
		},
	}
}

// Decision is the delivery action for a verified response.
type Decision string

const (
	DecisionBlock   Decision = "block"
	DecisionWarn    Decision = "warn"
	DecisionProceed Decision = "proceed"
)

func (d Decision) Valid() bool {
	switch d {
	case DecisionBlock, DecisionWarn, DecisionProceed:
		return true
	}
	return false
}
