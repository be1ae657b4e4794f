package detectoriface

import (
	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
)

// Settings carries detector tunables from configuration. Each detector
// decodes the map it receives into its own typed config; nil means
// built-in defaults.
type Settings map[string]interface{}

// Detector analyzes an (input, response) pair for a single risk
// dimension. Implementations are pure and deterministic: no network,
// no disk, no state across calls, and any string input is valid.
// Analyze must not fail; internal scan errors are recovered by the
// pipeline driver and replaced with a neutral score.
type Detector interface {
	Category() trust.Category
	Analyze(inputText, responseText string) trust.DimensionScore
}
