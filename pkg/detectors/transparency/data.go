package transparency

import "regexp"

// citationMarkers indicate the response grounds a claim in a source.
var citationMarkers = []string{
	"according to",
	"research shows",
	"studies show",
	"studies indicate",
	"evidence suggests",
	"data shows",
	"experts agree",
	"source:",
	"citation:",
	"reference:",
	"et al",
	"doi:",
}

// citationPattern matches parenthetical author-year references such
// as "(Smith, 2020)".
var citationPattern = regexp.MustCompile(`\([A-Z][A-Za-z.\s]+,?\s+(?:19|20)\d{2}\)`)

// hedgePattern matches uncertainty and confidence-qualifying language.
// Hedging on claims preserves or raises the score; it never lowers it.
var hedgePattern = regexp.MustCompile(`(?i)\b(may|might|could|possibly|probably|likely|suggests|appears|seems|uncertain|generally|typically|roughly|approximately|i think|i believe|not sure)\b`)

// Scoring policy constants. Magnitudes are tunable; the contract is
// ordinal: more citations raise the score toward 100, multiple
// unqualified claims with no citations drive it toward the floor.
const (
	baseScore           = 70.0
	citationBonus       = 15.0
	hedgeBonus          = 5.0
	unqualifiedPenalty  = 10.0
	lowTransparencyBand = 40.0
)
