// Package transparency scores how well a response cites sources and
// qualifies its claims. Transparency gaps lower the score but never
// zero it; the floor is a "low transparency" band.
package transparency

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"

	"github.com/VeritasAI/TrustScope/pkg/detectoriface"
	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
)

const DetectorName = "transparency"

type Config struct {
	// AdditionalCitationMarkers extends the built-in marker list,
	// e.g. for domain-specific citation styles.
	AdditionalCitationMarkers []string `mapstructure:"additional_citation_markers"`
}

type Detector struct {
	logger          *logrus.Logger
	citationMarkers []string
}

func NewDetector(logger *logrus.Logger, settings detectoriface.Settings) (detectoriface.Detector, error) {
	var cfg Config
	if err := mapstructure.Decode(map[string]interface{}(settings), &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode transparency detector settings: %w", err)
	}

	markers := citationMarkers
	if len(cfg.AdditionalCitationMarkers) > 0 {
		markers = append(append([]string{}, citationMarkers...), cfg.AdditionalCitationMarkers...)
	}

	return &Detector{
		logger:          logger,
		citationMarkers: markers,
	}, nil
}

func (d *Detector) Category() trust.Category {
	return trust.CategoryTransparency
}

// Analyze scores the response only; the user input carries no claims
// to qualify.
func (d *Detector) Analyze(inputText, responseText string) trust.DimensionScore {
	lowered := strings.ToLower(responseText)

	citations := d.countCitations(responseText, lowered)
	hedges := len(hedgePattern.FindAllString(responseText, -1))
	claims := countClaims(responseText)

	score := baseScore + citationBonus*float64(citations) + hedgeBonus*float64(hedges)

	var findings []trust.Finding
	if citations == 0 {
		unqualified := claims - hedges
		if unqualified > 0 {
			score -= unqualifiedPenalty * float64(unqualified)
			severity := trust.SeverityMedium
			if unqualified >= 3 {
				severity = trust.SeverityHigh
			}
			findings = append(findings, trust.Finding{
				Category: trust.CategoryTransparency,
				Severity: severity,
				Message:  fmt.Sprintf("%d factual claim(s) without citations or qualifiers", unqualified),
			})
		}
	}

	if score > 100 {
		score = 100
	}
	if score < lowTransparencyBand {
		score = lowTransparencyBand
	}

	if len(findings) > 0 {
		d.logger.WithFields(logrus.Fields{
			"detector":  DetectorName,
			"citations": citations,
			"hedges":    hedges,
			"claims":    claims,
			"score":     score,
		}).Debug("transparency gaps detected")
	}

	return trust.DimensionScore{
		Category: trust.CategoryTransparency,
		Score:    score,
		Findings: findings,
	}
}

func (d *Detector) countCitations(responseText, lowered string) int {
	count := 0
	for _, marker := range d.citationMarkers {
		count += strings.Count(lowered, marker)
	}
	count += len(citationPattern.FindAllString(responseText, -1))
	return count
}

// countClaims counts declarative sentences with enough words to carry
// a factual assertion. Questions are not claims.
func countClaims(text string) int {
	claims := 0
	words := 0
	inWord := false
	for _, r := range text {
		switch {
		case r == '.' || r == '!' || r == '?':
			if inWord {
				words++
				inWord = false
			}
			if r != '?' && words >= 3 {
				claims++
			}
			words = 0
		case unicode.IsSpace(r):
			if inWord {
				words++
				inWord = false
			}
		default:
			inWord = true
		}
	}
	if inWord {
		words++
	}
	if words >= 3 {
		claims++
	}
	return claims
}
