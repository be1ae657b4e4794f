// Package bias flags stereotype and loaded-language phrases while
// avoiding penalties for text that quotes or refutes a stereotype.
package bias

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"

	"github.com/VeritasAI/TrustScope/pkg/detectoriface"
	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
)

const DetectorName = "bias"

type Config struct {
	// AdditionalPhrases extends the built-in lexicon; each entry is
	// matched like a built-in phrase under the "custom" group.
	AdditionalPhrases []string `mapstructure:"additional_phrases"`
}

// compiledGroup holds a lexicon group with each phrase compiled to a
// word-boundary pattern, so "men are" does not fire inside "women are".
type compiledGroup struct {
	name    string
	phrases []compiledPhrase
}

type compiledPhrase struct {
	text    string
	pattern *regexp.Regexp
}

type Detector struct {
	logger  *logrus.Logger
	lexicon []compiledGroup
}

func NewDetector(logger *logrus.Logger, settings detectoriface.Settings) (detectoriface.Detector, error) {
	var cfg Config
	if err := mapstructure.Decode(map[string]interface{}(settings), &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode bias detector settings: %w", err)
	}

	groups := stereotypeLexicon
	if len(cfg.AdditionalPhrases) > 0 {
		groups = append(append([]lexiconGroup{}, stereotypeLexicon...), lexiconGroup{
			name:    "custom",
			phrases: cfg.AdditionalPhrases,
		})
	}

	lexicon := make([]compiledGroup, 0, len(groups))
	for _, group := range groups {
		compiled := compiledGroup{name: group.name}
		for _, phrase := range group.phrases {
			compiled.phrases = append(compiled.phrases, compiledPhrase{
				text:    phrase,
				pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(phrase)) + `\b`),
			})
		}
		lexicon = append(lexicon, compiled)
	}

	return &Detector{
		logger:  logger,
		lexicon: lexicon,
	}, nil
}

func (d *Detector) Category() trust.Category {
	return trust.CategoryBias
}

func (d *Detector) Analyze(inputText, responseText string) trust.DimensionScore {
	text := strings.ToLower(inputText + "\n" + responseText)
	corrective := hasCorrectiveFraming(text)

	var findings []trust.Finding
	for _, group := range d.lexicon {
		for _, phrase := range group.phrases {
			if !phrase.pattern.MatchString(text) {
				continue
			}
			severity := trust.SeverityMedium
			message := fmt.Sprintf("potential %s stereotype or loaded language", group.name)
			if corrective {
				severity = trust.SeverityInfo
				message = fmt.Sprintf("%s stereotype mentioned with corrective framing", group.name)
			}
			findings = append(findings, trust.Finding{
				Category: trust.CategoryBias,
				Severity: severity,
				Message:  message,
				Evidence: phrase.text,
			})
		}
	}

	score := 100.0
	for _, finding := range findings {
		if finding.Severity.AtLeast(trust.SeverityMedium) {
			score -= penaltyPerMatch
		}
	}
	if score < 0 {
		score = 0
	}

	if len(findings) > 0 {
		d.logger.WithFields(logrus.Fields{
			"detector":   DetectorName,
			"findings":   len(findings),
			"corrective": corrective,
			"score":      score,
		}).Debug("bias indicators detected")
	}

	return trust.DimensionScore{
		Category: trust.CategoryBias,
		Score:    score,
		Findings: findings,
	}
}

func hasCorrectiveFraming(loweredText string) bool {
	for _, marker := range correctiveMarkers {
		if strings.Contains(loweredText, marker) {
			return true
		}
	}
	return false
}
