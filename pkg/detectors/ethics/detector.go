// Package ethics scans for harmful-intent content: violence and
// weapons instructions, self-harm, and illegal-activity guidance. It
// is the only detector whose critical finding forces a block on its
// own, independent of the aggregate score.
package ethics

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"

	"github.com/VeritasAI/TrustScope/pkg/detectoriface"
	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
)

const DetectorName = "ethics"

type Config struct {
	// AdditionalPhrases extends the harmful-intent phrase sets under
	// a "custom" non-self-harm category.
	AdditionalPhrases []string `mapstructure:"additional_phrases"`
}

type Detector struct {
	logger     *logrus.Logger
	categories []harmCategory
}

func NewDetector(logger *logrus.Logger, settings detectoriface.Settings) (detectoriface.Detector, error) {
	var cfg Config
	if err := mapstructure.Decode(map[string]interface{}(settings), &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode ethics detector settings: %w", err)
	}

	categories := harmCategories
	if len(cfg.AdditionalPhrases) > 0 {
		categories = append(append([]harmCategory{}, harmCategories...), harmCategory{
			name:    "custom",
			phrases: cfg.AdditionalPhrases,
		})
	}

	return &Detector{
		logger:     logger,
		categories: categories,
	}, nil
}

func (d *Detector) Category() trust.Category {
	return trust.CategoryEthics
}

func (d *Detector) Analyze(inputText, responseText string) trust.DimensionScore {
	text := strings.ToLower(inputText + "\n" + responseText)
	protected := hasProtectiveFraming(strings.ToLower(responseText))

	var findings []trust.Finding
	score := 100.0

	for _, category := range d.categories {
		for _, phrase := range category.phrases {
			if !strings.Contains(text, phrase) {
				continue
			}
			if protected {
				findings = append(findings, trust.Finding{
					Category: trust.CategoryEthics,
					Severity: trust.SeverityInfo,
					Message:  fmt.Sprintf("%s topic mentioned but handled safely by the response", category.name),
					Evidence: phrase,
				})
				score -= handledPenalty
				continue
			}

			message := fmt.Sprintf("harmful content detected: %s", category.name)
			if category.selfHarm {
				message += ". " + crisisResourceText
			}
			findings = append(findings, trust.Finding{
				Category: trust.CategoryEthics,
				Severity: trust.SeverityCritical,
				Message:  message,
				Evidence: phrase,
			})
			score -= criticalPenalty
		}
	}

	if score < 0 {
		score = 0
	}
	score = trust.CapToCriticalCeiling(score, findings)

	if len(findings) > 0 {
		d.logger.WithFields(logrus.Fields{
			"detector":  DetectorName,
			"findings":  len(findings),
			"protected": protected,
			"score":     score,
		}).Debug("ethics concerns detected")
	}

	return trust.DimensionScore{
		Category: trust.CategoryEthics,
		Score:    score,
		Findings: findings,
	}
}

func hasProtectiveFraming(loweredResponse string) bool {
	for _, marker := range protectiveMarkers {
		if strings.Contains(loweredResponse, marker) {
			return true
		}
	}
	return false
}
