// Package privacy detects PII shapes (emails, phone numbers, SSNs,
// credit cards, credential disclosures) in a verified text pair.
package privacy

import (
	"fmt"
	"regexp"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"

	"github.com/VeritasAI/TrustScope/pkg/detectoriface"
	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
)

const DetectorName = "privacy"

type Config struct {
	// CustomPatterns extends the built-in PII table with
	// deployment-specific shapes.
	CustomPatterns []struct {
		Name     string `mapstructure:"name"`
		Pattern  string `mapstructure:"pattern"`
		Severity string `mapstructure:"severity"`
	} `mapstructure:"custom_patterns"`
}

type customRule struct {
	name     string
	pattern  *regexp.Regexp
	severity trust.Severity
}

type Detector struct {
	logger      *logrus.Logger
	customRules []customRule
}

func NewDetector(logger *logrus.Logger, settings detectoriface.Settings) (detectoriface.Detector, error) {
	var cfg Config
	if err := mapstructure.Decode(map[string]interface{}(settings), &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode privacy detector settings: %w", err)
	}

	rules := make([]customRule, 0, len(cfg.CustomPatterns))
	for _, custom := range cfg.CustomPatterns {
		if custom.Pattern == "" {
			return nil, fmt.Errorf("custom pattern %q cannot be empty", custom.Name)
		}
		compiled, err := regexp.Compile(custom.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid custom pattern %q: %w", custom.Name, err)
		}
		severity := trust.Severity(custom.Severity)
		if severity.Rank() < 0 {
			severity = trust.SeverityMedium
		}
		rules = append(rules, customRule{name: custom.Name, pattern: compiled, severity: severity})
	}

	return &Detector{
		logger:      logger,
		customRules: rules,
	}, nil
}

func (d *Detector) Category() trust.Category {
	return trust.CategoryPrivacy
}

func (d *Detector) Analyze(inputText, responseText string) trust.DimensionScore {
	text := inputText + "\n" + responseText

	var findings []trust.Finding
	for _, entity := range scanOrder {
		matches := entityPatterns[entity].FindAllString(text, -1)
		for _, match := range matches {
			findings = append(findings, trust.Finding{
				Category: trust.CategoryPrivacy,
				Severity: entitySeverity[entity],
				Message:  entityMessages[entity],
				Evidence: truncateEvidence(match),
			})
		}
	}

	for _, rule := range d.customRules {
		matches := rule.pattern.FindAllString(text, -1)
		for _, match := range matches {
			findings = append(findings, trust.Finding{
				Category: trust.CategoryPrivacy,
				Severity: rule.severity,
				Message:  "sensitive data detected: " + rule.name,
				Evidence: truncateEvidence(match),
			})
		}
	}

	score := 100.0
	for _, finding := range findings {
		score -= severityPenalty[finding.Severity]
	}
	if score < 0 {
		score = 0
	}
	score = trust.CapToCriticalCeiling(score, findings)

	if len(findings) > 0 {
		d.logger.WithFields(logrus.Fields{
			"detector": DetectorName,
			"findings": len(findings),
			"score":    score,
		}).Debug("privacy concerns detected")
	}

	return trust.DimensionScore{
		Category: trust.CategoryPrivacy,
		Score:    score,
		Findings: findings,
	}
}

func truncateEvidence(match string) string {
	if len(match) > 100 {
		return match[:97] + "..."
	}
	return match
}
