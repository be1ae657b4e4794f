package privacy

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
)

func newDetector(t *testing.T) *Detector {
	t.Helper()
	detector, err := NewDetector(logrus.New(), nil)
	require.NoError(t, err)
	d, ok := detector.(*Detector)
	require.True(t, ok)
	return d
}

func TestAnalyze_CleanText(t *testing.T) {
	detector := newDetector(t)

	result := detector.Analyze("what is the weather", "It is sunny in Lisbon today.")

	assert.Equal(t, trust.CategoryPrivacy, result.Category)
	assert.Equal(t, 100.0, result.Score)
	assert.Empty(t, result.Findings)
}

func TestAnalyze_PasswordDisclosureIsCritical(t *testing.T) {
	detector := newDetector(t)

	result := detector.Analyze("what is my password", "Sure: password 12345 is what you registered.")

	require.NotEmpty(t, result.Findings)
	assert.True(t, result.HasCritical())
	assert.LessOrEqual(t, result.Score, trust.CriticalScoreCeiling)
}

func TestAnalyze_EmailIsMedium(t *testing.T) {
	detector := newDetector(t)

	result := detector.Analyze("", "You can reach the author at jane.doe@example.com for details.")

	require.Len(t, result.Findings, 1)
	assert.Equal(t, trust.SeverityMedium, result.Findings[0].Severity)
	assert.Equal(t, "jane.doe@example.com", result.Findings[0].Evidence)
	assert.Equal(t, 85.0, result.Score)
}

func TestAnalyze_SSNIsHigh(t *testing.T) {
	detector := newDetector(t)

	result := detector.Analyze("", "The SSN on file is 123-45-6789.")

	require.Len(t, result.Findings, 1)
	assert.Equal(t, trust.SeverityHigh, result.Findings[0].Severity)
	assert.Equal(t, 75.0, result.Score)
}

func TestAnalyze_ScansInputAndResponse(t *testing.T) {
	detector := newDetector(t)

	result := detector.Analyze("my email is jane.doe@example.com", "Thanks, noted.")

	require.Len(t, result.Findings, 1)
	assert.Equal(t, trust.SeverityMedium, result.Findings[0].Severity)
}

func TestAnalyze_TruncatesLongEvidence(t *testing.T) {
	detector := newDetector(t)

	longLocal := strings.Repeat("a", 120)
	result := detector.Analyze("", longLocal+"@example.com")

	require.Len(t, result.Findings, 1)
	assert.Len(t, result.Findings[0].Evidence, 100)
	assert.True(t, strings.HasSuffix(result.Findings[0].Evidence, "..."))
}

func TestNewDetector_CustomPattern(t *testing.T) {
	detector, err := NewDetector(logrus.New(), map[string]interface{}{
		"custom_patterns": []map[string]interface{}{
			{"name": "employee_id", "pattern": `\bEMP-\d{6}\b`, "severity": "high"},
		},
	})
	require.NoError(t, err)

	result := detector.Analyze("", "The record belongs to EMP-004211 in the HR system.")
	require.Len(t, result.Findings, 1)
	assert.Equal(t, trust.SeverityHigh, result.Findings[0].Severity)
	assert.Equal(t, "EMP-004211", result.Findings[0].Evidence)
	assert.Equal(t, 75.0, result.Score)
}

func TestNewDetector_RejectsInvalidPattern(t *testing.T) {
	_, err := NewDetector(logrus.New(), map[string]interface{}{
		"custom_patterns": []map[string]interface{}{
			{"name": "broken", "pattern": `[`, "severity": "low"},
		},
	})
	require.Error(t, err)
}
