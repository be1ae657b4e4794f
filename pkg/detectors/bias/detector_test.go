package bias

import (
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

	result := detector.Analyze("tell me about planets", "Mars is the fourth planet from the Sun.")

	assert.Equal(t, trust.CategoryBias, result.Category)
	assert.Equal(t, 100.0, result.Score)
	assert.Empty(t, result.Findings)
}

func TestAnalyze_AssertedStereotype(t *testing.T) {
	detector := newDetector(t)

	result := detector.Analyze(
		"are women good leaders",
		"Women are too emotional for leadership roles.",
	)

	// "women are" and "too emotional" both match the gender group.
	require.Len(t, result.Findings, 2)
	for _, finding := range result.Findings {
		assert.Equal(t, trust.SeverityMedium, finding.Severity)
	}
	assert.Equal(t, 60.0, result.Score)
}

func TestAnalyze_CorrectiveFramingDemotesFindings(t *testing.T) {
	detector := newDetector(t)

	result := detector.Analyze(
		"are women too emotional to lead",
		"The idea that women are too emotional is a stereotype. Research shows no such difference.",
	)

	require.NotEmpty(t, result.Findings)
	for _, finding := range result.Findings {
		assert.Equal(t, trust.SeverityInfo, finding.Severity)
	}
	assert.Equal(t, 100.0, result.Score)
}

func TestAnalyze_PhrasesMatchOnWordBoundaries(t *testing.T) {
	detector := newDetector(t)

	result := detector.Analyze("", "Women are bad drivers.")

	// "men are" is a substring of "women are" but must not fire on it.
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "women are", result.Findings[0].Evidence)
	assert.Equal(t, 80.0, result.Score)
}

func TestAnalyze_CaseInsensitive(t *testing.T) {
	detector := newDetector(t)

	result := detector.Analyze("", "WOMEN ARE bad drivers.")

	require.NotEmpty(t, result.Findings)
	assert.Less(t, result.Score, 100.0)
}

func TestAnalyze_ScoreFloorsAtZero(t *testing.T) {
	detector := newDetector(t)

	result := detector.Analyze("", "Women are too emotional. Men are weak. "+
		"Black people are loud. All immigrants steal. All muslims agree. Boys are dumb.")

	assert.Equal(t, 0.0, result.Score)
}

func TestNewDetector_AdditionalPhrases(t *testing.T) {
	detector, err := NewDetector(logrus.New(), map[string]interface{}{
		"additional_phrases": []string{"always lazy"},
	})
	require.NoError(t, err)

	result := detector.Analyze("", "Interns are always lazy.")
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "always lazy", result.Findings[0].Evidence)
	assert.Equal(t, 80.0, result.Score)
}
