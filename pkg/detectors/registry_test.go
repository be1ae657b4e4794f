package detectors

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VeritasAI/TrustScope/pkg/detectoriface"
	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
)

func TestNewRegistry_CoversAllCategories(t *testing.T) {
	registry, err := NewRegistry(logrus.New(), nil)
	require.NoError(t, err)
	require.Len(t, registry, len(trust.Categories()))

	for i, category := range trust.Categories() {
		assert.Equal(t, category, registry[i].Category())
	}
}

func TestNewRegistry_PropagatesSettingsErrors(t *testing.T) {
	_, err := NewRegistry(logrus.New(), map[string]detectoriface.Settings{
		"privacy": {
			"custom_patterns": []map[string]interface{}{
				{"name": "broken", "pattern": "["},
			},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "privacy")
}
