// Package detectors assembles the fixed detector set the pipeline
// runs: one detector per risk dimension, registered by category.
package detectors

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/VeritasAI/TrustScope/pkg/detectoriface"
	"github.com/VeritasAI/TrustScope/pkg/detectors/bias"
	"github.com/VeritasAI/TrustScope/pkg/detectors/ethics"
	"github.com/VeritasAI/TrustScope/pkg/detectors/privacy"
	"github.com/VeritasAI/TrustScope/pkg/detectors/transparency"
)

// NewRegistry builds the four detectors in canonical order. Settings
// are keyed by detector name; a missing key means defaults.
func NewRegistry(logger *logrus.Logger, settings map[string]detectoriface.Settings) ([]detectoriface.Detector, error) {
	builders := []struct {
		name string
		fn   func(*logrus.Logger, detectoriface.Settings) (detectoriface.Detector, error)
	}{
		{privacy.DetectorName, privacy.NewDetector},
		{bias.DetectorName, bias.NewDetector},
		{transparency.DetectorName, transparency.NewDetector},
		{ethics.DetectorName, ethics.NewDetector},
	}

	registry := make([]detectoriface.Detector, 0, len(builders))
	for _, builder := range builders {
		detector, err := builder.fn(logger, settings[builder.name])
		if err != nil {
			return nil, fmt.Errorf("failed to build %s detector: %w", builder.name, err)
		}
		registry = append(registry, detector)
	}
	return registry, nil
}
