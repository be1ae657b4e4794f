package pipeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
)

const weightTolerance = 1e-6

// ConfigurationError is raised at configuration-load time, before any
// verification runs: weights that do not sum to 1.0 or thresholds out
// of order are rejected up front, never per call.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid pipeline configuration: " + e.Reason
}

func IsConfigurationError(err error) bool {
	if err == nil {
		return false
	}
	var configurationError *ConfigurationError
	return errors.As(err, &configurationError)
}

// Options is the pipeline's configuration surface: per-category
// weights and the two decision thresholds.
type Options struct {
	Weights          map[trust.Category]float64
	WarnThreshold    float64
	ProceedThreshold float64
}

// DefaultOptions returns the stock policy: ethics and privacy carry
// the highest weights, warn at 70, proceed at 85.
func DefaultOptions() Options {
	return Options{
		Weights: map[trust.Category]float64{
			trust.CategoryPrivacy:      0.25,
			trust.CategoryBias:         0.20,
			trust.CategoryTransparency: 0.20,
			trust.CategoryEthics:       0.35,
		},
		WarnThreshold:    70,
		ProceedThreshold: 85,
	}
}

func (o Options) Validate() error {
	if len(o.Weights) != len(trust.Categories()) {
		return &ConfigurationError{
			Reason: fmt.Sprintf("expected %d category weights, got %d", len(trust.Categories()), len(o.Weights)),
		}
	}

	sum := 0.0
	for _, category := range trust.Categories() {
		weight, ok := o.Weights[category]
		if !ok {
			return &ConfigurationError{Reason: fmt.Sprintf("missing weight for category %q", category)}
		}
		if weight < 0 {
			return &ConfigurationError{Reason: fmt.Sprintf("negative weight for category %q", category)}
		}
		sum += weight
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return &ConfigurationError{Reason: fmt.Sprintf("weights sum to %.6f, expected 1.0", sum)}
	}

	if o.WarnThreshold <= 0 {
		return &ConfigurationError{Reason: "warn_threshold must be positive"}
	}
	if o.WarnThreshold >= o.ProceedThreshold {
		return &ConfigurationError{
			Reason: fmt.Sprintf("warn_threshold %.1f must be below proceed_threshold %.1f", o.WarnThreshold, o.ProceedThreshold),
		}
	}
	if o.ProceedThreshold > 100 {
		return &ConfigurationError{Reason: "proceed_threshold must not exceed 100"}
	}

	return nil
}
