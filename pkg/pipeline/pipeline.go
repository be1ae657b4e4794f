// Package pipeline runs the verification pipeline: four detectors in
// parallel, score aggregation with critical override, threshold
// decision, and certificate assembly.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/VeritasAI/TrustScope/pkg/detectoriface"
	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
	"github.com/VeritasAI/TrustScope/pkg/infra/prometheus"
)

// Pipeline is the single public entry point of the verification core.
// It holds no state across runs; concurrent Verify calls are fully
// independent.
type Pipeline struct {
	detectors  []detectoriface.Detector
	aggregator *Aggregator
	engine     *DecisionEngine
	logger     *logrus.Logger
}

// New validates the options once at construction and checks the
// detector set covers every category exactly once.
func New(detectorSet []detectoriface.Detector, opts Options, logger *logrus.Logger) (*Pipeline, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[trust.Category]bool, len(detectorSet))
	for _, detector := range detectorSet {
		if seen[detector.Category()] {
			return nil, &ConfigurationError{
				Reason: fmt.Sprintf("duplicate detector for category %q", detector.Category()),
			}
		}
		seen[detector.Category()] = true
	}
	for _, category := range trust.Categories() {
		if !seen[category] {
			return nil, &ConfigurationError{
				Reason: fmt.Sprintf("no detector registered for category %q", category),
			}
		}
	}

	return &Pipeline{
		detectors:  detectorSet,
		aggregator: NewAggregator(opts.Weights),
		engine:     NewDecisionEngine(opts.WarnThreshold, opts.ProceedThreshold),
		logger:     logger,
	}, nil
}

// Verify fans out over the detectors, joins their results, and builds
// the certificate. A run cancelled before the join produces no
// certificate. Detector order is irrelevant: results are combined by
// category key.
func (p *Pipeline) Verify(ctx context.Context, inputText, responseText string) (*trust.TrustCertificate, error) {
	start := time.Now()

	results := make([]trust.DimensionScore, len(p.detectors))
	g, gctx := errgroup.WithContext(ctx)
	for i, detector := range p.detectors {
		i, detector := i, detector
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.safeAnalyze(detector, inputText, responseText)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scores := make(map[trust.Category]trust.DimensionScore, len(results))
	for _, result := range results {
		scores[result.Category] = result
	}

	overall := p.aggregator.Aggregate(scores)
	overall = p.aggregator.ApplyCriticalOverride(overall, scores)
	decision, recommendations := p.engine.Decide(overall, scores)

	certificate, err := trust.NewCertificate(
		inputText, responseText, scores, overall, decision, recommendations, time.Now(),
	)
	if err != nil {
		return nil, err
	}

	p.observe(certificate, time.Since(start))
	return certificate, nil
}

// safeAnalyze shields the pipeline from a failing detector: a panic
// degrades to the neutral score so the run always completes.
func (p *Pipeline) safeAnalyze(
	detector detectoriface.Detector,
	inputText, responseText string,
) (result trust.DimensionScore) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.WithFields(logrus.Fields{
				"category": detector.Category(),
				"panic":    fmt.Sprintf("%v", r),
			}).Warn("detector failed, substituting neutral score")
			result = trust.DegradedScore(detector.Category(), fmt.Sprintf("%v", r))
		}
	}()
	return detector.Analyze(inputText, responseText)
}

func (p *Pipeline) observe(certificate *trust.TrustCertificate, elapsed time.Duration) {
	prometheus.VerificationTotal.WithLabelValues(string(certificate.Decision)).Inc()
	prometheus.VerificationLatency.Observe(float64(elapsed.Milliseconds()))
	for _, category := range trust.Categories() {
		for _, finding := range certificate.DimensionScores[category].Findings {
			prometheus.FindingsTotal.WithLabelValues(string(category), string(finding.Severity)).Inc()
		}
	}

	p.logger.WithFields(logrus.Fields{
		"certificate_id": certificate.ID,
		"overall_score":  certificate.OverallScore,
		"decision":       certificate.Decision,
		"elapsed_ms":     elapsed.Milliseconds(),
	}).Info("verification completed")
}
