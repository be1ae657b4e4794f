package verification

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
	"github.com/VeritasAI/TrustScope/pkg/infra/cache"
	"github.com/VeritasAI/TrustScope/pkg/pipeline"
)

//go:generate mockery --name=VerifyResponse --dir=. --output=./mocks --filename=verify_response_mock.go --case=underscore --with-expecter

// VerifyResponse runs the detector pipeline and records the resulting
// certificate.
type VerifyResponse interface {
	Verify(ctx context.Context, inputText, responseText string) (*trust.TrustCertificate, error)
}

type verifyResponse struct {
	pipeline   *pipeline.Pipeline
	repository trust.Repository
	cache      *cache.CertificateCache
	logger     logrus.FieldLogger
}

func NewVerifyResponse(
	p *pipeline.Pipeline,
	repository trust.Repository,
	certificateCache *cache.CertificateCache,
	logger logrus.FieldLogger,
) VerifyResponse {
	return &verifyResponse{
		pipeline:   p,
		repository: repository,
		cache:      certificateCache,
		logger:     logger,
	}
}

// Verify issues a certificate even when persistence fails. The caller
// already holds the verdict at that point and losing the audit row is
// preferable to losing the decision.
func (s *verifyResponse) Verify(ctx context.Context, inputText, responseText string) (*trust.TrustCertificate, error) {
	certificate, err := s.pipeline.Verify(ctx, inputText, responseText)
	if err != nil {
		return nil, err
	}

	if s.repository != nil {
		if err := s.repository.Save(ctx, certificate); err != nil {
			s.logger.WithError(err).WithField("certificate_id", certificate.ID).
				Warn("failed to persist certificate")
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, certificate); err != nil {
			s.logger.WithError(err).WithField("certificate_id", certificate.ID).
				Debug("failed to cache certificate")
		}
	}

	return certificate, nil
}
