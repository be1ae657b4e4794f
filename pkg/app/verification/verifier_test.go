package verification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VeritasAI/TrustScope/pkg/detectors"
	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
	"github.com/VeritasAI/TrustScope/pkg/pipeline"
)

type recordingRepository struct {
	saved   []*trust.TrustCertificate
	saveErr error
}

func (r *recordingRepository) Save(_ context.Context, certificate *trust.TrustCertificate) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, certificate)
	return nil
}

func (r *recordingRepository) Get(_ context.Context, _ uuid.UUID) (*trust.TrustCertificate, error) {
	return nil, nil
}

func (r *recordingRepository) ListRecent(_ context.Context, _ int) ([]trust.TrustCertificate, error) {
	return nil, nil
}

func (r *recordingRepository) Statistics(_ context.Context, _ time.Time) (*trust.Statistics, error) {
	return nil, nil
}

func newPipeline(t *testing.T) *pipeline.Pipeline {
	t.Helper()
	logger := logrus.New()
	detectorSet, err := detectors.NewRegistry(logger, nil)
	require.NoError(t, err)
	p, err := pipeline.New(detectorSet, pipeline.DefaultOptions(), logger)
	require.NoError(t, err)
	return p
}

func TestVerify_PersistsCertificate(t *testing.T) {
	repo := &recordingRepository{}
	service := NewVerifyResponse(newPipeline(t), repo, nil, logrus.New())

	certificate, err := service.Verify(context.Background(), "hi", "Hello, how can I help you today?")
	require.NoError(t, err)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, certificate.ID, repo.saved[0].ID)
}

func TestVerify_SaveFailureStillReturnsCertificate(t *testing.T) {
	repo := &recordingRepository{saveErr: errors.New("connection refused")}
	service := NewVerifyResponse(newPipeline(t), repo, nil, logrus.New())

	certificate, err := service.Verify(context.Background(), "hi", "Hello, how can I help you today?")
	require.NoError(t, err)
	require.NotNil(t, certificate)
	assert.True(t, certificate.Decision.Valid())
}

func TestVerify_PropagatesPipelineError(t *testing.T) {
	service := NewVerifyResponse(newPipeline(t), &recordingRepository{}, nil, logrus.New())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	certificate, err := service.Verify(ctx, "hi", "hello")
	require.Error(t, err)
	assert.Nil(t, certificate)
}
