package trust

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository persists certificates for auditing. The pipeline itself
// never touches storage; callers that want durability hand the
// certificate to an implementation of this interface.
type Repository interface {
	Save(ctx context.Context, certificate *TrustCertificate) error
	Get(ctx context.Context, id uuid.UUID) (*TrustCertificate, error)
	ListRecent(ctx context.Context, limit int) ([]TrustCertificate, error)
	Statistics(ctx context.Context, since time.Time) (*Statistics, error)
}

// Statistics aggregates verification outcomes over a time window.
type Statistics struct {
	Total        int64              `json:"total"`
	ByDecision   map[Decision]int64 `json:"by_decision"`
	AverageScore float64            `json:"average_score"`
}
