package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
)

const certificateKeyPattern = "trustscope:certificate:%s"

// CertificateCache keeps recently issued certificates in redis so
// lookups by ID do not always hit postgres.
type CertificateCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logrus.FieldLogger
}

func NewCertificateCache(client *redis.Client, ttl time.Duration, logger logrus.FieldLogger) *CertificateCache {
	return &CertificateCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached certificate or (nil, nil) on a miss.
func (c *CertificateCache) Get(ctx context.Context, id uuid.UUID) (*trust.TrustCertificate, error) {
	key := fmt.Sprintf(certificateKeyPattern, id)
	payload, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate from cache: %w", err)
	}
	var certificate trust.TrustCertificate
	if err := json.Unmarshal([]byte(payload), &certificate); err != nil {
		return nil, fmt.Errorf("failed to decode cached certificate: %w", err)
	}
	return &certificate, nil
}

func (c *CertificateCache) Set(ctx context.Context, certificate *trust.TrustCertificate) error {
	payload, err := json.Marshal(certificate)
	if err != nil {
		return fmt.Errorf("failed to encode certificate: %w", err)
	}
	key := fmt.Sprintf(certificateKeyPattern, certificate.ID)
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache certificate: %w", err)
	}
	return nil
}
