package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
)

type (
	DimensionScoresJSON map[trust.Category]trust.DimensionScore
	RecommendationsJSON []string
)

func (d DimensionScoresJSON) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

func (d *DimensionScoresJSON) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("expected []byte, got %T", value)
	}
	return json.Unmarshal(bytes, d)
}

func (r RecommendationsJSON) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

func (r *RecommendationsJSON) Scan(value interface{}) error {
	if value == nil {
		*r = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("expected []byte, got %T", value)
	}
	return json.Unmarshal(bytes, r)
}

// CertificateRecord is the persistence model for trust certificates.
type CertificateRecord struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey"`
	InputText       string              `gorm:"type:text"`
	ResponseText    string              `gorm:"type:text"`
	DimensionScores DimensionScoresJSON `gorm:"type:jsonb"`
	OverallScore    float64
	Decision        string              `gorm:"index"`
	TrustLevel      string
	Recommendations RecommendationsJSON `gorm:"type:jsonb"`
	CreatedAt       time.Time           `gorm:"index"`
}

func (CertificateRecord) TableName() string {
	return "public.trust_certificates"
}

// CertificateRepository stores certificates in postgres.
type CertificateRepository struct {
	db     *gorm.DB
	logger logrus.FieldLogger
}

func NewCertificateRepository(db *gorm.DB, logger logrus.FieldLogger) *CertificateRepository {
	return &CertificateRepository{db: db, logger: logger}
}

// Migrate creates or updates the certificates table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&CertificateRecord{})
}

func (r *CertificateRepository) Save(ctx context.Context, certificate *trust.TrustCertificate) error {
	record := toRecord(certificate)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to save certificate: %w", err)
	}
	return nil
}

func (r *CertificateRepository) Get(ctx context.Context, id uuid.UUID) (*trust.TrustCertificate, error) {
	var record CertificateRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load certificate: %w", err)
	}
	return toDomain(&record), nil
}

func (r *CertificateRepository) ListRecent(ctx context.Context, limit int) ([]trust.TrustCertificate, error) {
	var records []CertificateRecord
	err := r.db.WithContext(ctx).Model(&CertificateRecord{}).
		Order("created_at desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	certificates := make([]trust.TrustCertificate, 0, len(records))
	for i := range records {
		certificates = append(certificates, *toDomain(&records[i]))
	}
	return certificates, nil
}

func (r *CertificateRepository) Statistics(ctx context.Context, since time.Time) (*trust.Statistics, error) {
	stats := &trust.Statistics{
		ByDecision: make(map[trust.Decision]int64),
	}

	type decisionCount struct {
		Decision string
		Count    int64
	}
	var counts []decisionCount
	err := r.db.WithContext(ctx).Model(&CertificateRecord{}).
		Select("decision, count(*) as count").
		Where("created_at >= ?", since).
		Group("decision").
		Find(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count certificates: %w", err)
	}
	for _, c := range counts {
		stats.ByDecision[trust.Decision(c.Decision)] = c.Count
		stats.Total += c.Count
	}

	if stats.Total > 0 {
		var average float64
		err = r.db.WithContext(ctx).Model(&CertificateRecord{}).
			Select("avg(overall_score)").
			Where("created_at >= ?", since).
			Scan(&average).Error
		if err != nil {
			return nil, fmt.Errorf("failed to average scores: %w", err)
		}
		stats.AverageScore = average
	}

	return stats, nil
}

func toRecord(certificate *trust.TrustCertificate) *CertificateRecord {
	return &CertificateRecord{
		ID:              certificate.ID,
		InputText:       certificate.InputText,
		ResponseText:    certificate.ResponseText,
		DimensionScores: DimensionScoresJSON(certificate.DimensionScores),
		OverallScore:    certificate.OverallScore,
		Decision:        string(certificate.Decision),
		TrustLevel:      certificate.TrustLevel,
		Recommendations: RecommendationsJSON(certificate.Recommendations),
		CreatedAt:       certificate.CreatedAt,
	}
}

func toDomain(record *CertificateRecord) *trust.TrustCertificate {
	return &trust.TrustCertificate{
		ID:              record.ID,
		InputText:       record.InputText,
		ResponseText:    record.ResponseText,
		DimensionScores: map[trust.Category]trust.DimensionScore(record.DimensionScores),
		OverallScore:    record.OverallScore,
		Decision:        trust.Decision(record.Decision),
		TrustLevel:      record.TrustLevel,
		Recommendations: record.Recommendations,
		CreatedAt:       record.CreatedAt,
	}
}
