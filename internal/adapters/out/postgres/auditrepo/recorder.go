package auditrepo

import (
	"context"

	"parcelflow/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

// GormAuditRecorder implements AuditRecorder using GORM. Bound to a
// transaction it writes business entries atomically with the mutation they
// describe; bound to the main connection it writes security entries that
// survive a rolled back request.
type GormAuditRecorder struct {
	db *gorm.DB
}

// NewGormAuditRecorder creates a new GORM audit recorder.
func NewGormAuditRecorder(db *gorm.DB) *GormAuditRecorder {
	return &GormAuditRecorder{db: db}
}

// Record appends one audit entry.
func (r *GormAuditRecorder) Record(ctx context.Context, entry audit.Entry) error {
	dto, err := fromDomain(entry)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}
