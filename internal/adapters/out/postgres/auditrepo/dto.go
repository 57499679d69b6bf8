// Package auditrepo persists the append-only audit trail. The database
// assigns each entry a monotonically increasing surrogate key, so insertion
// order is the trail order; rows are never updated or deleted.
package auditrepo

import (
	"encoding/json"
	"time"

	"parcelflow/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// EntryDTO represents one row of the audit trail.
type EntryDTO struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	Channel    string     `gorm:"type:varchar(16);not null;index"`
	Action     string     `gorm:"type:varchar(64);not null"`
	ActorID    *uuid.UUID `gorm:"type:uuid"`
	SubjectID  *uuid.UUID `gorm:"type:uuid"`
	Details    string     `gorm:"type:text"`
	RecordedAt time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for audit entries.
func (EntryDTO) TableName() string {
	return "audit_entries"
}

// fromDomain converts an audit entry to its database representation.
// Details are stored as a JSON object.
func fromDomain(entry audit.Entry) (EntryDTO, error) {
	dto := EntryDTO{
		Channel:    entry.Channel().String(),
		Action:     entry.Action().String(),
		RecordedAt: entry.RecordedAt(),
	}

	if id := entry.ActorID(); id != nil {
		raw := id.Bytes()
		dto.ActorID = &raw
	}
	if id := entry.SubjectID(); id != nil {
		raw := id.Bytes()
		dto.SubjectID = &raw
	}

	if details := entry.Details(); len(details) > 0 {
		encoded, err := json.Marshal(details)
		if err != nil {
			return EntryDTO{}, err
		}
		dto.Details = string(encoded)
	}

	return dto, nil
}
