package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetAuditTrailQueryHandler reads the audit trail, newest entries first.
type GetAuditTrailQueryHandler struct {
	db *gorm.DB
}

// NewGetAuditTrailQueryHandler creates a handler for audit trail queries.
func NewGetAuditTrailQueryHandler(db *gorm.DB) GetAuditTrailQueryHandler {
	return GetAuditTrailQueryHandler{db: db}
}

// Handle executes the audit trail query.
func (h GetAuditTrailQueryHandler) Handle(
	ctx context.Context,
	query GetAuditTrailQuery,
) ([]GetAuditTrailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetAuditTrailQueryResponse, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			channel,
			action,
			actor_id,
			subject_id,
			details,
			recorded_at
		FROM audit_entries
		WHERE channel = ?
		ORDER BY id DESC
		LIMIT ?
	`, query.Channel().String(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAuditTrailQueryResponse
		var actorID, subjectID, details sql.NullString

		if err = rows.Scan(
			&resp.Sequence,
			&resp.Channel,
			&resp.Action,
			&actorID,
			&subjectID,
			&details,
			&resp.RecordedAt,
		); err != nil {
			return nil, err
		}

		resp.ActorID = actorID.String
		resp.SubjectID = subjectID.String
		resp.Details = details.String
		entries = append(entries, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
