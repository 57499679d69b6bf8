package queries

import (
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/audit"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

var ErrGetAuditTrailQueryIsNotConstructed = errors.New(
	"GetAuditTrailQuery must be created via NewGetAuditTrailQuery constructor",
)

const maxAuditTrailLimit = 500

// GetAuditTrailQuery retrieves the newest entries of one audit channel.
type GetAuditTrailQuery struct {
	channel audit.Channel
	limit   int

	guard guard.ConstructorGuard
}

// NewGetAuditTrailQuery creates an audit trail query. The limit is capped
// at 500 entries.
func NewGetAuditTrailQuery(channel audit.Channel, limit int) (GetAuditTrailQuery, error) {
	if err := channel.Validate(); err != nil {
		return GetAuditTrailQuery{}, err
	}
	if limit <= 0 || limit > maxAuditTrailLimit {
		return GetAuditTrailQuery{}, errs.NewValueIsOutOfRangeError(
			"limit", limit, 1, maxAuditTrailLimit)
	}

	return GetAuditTrailQuery{
		channel: channel,
		limit:   limit,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAuditTrailQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditTrailQueryIsNotConstructed)
}

// Channel returns the audit channel being read.
func (q GetAuditTrailQuery) Channel() audit.Channel {
	return q.channel
}

// Limit returns the maximum number of entries to return.
func (q GetAuditTrailQuery) Limit() int {
	return q.limit
}

// GetAuditTrailQueryResponse is one audit trail entry. Sequence is the
// store's surrogate key and defines the trail order.
type GetAuditTrailQueryResponse struct {
	Sequence   int64
	Channel    string
	Action     string
	ActorID    string
	SubjectID  string
	Details    string
	RecordedAt time.Time
}
