package ports

import (
	"context"

	"parcelflow/internal/core/domain/model/audit"
)

// AuditRecorder appends entries to the immutable audit trail. The store
// assigns each entry a monotonically increasing surrogate key, so insertion
// order is the trail order.
type AuditRecorder interface {
	// Record appends one audit entry.
	Record(ctx context.Context, entry audit.Entry) error
}
