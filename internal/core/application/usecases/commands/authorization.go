package commands

import (
	"context"
	"log/slog"

	"parcelflow/internal/core/domain/model/access"
	"parcelflow/internal/core/domain/model/audit"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/ports"
	"parcelflow/internal/pkg/errs"
)

// Authorizer gates command handlers on permission keys. Denials are recorded
// on the security audit channel best-effort, outside any transaction, so a
// failed write never masks the denial itself.
type Authorizer struct {
	evaluator *access.Evaluator
	security  ports.AuditRecorder
	logger    *slog.Logger
}

// NewAuthorizer creates an authorizer over the given evaluator. The recorder
// receives security-channel entries for every denial.
func NewAuthorizer(evaluator *access.Evaluator, security ports.AuditRecorder, logger *slog.Logger) *Authorizer {
	return &Authorizer{
		evaluator: evaluator,
		security:  security,
		logger:    logger.With("component", "authorizer"),
	}
}

// Require returns an unauthorized error unless the actor holds the
// permission. The subject is the aggregate the denied action targeted, if
// any.
func (a *Authorizer) Require(
	ctx context.Context,
	actor access.Principal,
	key access.PermissionKey,
	subjectID *kernel.UUID,
) error {
	if a.evaluator.HasPermission(actor, key) {
		return nil
	}

	return a.Deny(ctx, actor, key.String(), subjectID)
}

// Deny records a denial for a capability check performed by the handler
// itself (for example sender or rider capability) and returns the
// unauthorized error for it.
func (a *Authorizer) Deny(
	ctx context.Context,
	actor access.Principal,
	capability string,
	subjectID *kernel.UUID,
) error {
	a.recordDenial(ctx, actor, capability, subjectID)
	return errs.NewUnauthorizedError(capability)
}

func (a *Authorizer) recordDenial(
	ctx context.Context,
	actor access.Principal,
	capability string,
	subjectID *kernel.UUID,
) {
	actorID := actor.ID()
	entry, err := audit.NewEntry(
		audit.ChannelSecurity,
		audit.ActionAuthorizationDenied,
		&actorID,
		subjectID,
		map[string]string{"permission": capability, "role": actor.RoleName()},
	)
	if err != nil {
		a.logger.ErrorContext(ctx, "failed to build denial audit entry", "error", err)
		return
	}

	if err := a.security.Record(ctx, entry); err != nil {
		a.logger.ErrorContext(ctx, "failed to record denial audit entry", "error", err)
	}
}
