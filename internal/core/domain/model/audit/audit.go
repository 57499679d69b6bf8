package audit

import (
	"fmt"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
)

// Channel separates business audit records, which commit atomically with the
// mutation they describe, from security records, which are written
// best-effort outside the transaction.
type Channel int

const (
	ChannelUnknown Channel = iota
	ChannelBusiness
	ChannelSecurity
)

func getChannelStrings() map[Channel]string {
	return map[Channel]string{
		ChannelBusiness: "business",
		ChannelSecurity: "security",
	}
}

// ChannelFromString parses the wire representation of a channel.
func ChannelFromString(s string) (Channel, error) {
	for c, str := range getChannelStrings() {
		if str == s {
			return c, nil
		}
	}
	return ChannelUnknown, errs.NewValueIsInvalidErrorWithCause("audit channel",
		fmt.Errorf("%q is not a recognized audit channel", s))
}

func (c Channel) Validate() error {
	if _, ok := getChannelStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("audit channel",
			fmt.Errorf("%d is not a valid audit channel", c))
	}
	return nil
}

func (c Channel) String() string {
	if str, ok := getChannelStrings()[c]; ok {
		return str
	}
	return "unknown"
}

// ActionKind names the audited operation. The set is closed so the trail
// stays queryable.
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionCreateOrder
	ActionUpdateStatus
	ActionAssignRider
	ActionApproveRider
	ActionRejectRider
	ActionRecordPayment
	ActionAuthorizationDenied
)

func getActionKindStrings() map[ActionKind]string {
	return map[ActionKind]string{
		ActionCreateOrder:         "create_order",
		ActionUpdateStatus:        "update_status",
		ActionAssignRider:         "assign_rider",
		ActionApproveRider:        "approve_rider",
		ActionRejectRider:         "reject_rider",
		ActionRecordPayment:       "record_payment",
		ActionAuthorizationDenied: "authorization_denied",
	}
}

// ActionKindFromString parses the wire representation of an action kind.
func ActionKindFromString(s string) (ActionKind, error) {
	for kind, str := range getActionKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause("action kind",
		fmt.Errorf("%q is not a recognized action kind", s))
}

func (a ActionKind) Validate() error {
	if _, ok := getActionKindStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action kind",
			fmt.Errorf("%d is not a valid action kind", a))
	}
	return nil
}

func (a ActionKind) String() string {
	if str, ok := getActionKindStrings()[a]; ok {
		return str
	}
	return "unknown"
}

// Entry is one immutable audit record. Entries carry no domain identity:
// the store assigns a monotonically increasing surrogate key, which doubles
// as the ordering guarantee for the trail. The actor is nil for
// system-initiated actions.
type Entry struct {
	channel    Channel
	action     ActionKind
	actorID    *kernel.UUID
	subjectID  *kernel.UUID
	details    map[string]string
	recordedAt time.Time
}

// NewEntry creates an audit record stamped with the current time.
func NewEntry(
	channel Channel,
	action ActionKind,
	actorID *kernel.UUID,
	subjectID *kernel.UUID,
	details map[string]string,
) (Entry, error) {
	if err := channel.Validate(); err != nil {
		return Entry{}, err
	}
	if err := action.Validate(); err != nil {
		return Entry{}, err
	}
	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			return Entry{}, err
		}
	}
	if subjectID != nil {
		if err := subjectID.Validate(); err != nil {
			return Entry{}, err
		}
	}

	copied := make(map[string]string, len(details))
	for k, v := range details {
		copied[k] = v
	}

	return Entry{
		channel:    channel,
		action:     action,
		actorID:    actorID,
		subjectID:  subjectID,
		details:    copied,
		recordedAt: time.Now().UTC(),
	}, nil
}

func (e Entry) Channel() Channel {
	return e.channel
}

func (e Entry) Action() ActionKind {
	return e.action
}

// ActorID returns the acting principal, or nil for system actions.
func (e Entry) ActorID() *kernel.UUID {
	return e.actorID
}

// SubjectID returns the aggregate the action touched, if any.
func (e Entry) SubjectID() *kernel.UUID {
	return e.subjectID
}

func (e Entry) Details() map[string]string {
	copied := make(map[string]string, len(e.details))
	for k, v := range e.details {
		copied[k] = v
	}
	return copied
}

func (e Entry) RecordedAt() time.Time {
	return e.recordedAt
}
