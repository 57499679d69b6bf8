package profile

import (
	"fmt"

	"parcelflow/internal/pkg/errs"
)

// Status is the lifecycle state of a user profile. Profiles are never hard
// deleted; their lifecycle ends in Inactive or Suspended.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive allows the profile to send or carry deliveries.
	StatusActive

	// StatusInactive marks a dormant profile.
	StatusInactive

	// StatusSuspended blocks the profile; rejected rider applications
	// end here.
	StatusSuspended

	// StatusPendingApproval marks a rider application awaiting review.
	StatusPendingApproval
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "unknown",
		StatusActive:          "active",
		StatusInactive:        "inactive",
		StatusSuspended:       "suspended",
		StatusPendingApproval: "pending_approval",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusActive:          "active",
		StatusInactive:        "inactive",
		StatusSuspended:       "suspended",
		StatusPendingApproval: "pending_approval",
	}
}

// StatusFromString parses the wire representation of a profile status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("profile status",
		fmt.Errorf("%q is not a recognized profile status", s))
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("profile status",
			fmt.Errorf("%d is not a valid profile status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
