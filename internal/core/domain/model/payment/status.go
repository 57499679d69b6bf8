package payment

import (
	"fmt"

	"parcelflow/internal/pkg/errs"
)

// Status is the lifecycle state of a payment.
type Status int

const (
	StatusUnknown Status = iota
	StatusPending
	StatusProcessing
	StatusPaid
	StatusFailed
	StatusRefunded
	StatusPartiallyRefunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:           "unknown",
		StatusPending:           "pending",
		StatusProcessing:        "processing",
		StatusPaid:              "paid",
		StatusFailed:            "failed",
		StatusRefunded:          "refunded",
		StatusPartiallyRefunded: "partially_refunded",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:           "pending",
		StatusProcessing:        "processing",
		StatusPaid:              "paid",
		StatusFailed:            "failed",
		StatusRefunded:          "refunded",
		StatusPartiallyRefunded: "partially_refunded",
	}
}

// StatusFromString parses the wire representation of a payment status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("payment status",
		fmt.Errorf("%q is not a recognized payment status", s))
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
