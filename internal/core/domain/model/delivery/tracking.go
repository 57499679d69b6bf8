package delivery

import (
	"fmt"
	"regexp"
	"strings"

	"parcelflow/internal/pkg/errs"

	"github.com/google/uuid"
)

// trackingNumberPattern matches the externally visible delivery identifier:
// a DLV- prefix followed by ten uppercase hex characters.
var trackingNumberPattern = regexp.MustCompile(`^DLV-[0-9A-F]{10}$`)

// TrackingNumber is the globally unique, immutable identifier a customer
// uses to follow a delivery. Uniqueness is backed by the store's unique
// constraint; the value object only guarantees the format.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber generates a fresh tracking number.
func NewTrackingNumber() TrackingNumber {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return TrackingNumber{value: "DLV-" + raw[:10]}
}

// TrackingNumberFromString parses and validates an existing tracking number.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if !trackingNumberPattern.MatchString(s) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause("tracking number",
			fmt.Errorf("%q does not match DLV-XXXXXXXXXX", s))
	}
	return TrackingNumber{value: s}, nil
}

func (t TrackingNumber) String() string {
	return t.value
}

func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}
	return nil
}

func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}
