package profile

import (
	"fmt"

	"parcelflow/internal/pkg/errs"
)

// UserType is the capability of a profile: sending deliveries, carrying
// them, or both.
type UserType int

const (
	UserTypeUnknown UserType = iota
	UserTypeCustomer
	UserTypeRider
	UserTypeBoth
)

func getUserTypeStrings() map[UserType]string {
	return map[UserType]string{
		UserTypeCustomer: "customer",
		UserTypeRider:    "rider",
		UserTypeBoth:     "both",
	}
}

// UserTypeFromString parses the wire representation of a user type.
func UserTypeFromString(s string) (UserType, error) {
	for ut, str := range getUserTypeStrings() {
		if str == s {
			return ut, nil
		}
	}
	return UserTypeUnknown, errs.NewValueIsInvalidErrorWithCause("user type",
		fmt.Errorf("%q is not a recognized user type", s))
}

func (u UserType) Validate() error {
	if _, ok := getUserTypeStrings()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("user type",
			fmt.Errorf("%d is not a valid user type", u))
	}
	return nil
}

func (u UserType) String() string {
	if str, ok := getUserTypeStrings()[u]; ok {
		return str
	}
	return "unknown"
}

// IncludesRider reports whether the capability allows carrying deliveries.
func (u UserType) IncludesRider() bool {
	return u == UserTypeRider || u == UserTypeBoth
}

// IncludesCustomer reports whether the capability allows sending deliveries.
func (u UserType) IncludesCustomer() bool {
	return u == UserTypeCustomer || u == UserTypeBoth
}
