package profile

import (
	"errors"
	"fmt"
	"time"

	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

// VehicleType is the kind of vehicle a rider operates.
type VehicleType int

const (
	VehicleTypeUnknown VehicleType = iota
	VehicleTypeBicycle
	VehicleTypeMotorcycle
	VehicleTypeCar
	VehicleTypeVan
	VehicleTypeTruck
)

var ErrRiderDetailsAreNotConstructed = errors.New(
	"RiderDetails must be created via NewRiderDetails constructor")

func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleTypeBicycle:    "bicycle",
		VehicleTypeMotorcycle: "motorcycle",
		VehicleTypeCar:        "car",
		VehicleTypeVan:        "van",
		VehicleTypeTruck:      "truck",
	}
}

// VehicleTypeFromString parses the wire representation of a vehicle type.
func VehicleTypeFromString(s string) (VehicleType, error) {
	for vt, str := range getVehicleTypeStrings() {
		if str == s {
			return vt, nil
		}
	}
	return VehicleTypeUnknown, errs.NewValueIsInvalidErrorWithCause("vehicle type",
		fmt.Errorf("%q is not a recognized vehicle type", s))
}

func (v VehicleType) Validate() error {
	if _, ok := getVehicleTypeStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicle type",
			fmt.Errorf("%d is not a valid vehicle type", v))
	}
	return nil
}

func (v VehicleType) String() string {
	if str, ok := getVehicleTypeStrings()[v]; ok {
		return str
	}
	return "unknown"
}

// RiderDetails carries the rider-only attributes of a profile: licensing,
// vehicle and identity verification data plus availability. A profile whose
// capability includes rider always has RiderDetails and a pure customer
// never does. The UserProfile constructor enforces the invariant, so
// rider-only fields cannot exist on a customer value.
type RiderDetails struct { //nolint:recvcheck //using for validation
	licenseNumber  string
	licenseExpiry  time.Time
	vehicleType    VehicleType
	vehiclePlate   string
	vehicleModel   string
	identityType   string
	identityNumber string
	available      bool
	rating         float64

	guard guard.ConstructorGuard
}

// NewRiderDetails creates the rider attributes, requiring license, plate and
// identity data. Riders start unavailable with a zero rating.
func NewRiderDetails(
	licenseNumber string,
	licenseExpiry time.Time,
	vehicleType VehicleType,
	vehiclePlate string,
	vehicleModel string,
	identityType string,
	identityNumber string,
) (RiderDetails, error) {
	details := RiderDetails{
		vehicleModel: vehicleModel,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		details.setLicense(licenseNumber, licenseExpiry),
		details.setVehicle(vehicleType, vehiclePlate),
		details.setIdentity(identityType, identityNumber),
	); err != nil {
		return RiderDetails{}, err
	}

	return details, nil
}

// RestoreRiderDetails rebuilds rider attributes from persistence, including
// availability and rating.
func RestoreRiderDetails(
	licenseNumber string,
	licenseExpiry time.Time,
	vehicleType VehicleType,
	vehiclePlate string,
	vehicleModel string,
	identityType string,
	identityNumber string,
	available bool,
	rating float64,
) (RiderDetails, error) {
	details, err := NewRiderDetails(
		licenseNumber, licenseExpiry, vehicleType, vehiclePlate,
		vehicleModel, identityType, identityNumber)
	if err != nil {
		return RiderDetails{}, err
	}
	if rating < 0 || rating > 5 {
		return RiderDetails{}, errs.NewValueIsOutOfRangeError("rider rating", rating, 0, 5)
	}

	details.available = available
	details.rating = rating
	return details, nil
}

func (r RiderDetails) Validate() error {
	return r.guard.Validate(ErrRiderDetailsAreNotConstructed)
}

func (r RiderDetails) LicenseNumber() string {
	return r.licenseNumber
}

func (r RiderDetails) LicenseExpiry() time.Time {
	return r.licenseExpiry
}

func (r RiderDetails) VehicleType() VehicleType {
	return r.vehicleType
}

func (r RiderDetails) VehiclePlate() string {
	return r.vehiclePlate
}

func (r RiderDetails) VehicleModel() string {
	return r.vehicleModel
}

func (r RiderDetails) IdentityType() string {
	return r.identityType
}

func (r RiderDetails) IdentityNumber() string {
	return r.identityNumber
}

func (r RiderDetails) IsAvailable() bool {
	return r.available
}

func (r RiderDetails) Rating() float64 {
	return r.rating
}

func (r *RiderDetails) setLicense(number string, expiry time.Time) error {
	if number == "" {
		return errs.NewValueIsRequiredError("license number")
	}
	r.licenseNumber = number
	r.licenseExpiry = expiry
	return nil
}

func (r *RiderDetails) setVehicle(vehicleType VehicleType, plate string) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	if plate == "" {
		return errs.NewValueIsRequiredError("vehicle plate")
	}
	r.vehicleType = vehicleType
	r.vehiclePlate = plate
	return nil
}

func (r *RiderDetails) setIdentity(identityType, identityNumber string) error {
	if identityType == "" {
		return errs.NewValueIsRequiredError("identity type")
	}
	if identityNumber == "" {
		return errs.NewValueIsRequiredError("identity number")
	}
	r.identityType = identityType
	r.identityNumber = identityNumber
	return nil
}
