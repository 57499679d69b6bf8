package profile

import (
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

// Domain errors for profile operations.
var (
	// ErrNameIsRequired is returned when attempting to create a profile without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a profile without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPhoneIsRequired is returned when attempting to create a profile without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrProfileIsNotConstructed is returned when using an improperly initialized UserProfile.
	ErrProfileIsNotConstructed = errors.New("UserProfile must be created via NewUserProfile constructor")
	// ErrRiderDetailsMismatch is returned when rider details are present on a
	// customer-only profile or missing on a rider-capable one.
	ErrRiderDetailsMismatch = errors.New("rider details must be present exactly when the user type includes rider")
	// ErrNotPendingApproval is returned when approving or rejecting a profile
	// that is not awaiting review.
	ErrNotPendingApproval = errors.New("profile is not pending approval")
	// ErrNotARider is returned when a rider-only operation is invoked on a
	// customer profile.
	ErrNotARider = errors.New("profile has no rider capability")
)

// UserProfile represents a platform participant: a customer who sends
// deliveries, a rider who carries them, or both. It is an aggregate root
// that owns the rider application lifecycle.
//
// Key business rules:
//   - rider details exist exactly when the user type includes rider
//   - rider-capable profiles start in pending_approval; customers start active
//   - approval moves pending_approval to active; rejection moves it to suspended
//   - only active rider-capable profiles are eligible for assignment
//   - profiles are never deleted, only suspended or deactivated
type UserProfile struct {
	id           kernel.UUID
	name         string
	email        string
	phone        string
	address      string
	userType     UserType
	status       Status
	riderDetails *RiderDetails
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewUserProfile creates a profile for a new platform participant.
// Customer-only profiles are activated immediately; any profile whose
// capability includes rider enters the pending_approval queue and must
// carry rider details.
func NewUserProfile(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	address string,
	userType UserType,
	riderDetails *RiderDetails,
) (*UserProfile, error) {
	profile := &UserProfile{
		address:   address,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		profile.setID(id),
		profile.setName(name),
		profile.setEmail(email),
		profile.setPhone(phone),
		profile.setUserType(userType),
	); err != nil {
		return nil, err
	}
	if err := profile.setRiderDetails(riderDetails); err != nil {
		return nil, err
	}

	if profile.userType.IncludesRider() {
		profile.status = StatusPendingApproval
	} else {
		profile.status = StatusActive
	}

	return profile, nil
}

// RestoreUserProfile reconstructs a profile from persistent storage.
func RestoreUserProfile(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	address string,
	userType UserType,
	status Status,
	riderDetails *RiderDetails,
	createdAt time.Time,
) (*UserProfile, error) {
	profile := &UserProfile{
		address:   address,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		profile.setID(id),
		profile.setName(name),
		profile.setEmail(email),
		profile.setPhone(phone),
		profile.setUserType(userType),
		profile.setStatus(status),
	); err != nil {
		return nil, err
	}
	if err := profile.setRiderDetails(riderDetails); err != nil {
		return nil, err
	}

	return profile, nil
}

// IsEqual compares two profiles for equality by their unique identifiers.
func (p *UserProfile) IsEqual(other *UserProfile) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// Validate checks if the UserProfile was properly constructed.
func (p *UserProfile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

func (p *UserProfile) ID() kernel.UUID {
	return p.id
}

func (p *UserProfile) Name() string {
	return p.name
}

func (p *UserProfile) Email() string {
	return p.email
}

func (p *UserProfile) Phone() string {
	return p.phone
}

func (p *UserProfile) Address() string {
	return p.address
}

func (p *UserProfile) UserType() UserType {
	return p.userType
}

func (p *UserProfile) Status() Status {
	return p.status
}

// RiderDetails returns the rider attributes, or nil for customer-only profiles.
func (p *UserProfile) RiderDetails() *RiderDetails {
	if p.riderDetails == nil {
		return nil
	}
	details := *p.riderDetails
	return &details
}

func (p *UserProfile) CreatedAt() time.Time {
	return p.createdAt
}

// Approve activates a rider application awaiting review.
func (p *UserProfile) Approve() error {
	if p.status != StatusPendingApproval {
		return ErrNotPendingApproval
	}

	p.status = StatusActive
	return nil
}

// Reject suspends a rider application awaiting review. The profile is kept
// so the applicant's history remains auditable.
func (p *UserProfile) Reject() error {
	if p.status != StatusPendingApproval {
		return ErrNotPendingApproval
	}

	p.status = StatusSuspended
	return nil
}

// Suspend blocks an active profile.
func (p *UserProfile) Suspend() error {
	if err := p.status.Validate(); err != nil {
		return err
	}

	p.status = StatusSuspended
	return nil
}

// Deactivate marks the profile dormant.
func (p *UserProfile) Deactivate() error {
	if err := p.status.Validate(); err != nil {
		return err
	}

	p.status = StatusInactive
	return nil
}

// SetAvailability toggles whether the rider is accepting new assignments.
func (p *UserProfile) SetAvailability(available bool) error {
	if !p.userType.IncludesRider() || p.riderDetails == nil {
		return ErrNotARider
	}

	p.riderDetails.available = available
	return nil
}

// CanActAsRider reports whether the profile may carry deliveries right now.
func (p *UserProfile) CanActAsRider() bool {
	return p.userType.IncludesRider() && p.status == StatusActive
}

// CanSendDeliveries reports whether the profile may place orders right now.
func (p *UserProfile) CanSendDeliveries() bool {
	return p.userType.IncludesCustomer() && p.status == StatusActive
}

// IsEligibleForAssignment reports whether the dispatcher may hand this
// profile a delivery: an approved rider who has marked themselves available.
func (p *UserProfile) IsEligibleForAssignment() bool {
	return p.CanActAsRider() && p.riderDetails != nil && p.riderDetails.available
}

func (p *UserProfile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *UserProfile) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

func (p *UserProfile) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	p.email = email
	return nil
}

func (p *UserProfile) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	p.phone = phone
	return nil
}

func (p *UserProfile) setUserType(userType UserType) error {
	if err := userType.Validate(); err != nil {
		return err
	}

	p.userType = userType
	return nil
}

func (p *UserProfile) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	p.status = status
	return nil
}

func (p *UserProfile) setRiderDetails(details *RiderDetails) error {
	if p.userType.IncludesRider() != (details != nil) {
		return ErrRiderDetailsMismatch
	}
	if details != nil {
		if err := details.Validate(); err != nil {
			return err
		}
		copied := *details
		p.riderDetails = &copied
	}

	return nil
}
