package delivery

import (
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrNotAssignable is returned when binding a rider to a delivery whose
	// status permits no assignment.
	ErrNotAssignable = errors.New("delivery cannot be assigned in its current status")
)

// Delivery is the aggregate root of the workflow. It owns exactly one
// Package, references a sender and optionally a rider, and carries the
// status state machine together with the pending, not-yet-persisted status
// history entries produced by transitions.
//
// Invariants:
//   - the tracking number is immutable after creation
//   - actualPickup/actualDelivery are stamped only by the transitions into
//     picked_up/delivered, and never overwritten once set
//   - terminal statuses accept no further transitions
//   - the version counter is the optimistic-concurrency token; the store
//     checks and increments it on every update
type Delivery struct {
	id             kernel.UUID
	trackingNumber TrackingNumber
	senderID       kernel.UUID
	riderID        *kernel.UUID
	pkg            Package
	recipientName  string
	recipientPhone string
	route          Route

	estimatedPickup   time.Time
	estimatedDelivery time.Time
	actualPickup      *time.Time
	actualDelivery    *time.Time

	status   Status
	priority Priority
	fee      kernel.Money
	notes    string
	version  int64

	// pendingUpdates are history entries appended by transitions since the
	// aggregate was loaded. The repository persists them in the same commit
	// as the delivery row.
	pendingUpdates []*StatusUpdate

	isConstructed bool
}

// NewDelivery creates a delivery in Pending status with a freshly generated
// tracking number and version 0.
func NewDelivery(
	id kernel.UUID,
	senderID kernel.UUID,
	pkg Package,
	recipientName string,
	recipientPhone string,
	route Route,
	estimatedPickup time.Time,
	estimatedDelivery time.Time,
	priority Priority,
	fee kernel.Money,
	notes string,
) (*Delivery, error) {
	d := &Delivery{
		trackingNumber: NewTrackingNumber(),
		status:         Pending,
		notes:          notes,
		isConstructed:  true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setSenderID(senderID),
		d.setPackage(pkg),
		d.setRecipientName(recipientName),
		d.setRecipientPhone(recipientPhone),
		d.setRoute(route),
		d.setSchedule(estimatedPickup, estimatedDelivery),
		d.setPriority(priority),
		d.setFee(fee),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery rebuilds a delivery from persistence without emitting
// history entries.
func RestoreDelivery(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	senderID kernel.UUID,
	riderID *kernel.UUID,
	pkg Package,
	recipientName string,
	recipientPhone string,
	route Route,
	estimatedPickup time.Time,
	estimatedDelivery time.Time,
	actualPickup *time.Time,
	actualDelivery *time.Time,
	status Status,
	priority Priority,
	fee kernel.Money,
	notes string,
	version int64,
) (*Delivery, error) {
	d := &Delivery{
		actualPickup:   actualPickup,
		actualDelivery: actualDelivery,
		notes:          notes,
		isConstructed:  true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setTrackingNumber(trackingNumber),
		d.setSenderID(senderID),
		d.setRiderID(riderID),
		d.setPackage(pkg),
		d.setRecipientName(recipientName),
		d.setRecipientPhone(recipientPhone),
		d.setRoute(route),
		d.setSchedule(estimatedPickup, estimatedDelivery),
		d.setStatus(status),
		d.setPriority(priority),
		d.setFee(fee),
		d.setVersion(version),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) TrackingNumber() TrackingNumber {
	return d.trackingNumber
}

func (d *Delivery) SenderID() kernel.UUID {
	return d.senderID
}

// RiderID returns the assigned rider's profile ID, or nil if unassigned.
func (d *Delivery) RiderID() *kernel.UUID {
	return d.riderID
}

func (d *Delivery) Package() Package {
	return d.pkg
}

func (d *Delivery) RecipientName() string {
	return d.recipientName
}

func (d *Delivery) RecipientPhone() string {
	return d.recipientPhone
}

func (d *Delivery) Route() Route {
	return d.route
}

func (d *Delivery) EstimatedPickup() time.Time {
	return d.estimatedPickup
}

func (d *Delivery) EstimatedDelivery() time.Time {
	return d.estimatedDelivery
}

// ActualPickup is nil until a transition into PickedUp occurs.
func (d *Delivery) ActualPickup() *time.Time {
	return d.actualPickup
}

// ActualDelivery is nil until a transition into Delivered occurs.
func (d *Delivery) ActualDelivery() *time.Time {
	return d.actualDelivery
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) Priority() Priority {
	return d.priority
}

func (d *Delivery) Fee() kernel.Money {
	return d.fee
}

func (d *Delivery) Notes() string {
	return d.notes
}

// Version is the optimistic-concurrency token checked by the store.
func (d *Delivery) Version() int64 {
	return d.version
}

// IsActive reports whether the delivery is still in a non-terminal status.
func (d *Delivery) IsActive() bool {
	return !d.status.IsTerminal()
}

// PendingUpdates returns the history entries produced by transitions since
// the aggregate was loaded, in emission order.
func (d *Delivery) PendingUpdates() []*StatusUpdate {
	out := make([]*StatusUpdate, len(d.pendingUpdates))
	copy(out, d.pendingUpdates)
	return out
}

// TransitionTo moves the delivery to the target status and appends a history
// entry capturing actor, location and notes.
//
// Side effects on success:
//   - status becomes target (same-status updates are legal: the status is
//     unchanged but a history entry is still appended)
//   - a transition into PickedUp stamps actualPickup once
//   - a transition into Delivered stamps actualDelivery once
//
// The caller is responsible for authorization; persistence of the delivery
// row and the new history entry happens in one commit at the repository.
func (d *Delivery) TransitionTo(
	target Status,
	actorID *kernel.UUID,
	location string,
	point *kernel.GeoPoint,
	notes string,
) error {
	if err := d.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}

	update, err := NewStatusUpdate(d.id, newStatus, actorID, location, point, notes)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if newStatus == PickedUp && d.actualPickup == nil {
		d.actualPickup = &now
	}
	if newStatus == Delivered && d.actualDelivery == nil {
		d.actualDelivery = &now
	}

	d.status = newStatus
	d.pendingUpdates = append(d.pendingUpdates, update)
	return nil
}

// AssignRider binds a rider to the delivery and transitions it to Assigned.
// Rider eligibility is checked by the RiderAssigner domain service; this
// method only guards the delivery side.
func (d *Delivery) AssignRider(riderID kernel.UUID, actorID *kernel.UUID) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := riderID.Validate(); err != nil {
		return err
	}
	if d.status.IsTerminal() {
		return ErrNotAssignable
	}

	if err := d.TransitionTo(Assigned, actorID, "", nil, ""); err != nil {
		return err
	}

	d.riderID = &riderID
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setTrackingNumber(trackingNumber TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	d.trackingNumber = trackingNumber
	return nil
}

func (d *Delivery) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}
	d.senderID = senderID
	return nil
}

func (d *Delivery) setRiderID(riderID *kernel.UUID) error {
	if riderID != nil {
		if err := riderID.Validate(); err != nil {
			return err
		}
	}
	d.riderID = riderID
	return nil
}

func (d *Delivery) setPackage(pkg Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}
	d.pkg = pkg
	return nil
}

func (d *Delivery) setRecipientName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipient name")
	}
	d.recipientName = name
	return nil
}

func (d *Delivery) setRecipientPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("recipient phone")
	}
	d.recipientPhone = phone
	return nil
}

func (d *Delivery) setRoute(route Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	d.route = route
	return nil
}

func (d *Delivery) setSchedule(estimatedPickup, estimatedDelivery time.Time) error {
	if estimatedPickup.IsZero() {
		return errs.NewValueIsRequiredError("estimated pickup")
	}
	if estimatedDelivery.IsZero() {
		return errs.NewValueIsRequiredError("estimated delivery")
	}
	d.estimatedPickup = estimatedPickup
	d.estimatedDelivery = estimatedDelivery
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Delivery) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	d.priority = priority
	return nil
}

func (d *Delivery) setFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}
	d.fee = fee
	return nil
}

func (d *Delivery) setVersion(version int64) error {
	if version < 0 {
		return errs.NewVersionIsInvalidError("delivery version")
	}
	d.version = version
	return nil
}
