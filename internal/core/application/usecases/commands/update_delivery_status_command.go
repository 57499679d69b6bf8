package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/access"
	"parcelflow/internal/core/domain/model/delivery"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a request to move a delivery to a
// new status, with optional location context for the history entry.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	actor      access.Principal
	deliveryID kernel.UUID
	target     delivery.Status
	location   string
	point      *kernel.GeoPoint
	notes      string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a status update command.
func NewUpdateDeliveryStatusCommand(
	actor access.Principal,
	deliveryID kernel.UUID,
	target delivery.Status,
	location string,
	point *kernel.GeoPoint,
	notes string,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		location: location,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDeliveryID(deliveryID),
		cmd.setTarget(target),
		cmd.setPoint(point),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

func (c UpdateDeliveryStatusCommand) Actor() access.Principal {
	return c.actor
}

func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c UpdateDeliveryStatusCommand) Target() delivery.Status {
	return c.target
}

func (c UpdateDeliveryStatusCommand) Location() string {
	return c.location
}

func (c UpdateDeliveryStatusCommand) Point() *kernel.GeoPoint {
	return c.point
}

func (c UpdateDeliveryStatusCommand) Notes() string {
	return c.notes
}

func (c *UpdateDeliveryStatusCommand) setActor(actor access.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateDeliveryStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setTarget(target delivery.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *UpdateDeliveryStatusCommand) setPoint(point *kernel.GeoPoint) error {
	if point != nil {
		if err := point.Validate(); err != nil {
			return err
		}
	}

	c.point = point
	return nil
}
