package delivery

import (
	"errors"
	"fmt"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

// Priority is the service tier of a delivery.
type Priority int

const (
	// PriorityNormal targets a 24-48 hour window.
	PriorityNormal Priority = 1
	// PriorityExpress targets a 12-24 hour window.
	PriorityExpress Priority = 2
	// PriorityUrgent targets a 2-6 hour window.
	PriorityUrgent Priority = 3
	// PrioritySameDay targets a 1-2 hour window.
	PrioritySameDay Priority = 4
)

// PriorityFromString parses the wire representation of a priority.
func PriorityFromString(s string) (Priority, error) {
	switch s {
	case "normal":
		return PriorityNormal, nil
	case "express":
		return PriorityExpress, nil
	case "urgent":
		return PriorityUrgent, nil
	case "same_day":
		return PrioritySameDay, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%q is not a recognized priority", s))
	}
}

func (p Priority) Validate() error {
	if p < PriorityNormal || p > PrioritySameDay {
		return errs.NewValueIsOutOfRangeError("priority", int(p), int(PriorityNormal), int(PrioritySameDay))
	}
	return nil
}

func (p Priority) String() string {
	switch p {
	case PriorityNormal:
		return "normal"
	case PriorityExpress:
		return "express"
	case PriorityUrgent:
		return "urgent"
	case PrioritySameDay:
		return "same_day"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

// Route holds the pickup and drop-off ends of a delivery. Addresses are
// required; geo points are optional (customers may place orders without
// device coordinates).
type Route struct { //nolint:recvcheck //using for validation
	pickupAddress   string
	deliveryAddress string
	pickupPoint     *kernel.GeoPoint
	deliveryPoint   *kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewRoute(
	pickupAddress string,
	deliveryAddress string,
	pickupPoint *kernel.GeoPoint,
	deliveryPoint *kernel.GeoPoint,
) (Route, error) {
	route := Route{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		route.setPickupAddress(pickupAddress),
		route.setDeliveryAddress(deliveryAddress),
		route.setPickupPoint(pickupPoint),
		route.setDeliveryPoint(deliveryPoint),
	); err != nil {
		return Route{}, err
	}

	return route, nil
}

func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r Route) PickupAddress() string {
	return r.pickupAddress
}

func (r Route) DeliveryAddress() string {
	return r.deliveryAddress
}

func (r Route) PickupPoint() *kernel.GeoPoint {
	return r.pickupPoint
}

func (r Route) DeliveryPoint() *kernel.GeoPoint {
	return r.deliveryPoint
}

func (r *Route) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickup address")
	}
	r.pickupAddress = address
	return nil
}

func (r *Route) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	r.deliveryAddress = address
	return nil
}

func (r *Route) setPickupPoint(point *kernel.GeoPoint) error {
	if point != nil {
		if err := point.Validate(); err != nil {
			return err
		}
	}
	r.pickupPoint = point
	return nil
}

func (r *Route) setDeliveryPoint(point *kernel.GeoPoint) error {
	if point != nil {
		if err := point.Validate(); err != nil {
			return err
		}
	}
	r.deliveryPoint = point
	return nil
}
