package commands

import (
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/access"
	"parcelflow/internal/core/domain/model/delivery"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/payment"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request to send a package.
// It carries everything needed to open the order atomically: the package,
// the route, the schedule and the payment method. The acting principal is
// the sender.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor             access.Principal
	deliveryID        kernel.UUID
	pkg               delivery.Package
	recipientName     string
	recipientPhone    string
	route             delivery.Route
	estimatedPickup   time.Time
	estimatedDelivery time.Time
	priority          delivery.Priority
	paymentMethod     payment.Method
	notes             string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new delivery order.
func NewCreateOrderCommand(
	actor access.Principal,
	deliveryID kernel.UUID,
	pkg delivery.Package,
	recipientName string,
	recipientPhone string,
	route delivery.Route,
	estimatedPickup time.Time,
	estimatedDelivery time.Time,
	priority delivery.Priority,
	paymentMethod payment.Method,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		estimatedPickup:   estimatedPickup,
		estimatedDelivery: estimatedDelivery,
		notes:             notes,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDeliveryID(deliveryID),
		cmd.setPackage(pkg),
		cmd.setRecipient(recipientName, recipientPhone),
		cmd.setRoute(route),
		cmd.setPriority(priority),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() access.Principal {
	return c.actor
}

func (c CreateOrderCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c CreateOrderCommand) Package() delivery.Package {
	return c.pkg
}

func (c CreateOrderCommand) RecipientName() string {
	return c.recipientName
}

func (c CreateOrderCommand) RecipientPhone() string {
	return c.recipientPhone
}

func (c CreateOrderCommand) Route() delivery.Route {
	return c.route
}

func (c CreateOrderCommand) EstimatedPickup() time.Time {
	return c.estimatedPickup
}

func (c CreateOrderCommand) EstimatedDelivery() time.Time {
	return c.estimatedDelivery
}

func (c CreateOrderCommand) Priority() delivery.Priority {
	return c.priority
}

func (c CreateOrderCommand) PaymentMethod() payment.Method {
	return c.paymentMethod
}

func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setActor(actor access.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateOrderCommand) setPackage(pkg delivery.Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}

	c.pkg = pkg
	return nil
}

func (c *CreateOrderCommand) setRecipient(name, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipient name")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("recipient phone")
	}

	c.recipientName = name
	c.recipientPhone = phone
	return nil
}

func (c *CreateOrderCommand) setRoute(route delivery.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}

	c.route = route
	return nil
}

func (c *CreateOrderCommand) setPriority(priority delivery.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}

// FeeSchedule prices an order from its package weight.
type FeeSchedule struct {
	perKgRate decimal.Decimal
	currency  kernel.Currency
}

// NewFeeSchedule creates a weight-based fee schedule.
func NewFeeSchedule(perKgRate decimal.Decimal, currency kernel.Currency) (FeeSchedule, error) {
	if perKgRate.IsNegative() {
		return FeeSchedule{}, errs.NewValueIsInvalidError("per-kg rate")
	}
	if err := currency.Validate(); err != nil {
		return FeeSchedule{}, err
	}

	return FeeSchedule{perKgRate: perKgRate, currency: currency}, nil
}

// FeeFor computes the delivery fee: weight times the per-kg rate, rounded to
// two decimal places.
func (f FeeSchedule) FeeFor(pkg delivery.Package) (kernel.Money, error) {
	amount := pkg.WeightKg().Mul(f.perKgRate).Round(2)
	return kernel.NewMoney(amount, f.currency)
}
