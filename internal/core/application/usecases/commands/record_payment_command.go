package commands

import (
	"errors"
	"fmt"

	"parcelflow/internal/core/domain/model/access"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// PaymentAction names the settlement step being recorded.
type PaymentAction int

const (
	PaymentActionUnknown PaymentAction = iota
	PaymentActionMarkProcessing
	PaymentActionMarkPaid
	PaymentActionMarkFailed
	PaymentActionCollectCash
	PaymentActionRefund
	PaymentActionRefundPartially
)

func getPaymentActionStrings() map[PaymentAction]string {
	return map[PaymentAction]string{
		PaymentActionMarkProcessing:  "mark_processing",
		PaymentActionMarkPaid:        "mark_paid",
		PaymentActionMarkFailed:      "mark_failed",
		PaymentActionCollectCash:     "collect_cash",
		PaymentActionRefund:          "refund",
		PaymentActionRefundPartially: "refund_partially",
	}
}

// PaymentActionFromString parses the wire representation of a payment action.
func PaymentActionFromString(s string) (PaymentAction, error) {
	for action, str := range getPaymentActionStrings() {
		if str == s {
			return action, nil
		}
	}
	return PaymentActionUnknown, errs.NewValueIsInvalidErrorWithCause("payment action",
		fmt.Errorf("%q is not a recognized payment action", s))
}

func (a PaymentAction) Validate() error {
	if _, ok := getPaymentActionStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment action",
			fmt.Errorf("%d is not a valid payment action", a))
	}
	return nil
}

func (a PaymentAction) String() string {
	if str, ok := getPaymentActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}

// RecordPaymentCommand represents a request to record a settlement step on
// a delivery's payment.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	actor         access.Principal
	deliveryID    kernel.UUID
	action        PaymentAction
	transactionID string

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a payment recording command. The
// transaction ID is only meaningful for mark_paid and may be empty for the
// other actions.
func NewRecordPaymentCommand(
	actor access.Principal,
	deliveryID kernel.UUID,
	action PaymentAction,
	transactionID string,
) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDeliveryID(deliveryID),
		cmd.setAction(action),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

func (c RecordPaymentCommand) Actor() access.Principal {
	return c.actor
}

func (c RecordPaymentCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c RecordPaymentCommand) Action() PaymentAction {
	return c.action
}

func (c RecordPaymentCommand) TransactionID() string {
	return c.transactionID
}

func (c *RecordPaymentCommand) setActor(actor access.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RecordPaymentCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *RecordPaymentCommand) setAction(action PaymentAction) error {
	if err := action.Validate(); err != nil {
		return err
	}

	c.action = action
	return nil
}
