package delivery

import (
	"errors"
	"fmt"

	"parcelflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// The nominal forward path is:
//
//	pending -> searching -> assigned -> accepted -> picked_up -> in_transit -> arrived -> delivered
//
// with failed and cancelled reachable from any non-terminal state.
// delivered, failed and cancelled are terminal: no further transition is
// permitted once one of them is reached.
//
// The linear ordering of the forward path is advisory: an admin override may
// jump between non-terminal states. The whole policy lives in the
// allowedTransitions table so it can be tightened without touching callers.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a delivery order is first placed.
	Pending

	// Searching indicates the platform is looking for a rider.
	Searching

	// Assigned indicates a rider has been bound to the delivery.
	Assigned

	// Accepted indicates the rider confirmed the assignment.
	Accepted

	// PickedUp indicates the rider collected the package from the sender.
	PickedUp

	// InTransit indicates the package is on its way to the recipient.
	InTransit

	// Arrived indicates the rider reached the drop-off point.
	Arrived

	// Delivered indicates the package was handed over. Terminal.
	Delivered

	// Failed indicates the delivery could not be completed. Terminal.
	Failed

	// Cancelled indicates the delivery was cancelled. Terminal.
	Cancelled
)

var (
	// ErrInvalidTransition is returned when the target status is not a
	// recognized delivery status or is not reachable from the current one.
	ErrInvalidTransition = errors.New("status transition is not allowed")

	// ErrTerminalState is returned when attempting any transition out of
	// delivered, failed or cancelled.
	ErrTerminalState = errors.New("delivery is in a terminal status")
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Searching: "searching",
		Assigned:  "assigned",
		Accepted:  "accepted",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Arrived:   "arrived",
		Delivered: "delivered",
		Failed:    "failed",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Searching: "searching",
		Assigned:  "assigned",
		Accepted:  "accepted",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Arrived:   "arrived",
		Delivered: "delivered",
		Failed:    "failed",
		Cancelled: "cancelled",
	}
}

// allowedTransitions is the single source of truth for transition legality.
// Every non-terminal status may currently move to any recognized status;
// terminal statuses allow nothing. Tightening the workflow later is an edit
// to this table, not a rewrite.
func allowedTransitions() map[Status][]Status {
	nonTerminalTargets := []Status{
		Pending, Searching, Assigned, Accepted, PickedUp,
		InTransit, Arrived, Delivered, Failed, Cancelled,
	}

	return map[Status][]Status{
		Pending:   nonTerminalTargets,
		Searching: nonTerminalTargets,
		Assigned:  nonTerminalTargets,
		Accepted:  nonTerminalTargets,
		PickedUp:  nonTerminalTargets,
		InTransit: nonTerminalTargets,
		Arrived:   nonTerminalTargets,
		Delivered: {},
		Failed:    {},
		Cancelled: {},
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error wrapping ErrInvalidTransition semantics for callers that
// feed unparsed client input into a transition.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a recognized delivery status", s))
}

// Validate checks if the Status value is one of the recognized statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status.
// Implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed || s == Cancelled
}

// CanTransitionTo checks transition legality without performing it.
//
// Returns:
//   - an error wrapping errs.ErrValueIsInvalid if target is not recognized
//   - ErrTerminalState if the current status is terminal
//   - ErrInvalidTransition if the table forbids the move
//   - nil otherwise
func (s Status) CanTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return fmt.Errorf("%w: %s accepts no further transitions", ErrTerminalState, s)
	}

	for _, allowed := range allowedTransitions()[s] {
		if allowed == target {
			return nil
		}
	}

	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
}

// TransitionTo returns the new status after validating the move.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.CanTransitionTo(target); err != nil {
		return Unknown, err
	}
	return target, nil
}
