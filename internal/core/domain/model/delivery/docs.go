// Package delivery provides domain entities and business logic for the
// delivery lifecycle. It implements the Delivery aggregate root with its
// status state machine and append-only status history.
//
// The package includes:
//   - Delivery: The aggregate root owning the package, parties, schedule and fee
//   - Status: A state machine over the ten delivery statuses with a single
//     allowed-transitions table
//   - StatusUpdate: An append-only history entry emitted by every transition
//   - Package: The physical shipment owned 1:1 by a delivery
//   - Route: The pickup and drop-off ends of a delivery
//   - TrackingNumber: The externally visible unique delivery identifier
//
// Key business rules:
//   - delivered, failed and cancelled are terminal; nothing leaves them
//   - actual pickup/delivery timestamps are stamped only by the transitions
//     into picked_up/delivered and never overwritten
//   - every transition appends exactly one StatusUpdate entry
//   - the version counter backs the store's optimistic-concurrency check
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package delivery
