// Package profile provides domain entities for platform participants:
// customers who send deliveries, riders who carry them, and accounts that
// do both.
//
// The package includes:
//   - UserProfile: The aggregate root owning identity, capability and the
//     rider application lifecycle
//   - RiderDetails: Rider-only attributes (license, vehicle, identity
//     verification, availability, rating)
//   - UserType: The capability enum (customer, rider, both)
//   - Status: The profile lifecycle enum (active, inactive, suspended,
//     pending_approval)
//
// Key business rules:
//   - rider details exist exactly when the capability includes rider
//   - rider-capable profiles start pending_approval; customers start active
//   - approval activates, rejection suspends; profiles are never deleted
//   - assignment eligibility requires an active, available rider
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package profile
