// Package services provides domain services coordinating operations across
// multiple aggregates.
//
// RiderAssigner binds deliveries to riders: it enforces rider eligibility
// (approved, available, rider-capable) and, for automatic assignment, picks
// the least-loaded eligible rider with rating as the tie breaker.
package services
