// Package payment provides the payment entity attached 1:1 to every
// delivery, covering prepaid methods and cash on delivery.
//
// Key business rules:
//   - payments start pending and settle via processing into paid or failed
//   - paidAt is stamped once on settlement and never overwritten
//   - cash collection is only valid for the cash method and settles the
//     payment in the same step
//   - refunds (full or partial) require a paid payment
package payment
