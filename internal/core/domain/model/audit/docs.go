// Package audit provides the immutable audit trail records written for
// every guarded mutation and for authorization denials.
//
// Business entries commit in the same transaction as the mutation they
// describe; security entries (denials) are written best-effort so a failed
// write never masks the denial itself. Entries have no domain identity: the
// store's surrogate key provides the trail ordering.
package audit
