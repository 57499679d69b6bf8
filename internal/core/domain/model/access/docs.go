// Package access provides role-based permission evaluation for the back
// office: a closed permission key set, named roles with explicit grants, an
// injectable role policy table, and the evaluator deciding requests.
//
// Evaluation order: super admin overrides everything; a custom role on the
// principal wins over the policy table; unknown roles and keys deny.
package access
