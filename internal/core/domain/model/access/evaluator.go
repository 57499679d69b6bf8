package access

// Evaluator decides whether a principal holds a permission. Evaluation order:
// super admins pass everything; a custom role on the principal can grant a
// permission its policy role lacks, but never revoke one; the principal's
// role name is then looked up in the injected policy. Unknown roles and
// unknown keys deny.
type Evaluator struct {
	policy RolePolicy
}

// NewEvaluator creates an evaluator over the given role policy.
func NewEvaluator(policy RolePolicy) *Evaluator {
	return &Evaluator{policy: policy}
}

// HasPermission reports whether the principal holds the permission.
func (e *Evaluator) HasPermission(principal Principal, key PermissionKey) bool {
	if key.Validate() != nil {
		return false
	}
	if principal.superAdmin {
		return true
	}
	if principal.customRole != nil && principal.customRole.Grants(key) {
		return true
	}

	role, ok := e.policy.Lookup(principal.roleName)
	if !ok {
		return false
	}
	return role.Grants(key)
}
