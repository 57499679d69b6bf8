package access

import (
	"parcelflow/internal/pkg/errs"
)

// Role names.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// Role is a named set of permission grants. A role either comes from the
// default policy table or is customized per principal.
type Role struct {
	name   string
	grants map[PermissionKey]bool
}

// NewRole creates a role from explicit grants. Unknown permission keys in
// the grants map are rejected.
func NewRole(name string, grants map[PermissionKey]bool) (Role, error) {
	if name == "" {
		return Role{}, errs.NewValueIsRequiredError("role name")
	}

	copied := make(map[PermissionKey]bool, len(grants))
	for key, granted := range grants {
		if err := key.Validate(); err != nil {
			return Role{}, err
		}
		copied[key] = granted
	}

	return Role{name: name, grants: copied}, nil
}

func (r Role) Name() string {
	return r.name
}

// Grants reports whether the role grants the permission. Keys absent from
// the role deny.
func (r Role) Grants(key PermissionKey) bool {
	return r.grants[key]
}

// RolePolicy maps role names to their default grants. The policy is injected
// into the evaluator so deployments can override the table without touching
// evaluation logic.
type RolePolicy struct {
	roles map[string]Role
}

// NewRolePolicy builds a policy from a set of roles.
func NewRolePolicy(roles ...Role) RolePolicy {
	table := make(map[string]Role, len(roles))
	for _, role := range roles {
		table[role.name] = role
	}
	return RolePolicy{roles: table}
}

// Lookup finds the default role by name.
func (p RolePolicy) Lookup(name string) (Role, bool) {
	role, ok := p.roles[name]
	return role, ok
}

// DefaultRolePolicy returns the built-in role table: admins hold every
// permission, managers everything but settings and user management,
// operators the day-to-day delivery desk, viewers read-only access.
func DefaultRolePolicy() RolePolicy {
	all := make(map[PermissionKey]bool, len(AllPermissionKeys()))
	for _, key := range AllPermissionKeys() {
		all[key] = true
	}

	admin, _ := NewRole(RoleAdmin, all)
	manager, _ := NewRole(RoleManager, map[PermissionKey]bool{
		PermissionViewDashboard:    true,
		PermissionManageCustomers:  true,
		PermissionManageRiders:     true,
		PermissionManageDeliveries: true,
		PermissionManagePackages:   true,
		PermissionViewReports:      true,
	})
	operator, _ := NewRole(RoleOperator, map[PermissionKey]bool{
		PermissionViewDashboard:    true,
		PermissionManageCustomers:  true,
		PermissionManageDeliveries: true,
	})
	viewer, _ := NewRole(RoleViewer, map[PermissionKey]bool{
		PermissionViewDashboard: true,
		PermissionViewReports:   true,
	})

	return NewRolePolicy(admin, manager, operator, viewer)
}
