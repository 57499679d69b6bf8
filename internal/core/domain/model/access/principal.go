package access

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
)

// ErrPrincipalIsNotConstructed is returned when using an improperly
// initialized Principal.
var ErrPrincipalIsNotConstructed = errors.New(
	"Principal must be created via NewPrincipal constructor")

// Principal is the authenticated identity behind a request. System-initiated
// work (cron jobs) runs without a principal; handlers treat nil actors as
// the system.
type Principal struct {
	id         kernel.UUID
	superAdmin bool
	roleName   string
	customRole *Role
}

// NewPrincipal creates a principal carrying a named role from the policy
// table.
func NewPrincipal(id kernel.UUID, roleName string, superAdmin bool) (Principal, error) {
	if err := id.Validate(); err != nil {
		return Principal{}, err
	}

	return Principal{id: id, roleName: roleName, superAdmin: superAdmin}, nil
}

// NewPrincipalWithCustomRole creates a principal that carries both a named
// policy role and an explicit custom role. The custom role can only widen
// access: grants it lacks still resolve through the policy table under
// roleName.
func NewPrincipalWithCustomRole(id kernel.UUID, roleName string, role Role, superAdmin bool) (Principal, error) {
	if err := id.Validate(); err != nil {
		return Principal{}, err
	}

	return Principal{id: id, roleName: roleName, superAdmin: superAdmin, customRole: &role}, nil
}

func (p Principal) Validate() error {
	if err := p.id.Validate(); err != nil {
		return ErrPrincipalIsNotConstructed
	}
	return nil
}

func (p Principal) ID() kernel.UUID {
	return p.id
}

func (p Principal) IsSuperAdmin() bool {
	return p.superAdmin
}

func (p Principal) RoleName() string {
	return p.roleName
}

// CustomRole returns the principal's explicit role, or nil when grants come
// from the policy table.
func (p Principal) CustomRole() *Role {
	if p.customRole == nil {
		return nil
	}
	role := *p.customRole
	return &role
}
