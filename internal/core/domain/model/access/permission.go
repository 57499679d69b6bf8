package access

import (
	"fmt"

	"parcelflow/internal/pkg/errs"
)

// PermissionKey identifies one guarded capability of the back office. The
// set is closed: unknown keys never evaluate, they fail parsing instead.
type PermissionKey int

const (
	PermissionUnknown PermissionKey = iota
	PermissionViewDashboard
	PermissionManageCustomers
	PermissionManageRiders
	PermissionManageDeliveries
	PermissionManagePackages
	PermissionViewReports
	PermissionManageSettings
	PermissionManageUsers
)

func getPermissionKeyStrings() map[PermissionKey]string {
	return map[PermissionKey]string{
		PermissionViewDashboard:    "view_dashboard",
		PermissionManageCustomers:  "manage_customers",
		PermissionManageRiders:     "manage_riders",
		PermissionManageDeliveries: "manage_deliveries",
		PermissionManagePackages:   "manage_packages",
		PermissionViewReports:      "view_reports",
		PermissionManageSettings:   "manage_settings",
		PermissionManageUsers:      "manage_users",
	}
}

// PermissionKeyFromString parses the wire representation of a permission key.
func PermissionKeyFromString(s string) (PermissionKey, error) {
	for key, str := range getPermissionKeyStrings() {
		if str == s {
			return key, nil
		}
	}
	return PermissionUnknown, errs.NewValueIsInvalidErrorWithCause("permission key",
		fmt.Errorf("%q is not a recognized permission key", s))
}

func (k PermissionKey) Validate() error {
	if _, ok := getPermissionKeyStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("permission key",
			fmt.Errorf("%d is not a valid permission key", k))
	}
	return nil
}

func (k PermissionKey) String() string {
	if str, ok := getPermissionKeyStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// AllPermissionKeys returns every key of the closed permission set.
func AllPermissionKeys() []PermissionKey {
	return []PermissionKey{
		PermissionViewDashboard,
		PermissionManageCustomers,
		PermissionManageRiders,
		PermissionManageDeliveries,
		PermissionManagePackages,
		PermissionViewReports,
		PermissionManageSettings,
		PermissionManageUsers,
	}
}
