package queries

import (
	"errors"

	"parcelflow/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the back-office overview: delivery
// counts per status, rider availability and today's settled revenue.
// This is a parameterless query.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a dashboard stats query.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse is the back-office overview.
type GetDashboardStatsQueryResponse struct {
	// DeliveriesByStatus counts deliveries per status string.
	DeliveriesByStatus map[string]int
	// ActiveDeliveries counts deliveries in a non-terminal status.
	ActiveDeliveries int
	// AvailableRiders counts active riders accepting assignments.
	AvailableRiders int
	// PendingRiderApplications counts profiles awaiting review.
	PendingRiderApplications int
	// DeliveredToday counts deliveries completed since midnight UTC.
	DeliveredToday int
	// CompletionRate is the share of terminal deliveries that were
	// delivered, 0 when nothing has reached a terminal status yet.
	CompletionRate float64
	// RevenueToday sums payments settled since midnight UTC, formatted
	// per currency ("125.50 USD").
	RevenueToday []string
}
