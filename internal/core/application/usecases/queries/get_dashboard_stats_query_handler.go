package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler aggregates the back-office overview from
// the database.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard queries.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle executes the dashboard aggregation.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	resp := GetDashboardStatsQueryResponse{
		DeliveriesByStatus: make(map[string]int),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM deliveries
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err = rows.Scan(&status, &count); err != nil {
			return GetDashboardStatsQueryResponse{}, err
		}
		resp.DeliveriesByStatus[status] = count
		if status != "delivered" && status != "failed" && status != "cancelled" {
			resp.ActiveDeliveries += count
		}
	}
	if err = rows.Err(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	terminal := resp.DeliveriesByStatus["delivered"] +
		resp.DeliveriesByStatus["failed"] +
		resp.DeliveriesByStatus["cancelled"]
	if terminal > 0 {
		resp.CompletionRate = float64(resp.DeliveriesByStatus["delivered"]) / float64(terminal)
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = 'active' AND is_available),
			COUNT(*) FILTER (WHERE status = 'pending_approval')
		FROM profiles
		WHERE user_type IN ('rider', 'both')
	`).Row()
	if err = row.Scan(&resp.AvailableRiders, &resp.PendingRiderApplications); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM deliveries
		WHERE status = 'delivered'
		  AND actual_delivery >= date_trunc('day', now() AT TIME ZONE 'utc')
	`).Row()
	if err = row.Scan(&resp.DeliveredToday); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	revenueRows, err := h.db.WithContext(ctx).Raw(`
		SELECT currency, COALESCE(SUM(amount), 0)
		FROM payments
		WHERE status IN ('paid', 'partially_refunded')
		  AND paid_at >= date_trunc('day', now() AT TIME ZONE 'utc')
		GROUP BY currency
		ORDER BY currency
	`).Rows()
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	defer revenueRows.Close()

	for revenueRows.Next() {
		var currency, amount string
		if err = revenueRows.Scan(&currency, &amount); err != nil {
			return GetDashboardStatsQueryResponse{}, err
		}
		resp.RevenueToday = append(resp.RevenueToday, fmt.Sprintf("%s %s", amount, currency))
	}
	if err = revenueRows.Err(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	return resp, nil
}
