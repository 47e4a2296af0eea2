package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Patric420/hotel-management/internal/model"
)

// DashboardRepo runs the aggregate queries behind the back-office
// dashboard. All queries are read-only.
type DashboardRepo struct {
	db *sql.DB
}

// NewDashboardRepo returns a DashboardRepo bound to the given database.
func NewDashboardRepo(db *sql.DB) *DashboardRepo { return &DashboardRepo{db: db} }

// StatusCount pairs an enumerated value with how often it occurs.
type StatusCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// Stats is the dashboard payload.
type Stats struct {
	TotalCustomers   int64         `json:"total_customers"`
	RoomsByStatus    []StatusCount `json:"rooms_by_status"`
	RevenueThisMonth float64       `json:"revenue_this_month"`
	ActiveBookings   int64         `json:"active_bookings"`
	BookingsByType   []StatusCount `json:"bookings_by_room_type"`
	PaymentsByMethod []StatusCount `json:"payments_by_method"`
}

// Load gathers the dashboard aggregates. now anchors the current-month
// revenue window, which is computed in Go as [first of month, first of
// next month) to keep the SQL free of dialect-specific date functions.
func (r *DashboardRepo) Load(ctx context.Context, now time.Time) (*Stats, error) {
	var s Stats
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM CUSTOMER`).Scan(&s.TotalCustomers); err != nil {
		return nil, err
	}

	var err error
	s.RoomsByStatus, err = r.grouped(ctx, `SELECT status, COUNT(*) FROM ROOM GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)
	var revenue sql.NullFloat64
	err = r.db.QueryRowContext(ctx,
		`SELECT SUM(amount) FROM PAYMENT WHERE payment_date >= ? AND payment_date < ?`,
		monthStart, nextMonth).Scan(&revenue)
	if err != nil {
		return nil, err
	}
	s.RevenueThisMonth = revenue.Float64

	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM BOOKING WHERE status IN ('`+model.BookingConfirmed+`', '`+model.BookingCheckedIn+`')`).
		Scan(&s.ActiveBookings)
	if err != nil {
		return nil, err
	}

	s.BookingsByType, err = r.grouped(ctx, `SELECT r.room_type, COUNT(b.booking_id)
		FROM ROOM r LEFT JOIN BOOKING b ON r.room_id = b.room_id
		GROUP BY r.room_type ORDER BY r.room_type`)
	if err != nil {
		return nil, err
	}

	s.PaymentsByMethod, err = r.grouped(ctx,
		`SELECT payment_method, COUNT(*) FROM PAYMENT GROUP BY payment_method ORDER BY payment_method`)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *DashboardRepo) grouped(ctx context.Context, query string) ([]StatusCount, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]StatusCount, 0)
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Label, &sc.Count); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}
