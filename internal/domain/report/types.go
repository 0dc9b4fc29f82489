package report

import "time"

// KPIs is the dashboard headline block.
type KPIs struct {
	ActiveUsers30d       int64   `json:"active_users_30d"`
	ActiveLoans          int64   `json:"active_loans"`
	ReservationsThisWeek int64   `json:"reservations_this_week"`
	InactiveObjects      int64   `json:"inactive_objects"`
	RequestsThisMonth    int64   `json:"requests_this_month"`
	RequestsLastMonth    int64   `json:"requests_last_month"`
	MonthDeltaPercent    float64 `json:"month_delta_percent"`
}

// MonthBucket is one month of the activity series.
type MonthBucket struct {
	Month        string `json:"month"`
	Reservations int64  `json:"reservations"`
	Loans        int64  `json:"loans"`
}

// ProgramShare is one slice of the request distribution by academic
// program.
type ProgramShare struct {
	ProgramID   uint    `json:"program_id"`
	ProgramName string  `json:"program_name"`
	Count       int64   `json:"count"`
	Percent     float64 `json:"percent"`
}

// TopObject ranks an inventory object by total requested quantity.
type TopObject struct {
	ObjectID      uint   `json:"object_id"`
	Name          string `json:"name"`
	TotalQuantity int64  `json:"total_quantity"`
}

// HistoryEntry is one row of the joined request history listing.
type HistoryEntry struct {
	RequestID   uint       `json:"request_id"`
	Requester   string     `json:"requester"`
	Subject     string     `json:"subject"`
	ServiceType string     `json:"service_type"`
	Status      string     `json:"status"`
	SubmittedAt time.Time  `json:"submitted_at"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// HistoryFilter narrows the history listing.
type HistoryFilter struct {
	StatusID *uint
	FromDate *string
	ToDate   *string
	Limit    int
}

// DeliverySummary aggregates the logistics view of loans.
type DeliverySummary struct {
	PendingDeliveries   int64   `json:"pending_deliveries"`
	OnTimeReturnPercent float64 `json:"on_time_return_percent"`
	AvgPlannedUseDays   float64 `json:"avg_planned_use_days"`
	ReturnsToday        int64   `json:"returns_today"`
	ReturnsTomorrow     int64   `json:"returns_tomorrow"`
	ReturnsThisWeek     int64   `json:"returns_this_week"`
}
