package request

import "github.com/acceslab/acceslab-go/internal/domain/catalog"

// LineInput is one object+quantity entry of a submission. The object
// may be referenced by id or resolved (and created) by name.
type LineInput struct {
	Object   catalog.EntityRef `json:"object" binding:"required"`
	Quantity int               `json:"quantity" binding:"required"`
}

// SubmitInput is the payload for creating a request. Dates are
// "YYYY-MM-DD" and times "HH:MM"; all five reservation fields travel
// together or not at all, which the service enforces.
type SubmitInput struct {
	// Requester lets administrators file a request on another user's
	// behalf; everyone else defaults to the caller.
	Requester *uint `json:"requester_id"`

	ServiceType   catalog.EntityRef `json:"service_type" binding:"required"`
	Subject       string            `json:"subject" binding:"required,max=100"`
	AttendeeCount int               `json:"attendee_count" binding:"gte=0"`
	Notes         string            `json:"notes"`

	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`

	Laboratory *catalog.EntityRef `json:"laboratory"`
	Schedule   *uint              `json:"schedule_id"`

	Lines        []LineInput `json:"lines"`
	Participants []uint      `json:"participants"`
}

// UpdateInput carries the admin-editable fields of an existing request.
// Absent fields keep their stored value; lines and status are managed
// through their own endpoints.
type UpdateInput struct {
	Subject       *string `json:"subject"`
	AttendeeCount *int    `json:"attendee_count"`
	Notes         *string `json:"notes"`

	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`

	Laboratory *catalog.EntityRef `json:"laboratory"`
	Schedule   *uint              `json:"schedule_id"`

	Delivery *catalog.DeliveryInput `json:"delivery"`
	Return   *catalog.ReturnInput   `json:"return"`
}

// StatusInput changes the lifecycle state of a request.
type StatusInput struct {
	Status catalog.EntityRef `json:"status" binding:"required"`
}

// ParticipantInput adds one user to a request.
type ParticipantInput struct {
	UserID uint `json:"user_id" binding:"required"`
}

// ListFilter narrows request listings. UserID is only honoured for
// administrators; everyone else is pinned to their own requests.
type ListFilter struct {
	UserID   *uint
	StatusID *uint
	FromDate *string
	ToDate   *string
}
