package request

import (
	"time"

	"github.com/acceslab/acceslab-go/internal/domain/catalog"
	"github.com/acceslab/acceslab-go/internal/domain/user"
)

// Request is a service request ("solicitud"): a reservation of a
// laboratory slot, a loan of inventory objects, or both. SubmittedAt is
// assigned by the server at creation and never changes. Status always
// starts at the configured pending status no matter what the caller
// sends.
type Request struct {
	ID            uint      `gorm:"primaryKey;column:request_id" json:"id"`
	RequesterID   uint      `gorm:"not null;column:requester_id" json:"requester_id"`
	ServiceTypeID uint      `gorm:"not null;column:service_type_id" json:"service_type_id"`
	SubmittedAt   time.Time `gorm:"type:date;not null;column:submitted_at" json:"submitted_at"`
	Subject       string    `gorm:"size:100;not null;column:subject" json:"subject"`
	AttendeeCount int       `gorm:"not null;column:attendee_count" json:"attendee_count"`

	StartDate *time.Time `gorm:"type:date;column:start_date" json:"start_date,omitempty"`
	EndDate   *time.Time `gorm:"type:date;column:end_date" json:"end_date,omitempty"`
	StartTime *string    `gorm:"type:varchar(5);column:start_time" json:"start_time,omitempty"`
	EndTime   *string    `gorm:"type:varchar(5);column:end_time" json:"end_time,omitempty"`
	Notes     string     `gorm:"type:text;column:notes" json:"notes"`

	StatusID     uint  `gorm:"not null;default:1;column:status_id" json:"status_id"`
	LaboratoryID *uint `gorm:"column:laboratory_id" json:"laboratory_id,omitempty"`
	ScheduleID   *uint `gorm:"column:schedule_id" json:"schedule_id,omitempty"`
	DeliveryID   *uint `gorm:"column:delivery_id" json:"delivery_id,omitempty"`
	ReturnID     *uint `gorm:"column:return_id" json:"return_id,omitempty"`

	Requester    *user.User           `gorm:"foreignKey:RequesterID;constraint:OnDelete:RESTRICT" json:"requester,omitempty"`
	ServiceType  *catalog.ServiceType `gorm:"foreignKey:ServiceTypeID;constraint:OnDelete:RESTRICT" json:"service_type,omitempty"`
	Status       *catalog.Status      `gorm:"foreignKey:StatusID;constraint:OnDelete:RESTRICT" json:"status,omitempty"`
	Laboratory   *catalog.Laboratory  `gorm:"foreignKey:LaboratoryID;constraint:OnDelete:RESTRICT" json:"laboratory,omitempty"`
	Schedule     *catalog.Schedule    `gorm:"foreignKey:ScheduleID;constraint:OnDelete:RESTRICT" json:"schedule,omitempty"`
	Lines        []Line               `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"lines,omitempty"`
	Participants []Participant        `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"participants,omitempty"`
}

func (Request) TableName() string { return "requests" }

// HasReservation reports whether the request carries a laboratory and
// schedule assignment.
func (r *Request) HasReservation() bool {
	return r.LaboratoryID != nil && r.ScheduleID != nil
}

// Line is one object+quantity entry of a request. Lines are owned by
// their request and removed with it.
type Line struct {
	ID        uint `gorm:"primaryKey;column:request_line_id" json:"id"`
	RequestID uint `gorm:"not null;column:request_id" json:"request_id"`
	ObjectID  uint `gorm:"not null;column:object_id" json:"object_id"`
	Quantity  int  `gorm:"not null;column:quantity" json:"quantity"`

	Object *catalog.Object `gorm:"foreignKey:ObjectID;constraint:OnDelete:RESTRICT" json:"object,omitempty"`
}

func (Line) TableName() string { return "request_lines" }

// Participant links an additional user to a request. A user can appear
// at most once per request.
type Participant struct {
	ID        uint `gorm:"primaryKey;column:participant_id" json:"id"`
	RequestID uint `gorm:"not null;column:request_id;uniqueIndex:idx_request_participant" json:"request_id"`
	UserID    uint `gorm:"not null;column:user_id;uniqueIndex:idx_request_participant" json:"user_id"`

	User *user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (Participant) TableName() string { return "request_participants" }

// TimeWindowsOverlap reports strict open-interval overlap of two
// "HH:MM" windows: aStart < bEnd AND aEnd > bStart. Touching endpoints
// (one window ending exactly when the other starts) do not overlap.
func TimeWindowsOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}
