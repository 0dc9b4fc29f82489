package repository

import (
	"time"

	"github.com/acceslab/acceslab-go/internal/domain/request"
	"gorm.io/gorm"
)

type RequestRepo interface {
	CreateRequest(req *request.Request) error
	GetRequest(id uint) (request.Request, error)
	ListRequests(filter request.ListFilter) ([]request.Request, error)
	SaveRequest(req *request.Request) error
	UpdateStatus(id uint, statusID uint) error
	DeleteRequest(id uint) error

	// FindConflicts returns requests of the given laboratory whose date
	// range contains the candidate start date, whose status is in
	// statusIDs and whose time window strictly overlaps
	// [startTime, endTime). excludeID skips the request being edited.
	FindConflicts(laboratoryID uint, startDate time.Time, startTime, endTime string, statusIDs []uint, excludeID uint) ([]request.Request, error)

	CreateLine(line *request.Line) error
	ListLines(requestID uint) ([]request.Line, error)

	CreateParticipant(p *request.Participant) error
	GetParticipant(id uint) (request.Participant, error)
	ListParticipants(requestID *uint) ([]request.Participant, error)
	ParticipantExists(requestID, userID uint) (bool, error)
	DeleteParticipant(id uint) error

	WithTx(tx *gorm.DB) RequestRepo
}

type DBRequestRepo struct {
	db  *gorm.DB
	seq SequenceRepo
}

func NewRequestRepo(db *gorm.DB) *DBRequestRepo {
	return &DBRequestRepo{db: db, seq: NewSequenceRepo(db)}
}

func (r *DBRequestRepo) CreateRequest(req *request.Request) error {
	if req.ID == 0 {
		id, err := r.seq.NextID("requests", "request_id")
		if err != nil {
			return err
		}
		req.ID = id
	}
	return r.db.Omit("Lines", "Participants", "Requester", "ServiceType", "Status", "Laboratory", "Schedule").
		Create(req).Error
}

func (r *DBRequestRepo) GetRequest(id uint) (request.Request, error) {
	var req request.Request
	err := r.db.
		Preload("Requester").
		Preload("Requester.Programs").
		Preload("ServiceType").
		Preload("Status").
		Preload("Laboratory").
		Preload("Schedule").
		Preload("Lines").
		Preload("Lines.Object").
		Preload("Participants").
		Preload("Participants.User").
		First(&req, id).Error
	return req, err
}

func (r *DBRequestRepo) ListRequests(filter request.ListFilter) ([]request.Request, error) {
	var rows []request.Request
	q := r.db.
		Preload("Requester").
		Preload("ServiceType").
		Preload("Status").
		Preload("Laboratory").
		Preload("Lines").
		Preload("Lines.Object").
		Order("request_id DESC")
	if filter.UserID != nil {
		q = q.Where("requester_id = ?", *filter.UserID)
	}
	if filter.StatusID != nil {
		q = q.Where("status_id = ?", *filter.StatusID)
	}
	if filter.FromDate != nil {
		q = q.Where("submitted_at >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		q = q.Where("submitted_at <= ?", *filter.ToDate)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *DBRequestRepo) SaveRequest(req *request.Request) error {
	return r.db.Omit("Lines", "Participants", "Requester", "ServiceType", "Status", "Laboratory", "Schedule").
		Save(req).Error
}

func (r *DBRequestRepo) UpdateStatus(id uint, statusID uint) error {
	res := r.db.Model(&request.Request{}).
		Where("request_id = ?", id).
		Update("status_id", statusID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteRequest removes the header; lines and participants go with it
// through the FK cascade.
func (r *DBRequestRepo) DeleteRequest(id uint) error {
	return r.db.Delete(&request.Request{}, id).Error
}

func (r *DBRequestRepo) FindConflicts(laboratoryID uint, startDate time.Time, startTime, endTime string, statusIDs []uint, excludeID uint) ([]request.Request, error) {
	var candidates []request.Request
	q := r.db.
		Where("laboratory_id = ?", laboratoryID).
		Where("start_date <= ? AND end_date >= ?", startDate, startDate).
		Where("status_id IN ?", statusIDs).
		Where("start_time IS NOT NULL AND end_time IS NOT NULL")
	if excludeID != 0 {
		q = q.Where("request_id <> ?", excludeID)
	}
	if err := q.Find(&candidates).Error; err != nil {
		return nil, err
	}
	var rows []request.Request
	for _, c := range candidates {
		if request.TimeWindowsOverlap(startTime, endTime, *c.StartTime, *c.EndTime) {
			rows = append(rows, c)
		}
	}
	return rows, nil
}

func (r *DBRequestRepo) CreateLine(line *request.Line) error {
	if line.ID == 0 {
		id, err := r.seq.NextID("request_lines", "request_line_id")
		if err != nil {
			return err
		}
		line.ID = id
	}
	return r.db.Omit("Object").Create(line).Error
}

func (r *DBRequestRepo) ListLines(requestID uint) ([]request.Line, error) {
	var rows []request.Line
	err := r.db.Preload("Object").Where("request_id = ?", requestID).Order("request_line_id").Find(&rows).Error
	return rows, err
}

func (r *DBRequestRepo) CreateParticipant(p *request.Participant) error {
	if p.ID == 0 {
		id, err := r.seq.NextID("request_participants", "participant_id")
		if err != nil {
			return err
		}
		p.ID = id
	}
	return r.db.Omit("User").Create(p).Error
}

func (r *DBRequestRepo) GetParticipant(id uint) (request.Participant, error) {
	var p request.Participant
	err := r.db.Preload("User").First(&p, id).Error
	return p, err
}

func (r *DBRequestRepo) ListParticipants(requestID *uint) ([]request.Participant, error) {
	var rows []request.Participant
	q := r.db.Preload("User").Order("participant_id")
	if requestID != nil {
		q = q.Where("request_id = ?", *requestID)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *DBRequestRepo) ParticipantExists(requestID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&request.Participant{}).
		Where("request_id = ? AND user_id = ?", requestID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *DBRequestRepo) DeleteParticipant(id uint) error {
	res := r.db.Delete(&request.Participant{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBRequestRepo) WithTx(tx *gorm.DB) RequestRepo {
	if tx == nil {
		return r
	}
	return &DBRequestRepo{db: tx, seq: NewSequenceRepo(tx)}
}
