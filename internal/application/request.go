package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/acceslab/acceslab-go/internal/config"
	"github.com/acceslab/acceslab-go/internal/domain/audit"
	"github.com/acceslab/acceslab-go/internal/domain/catalog"
	"github.com/acceslab/acceslab-go/internal/domain/request"
	"github.com/acceslab/acceslab-go/internal/repository"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type RequestService struct {
	Repos   *repository.Repos
	Catalog *CatalogService
}

func NewRequestService(repos *repository.Repos) *RequestService {
	return &RequestService{
		Repos:   repos,
		Catalog: NewCatalogService(repos),
	}
}

// admitted is what survives validation: resolved foreign keys plus the
// parsed reservation window.
type admitted struct {
	serviceTypeID uint
	laboratoryID  *uint
	scheduleID    *uint
	startDate     *time.Time
	endDate       *time.Time
	lines         []request.LineInput
	participants  []uint
}

// Submit validates the whole submission, reporting every violation at
// once, then persists header, lines and stock decrements in a single
// transaction.
func (s *RequestService) Submit(principal Principal, input request.SubmitInput) (request.Request, error) {
	requesterID := principal.UserID
	if input.Requester != nil && *input.Requester != principal.UserID {
		if !principal.IsAdmin {
			return request.Request{}, ErrForbidden
		}
		if _, err := s.Repos.User.GetUserByID(*input.Requester); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ve := NewValidationError()
				ve.Add("requester_id", "user not found")
				return request.Request{}, ve
			}
			return request.Request{}, err
		}
		requesterID = *input.Requester
	}

	adm, err := s.validateSubmission(input, 0)
	if err != nil {
		return request.Request{}, err
	}

	req := request.Request{
		RequesterID:   requesterID,
		ServiceTypeID: adm.serviceTypeID,
		SubmittedAt:   today(),
		Subject:       input.Subject,
		AttendeeCount: input.AttendeeCount,
		StartDate:     adm.startDate,
		EndDate:       adm.endDate,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		Notes:         input.Notes,
		StatusID:      config.PendingStatusID,
		LaboratoryID:  adm.laboratoryID,
		ScheduleID:    adm.scheduleID,
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := createRequestWithRetry(tx, &req); err != nil {
			return err
		}
		for _, line := range adm.lines {
			objectID, err := s.resolveLineObject(tx, line.Object)
			if err != nil {
				return err
			}
			l := request.Line{RequestID: req.ID, ObjectID: objectID, Quantity: line.Quantity}
			if err := tx.Request.CreateLine(&l); err != nil {
				return err
			}
			if err := tx.Object.DecrementStock(objectID, line.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return stockShortfallError(tx, objectID, line.Quantity)
				}
				return err
			}
		}
		for _, userID := range adm.participants {
			p := request.Participant{RequestID: req.ID, UserID: userID}
			if err := tx.Request.CreateParticipant(&p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return request.Request{}, err
	}

	s.recordAudit(principal, audit.ActionCreate, "request", req.ID, nil, req)
	return s.Repos.Request.GetRequest(req.ID)
}

// createRequestWithRetry retries exactly once when the allocated id
// collided with a concurrent submission. The first attempt runs in a
// nested transaction, which Postgres executes as a savepoint, so the
// duplicate-key failure does not abort the enclosing transaction
// before the retry gets its turn.
func createRequestWithRetry(tx *repository.Repos, req *request.Request) error {
	err := tx.ExecTx(func(inner *repository.Repos) error {
		return inner.Request.CreateRequest(req)
	})
	if err == nil || !isDuplicateKey(err) {
		return err
	}
	req.ID = 0
	return tx.Request.CreateRequest(req)
}

// stockShortfallError turns a failed conditional decrement into a
// validation message naming the object and the requested vs remaining
// quantities. The zero-row UPDATE leaves the transaction usable, so the
// current stock can still be read before the rollback.
func stockShortfallError(tx *repository.Repos, objectID uint, requested int) error {
	ve := NewValidationError()
	obj, err := tx.Object.GetObject(objectID)
	if err != nil {
		ve.Add("lines", "insufficient stock for a requested object")
		return ve
	}
	ve.Add("lines", fmt.Sprintf("object %s has insufficient stock (requested %d, available %d)", obj.Name, requested, obj.Stock))
	return ve
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") || strings.Contains(msg, "duplicate key")
}

func (s *RequestService) validateSubmission(input request.SubmitInput, excludeID uint) (admitted, error) {
	ve := NewValidationError()
	adm := admitted{lines: input.Lines}

	if strings.TrimSpace(input.Subject) == "" {
		ve.Add("subject", "is required")
	}

	serviceTypeID, err := s.Catalog.ResolveOrCreate(catalog.KindServiceType, input.ServiceType)
	if err != nil {
		if errors.Is(err, ErrCatalogNotFound) || errors.Is(err, ErrEmptyEntityRef) {
			ve.Add("service_type", err.Error())
		} else {
			return adm, err
		}
	}
	adm.serviceTypeID = serviceTypeID

	hasLab := input.Laboratory != nil && !input.Laboratory.Empty()
	hasSchedule := input.Schedule != nil
	switch {
	case hasLab != hasSchedule:
		ve.Add("laboratory", "laboratory and schedule must be provided together")
	case !hasLab && len(input.Lines) == 0:
		ve.Add("request", "needs a laboratory reservation or at least one object line")
	}

	if hasLab && hasSchedule {
		if input.StartDate == nil || input.EndDate == nil || input.StartTime == nil || input.EndTime == nil {
			ve.Add("dates", "reservations need start_date, end_date, start_time and end_time")
		}
	}

	adm.startDate = s.parseDateField(ve, "start_date", input.StartDate)
	adm.endDate = s.parseDateField(ve, "end_date", input.EndDate)
	if adm.startDate != nil && adm.endDate != nil && adm.endDate.Before(*adm.startDate) {
		ve.Add("end_date", "must not precede start_date")
	}
	if input.StartTime != nil && !validTimeOfDay(*input.StartTime) {
		ve.Add("start_time", "must be HH:MM")
	}
	if input.EndTime != nil && !validTimeOfDay(*input.EndTime) {
		ve.Add("end_time", "must be HH:MM")
	}
	if input.StartTime != nil && input.EndTime != nil &&
		validTimeOfDay(*input.StartTime) && validTimeOfDay(*input.EndTime) &&
		*input.StartTime >= *input.EndTime {
		ve.Add("end_time", "must be after start_time")
	}

	if hasLab && hasSchedule && !ve.HasErrors() {
		labID, err := s.Catalog.ResolveLaboratory(*input.Laboratory)
		if err != nil {
			if errors.Is(err, ErrCatalogNotFound) || errors.Is(err, ErrEmptyEntityRef) {
				ve.Add("laboratory", err.Error())
			} else {
				return adm, err
			}
		} else {
			adm.laboratoryID = &labID
			if _, err := s.Repos.Catalog.GetSchedule(*input.Schedule); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ve.Add("schedule", "schedule not found")
				} else {
					return adm, err
				}
			} else {
				adm.scheduleID = input.Schedule
			}
		}
	}

	if adm.laboratoryID != nil && adm.startDate != nil && input.StartTime != nil && input.EndTime != nil && !ve.HasErrors() {
		conflicts, err := s.Repos.Request.FindConflicts(
			*adm.laboratoryID, *adm.startDate, *input.StartTime, *input.EndTime,
			[]uint{config.PendingStatusID, config.ApprovedStatusID}, excludeID)
		if err != nil {
			return adm, err
		}
		if len(conflicts) > 0 {
			ve.Add("schedule", "laboratory is already reserved in that time window")
		}
	}

	seenObjects := map[uint]bool{}
	for _, line := range input.Lines {
		if line.Quantity <= 0 {
			ve.Add("lines", "quantities must be positive")
			continue
		}
		obj, err := s.findLineObject(line.Object)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrEmptyEntityRef) {
				ve.Add("lines", "object not found")
				continue
			}
			return adm, err
		}
		if seenObjects[obj.ID] {
			ve.Add("lines", "duplicate object in lines")
			continue
		}
		seenObjects[obj.ID] = true
		if !obj.Active {
			ve.Add("lines", "object "+obj.Name+" is not available")
		} else if obj.Stock < line.Quantity {
			ve.Add("lines", fmt.Sprintf("object %s has insufficient stock (requested %d, available %d)", obj.Name, line.Quantity, obj.Stock))
		}
	}

	seenParticipants := map[uint]bool{}
	for _, userID := range input.Participants {
		if seenParticipants[userID] {
			ve.Add("participants", "duplicate participant")
			continue
		}
		seenParticipants[userID] = true
		if _, err := s.Repos.User.GetUserByID(userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ve.Add("participants", "participant user not found")
				continue
			}
			return adm, err
		}
		adm.participants = append(adm.participants, userID)
	}

	return adm, ve.ErrOrNil()
}

func (s *RequestService) parseDateField(ve *ValidationError, field string, value *string) *time.Time {
	if value == nil {
		return nil
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		ve.Add(field, "must be YYYY-MM-DD")
		return nil
	}
	return &parsed
}

// findLineObject looks an object up without creating it; loans only
// reference registered inventory.
func (s *RequestService) findLineObject(ref catalog.EntityRef) (catalog.Object, error) {
	if ref.ID != nil {
		return s.Repos.Object.GetObject(*ref.ID)
	}
	if ref.Name == nil || *ref.Name == "" {
		return catalog.Object{}, ErrEmptyEntityRef
	}
	return s.Repos.Object.FindObjectByName(*ref.Name)
}

func (s *RequestService) resolveLineObject(tx *repository.Repos, ref catalog.EntityRef) (uint, error) {
	if ref.ID != nil {
		return *ref.ID, nil
	}
	if ref.Name == nil || *ref.Name == "" {
		return 0, ErrEmptyEntityRef
	}
	obj, err := tx.Object.FindObjectByName(*ref.Name)
	if err != nil {
		return 0, err
	}
	return obj.ID, nil
}

func (s *RequestService) Get(principal Principal, id uint) (request.Request, error) {
	req, err := s.Repos.Request.GetRequest(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return request.Request{}, ErrRequestNotFound
	}
	if err != nil {
		return request.Request{}, err
	}
	if !principal.IsAdmin && req.RequesterID != principal.UserID {
		return request.Request{}, ErrForbidden
	}
	return req, nil
}

// List pins non-admins to their own requests; admins may filter by any
// requester.
func (s *RequestService) List(principal Principal, filter request.ListFilter) ([]request.Request, error) {
	if !principal.IsAdmin {
		filter.UserID = &principal.UserID
	}
	return s.Repos.Request.ListRequests(filter)
}

// Update edits header fields, re-running reservation validation with
// the request's own id excluded from conflict detection. Admin only.
func (s *RequestService) Update(principal Principal, id uint, input request.UpdateInput) (request.Request, error) {
	if !principal.IsAdmin {
		return request.Request{}, ErrForbidden
	}
	req, err := s.Repos.Request.GetRequest(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return request.Request{}, ErrRequestNotFound
	}
	if err != nil {
		return request.Request{}, err
	}
	before := req

	if input.Subject != nil {
		req.Subject = *input.Subject
	}
	if input.AttendeeCount != nil {
		req.AttendeeCount = *input.AttendeeCount
	}
	if input.Notes != nil {
		req.Notes = *input.Notes
	}
	if input.StartTime != nil {
		req.StartTime = input.StartTime
	}
	if input.EndTime != nil {
		req.EndTime = input.EndTime
	}

	ve := NewValidationError()
	if input.StartDate != nil {
		req.StartDate = s.parseDateField(ve, "start_date", input.StartDate)
	}
	if input.EndDate != nil {
		req.EndDate = s.parseDateField(ve, "end_date", input.EndDate)
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		ve.Add("end_date", "must not precede start_date")
	}
	if req.StartTime != nil && !validTimeOfDay(*req.StartTime) {
		ve.Add("start_time", "must be HH:MM")
	}
	if req.EndTime != nil && !validTimeOfDay(*req.EndTime) {
		ve.Add("end_time", "must be HH:MM")
	}
	if req.StartTime != nil && req.EndTime != nil &&
		validTimeOfDay(*req.StartTime) && validTimeOfDay(*req.EndTime) &&
		*req.StartTime >= *req.EndTime {
		ve.Add("end_time", "must be after start_time")
	}

	if input.Laboratory != nil {
		labID, err := s.Catalog.ResolveLaboratory(*input.Laboratory)
		if err != nil {
			if errors.Is(err, ErrCatalogNotFound) || errors.Is(err, ErrEmptyEntityRef) {
				ve.Add("laboratory", err.Error())
			} else {
				return request.Request{}, err
			}
		} else {
			req.LaboratoryID = &labID
		}
	}
	if input.Schedule != nil {
		if _, err := s.Repos.Catalog.GetSchedule(*input.Schedule); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ve.Add("schedule", "schedule not found")
			} else {
				return request.Request{}, err
			}
		} else {
			req.ScheduleID = input.Schedule
		}
	}

	if req.LaboratoryID != nil && req.StartDate != nil && req.StartTime != nil && req.EndTime != nil && !ve.HasErrors() {
		conflicts, err := s.Repos.Request.FindConflicts(
			*req.LaboratoryID, *req.StartDate, *req.StartTime, *req.EndTime,
			[]uint{config.PendingStatusID, config.ApprovedStatusID}, req.ID)
		if err != nil {
			return request.Request{}, err
		}
		if len(conflicts) > 0 {
			ve.Add("schedule", "laboratory is already reserved in that time window")
		}
	}

	if input.Delivery != nil {
		d, err := s.Catalog.CreateDelivery(*input.Delivery)
		if err != nil {
			return request.Request{}, err
		}
		req.DeliveryID = &d.ID
	}
	if input.Return != nil {
		ret, err := s.Catalog.CreateReturn(*input.Return)
		if err != nil {
			return request.Request{}, err
		}
		req.ReturnID = &ret.ID
	}

	if err := ve.ErrOrNil(); err != nil {
		return request.Request{}, err
	}

	if err := s.Repos.Request.SaveRequest(&req); err != nil {
		return request.Request{}, err
	}
	s.recordAudit(principal, audit.ActionUpdate, "request", req.ID, before, req)
	return s.Repos.Request.GetRequest(id)
}

// UpdateStatus moves a request through its lifecycle. Admin only; the
// target status must already exist in the catalog.
func (s *RequestService) UpdateStatus(principal Principal, id uint, input request.StatusInput) (request.Request, error) {
	if !principal.IsAdmin {
		return request.Request{}, ErrForbidden
	}
	before, err := s.Repos.Request.GetRequest(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return request.Request{}, ErrRequestNotFound
	}
	if err != nil {
		return request.Request{}, err
	}

	statusID, err := s.resolveExistingStatus(input.Status)
	if err != nil {
		return request.Request{}, err
	}

	if err := s.Repos.Request.UpdateStatus(id, statusID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return request.Request{}, ErrRequestNotFound
		}
		return request.Request{}, err
	}
	after, err := s.Repos.Request.GetRequest(id)
	if err != nil {
		return request.Request{}, err
	}
	s.recordAudit(principal, audit.ActionStatus, "request", id, before, after)
	return after, nil
}

func (s *RequestService) resolveExistingStatus(ref catalog.EntityRef) (uint, error) {
	kind, _ := catalog.KindInfo(catalog.KindStatus)
	if ref.ID != nil {
		row, err := s.Repos.Catalog.GetKind(kind, *ref.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrStatusNotFound
		}
		if err != nil {
			return 0, err
		}
		return row.ID, nil
	}
	if ref.Name == nil || *ref.Name == "" {
		return 0, ErrStatusNotFound
	}
	row, err := s.Repos.Catalog.FindKindByName(kind, *ref.Name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrStatusNotFound
	}
	if err != nil {
		return 0, err
	}
	return row.ID, nil
}

// Delete removes a request with its lines and participants. Owner or
// admin; ownership is matched on the stored requester id. Stock taken
// by the request is not restored.
func (s *RequestService) Delete(principal Principal, id uint) error {
	req, err := s.Repos.Request.GetRequest(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRequestNotFound
	}
	if err != nil {
		return err
	}
	if !principal.IsAdmin && req.RequesterID != principal.UserID {
		return ErrForbidden
	}
	if err := s.Repos.Request.DeleteRequest(id); err != nil {
		return err
	}
	s.recordAudit(principal, audit.ActionDelete, "request", id, req, nil)
	return nil
}

func (s *RequestService) AddParticipant(principal Principal, requestID uint, input request.ParticipantInput) (request.Participant, error) {
	if !principal.IsAdmin {
		return request.Participant{}, ErrForbidden
	}
	if _, err := s.Repos.Request.GetRequest(requestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return request.Participant{}, ErrRequestNotFound
		}
		return request.Participant{}, err
	}
	if _, err := s.Repos.User.GetUserByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ve := NewValidationError()
			ve.Add("user_id", "user not found")
			return request.Participant{}, ve
		}
		return request.Participant{}, err
	}
	exists, err := s.Repos.Request.ParticipantExists(requestID, input.UserID)
	if err != nil {
		return request.Participant{}, err
	}
	if exists {
		ve := NewValidationError()
		ve.Add("user_id", "user already participates in this request")
		return request.Participant{}, ve
	}
	p := request.Participant{RequestID: requestID, UserID: input.UserID}
	if err := s.Repos.Request.CreateParticipant(&p); err != nil {
		return request.Participant{}, err
	}
	return s.Repos.Request.GetParticipant(p.ID)
}

func (s *RequestService) RemoveParticipant(principal Principal, id uint) error {
	if !principal.IsAdmin {
		return ErrForbidden
	}
	return s.Repos.Request.DeleteParticipant(id)
}

func (s *RequestService) ListParticipants(requestID *uint) ([]request.Participant, error) {
	return s.Repos.Request.ListParticipants(requestID)
}

// recordAudit persists a best-effort trail entry; failures are swallowed
// so audit storage issues never fail the business operation.
func (s *RequestService) recordAudit(principal Principal, action, entity string, entityID uint, before, after interface{}) {
	entry := audit.Entry{
		ActorID:   principal.UserID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		CreatedAt: time.Now(),
	}
	if before != nil {
		if raw, err := json.Marshal(before); err == nil {
			entry.Before = raw
		}
	}
	if after != nil {
		if raw, err := json.Marshal(after); err == nil {
			entry.After = raw
		}
	}
	_ = s.Repos.Audit.CreateEntry(&entry)
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
