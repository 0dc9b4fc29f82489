package application

import (
	"errors"
	"testing"
	"time"

	"github.com/acceslab/acceslab-go/internal/config"
	"github.com/acceslab/acceslab-go/internal/domain/catalog"
	"github.com/acceslab/acceslab-go/internal/domain/request"
	"github.com/acceslab/acceslab-go/internal/domain/user"
	"github.com/acceslab/acceslab-go/internal/repository"
	"github.com/acceslab/acceslab-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupRequestServiceMocks(t *testing.T) (*RequestService,
	*mock.MockRequestRepo,
	*mock.MockObjectRepo,
	*mock.MockCatalogRepo,
	*mock.MockUserRepo,
	*mock.MockAuditRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockRequest := mock.NewMockRequestRepo(ctrl)
	mockObject := mock.NewMockObjectRepo(ctrl)
	mockCatalog := mock.NewMockCatalogRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)
	mockAudit := mock.NewMockAuditRepo(ctrl)

	repos := &repository.Repos{
		Request: mockRequest,
		Object:  mockObject,
		Catalog: mockCatalog,
		User:    mockUser,
		Audit:   mockAudit,
	}
	svc := NewRequestService(repos)
	return svc, mockRequest, mockObject, mockCatalog, mockUser, mockAudit
}

func serviceTypeKind() catalog.Kind {
	kind, _ := catalog.KindInfo(catalog.KindServiceType)
	return kind
}

func statusKind() catalog.Kind {
	kind, _ := catalog.KindInfo(catalog.KindStatus)
	return kind
}

// --------------------- Submit ---------------------
func TestSubmit_LoanSuccess(t *testing.T) {
	svc, mockRequest, mockObject, mockCatalog, _, mockAudit := setupRequestServiceMocks(t)

	input := request.SubmitInput{
		ServiceType: catalog.EntityRef{ID: ptrUint(config.LoanServiceTypeID)},
		Subject:     "Microscopes for optics class",
		Lines: []request.LineInput{
			{Object: catalog.EntityRef{ID: ptrUint(10)}, Quantity: 2},
		},
	}

	mockCatalog.EXPECT().GetKind(serviceTypeKind(), config.LoanServiceTypeID).
		Return(catalog.Reference{ID: config.LoanServiceTypeID, Name: "Loan"}, nil)
	mockObject.EXPECT().GetObject(uint(10)).
		Return(catalog.Object{ID: 10, Name: "Microscope", Stock: 5, Active: true}, nil)

	mockRequest.EXPECT().CreateRequest(gomock.Any()).DoAndReturn(func(req *request.Request) error {
		assert.Equal(t, config.PendingStatusID, req.StatusID)
		assert.Equal(t, uint(5), req.RequesterID)
		req.ID = 42
		return nil
	})
	mockRequest.EXPECT().CreateLine(gomock.Any()).DoAndReturn(func(l *request.Line) error {
		assert.Equal(t, uint(42), l.RequestID)
		assert.Equal(t, uint(10), l.ObjectID)
		assert.Equal(t, 2, l.Quantity)
		return nil
	})
	mockObject.EXPECT().DecrementStock(uint(10), 2).Return(nil)
	mockAudit.EXPECT().CreateEntry(gomock.Any()).Return(nil)
	mockRequest.EXPECT().GetRequest(uint(42)).Return(request.Request{ID: 42, Subject: input.Subject}, nil)

	created, err := svc.Submit(Principal{UserID: 5}, input)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), created.ID)
}

func TestSubmit_ReservationSuccess(t *testing.T) {
	svc, mockRequest, _, mockCatalog, _, mockAudit := setupRequestServiceMocks(t)

	input := request.SubmitInput{
		ServiceType: catalog.EntityRef{ID: ptrUint(config.ReservationServiceTypeID)},
		Subject:     "Chemistry practice session",
		Laboratory:  &catalog.EntityRef{ID: ptrUint(3)},
		Schedule:    ptrUint(7),
		StartDate:   ptrString("2026-09-10"),
		EndDate:     ptrString("2026-09-10"),
		StartTime:   ptrString("10:00"),
		EndTime:     ptrString("12:00"),
	}
	day := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)

	mockCatalog.EXPECT().GetKind(serviceTypeKind(), config.ReservationServiceTypeID).
		Return(catalog.Reference{ID: config.ReservationServiceTypeID, Name: "Reservation"}, nil)
	mockCatalog.EXPECT().GetLaboratory(uint(3)).Return(catalog.Laboratory{ID: 3, Name: "Chem Lab"}, nil)
	mockCatalog.EXPECT().GetSchedule(uint(7)).Return(catalog.Schedule{ID: 7, LaboratoryID: 3}, nil)
	mockRequest.EXPECT().FindConflicts(uint(3), day, "10:00", "12:00",
		[]uint{config.PendingStatusID, config.ApprovedStatusID}, uint(0)).
		Return(nil, nil)

	mockRequest.EXPECT().CreateRequest(gomock.Any()).DoAndReturn(func(req *request.Request) error {
		assert.Equal(t, config.PendingStatusID, req.StatusID)
		assert.Equal(t, uint(3), *req.LaboratoryID)
		assert.Equal(t, uint(7), *req.ScheduleID)
		req.ID = 43
		return nil
	})
	mockAudit.EXPECT().CreateEntry(gomock.Any()).Return(nil)
	mockRequest.EXPECT().GetRequest(uint(43)).Return(request.Request{ID: 43}, nil)

	created, err := svc.Submit(Principal{UserID: 5}, input)
	assert.NoError(t, err)
	assert.Equal(t, uint(43), created.ID)
}

func TestSubmit_ConflictRejected(t *testing.T) {
	svc, mockRequest, _, mockCatalog, _, _ := setupRequestServiceMocks(t)

	input := request.SubmitInput{
		ServiceType: catalog.EntityRef{ID: ptrUint(config.ReservationServiceTypeID)},
		Subject:     "Overlapping session",
		Laboratory:  &catalog.EntityRef{ID: ptrUint(3)},
		Schedule:    ptrUint(7),
		StartDate:   ptrString("2026-09-10"),
		EndDate:     ptrString("2026-09-10"),
		StartTime:   ptrString("10:00"),
		EndTime:     ptrString("12:00"),
	}
	day := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)

	mockCatalog.EXPECT().GetKind(serviceTypeKind(), config.ReservationServiceTypeID).
		Return(catalog.Reference{ID: config.ReservationServiceTypeID, Name: "Reservation"}, nil)
	mockCatalog.EXPECT().GetLaboratory(uint(3)).Return(catalog.Laboratory{ID: 3}, nil)
	mockCatalog.EXPECT().GetSchedule(uint(7)).Return(catalog.Schedule{ID: 7}, nil)
	mockRequest.EXPECT().FindConflicts(uint(3), day, "10:00", "12:00",
		[]uint{config.PendingStatusID, config.ApprovedStatusID}, uint(0)).
		Return([]request.Request{{ID: 9}}, nil)

	_, err := svc.Submit(Principal{UserID: 5}, input)
	ve, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Fields, "schedule")
}

func TestSubmit_AggregatesValidationErrors(t *testing.T) {
	svc, _, _, mockCatalog, _, _ := setupRequestServiceMocks(t)

	input := request.SubmitInput{
		ServiceType: catalog.EntityRef{ID: ptrUint(99)},
		Subject:     "   ",
		Laboratory:  &catalog.EntityRef{ID: ptrUint(3)},
		StartTime:   ptrString("9:00"),
	}

	mockCatalog.EXPECT().GetKind(serviceTypeKind(), uint(99)).
		Return(catalog.Reference{}, gorm.ErrRecordNotFound)

	_, err := svc.Submit(Principal{UserID: 5}, input)
	ve, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Fields, "subject")
	assert.Contains(t, ve.Fields, "service_type")
	assert.Contains(t, ve.Fields, "laboratory")
	assert.Contains(t, ve.Fields, "start_time")
}

func TestSubmit_InsufficientStockRollsBack(t *testing.T) {
	svc, mockRequest, mockObject, mockCatalog, _, _ := setupRequestServiceMocks(t)

	input := request.SubmitInput{
		ServiceType: catalog.EntityRef{ID: ptrUint(config.LoanServiceTypeID)},
		Subject:     "Oscilloscopes",
		Lines: []request.LineInput{
			{Object: catalog.EntityRef{ID: ptrUint(10)}, Quantity: 3},
		},
	}

	mockCatalog.EXPECT().GetKind(serviceTypeKind(), config.LoanServiceTypeID).
		Return(catalog.Reference{ID: config.LoanServiceTypeID}, nil)
	mockObject.EXPECT().GetObject(uint(10)).
		Return(catalog.Object{ID: 10, Name: "Oscilloscope", Stock: 4, Active: true}, nil)
	mockRequest.EXPECT().CreateRequest(gomock.Any()).DoAndReturn(func(req *request.Request) error {
		req.ID = 44
		return nil
	})
	mockRequest.EXPECT().CreateLine(gomock.Any()).Return(nil)
	// stock was depleted between validation and the transactional decrement
	mockObject.EXPECT().DecrementStock(uint(10), 3).Return(repository.ErrInsufficientStock)
	mockObject.EXPECT().GetObject(uint(10)).
		Return(catalog.Object{ID: 10, Name: "Oscilloscope", Stock: 2, Active: true}, nil)

	_, err := svc.Submit(Principal{UserID: 5}, input)
	ve, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Fields["lines"], "Oscilloscope")
	assert.Contains(t, ve.Fields["lines"], "requested 3")
	assert.Contains(t, ve.Fields["lines"], "available 2")
}

func TestSubmit_StockShortfallNamesObject(t *testing.T) {
	svc, _, mockObject, mockCatalog, _, _ := setupRequestServiceMocks(t)

	input := request.SubmitInput{
		ServiceType: catalog.EntityRef{ID: ptrUint(config.LoanServiceTypeID)},
		Subject:     "Too many microscopes",
		Lines: []request.LineInput{
			{Object: catalog.EntityRef{ID: ptrUint(10)}, Quantity: 4},
		},
	}

	mockCatalog.EXPECT().GetKind(serviceTypeKind(), config.LoanServiceTypeID).
		Return(catalog.Reference{ID: config.LoanServiceTypeID}, nil)
	mockObject.EXPECT().GetObject(uint(10)).
		Return(catalog.Object{ID: 10, Name: "Microscope", Stock: 1, Active: true}, nil)

	_, err := svc.Submit(Principal{UserID: 5}, input)
	ve, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Fields["lines"], "Microscope")
	assert.Contains(t, ve.Fields["lines"], "requested 4")
	assert.Contains(t, ve.Fields["lines"], "available 1")
}

func TestSubmit_InactiveObjectRejected(t *testing.T) {
	svc, _, mockObject, mockCatalog, _, _ := setupRequestServiceMocks(t)

	input := request.SubmitInput{
		ServiceType: catalog.EntityRef{ID: ptrUint(config.LoanServiceTypeID)},
		Subject:     "Broken gear",
		Lines: []request.LineInput{
			{Object: catalog.EntityRef{ID: ptrUint(10)}, Quantity: 1},
		},
	}

	mockCatalog.EXPECT().GetKind(serviceTypeKind(), config.LoanServiceTypeID).
		Return(catalog.Reference{ID: config.LoanServiceTypeID}, nil)
	mockObject.EXPECT().GetObject(uint(10)).
		Return(catalog.Object{ID: 10, Name: "Burner", Stock: 3, Active: false}, nil)

	_, err := svc.Submit(Principal{UserID: 5}, input)
	ve, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Fields, "lines")
}

func TestSubmit_RetriesOnceOnDuplicateID(t *testing.T) {
	svc, mockRequest, mockObject, mockCatalog, _, mockAudit := setupRequestServiceMocks(t)

	input := request.SubmitInput{
		ServiceType: catalog.EntityRef{ID: ptrUint(config.LoanServiceTypeID)},
		Subject:     "Concurrent submission",
		Lines: []request.LineInput{
			{Object: catalog.EntityRef{ID: ptrUint(10)}, Quantity: 1},
		},
	}

	mockCatalog.EXPECT().GetKind(serviceTypeKind(), config.LoanServiceTypeID).
		Return(catalog.Reference{ID: config.LoanServiceTypeID}, nil)
	mockObject.EXPECT().GetObject(uint(10)).
		Return(catalog.Object{ID: 10, Name: "Multimeter", Stock: 3, Active: true}, nil)

	gomock.InOrder(
		mockRequest.EXPECT().CreateRequest(gomock.Any()).
			Return(errors.New(`ERROR: duplicate key value violates unique constraint "requests_pkey" (SQLSTATE 23505)`)),
		mockRequest.EXPECT().CreateRequest(gomock.Any()).DoAndReturn(func(req *request.Request) error {
			assert.Equal(t, uint(0), req.ID)
			req.ID = 45
			return nil
		}),
	)
	mockRequest.EXPECT().CreateLine(gomock.Any()).Return(nil)
	mockObject.EXPECT().DecrementStock(uint(10), 1).Return(nil)
	mockAudit.EXPECT().CreateEntry(gomock.Any()).Return(nil)
	mockRequest.EXPECT().GetRequest(uint(45)).Return(request.Request{ID: 45}, nil)

	created, err := svc.Submit(Principal{UserID: 5}, input)
	assert.NoError(t, err)
	assert.Equal(t, uint(45), created.ID)
}

func TestSubmit_AdminFilesOnBehalfOfUser(t *testing.T) {
	svc, mockRequest, mockObject, mockCatalog, mockUser, mockAudit := setupRequestServiceMocks(t)

	input := request.SubmitInput{
		Requester:   ptrUint(9),
		ServiceType: catalog.EntityRef{ID: ptrUint(config.LoanServiceTypeID)},
		Subject:     "Loan filed at the front desk",
		Lines: []request.LineInput{
			{Object: catalog.EntityRef{ID: ptrUint(10)}, Quantity: 1},
		},
	}

	mockUser.EXPECT().GetUserByID(uint(9)).Return(user.User{ID: 9, Username: "walkin"}, nil)
	mockCatalog.EXPECT().GetKind(serviceTypeKind(), config.LoanServiceTypeID).
		Return(catalog.Reference{ID: config.LoanServiceTypeID}, nil)
	mockObject.EXPECT().GetObject(uint(10)).
		Return(catalog.Object{ID: 10, Name: "Pipette", Stock: 6, Active: true}, nil)
	mockRequest.EXPECT().CreateRequest(gomock.Any()).DoAndReturn(func(req *request.Request) error {
		assert.Equal(t, uint(9), req.RequesterID)
		req.ID = 46
		return nil
	})
	mockRequest.EXPECT().CreateLine(gomock.Any()).Return(nil)
	mockObject.EXPECT().DecrementStock(uint(10), 1).Return(nil)
	mockAudit.EXPECT().CreateEntry(gomock.Any()).Return(nil)
	mockRequest.EXPECT().GetRequest(uint(46)).Return(request.Request{ID: 46, RequesterID: 9}, nil)

	created, err := svc.Submit(adminPrincipal, input)
	assert.NoError(t, err)
	assert.Equal(t, uint(9), created.RequesterID)
}

func TestSubmit_NonAdminCannotSetRequester(t *testing.T) {
	svc, _, _, _, _, _ := setupRequestServiceMocks(t)

	input := request.SubmitInput{
		Requester:   ptrUint(9),
		ServiceType: catalog.EntityRef{ID: ptrUint(config.LoanServiceTypeID)},
		Subject:     "Not my request",
	}

	_, err := svc.Submit(Principal{UserID: 5}, input)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSubmit_OnBehalfOfUnknownUserRejected(t *testing.T) {
	svc, _, _, _, mockUser, _ := setupRequestServiceMocks(t)

	input := request.SubmitInput{
		Requester:   ptrUint(9),
		ServiceType: catalog.EntityRef{ID: ptrUint(config.LoanServiceTypeID)},
		Subject:     "Ghost requester",
	}

	mockUser.EXPECT().GetUserByID(uint(9)).Return(user.User{}, gorm.ErrRecordNotFound)

	_, err := svc.Submit(adminPrincipal, input)
	ve, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Fields, "requester_id")
}

func TestSubmit_DuplicateParticipantRejected(t *testing.T) {
	svc, _, mockObject, mockCatalog, mockUser, _ := setupRequestServiceMocks(t)

	input := request.SubmitInput{
		ServiceType:  catalog.EntityRef{ID: ptrUint(config.LoanServiceTypeID)},
		Subject:      "Group work",
		Lines:        []request.LineInput{{Object: catalog.EntityRef{ID: ptrUint(10)}, Quantity: 1}},
		Participants: []uint{8, 8},
	}

	mockCatalog.EXPECT().GetKind(serviceTypeKind(), config.LoanServiceTypeID).
		Return(catalog.Reference{ID: config.LoanServiceTypeID}, nil)
	mockObject.EXPECT().GetObject(uint(10)).
		Return(catalog.Object{ID: 10, Name: "Caliper", Stock: 3, Active: true}, nil)
	mockUser.EXPECT().GetUserByID(uint(8)).Return(user.User{ID: 8}, nil)

	_, err := svc.Submit(Principal{UserID: 5}, input)
	ve, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Fields, "participants")
}

// --------------------- Get / List ---------------------
func TestGet_OwnerAndAdminAccess(t *testing.T) {
	svc, mockRequest, _, _, _, _ := setupRequestServiceMocks(t)

	req := request.Request{ID: 1, RequesterID: 5}
	mockRequest.EXPECT().GetRequest(uint(1)).Return(req, nil).Times(3)

	_, err := svc.Get(Principal{UserID: 5}, 1)
	assert.NoError(t, err)

	_, err = svc.Get(Principal{UserID: 9, IsAdmin: true}, 1)
	assert.NoError(t, err)

	_, err = svc.Get(Principal{UserID: 9}, 1)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestList_PinsNonAdminToOwnRequests(t *testing.T) {
	svc, mockRequest, _, _, _, _ := setupRequestServiceMocks(t)

	other := uint(99)
	mockRequest.EXPECT().ListRequests(gomock.Any()).DoAndReturn(
		func(filter request.ListFilter) ([]request.Request, error) {
			assert.NotNil(t, filter.UserID)
			assert.Equal(t, uint(5), *filter.UserID)
			return nil, nil
		})

	_, err := svc.List(Principal{UserID: 5}, request.ListFilter{UserID: &other})
	assert.NoError(t, err)
}

// --------------------- UpdateStatus ---------------------
func TestUpdateStatus_Success(t *testing.T) {
	svc, mockRequest, _, mockCatalog, _, mockAudit := setupRequestServiceMocks(t)

	gomock.InOrder(
		mockRequest.EXPECT().GetRequest(uint(1)).Return(request.Request{ID: 1, StatusID: config.PendingStatusID}, nil),
		mockRequest.EXPECT().UpdateStatus(uint(1), config.ApprovedStatusID).Return(nil),
		mockRequest.EXPECT().GetRequest(uint(1)).Return(request.Request{ID: 1, StatusID: config.ApprovedStatusID}, nil),
	)
	mockCatalog.EXPECT().GetKind(statusKind(), config.ApprovedStatusID).
		Return(catalog.Reference{ID: config.ApprovedStatusID, Name: "Approved"}, nil)
	mockAudit.EXPECT().CreateEntry(gomock.Any()).Return(nil)

	updated, err := svc.UpdateStatus(adminPrincipal, 1, request.StatusInput{
		Status: catalog.EntityRef{ID: ptrUint(config.ApprovedStatusID)},
	})
	assert.NoError(t, err)
	assert.Equal(t, config.ApprovedStatusID, updated.StatusID)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc, mockRequest, _, mockCatalog, _, _ := setupRequestServiceMocks(t)

	mockRequest.EXPECT().GetRequest(uint(1)).Return(request.Request{ID: 1}, nil)
	mockCatalog.EXPECT().GetKind(statusKind(), uint(77)).
		Return(catalog.Reference{}, gorm.ErrRecordNotFound)

	_, err := svc.UpdateStatus(adminPrincipal, 1, request.StatusInput{
		Status: catalog.EntityRef{ID: ptrUint(77)},
	})
	assert.ErrorIs(t, err, ErrStatusNotFound)
}

func TestUpdateStatus_NonAdminForbidden(t *testing.T) {
	svc, _, _, _, _, _ := setupRequestServiceMocks(t)

	_, err := svc.UpdateStatus(Principal{UserID: 5}, 1, request.StatusInput{
		Status: catalog.EntityRef{ID: ptrUint(config.ApprovedStatusID)},
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

// --------------------- Update ---------------------
func TestUpdate_ExcludesOwnIDFromConflicts(t *testing.T) {
	svc, mockRequest, _, _, _, mockAudit := setupRequestServiceMocks(t)

	day := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
	labID := uint(3)
	existing := request.Request{
		ID:           1,
		RequesterID:  5,
		Subject:      "Old subject",
		LaboratoryID: &labID,
		ScheduleID:   ptrUint(7),
		StartDate:    &day,
		EndDate:      &day,
		StartTime:    ptrString("10:00"),
		EndTime:      ptrString("12:00"),
	}
	mockRequest.EXPECT().GetRequest(uint(1)).Return(existing, nil)
	mockRequest.EXPECT().FindConflicts(uint(3), day, "10:00", "12:00",
		[]uint{config.PendingStatusID, config.ApprovedStatusID}, uint(1)).
		Return(nil, nil)
	mockRequest.EXPECT().SaveRequest(gomock.Any()).DoAndReturn(func(req *request.Request) error {
		assert.Equal(t, "New subject", req.Subject)
		return nil
	})
	mockAudit.EXPECT().CreateEntry(gomock.Any()).Return(nil)
	mockRequest.EXPECT().GetRequest(uint(1)).Return(request.Request{ID: 1, Subject: "New subject"}, nil)

	updated, err := svc.Update(adminPrincipal, 1, request.UpdateInput{Subject: ptrString("New subject")})
	assert.NoError(t, err)
	assert.Equal(t, "New subject", updated.Subject)
}

// --------------------- Delete ---------------------
func TestDelete_OwnerOrAdminOnly(t *testing.T) {
	svc, mockRequest, _, _, _, mockAudit := setupRequestServiceMocks(t)

	req := request.Request{ID: 1, RequesterID: 5}
	mockRequest.EXPECT().GetRequest(uint(1)).Return(req, nil).Times(3)
	mockRequest.EXPECT().DeleteRequest(uint(1)).Return(nil).Times(2)
	mockAudit.EXPECT().CreateEntry(gomock.Any()).Return(nil).Times(2)

	assert.NoError(t, svc.Delete(Principal{UserID: 5}, 1))
	assert.NoError(t, svc.Delete(adminPrincipal, 1))
	assert.ErrorIs(t, svc.Delete(Principal{UserID: 9}, 1), ErrForbidden)
}

func TestDelete_NotFound(t *testing.T) {
	svc, mockRequest, _, _, _, _ := setupRequestServiceMocks(t)

	mockRequest.EXPECT().GetRequest(uint(99)).Return(request.Request{}, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, svc.Delete(adminPrincipal, 99), ErrRequestNotFound)
}

// --------------------- Participants ---------------------
func TestAddParticipant_Success(t *testing.T) {
	svc, mockRequest, _, _, mockUser, _ := setupRequestServiceMocks(t)

	mockRequest.EXPECT().GetRequest(uint(1)).Return(request.Request{ID: 1}, nil)
	mockUser.EXPECT().GetUserByID(uint(8)).Return(user.User{ID: 8}, nil)
	mockRequest.EXPECT().ParticipantExists(uint(1), uint(8)).Return(false, nil)
	mockRequest.EXPECT().CreateParticipant(gomock.Any()).DoAndReturn(func(p *request.Participant) error {
		p.ID = 3
		return nil
	})
	mockRequest.EXPECT().GetParticipant(uint(3)).Return(request.Participant{ID: 3, RequestID: 1, UserID: 8}, nil)

	p, err := svc.AddParticipant(adminPrincipal, 1, request.ParticipantInput{UserID: 8})
	assert.NoError(t, err)
	assert.Equal(t, uint(8), p.UserID)
}

func TestAddParticipant_AlreadyLinked(t *testing.T) {
	svc, mockRequest, _, _, mockUser, _ := setupRequestServiceMocks(t)

	mockRequest.EXPECT().GetRequest(uint(1)).Return(request.Request{ID: 1}, nil)
	mockUser.EXPECT().GetUserByID(uint(8)).Return(user.User{ID: 8}, nil)
	mockRequest.EXPECT().ParticipantExists(uint(1), uint(8)).Return(true, nil)

	_, err := svc.AddParticipant(adminPrincipal, 1, request.ParticipantInput{UserID: 8})
	ve, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Fields, "user_id")
}
