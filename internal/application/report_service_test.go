package application

import (
	"testing"

	"github.com/acceslab/acceslab-go/internal/config"
	"github.com/acceslab/acceslab-go/internal/domain/report"
	"github.com/acceslab/acceslab-go/internal/repository"
	"github.com/acceslab/acceslab-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

// --------------------- Setup ---------------------
func setupReportServiceMocks(t *testing.T) (*ReportService, *mock.MockReportRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockReport := mock.NewMockReportRepo(ctrl)
	repos := &repository.Repos{Report: mockReport}
	svc := NewReportService(repos)
	return svc, mockReport
}

// --------------------- KPIs ---------------------
func TestKPIs_MonthDelta(t *testing.T) {
	svc, mockReport := setupReportServiceMocks(t)

	mockReport.EXPECT().CountActiveUsers(gomock.Any()).Return(int64(10), nil)
	mockReport.EXPECT().CountLoansWithStatus(config.LoanServiceTypeID, config.InUseStatusID).Return(int64(3), nil)
	mockReport.EXPECT().CountRequestsOfTypeBetween(config.ReservationServiceTypeID, gomock.Any(), gomock.Any()).Return(int64(4), nil)
	mockReport.EXPECT().CountInactiveObjects().Return(int64(2), nil)
	gomock.InOrder(
		mockReport.EXPECT().CountRequestsBetween(gomock.Any(), gomock.Any()).Return(int64(30), nil),
		mockReport.EXPECT().CountRequestsBetween(gomock.Any(), gomock.Any()).Return(int64(20), nil),
	)

	kpis, err := svc.KPIs()
	assert.NoError(t, err)
	assert.Equal(t, int64(10), kpis.ActiveUsers30d)
	assert.Equal(t, int64(3), kpis.ActiveLoans)
	assert.Equal(t, int64(4), kpis.ReservationsThisWeek)
	assert.Equal(t, int64(2), kpis.InactiveObjects)
	assert.InDelta(t, 50.0, kpis.MonthDeltaPercent, 0.001)
}

func TestKPIs_DeltaWhenLastMonthEmpty(t *testing.T) {
	svc, mockReport := setupReportServiceMocks(t)

	mockReport.EXPECT().CountActiveUsers(gomock.Any()).Return(int64(0), nil)
	mockReport.EXPECT().CountLoansWithStatus(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	mockReport.EXPECT().CountRequestsOfTypeBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
	mockReport.EXPECT().CountInactiveObjects().Return(int64(0), nil)
	gomock.InOrder(
		mockReport.EXPECT().CountRequestsBetween(gomock.Any(), gomock.Any()).Return(int64(5), nil),
		mockReport.EXPECT().CountRequestsBetween(gomock.Any(), gomock.Any()).Return(int64(0), nil),
	)

	kpis, err := svc.KPIs()
	assert.NoError(t, err)
	assert.InDelta(t, 100.0, kpis.MonthDeltaPercent, 0.001)
}

// --------------------- ProgramDistribution ---------------------
func TestProgramDistribution_Percentages(t *testing.T) {
	svc, mockReport := setupReportServiceMocks(t)

	mockReport.EXPECT().ProgramDistribution().Return([]report.ProgramShare{
		{ProgramID: 1, ProgramName: "Biology", Count: 30},
		{ProgramID: 2, ProgramName: "Physics", Count: 10},
	}, nil)

	shares, err := svc.ProgramDistribution()
	assert.NoError(t, err)
	assert.Len(t, shares, 2)
	assert.InDelta(t, 75.0, shares[0].Percent, 0.001)
	assert.InDelta(t, 25.0, shares[1].Percent, 0.001)
}

func TestProgramDistribution_Empty(t *testing.T) {
	svc, mockReport := setupReportServiceMocks(t)

	mockReport.EXPECT().ProgramDistribution().Return(nil, nil)

	shares, err := svc.ProgramDistribution()
	assert.NoError(t, err)
	assert.Empty(t, shares)
}

// --------------------- MonthlyActivity ---------------------
func TestMonthlyActivity_ClampsWindow(t *testing.T) {
	svc, mockReport := setupReportServiceMocks(t)

	mockReport.EXPECT().MonthlyActivity(gomock.Any(), config.ReservationServiceTypeID, config.LoanServiceTypeID).
		Return([]report.MonthBucket{{Month: "2026-08", Reservations: 3, Loans: 5}}, nil).
		Times(2)

	buckets, err := svc.MonthlyActivity(0)
	assert.NoError(t, err)
	assert.Len(t, buckets, 1)

	buckets, err = svc.MonthlyActivity(999)
	assert.NoError(t, err)
	assert.Len(t, buckets, 1)
}

// --------------------- DeliverySummary ---------------------
func TestDeliverySummary(t *testing.T) {
	svc, mockReport := setupReportServiceMocks(t)

	mockReport.EXPECT().CountPendingDeliveries(config.PendingStatusID).Return(int64(2), nil)
	mockReport.EXPECT().ReturnOutcomeCounts(config.ReturnedStatusID, config.ReturnedLateStatusID).
		Return(int64(8), int64(2), nil)
	mockReport.EXPECT().AveragePlannedUseDays().Return(3.5, nil)
	gomock.InOrder(
		mockReport.EXPECT().CountReturnsEnding(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil),
		mockReport.EXPECT().CountReturnsEnding(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(2), nil),
		mockReport.EXPECT().CountReturnsEnding(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(5), nil),
	)

	summary, err := svc.DeliverySummary()
	assert.NoError(t, err)
	assert.Equal(t, int64(2), summary.PendingDeliveries)
	assert.InDelta(t, 80.0, summary.OnTimeReturnPercent, 0.001)
	assert.InDelta(t, 3.5, summary.AvgPlannedUseDays, 0.001)
	assert.Equal(t, int64(1), summary.ReturnsToday)
	assert.Equal(t, int64(2), summary.ReturnsTomorrow)
	assert.Equal(t, int64(5), summary.ReturnsThisWeek)
}

func TestDeliverySummary_NoReturnsYet(t *testing.T) {
	svc, mockReport := setupReportServiceMocks(t)

	mockReport.EXPECT().CountPendingDeliveries(gomock.Any()).Return(int64(0), nil)
	mockReport.EXPECT().ReturnOutcomeCounts(gomock.Any(), gomock.Any()).Return(int64(0), int64(0), nil)
	mockReport.EXPECT().AveragePlannedUseDays().Return(0.0, nil)
	mockReport.EXPECT().CountReturnsEnding(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil).Times(3)

	summary, err := svc.DeliverySummary()
	assert.NoError(t, err)
	assert.Zero(t, summary.OnTimeReturnPercent)
}
