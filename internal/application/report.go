package application

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/acceslab/acceslab-go/internal/config"
	"github.com/acceslab/acceslab-go/internal/domain/report"
	"github.com/acceslab/acceslab-go/internal/repository"
	"github.com/acceslab/acceslab-go/internal/storage"
	"github.com/google/uuid"
)

type ReportService struct {
	Repos *repository.Repos
}

func NewReportService(repos *repository.Repos) *ReportService {
	return &ReportService{Repos: repos}
}

// KPIs builds the dashboard headline block: activity counters plus the
// month-over-month request delta.
func (s *ReportService) KPIs() (report.KPIs, error) {
	now := time.Now()
	var kpis report.KPIs
	var err error

	if kpis.ActiveUsers30d, err = s.Repos.Report.CountActiveUsers(now.AddDate(0, 0, -30)); err != nil {
		return kpis, err
	}
	if kpis.ActiveLoans, err = s.Repos.Report.CountLoansWithStatus(config.LoanServiceTypeID, config.InUseStatusID); err != nil {
		return kpis, err
	}

	weekStart := startOfWeek(now)
	if kpis.ReservationsThisWeek, err = s.Repos.Report.CountRequestsOfTypeBetween(
		config.ReservationServiceTypeID, weekStart, weekStart.AddDate(0, 0, 7)); err != nil {
		return kpis, err
	}
	if kpis.InactiveObjects, err = s.Repos.Report.CountInactiveObjects(); err != nil {
		return kpis, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevMonthStart := monthStart.AddDate(0, -1, 0)
	if kpis.RequestsThisMonth, err = s.Repos.Report.CountRequestsBetween(monthStart, monthStart.AddDate(0, 1, 0)); err != nil {
		return kpis, err
	}
	if kpis.RequestsLastMonth, err = s.Repos.Report.CountRequestsBetween(prevMonthStart, monthStart); err != nil {
		return kpis, err
	}
	if kpis.RequestsLastMonth > 0 {
		kpis.MonthDeltaPercent = float64(kpis.RequestsThisMonth-kpis.RequestsLastMonth) / float64(kpis.RequestsLastMonth) * 100
	} else if kpis.RequestsThisMonth > 0 {
		kpis.MonthDeltaPercent = 100
	}
	return kpis, nil
}

// MonthlyActivity returns reservations vs loans per month over the
// trailing window. months defaults to 12.
func (s *ReportService) MonthlyActivity(months int) ([]report.MonthBucket, error) {
	if months <= 0 || months > 60 {
		months = 12
	}
	now := time.Now()
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	return s.Repos.Report.MonthlyActivity(since, config.ReservationServiceTypeID, config.LoanServiceTypeID)
}

// ProgramDistribution adds the percentage share to the raw counts.
func (s *ReportService) ProgramDistribution() ([]report.ProgramShare, error) {
	shares, err := s.Repos.Report.ProgramDistribution()
	if err != nil {
		return nil, err
	}
	var total int64
	for _, share := range shares {
		total += share.Count
	}
	if total > 0 {
		for i := range shares {
			shares[i].Percent = float64(shares[i].Count) / float64(total) * 100
		}
	}
	return shares, nil
}

func (s *ReportService) TopObjects(limit int) ([]report.TopObject, error) {
	return s.Repos.Report.TopObjects(limit)
}

func (s *ReportService) History(filter report.HistoryFilter) ([]report.HistoryEntry, error) {
	return s.Repos.Report.History(filter)
}

func (s *ReportService) DeliverySummary() (report.DeliverySummary, error) {
	var summary report.DeliverySummary
	var err error

	if summary.PendingDeliveries, err = s.Repos.Report.CountPendingDeliveries(config.PendingStatusID); err != nil {
		return summary, err
	}
	onTime, late, err := s.Repos.Report.ReturnOutcomeCounts(config.ReturnedStatusID, config.ReturnedLateStatusID)
	if err != nil {
		return summary, err
	}
	if onTime+late > 0 {
		summary.OnTimeReturnPercent = float64(onTime) / float64(onTime+late) * 100
	}
	if summary.AvgPlannedUseDays, err = s.Repos.Report.AveragePlannedUseDays(); err != nil {
		return summary, err
	}

	active := []uint{config.ApprovedStatusID, config.InUseStatusID}
	todayStart := today()
	if summary.ReturnsToday, err = s.Repos.Report.CountReturnsEnding(todayStart, todayStart.AddDate(0, 0, 1), active); err != nil {
		return summary, err
	}
	if summary.ReturnsTomorrow, err = s.Repos.Report.CountReturnsEnding(todayStart.AddDate(0, 0, 1), todayStart.AddDate(0, 0, 2), active); err != nil {
		return summary, err
	}
	if summary.ReturnsThisWeek, err = s.Repos.Report.CountReturnsEnding(todayStart, todayStart.AddDate(0, 0, 7), active); err != nil {
		return summary, err
	}
	return summary, nil
}

// ExportHistoryCSV renders the filtered history as CSV, uploads it to
// the object store and returns the download URL.
func (s *ReportService) ExportHistoryCSV(ctx context.Context, filter report.HistoryFilter) (string, error) {
	if !storage.Enabled() {
		return "", ErrStorageDisabled
	}
	entries, err := s.Repos.Report.History(filter)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"request_id", "requester", "subject", "service_type", "status", "submitted_at", "start_date", "end_date"})
	for _, e := range entries {
		row := []string{
			fmt.Sprintf("%d", e.RequestID),
			e.Requester,
			e.Subject,
			e.ServiceType,
			e.Status,
			e.SubmittedAt.Format(dateLayout),
			formatDatePtr(e.StartDate),
			formatDatePtr(e.EndDate),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("reports/history-%s.csv", uuid.New().String())
	return storage.UploadString(ctx, objectName, "text/csv", buf.String())
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// startOfWeek returns the Monday 00:00 UTC of now's week.
func startOfWeek(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}
