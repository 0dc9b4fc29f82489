package repository

import (
	"time"

	"github.com/acceslab/acceslab-go/internal/domain/report"
	"gorm.io/gorm"
)

type ReportRepo interface {
	CountActiveUsers(since time.Time) (int64, error)
	CountLoansWithStatus(loanTypeID uint, statusID uint) (int64, error)
	CountRequestsOfTypeBetween(serviceTypeID uint, from, to time.Time) (int64, error)
	CountRequestsBetween(from, to time.Time) (int64, error)
	CountInactiveObjects() (int64, error)

	MonthlyActivity(since time.Time, reservationTypeID, loanTypeID uint) ([]report.MonthBucket, error)
	ProgramDistribution() ([]report.ProgramShare, error)
	TopObjects(limit int) ([]report.TopObject, error)
	History(filter report.HistoryFilter) ([]report.HistoryEntry, error)

	CountPendingDeliveries(pendingStatusID uint) (int64, error)
	ReturnOutcomeCounts(returnedStatusID, returnedLateStatusID uint) (onTime int64, late int64, err error)
	AveragePlannedUseDays() (float64, error)
	CountReturnsEnding(from, to time.Time, activeStatusIDs []uint) (int64, error)

	WithTx(tx *gorm.DB) ReportRepo
}

type DBReportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) *DBReportRepo {
	return &DBReportRepo{db: db}
}

func (r *DBReportRepo) CountActiveUsers(since time.Time) (int64, error) {
	var count int64
	err := r.db.Raw(
		"SELECT COUNT(DISTINCT requester_id) FROM requests WHERE submitted_at >= ?",
		since,
	).Scan(&count).Error
	return count, err
}

func (r *DBReportRepo) CountLoansWithStatus(loanTypeID uint, statusID uint) (int64, error) {
	var count int64
	err := r.db.Raw(
		"SELECT COUNT(*) FROM requests WHERE service_type_id = ? AND status_id = ?",
		loanTypeID, statusID,
	).Scan(&count).Error
	return count, err
}

func (r *DBReportRepo) CountRequestsOfTypeBetween(serviceTypeID uint, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Raw(
		"SELECT COUNT(*) FROM requests WHERE service_type_id = ? AND submitted_at >= ? AND submitted_at < ?",
		serviceTypeID, from, to,
	).Scan(&count).Error
	return count, err
}

func (r *DBReportRepo) CountRequestsBetween(from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Raw(
		"SELECT COUNT(*) FROM requests WHERE submitted_at >= ? AND submitted_at < ?",
		from, to,
	).Scan(&count).Error
	return count, err
}

func (r *DBReportRepo) CountInactiveObjects() (int64, error) {
	var count int64
	err := r.db.Raw(
		"SELECT COUNT(*) FROM objects WHERE active = false OR stock = 0",
	).Scan(&count).Error
	return count, err
}

func (r *DBReportRepo) MonthlyActivity(since time.Time, reservationTypeID, loanTypeID uint) ([]report.MonthBucket, error) {
	var rows []report.MonthBucket
	err := r.db.Raw(`
		SELECT to_char(submitted_at, 'YYYY-MM') AS month,
		       COUNT(*) FILTER (WHERE service_type_id = ?) AS reservations,
		       COUNT(*) FILTER (WHERE service_type_id = ?) AS loans
		FROM requests
		WHERE submitted_at >= ?
		GROUP BY 1
		ORDER BY 1`,
		reservationTypeID, loanTypeID, since,
	).Scan(&rows).Error
	return rows, err
}

func (r *DBReportRepo) ProgramDistribution() ([]report.ProgramShare, error) {
	var rows []report.ProgramShare
	err := r.db.Raw(`
		SELECT p.program_id, p.name AS program_name, COUNT(r.request_id) AS count
		FROM requests r
		JOIN user_programs up ON up.user_id = r.requester_id
		JOIN programs p ON p.program_id = up.program_id
		GROUP BY p.program_id, p.name
		ORDER BY count DESC, p.program_id`,
	).Scan(&rows).Error
	return rows, err
}

func (r *DBReportRepo) TopObjects(limit int) ([]report.TopObject, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	var rows []report.TopObject
	err := r.db.Raw(`
		SELECT o.object_id, o.name, SUM(l.quantity) AS total_quantity
		FROM request_lines l
		JOIN objects o ON o.object_id = l.object_id
		GROUP BY o.object_id, o.name
		ORDER BY total_quantity DESC, o.object_id
		LIMIT ?`,
		limit,
	).Scan(&rows).Error
	return rows, err
}

func (r *DBReportRepo) History(filter report.HistoryFilter) ([]report.HistoryEntry, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	q := r.db.Table("requests r").
		Select(`r.request_id,
			TRIM(u.first_name || ' ' || u.last_name) AS requester,
			r.subject,
			st.name AS service_type,
			s.name AS status,
			r.submitted_at, r.start_date, r.end_date`).
		Joins("JOIN users u ON u.user_id = r.requester_id").
		Joins("JOIN service_types st ON st.service_type_id = r.service_type_id").
		Joins("JOIN statuses s ON s.status_id = r.status_id").
		Order("r.request_id DESC").
		Limit(limit)
	if filter.StatusID != nil {
		q = q.Where("r.status_id = ?", *filter.StatusID)
	}
	if filter.FromDate != nil {
		q = q.Where("r.submitted_at >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		q = q.Where("r.submitted_at <= ?", *filter.ToDate)
	}
	var rows []report.HistoryEntry
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *DBReportRepo) CountPendingDeliveries(pendingStatusID uint) (int64, error) {
	var count int64
	err := r.db.Raw(
		"SELECT COUNT(*) FROM requests WHERE delivery_id IS NOT NULL AND status_id = ?",
		pendingStatusID,
	).Scan(&count).Error
	return count, err
}

func (r *DBReportRepo) ReturnOutcomeCounts(returnedStatusID, returnedLateStatusID uint) (int64, int64, error) {
	type outcome struct {
		OnTime int64
		Late   int64
	}
	var row outcome
	err := r.db.Raw(`
		SELECT COUNT(*) FILTER (WHERE status_id = ?) AS on_time,
		       COUNT(*) FILTER (WHERE status_id = ?) AS late
		FROM requests`,
		returnedStatusID, returnedLateStatusID,
	).Scan(&row).Error
	return row.OnTime, row.Late, err
}

func (r *DBReportRepo) AveragePlannedUseDays() (float64, error) {
	var avg float64
	err := r.db.Raw(`
		SELECT COALESCE(AVG(end_date - start_date), 0)
		FROM requests
		WHERE start_date IS NOT NULL AND end_date IS NOT NULL`,
	).Scan(&avg).Error
	return avg, err
}

func (r *DBReportRepo) CountReturnsEnding(from, to time.Time, activeStatusIDs []uint) (int64, error) {
	var count int64
	err := r.db.Raw(
		"SELECT COUNT(*) FROM requests WHERE end_date >= ? AND end_date < ? AND status_id IN ?",
		from, to, activeStatusIDs,
	).Scan(&count).Error
	return count, err
}

func (r *DBReportRepo) WithTx(tx *gorm.DB) ReportRepo {
	if tx == nil {
		return r
	}
	return &DBReportRepo{db: tx}
}
