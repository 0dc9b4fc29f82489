package repository

import (
	"time"

	"github.com/acceslab/acceslab-go/internal/domain/audit"
	"gorm.io/gorm"
)

type AuditRepo interface {
	CreateEntry(e *audit.Entry) error
	ListEntries(entity *string, limit int) ([]audit.Entry, error)
	DeleteEntriesBefore(cutoff time.Time) (int64, error)
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{db: db}
}

func (r *DBAuditRepo) CreateEntry(e *audit.Entry) error {
	return r.db.Create(e).Error
}

func (r *DBAuditRepo) ListEntries(entity *string, limit int) ([]audit.Entry, error) {
	var rows []audit.Entry
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	q := r.db.Order("audit_id DESC").Limit(limit)
	if entity != nil {
		q = q.Where("entity = ?", *entity)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *DBAuditRepo) DeleteEntriesBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("created_at < ?", cutoff).Delete(&audit.Entry{})
	return res.RowsAffected, res.Error
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{db: tx}
}
