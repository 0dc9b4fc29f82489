package application

import (
	"time"

	"github.com/acceslab/acceslab-go/internal/domain/audit"
	"github.com/acceslab/acceslab-go/internal/repository"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{Repos: repos}
}

func (s *AuditService) ListEntries(principal Principal, entity *string, limit int) ([]audit.Entry, error) {
	if !principal.IsAdmin {
		return nil, ErrForbidden
	}
	return s.Repos.Audit.ListEntries(entity, limit)
}

// CleanupOldLogs drops trail entries older than the retention window.
func (s *AuditService) CleanupOldLogs(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return s.Repos.Audit.DeleteEntriesBefore(cutoff)
}
