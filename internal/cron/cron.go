package cron

import (
	"log"
	"time"

	"github.com/acceslab/acceslab-go/internal/application"
)

const auditRetentionDays = 30

// StartCleanupTask prunes old audit trail entries once a day.
func StartCleanupTask(auditService *application.AuditService) {
	go func() {
		log.Printf("Starting audit cleanup task (retention: %d days)", auditRetentionDays)

		// Run immediately on startup
		if _, err := auditService.CleanupOldLogs(auditRetentionDays); err != nil {
			log.Printf("Failed to cleanup old audit entries: %v", err)
		}

		// Then run every 24 hours
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			removed, err := auditService.CleanupOldLogs(auditRetentionDays)
			if err != nil {
				log.Printf("Failed to cleanup old audit entries: %v", err)
				continue
			}
			log.Printf("Audit cleanup removed %d entries", removed)
		}
	}()
}
