package application

import (
	"github.com/acceslab/acceslab-go/internal/repository"
)

type Services struct {
	Catalog *CatalogService
	Request *RequestService
	User    *UserService
	Report  *ReportService
	Audit   *AuditService
}

func New(repos *repository.Repos) *Services {
	return &Services{
		Catalog: NewCatalogService(repos),
		Request: NewRequestService(repos),
		User:    NewUserService(repos),
		Report:  NewReportService(repos),
		Audit:   NewAuditService(repos),
	}
}
