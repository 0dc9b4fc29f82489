package handlers

import (
	"github.com/acceslab/acceslab-go/internal/application"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Catalog *CatalogHandler
	Request *RequestHandler
	User    *UserHandler
	Report  *ReportHandler
	Audit   *AuditHandler
	Router  *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	return &Handlers{
		Catalog: NewCatalogHandler(svc.Catalog),
		Request: NewRequestHandler(svc.Request),
		User:    NewUserHandler(svc.User),
		Report:  NewReportHandler(svc.Report),
		Audit:   NewAuditHandler(svc.Audit),
		Router:  router,
	}
}
