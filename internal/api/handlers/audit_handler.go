package handlers

import (
	"net/http"

	"github.com/acceslab/acceslab-go/internal/application"
	"github.com/acceslab/acceslab-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

func (h *AuditHandler) List(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	var entity *string
	if v := c.Query("entity"); v != "" {
		entity = &v
	}
	limit := utils.ParseQueryIntParam(c, "limit", 100)
	entries, err := h.svc.ListEntries(principal, entity, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
