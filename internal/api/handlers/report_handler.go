package handlers

import (
	"net/http"

	"github.com/acceslab/acceslab-go/internal/application"
	"github.com/acceslab/acceslab-go/internal/domain/report"
	"github.com/acceslab/acceslab-go/pkg/response"
	"github.com/acceslab/acceslab-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	svc *application.ReportService
}

func NewReportHandler(svc *application.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) KPIs(c *gin.Context) {
	kpis, err := h.svc.KPIs()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, kpis)
}

func (h *ReportHandler) MonthlyActivity(c *gin.Context) {
	months := utils.ParseQueryIntParam(c, "months", 12)
	buckets, err := h.svc.MonthlyActivity(months)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, buckets)
}

func (h *ReportHandler) ProgramDistribution(c *gin.Context) {
	shares, err := h.svc.ProgramDistribution()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, shares)
}

func (h *ReportHandler) TopObjects(c *gin.Context) {
	limit := utils.ParseQueryIntParam(c, "limit", 10)
	rows, err := h.svc.TopObjects(limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func historyFilterFromQuery(c *gin.Context) report.HistoryFilter {
	var filter report.HistoryFilter
	if id, err := utils.ParseQueryUintParam(c, "status_id"); err == nil {
		filter.StatusID = &id
	}
	if from := c.Query("from"); from != "" {
		filter.FromDate = &from
	}
	if to := c.Query("to"); to != "" {
		filter.ToDate = &to
	}
	filter.Limit = utils.ParseQueryIntParam(c, "limit", 50)
	return filter
}

func (h *ReportHandler) History(c *gin.Context) {
	rows, err := h.svc.History(historyFilterFromQuery(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) DeliverySummary(c *gin.Context) {
	summary, err := h.svc.DeliverySummary()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Export renders the filtered history as CSV in the object store and
// returns its URL.
func (h *ReportHandler) Export(c *gin.Context) {
	url, err := h.svc.ExportHistoryCSV(c.Request.Context(), historyFilterFromQuery(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.URLResponse{URL: url})
}
