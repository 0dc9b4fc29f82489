package handlers

import (
	"net/http"

	"github.com/acceslab/acceslab-go/internal/application"
	"github.com/acceslab/acceslab-go/internal/domain/catalog"
	"github.com/acceslab/acceslab-go/pkg/response"
	"github.com/acceslab/acceslab-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	svc *application.CatalogService
}

func NewCatalogHandler(svc *application.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Reference-table CRUD. The kind is fixed per route at registration
// time, never taken from the URL.

func (h *CatalogHandler) ListKind(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := h.svc.ListKind(kind)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func (h *CatalogHandler) GetKind(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
			return
		}
		row, err := h.svc.GetKind(kind, id)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, row)
	}
}

func (h *CatalogHandler) CreateKind(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input catalog.ReferenceInput
		if !bindJSON(c, &input) {
			return
		}
		row, err := h.svc.CreateKindEntry(kind, input.Name)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, row)
	}
}

func (h *CatalogHandler) UpdateKind(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
			return
		}
		var input catalog.ReferenceInput
		if !bindJSON(c, &input) {
			return
		}
		if err := h.svc.UpdateKindEntry(kind, id, input.Name); err != nil {
			respondServiceError(c, err)
			return
		}
		row, err := h.svc.GetKind(kind, id)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, row)
	}
}

func (h *CatalogHandler) DeleteKind(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
			return
		}
		if err := h.svc.DeleteKindEntry(kind, id); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func (h *CatalogHandler) ListPrograms(c *gin.Context) {
	rows, err := h.svc.ListPrograms()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *CatalogHandler) GetProgram(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}
	row, err := h.svc.GetProgram(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *CatalogHandler) CreateProgram(c *gin.Context) {
	var input catalog.ProgramInput
	if !bindJSON(c, &input) {
		return
	}
	row, err := h.svc.CreateProgram(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *CatalogHandler) UpdateProgram(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}
	var input catalog.ProgramInput
	if !bindJSON(c, &input) {
		return
	}
	row, err := h.svc.UpdateProgram(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *CatalogHandler) DeleteProgram(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}
	if err := h.svc.DeleteProgram(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListLaboratories(c *gin.Context) {
	rows, err := h.svc.ListLaboratories()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *CatalogHandler) GetLaboratory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}
	row, err := h.svc.GetLaboratory(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *CatalogHandler) CreateLaboratory(c *gin.Context) {
	var input catalog.LaboratoryInput
	if !bindJSON(c, &input) {
		return
	}
	row, err := h.svc.CreateLaboratory(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *CatalogHandler) UpdateLaboratory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}
	var input catalog.LaboratoryInput
	if !bindJSON(c, &input) {
		return
	}
	row, err := h.svc.UpdateLaboratory(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *CatalogHandler) DeleteLaboratory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}
	if err := h.svc.DeleteLaboratory(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListSchedules(c *gin.Context) {
	var labID *uint
	if id, err := utils.ParseQueryUintParam(c, "laboratory_id"); err == nil {
		labID = &id
	}
	rows, err := h.svc.ListSchedules(labID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *CatalogHandler) GetSchedule(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}
	row, err := h.svc.GetSchedule(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *CatalogHandler) CreateSchedule(c *gin.Context) {
	var input catalog.ScheduleInput
	if !bindJSON(c, &input) {
		return
	}
	row, err := h.svc.CreateSchedule(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *CatalogHandler) UpdateSchedule(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}
	var input catalog.ScheduleInput
	if !bindJSON(c, &input) {
		return
	}
	row, err := h.svc.UpdateSchedule(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *CatalogHandler) DeleteSchedule(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}
	if err := h.svc.DeleteSchedule(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListObjects(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	rows, err := h.svc.ListObjects(activeOnly)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *CatalogHandler) GetObject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}
	row, err := h.svc.GetObject(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *CatalogHandler) CreateObject(c *gin.Context) {
	var input catalog.ObjectInput
	if !bindJSON(c, &input) {
		return
	}
	row, err := h.svc.CreateObject(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *CatalogHandler) UpdateObject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}
	var input catalog.ObjectUpdateInput
	if !bindJSON(c, &input) {
		return
	}
	row, err := h.svc.UpdateObject(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *CatalogHandler) DeleteObject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}
	if err := h.svc.DeleteObject(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadObjectImage accepts a multipart "image" file and stores it in
// the object store.
func (h *CatalogHandler) UploadObjectImage(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "image file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "cannot read image file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.svc.UploadObjectImage(c.Request.Context(), id, fileHeader.Filename, contentType, file, fileHeader.Size)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.URLResponse{URL: url})
}

func (h *CatalogHandler) ListDeliveries(c *gin.Context) {
	rows, err := h.svc.ListDeliveries()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *CatalogHandler) CreateDelivery(c *gin.Context) {
	var input catalog.DeliveryInput
	if !bindJSON(c, &input) {
		return
	}
	row, err := h.svc.CreateDelivery(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *CatalogHandler) DeleteDelivery(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}
	if err := h.svc.DeleteDelivery(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListReturns(c *gin.Context) {
	rows, err := h.svc.ListReturns()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *CatalogHandler) CreateReturn(c *gin.Context) {
	var input catalog.ReturnInput
	if !bindJSON(c, &input) {
		return
	}
	row, err := h.svc.CreateReturn(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *CatalogHandler) DeleteReturn(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid id"})
		return
	}
	if err := h.svc.DeleteReturn(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
