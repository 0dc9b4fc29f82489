package handlers

import (
	"net/http"

	"github.com/acceslab/acceslab-go/internal/application"
	"github.com/acceslab/acceslab-go/internal/domain/request"
	"github.com/acceslab/acceslab-go/pkg/response"
	"github.com/acceslab/acceslab-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	svc *application.RequestService
}

func NewRequestHandler(svc *application.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

func (h *RequestHandler) Submit(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	var input request.SubmitInput
	if !bindJSON(c, &input) {
		return
	}
	created, err := h.svc.Submit(principal, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *RequestHandler) List(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	var filter request.ListFilter
	if id, err := utils.ParseQueryUintParam(c, "requester_id"); err == nil {
		filter.UserID = &id
	}
	if id, err := utils.ParseQueryUintParam(c, "status_id"); err == nil {
		filter.StatusID = &id
	}
	if from := c.Query("from"); from != "" {
		filter.FromDate = &from
	}
	if to := c.Query("to"); to != "" {
		filter.ToDate = &to
	}
	rows, err := h.svc.List(principal, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *RequestHandler) Get(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request id"})
		return
	}
	req, err := h.svc.Get(principal, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

func (h *RequestHandler) Update(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request id"})
		return
	}
	var input request.UpdateInput
	if !bindJSON(c, &input) {
		return
	}
	req, err := h.svc.Update(principal, id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request id"})
		return
	}
	var input request.StatusInput
	if !bindJSON(c, &input) {
		return
	}
	req, err := h.svc.UpdateStatus(principal, id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

func (h *RequestHandler) Delete(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request id"})
		return
	}
	if err := h.svc.Delete(principal, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RequestHandler) ListParticipants(c *gin.Context) {
	if _, ok := principalFromContext(c); !ok {
		return
	}
	var requestID *uint
	if id, err := utils.ParseQueryUintParam(c, "request_id"); err == nil {
		requestID = &id
	}
	rows, err := h.svc.ListParticipants(requestID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *RequestHandler) AddParticipant(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	var input struct {
		RequestID uint `json:"request_id" binding:"required"`
		UserID    uint `json:"user_id" binding:"required"`
	}
	if !bindJSON(c, &input) {
		return
	}
	p, err := h.svc.AddParticipant(principal, input.RequestID, request.ParticipantInput{UserID: input.UserID})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *RequestHandler) RemoveParticipant(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid participant id"})
		return
	}
	if err := h.svc.RemoveParticipant(principal, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
