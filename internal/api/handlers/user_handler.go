package handlers

import (
	"net/http"

	"github.com/acceslab/acceslab-go/internal/application"
	"github.com/acceslab/acceslab-go/internal/domain/user"
	"github.com/acceslab/acceslab-go/pkg/response"
	"github.com/acceslab/acceslab-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Register(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	var input user.RegisterInput
	if !bindJSON(c, &input) {
		return
	}
	created, err := h.svc.Register(principal, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if !bindJSON(c, &input) {
		return
	}
	usr, token, isAdmin, err := h.svc.Login(input.Username, input.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UserID:   usr.ID,
		Username: usr.Username,
		IsAdmin:  isAdmin,
	})
}

// Me returns the caller's own profile.
func (h *UserHandler) Me(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	usr, err := h.svc.GetUser(principal, principal.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	var input user.UpdateInput
	if !bindJSON(c, &input) {
		return
	}
	usr, err := h.svc.UpdateUser(principal, principal.UserID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	var input user.ChangePasswordInput
	if !bindJSON(c, &input) {
		return
	}
	if err := h.svc.ChangePassword(principal.UserID, input); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "password updated"})
}

func (h *UserHandler) List(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	users, err := h.svc.ListUsers(principal)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user id"})
		return
	}
	usr, err := h.svc.GetUser(principal, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

func (h *UserHandler) Update(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user id"})
		return
	}
	var input user.UpdateInput
	if !bindJSON(c, &input) {
		return
	}
	usr, err := h.svc.UpdateUser(principal, id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

func (h *UserHandler) Delete(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user id"})
		return
	}
	if err := h.svc.DeleteUser(principal, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) ReplaceRoles(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user id"})
		return
	}
	var input user.RolesInput
	if !bindJSON(c, &input) {
		return
	}
	usr, err := h.svc.ReplaceRoles(principal, id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

func (h *UserHandler) ListUserPrograms(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	var userID *uint
	if id, err := utils.ParseQueryUintParam(c, "user_id"); err == nil {
		userID = &id
	}
	links, err := h.svc.ListUserPrograms(principal, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

func (h *UserHandler) AddUserProgram(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	var input struct {
		UserID    uint `json:"user_id" binding:"required"`
		ProgramID uint `json:"program_id" binding:"required"`
	}
	if !bindJSON(c, &input) {
		return
	}
	if err := h.svc.AddUserProgram(principal, input.UserID, input.ProgramID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.MessageResponse{Message: "program linked"})
}

func (h *UserHandler) RemoveUserProgram(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}
	userID, err := utils.ParseQueryUintParam(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "user_id is required"})
		return
	}
	programID, err := utils.ParseQueryUintParam(c, "program_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "program_id is required"})
		return
	}
	if err := h.svc.RemoveUserProgram(principal, userID, programID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
