package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/acceslab/acceslab-go/internal/application"
	"github.com/acceslab/acceslab-go/pkg/response"
	"github.com/acceslab/acceslab-go/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// bindJSON binds the body into input, translating validator errors into
// friendly field messages. Returns false when the request was already
// answered.
func bindJSON(c *gin.Context, input interface{}) bool {
	err := c.ShouldBindJSON(input)
	if err == nil {
		return true
	}

	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		msgs := make([]string, 0, len(verr))
		for _, fe := range verr {
			lbl := strings.ToLower(fe.StructField())
			var msg string
			switch fe.Tag() {
			case "required":
				msg = fmt.Sprintf("%s is required", lbl)
			case "min":
				msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
			case "max":
				msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
			case "email":
				msg = fmt.Sprintf("%s must be a valid email address", lbl)
			case "gt", "gte":
				msg = fmt.Sprintf("%s is out of range", lbl)
			default:
				msg = fmt.Sprintf("%s is invalid", lbl)
			}
			msgs = append(msgs, msg)
		}
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: strings.Join(msgs, "; ")})
		return false
	}

	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
	return false
}

// principalFromContext turns the JWT claims into the service-layer
// caller identity.
func principalFromContext(c *gin.Context) (application.Principal, bool) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return application.Principal{}, false
	}
	return application.Principal{
		UserID:   claims.UserID,
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
	}, true
}

// respondServiceError maps service-layer errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	if ve, ok := application.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, response.ValidationResponse{
			Error:  "validation failed",
			Fields: ve.Fields,
		})
		return
	}
	switch {
	case errors.Is(err, application.ErrForbidden):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrRequestNotFound),
		errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrStatusNotFound),
		errors.Is(err, application.ErrCatalogNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrUnknownKind),
		errors.Is(err, application.ErrEmptyEntityRef):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrUsernameTaken):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrInvalidCredentials),
		errors.Is(err, application.ErrIncorrectPassword):
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrStorageDisabled):
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: err.Error()})
	default:
		// the raw error may carry connection strings or SQL; keep it in
		// the server log only
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
	}
}
