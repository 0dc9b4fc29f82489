package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/acceslab/acceslab-go/internal/application"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/requests", nil)
	return c, w
}

func TestRespondServiceError_HidesInternalDetails(t *testing.T) {
	c, w := testContext(t)

	respondServiceError(c, errors.New(`pq: connection to server at "db.internal:5432" failed: password authentication failed for user "acceslab"`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "db.internal")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRespondServiceError_KnownErrorsKeepTheirMessage(t *testing.T) {
	c, w := testContext(t)

	respondServiceError(c, application.ErrRequestNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "request not found")
}
