package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/acceslab/acceslab-go/internal/api/middleware"
	"github.com/acceslab/acceslab-go/internal/config"
	"github.com/acceslab/acceslab-go/internal/db"
	"github.com/acceslab/acceslab-go/internal/domain/catalog"
	"github.com/acceslab/acceslab-go/internal/domain/user"
	"github.com/acceslab/acceslab-go/internal/testutils"
	"github.com/acceslab/acceslab-go/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"
)

var (
	router *gin.Engine
	gormDB *gorm.DB
)

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	var err error
	gormDB, err = gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}

	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}
	seedBaseline()

	router = testutils.SetupRouter()

	code := m.Run()
	os.Exit(code)
}

// seedBaseline inserts the reference rows the services expect by id and
// a bootstrap administrator account.
func seedBaseline() {
	statuses := []catalog.Status{
		{ID: config.PendingStatusID, Name: "Pending"},
		{ID: config.ApprovedStatusID, Name: "Approved"},
		{ID: config.InUseStatusID, Name: "In use"},
		{ID: config.ReturnedStatusID, Name: "Returned"},
		{ID: config.ReturnedLateStatusID, Name: "Returned late"},
		{ID: config.RejectedStatusID, Name: "Rejected"},
	}
	for _, s := range statuses {
		mustCreate(&s)
	}
	mustCreate(&catalog.ServiceType{ID: config.LoanServiceTypeID, Name: "Loan"})
	mustCreate(&catalog.ServiceType{ID: config.ReservationServiceTypeID, Name: "Reservation"})
	mustCreate(&catalog.Role{ID: config.AdminRoleID, Name: "Administrator"})
	mustCreate(&catalog.Role{ID: 2, Name: "Student"})

	hashed, err := bcrypt.GenerateFromPassword([]byte("adminsecret"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	admin := user.User{
		ID:        1,
		Username:  "admin",
		Password:  string(hashed),
		FirstName: "Ada",
		LastName:  "Admin",
		Email:     "admin@acceslab.test",
	}
	mustCreate(&admin)
	mustCreate(&user.UserRole{ID: 1, UserID: admin.ID, RoleID: config.AdminRoleID})
}

func mustCreate(value interface{}) {
	if err := gormDB.Create(value).Error; err != nil {
		log.Fatal(err)
	}
}

// --- Helper functions ---

// doRequest sends a JSON request through the router and asserts the
// status code when expectStatus is non-zero.
func doRequest(t *testing.T, method, path, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}
	return w
}

func loginUser(t *testing.T, username, password string) string {
	t.Helper()
	resp := doRequest(t, "POST", "/login", "",
		map[string]string{"username": username, "password": password}, http.StatusOK)

	var result response.TokenResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.NotEmpty(t, result.Token)
	return result.Token
}

func registerUser(t *testing.T, adminToken, username, password string) uint {
	t.Helper()
	body := map[string]interface{}{
		"username":   username,
		"password":   password,
		"first_name": "Test",
		"last_name":  "User",
		"email":      username + "@acceslab.test",
		"roles":      []map[string]interface{}{{"id": 2}},
	}
	resp := doRequest(t, "POST", "/register", adminToken, body, http.StatusCreated)

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	return created.ID
}

func decodeJSON(t *testing.T, resp *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), out))
}
