package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/acceslab/acceslab-go/internal/domain/request"
	"github.com/acceslab/acceslab-go/internal/repository"
	"github.com/stretchr/testify/require"
)

func createLaboratory(t *testing.T, token, name string) uint {
	t.Helper()
	resp := doRequest(t, "POST", "/catalog/laboratories", token,
		map[string]interface{}{"name": name, "capacity": 20, "location": "Building B"},
		http.StatusCreated)
	var lab struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, resp, &lab)
	require.NotZero(t, lab.ID)
	return lab.ID
}

func createSchedule(t *testing.T, token string, labID uint) uint {
	t.Helper()
	resp := doRequest(t, "POST", "/catalog/schedules", token,
		map[string]interface{}{
			"laboratory":  map[string]interface{}{"id": labID},
			"day_of_week": "monday",
			"start_time":  "08:00",
			"end_time":    "18:00",
		}, http.StatusCreated)
	var sch struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, resp, &sch)
	require.NotZero(t, sch.ID)
	return sch.ID
}

func createObject(t *testing.T, token, name string, stock int) uint {
	t.Helper()
	resp := doRequest(t, "POST", "/catalog/objects", token,
		map[string]interface{}{
			"name":     name,
			"category": map[string]interface{}{"name": "Instruments"},
			"stock":    stock,
		}, http.StatusCreated)
	var obj struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, resp, &obj)
	require.NotZero(t, obj.ID)
	return obj.ID
}

func objectStock(t *testing.T, token string, id uint) int {
	t.Helper()
	resp := doRequest(t, "GET", fmt.Sprintf("/catalog/objects/%d", id), token, nil, http.StatusOK)
	var obj struct {
		Stock int `json:"stock"`
	}
	decodeJSON(t, resp, &obj)
	return obj.Stock
}

func TestLoanDecrementsStock(t *testing.T) {
	adminToken := loginUser(t, "admin", "adminsecret")
	registerUser(t, adminToken, "loaner", "loanersecret")
	userToken := loginUser(t, "loaner", "loanersecret")

	objectID := createObject(t, adminToken, "Oscilloscope", 3)

	resp := doRequest(t, "POST", "/requests", userToken, map[string]interface{}{
		"service_type": map[string]interface{}{"id": 1},
		"subject":      "Signal measurement practice",
		"lines": []map[string]interface{}{
			{"object": map[string]interface{}{"id": objectID}, "quantity": 2},
		},
	}, http.StatusCreated)

	var created request.Request
	decodeJSON(t, resp, &created)
	require.NotZero(t, created.ID)
	require.Len(t, created.Lines, 1)

	require.Equal(t, 1, objectStock(t, adminToken, objectID))

	// a second loan for more than what is left must be rejected whole
	doRequest(t, "POST", "/requests", userToken, map[string]interface{}{
		"service_type": map[string]interface{}{"id": 1},
		"subject":      "Too greedy",
		"lines": []map[string]interface{}{
			{"object": map[string]interface{}{"id": objectID}, "quantity": 2},
		},
	}, http.StatusBadRequest)

	require.Equal(t, 1, objectStock(t, adminToken, objectID))
}

func TestReservationConflictDetection(t *testing.T) {
	adminToken := loginUser(t, "admin", "adminsecret")
	registerUser(t, adminToken, "reserver", "reserversecret")
	userToken := loginUser(t, "reserver", "reserversecret")

	labID := createLaboratory(t, adminToken, "Electronics Lab")
	scheduleID := createSchedule(t, adminToken, labID)

	reservation := func(subject, startTime, endTime string) map[string]interface{} {
		return map[string]interface{}{
			"service_type": map[string]interface{}{"id": 21},
			"subject":      subject,
			"laboratory":   map[string]interface{}{"id": labID},
			"schedule_id":  scheduleID,
			"start_date":   "2026-10-05",
			"end_date":     "2026-10-05",
			"start_time":   startTime,
			"end_time":     endTime,
		}
	}

	doRequest(t, "POST", "/requests", userToken, reservation("First session", "10:00", "12:00"), http.StatusCreated)

	// overlapping window in the same laboratory on the same day
	resp := doRequest(t, "POST", "/requests", userToken, reservation("Clashing session", "11:00", "13:00"), http.StatusBadRequest)
	require.Contains(t, resp.Body.String(), "schedule")

	// windows that only touch do not conflict
	doRequest(t, "POST", "/requests", userToken, reservation("Back to back", "12:00", "14:00"), http.StatusCreated)
}

func TestRequestLifecycleAndOwnership(t *testing.T) {
	adminToken := loginUser(t, "admin", "adminsecret")
	registerUser(t, adminToken, "owner", "ownersecret")
	registerUser(t, adminToken, "outsider", "outsidersecret")
	ownerToken := loginUser(t, "owner", "ownersecret")
	outsiderToken := loginUser(t, "outsider", "outsidersecret")

	objectID := createObject(t, adminToken, "Microscope", 5)

	resp := doRequest(t, "POST", "/requests", ownerToken, map[string]interface{}{
		"service_type": map[string]interface{}{"id": 1},
		"subject":      "Cell biology session",
		"lines": []map[string]interface{}{
			{"object": map[string]interface{}{"id": objectID}, "quantity": 1},
		},
	}, http.StatusCreated)
	var created request.Request
	decodeJSON(t, resp, &created)

	path := fmt.Sprintf("/requests/%d", created.ID)

	// other users may not read or delete someone else's request
	doRequest(t, "GET", path, outsiderToken, nil, http.StatusForbidden)
	doRequest(t, "DELETE", path, outsiderToken, nil, http.StatusForbidden)

	// non-admins cannot move the lifecycle
	doRequest(t, "PATCH", path+"/status", ownerToken,
		map[string]interface{}{"status": map[string]interface{}{"id": 2}}, http.StatusForbidden)

	// admin approves, then the owner sees the new status
	doRequest(t, "PATCH", path+"/status", adminToken,
		map[string]interface{}{"status": map[string]interface{}{"id": 2}}, http.StatusOK)

	resp = doRequest(t, "GET", path, ownerToken, nil, http.StatusOK)
	var fetched request.Request
	decodeJSON(t, resp, &fetched)
	require.Equal(t, uint(2), fetched.StatusID)

	// unknown status ids are rejected
	doRequest(t, "PATCH", path+"/status", adminToken,
		map[string]interface{}{"status": map[string]interface{}{"id": 999}}, http.StatusNotFound)
}

func TestDeleteCascadesLines(t *testing.T) {
	adminToken := loginUser(t, "admin", "adminsecret")
	registerUser(t, adminToken, "deleter", "deletersecret")
	userToken := loginUser(t, "deleter", "deletersecret")

	objectID := createObject(t, adminToken, "Thermometer", 4)

	resp := doRequest(t, "POST", "/requests", userToken, map[string]interface{}{
		"service_type": map[string]interface{}{"id": 1},
		"subject":      "Temperature logging",
		"lines": []map[string]interface{}{
			{"object": map[string]interface{}{"id": objectID}, "quantity": 2},
		},
	}, http.StatusCreated)
	var created request.Request
	decodeJSON(t, resp, &created)

	doRequest(t, "DELETE", fmt.Sprintf("/requests/%d", created.ID), userToken, nil, http.StatusNoContent)

	var lineCount int64
	require.NoError(t, gormDB.Model(&request.Line{}).Where("request_id = ?", created.ID).Count(&lineCount).Error)
	require.Zero(t, lineCount)

	// consumed stock stays consumed after deletion
	require.Equal(t, 2, objectStock(t, adminToken, objectID))
}

func TestAdminFilesRequestOnBehalf(t *testing.T) {
	adminToken := loginUser(t, "admin", "adminsecret")
	walkinID := registerUser(t, adminToken, "walkin", "walkinsecret")
	walkinToken := loginUser(t, "walkin", "walkinsecret")
	registerUser(t, adminToken, "sneaky", "sneakysecret")
	sneakyToken := loginUser(t, "sneaky", "sneakysecret")

	objectID := createObject(t, adminToken, "Pipette", 6)

	resp := doRequest(t, "POST", "/requests", adminToken, map[string]interface{}{
		"requester_id": walkinID,
		"service_type": map[string]interface{}{"id": 1},
		"subject":      "Front desk loan",
		"lines": []map[string]interface{}{
			{"object": map[string]interface{}{"id": objectID}, "quantity": 1},
		},
	}, http.StatusCreated)
	var created request.Request
	decodeJSON(t, resp, &created)
	require.Equal(t, walkinID, created.RequesterID)

	// the named requester owns it
	doRequest(t, "GET", fmt.Sprintf("/requests/%d", created.ID), walkinToken, nil, http.StatusOK)

	// non-admins cannot file for someone else
	doRequest(t, "POST", "/requests", sneakyToken, map[string]interface{}{
		"requester_id": walkinID,
		"service_type": map[string]interface{}{"id": 1},
		"subject":      "Impersonation attempt",
		"lines": []map[string]interface{}{
			{"object": map[string]interface{}{"id": objectID}, "quantity": 1},
		},
	}, http.StatusForbidden)
}

func TestInsertRetrySurvivesDuplicateKey(t *testing.T) {
	adminToken := loginUser(t, "admin", "adminsecret")
	registerUser(t, adminToken, "collider", "collidersecret")
	userToken := loginUser(t, "collider", "collidersecret")

	objectID := createObject(t, adminToken, "Calorimeter", 2)

	resp := doRequest(t, "POST", "/requests", userToken, map[string]interface{}{
		"service_type": map[string]interface{}{"id": 1},
		"subject":      "First of two",
		"lines": []map[string]interface{}{
			{"object": map[string]interface{}{"id": objectID}, "quantity": 1},
		},
	}, http.StatusCreated)
	var created request.Request
	decodeJSON(t, resp, &created)

	// an insert that hits an id collision must not poison the enclosing
	// transaction: after the nested attempt fails, the same transaction
	// has to accept the retried insert
	repos := repository.NewRepositories(gormDB)
	err := repos.ExecTx(func(tx *repository.Repos) error {
		dup := request.Request{
			ID:            created.ID,
			RequesterID:   created.RequesterID,
			ServiceTypeID: 1,
			StatusID:      1,
			SubmittedAt:   time.Now(),
			Subject:       "Colliding insert",
		}
		ferr := tx.ExecTx(func(inner *repository.Repos) error {
			return inner.Request.CreateRequest(&dup)
		})
		require.Error(t, ferr)
		require.Contains(t, ferr.Error(), "23505")

		dup.ID = 0
		return tx.Request.CreateRequest(&dup)
	})
	require.NoError(t, err)
}

func TestListPinsNonAdmins(t *testing.T) {
	adminToken := loginUser(t, "admin", "adminsecret")
	aliceID := registerUser(t, adminToken, "alice-list", "alicesecret")
	registerUser(t, adminToken, "bob-list", "bobsecret")
	aliceToken := loginUser(t, "alice-list", "alicesecret")
	bobToken := loginUser(t, "bob-list", "bobsecret")

	objectID := createObject(t, adminToken, "Beaker", 10)

	submit := func(token, subject string) {
		doRequest(t, "POST", "/requests", token, map[string]interface{}{
			"service_type": map[string]interface{}{"id": 1},
			"subject":      subject,
			"lines": []map[string]interface{}{
				{"object": map[string]interface{}{"id": objectID}, "quantity": 1},
			},
		}, http.StatusCreated)
	}
	submit(aliceToken, "Alice's request")
	submit(bobToken, "Bob's request")

	// even with an explicit requester filter Bob only sees his own
	resp := doRequest(t, "GET", fmt.Sprintf("/requests?requester_id=%d", aliceID), bobToken, nil, http.StatusOK)
	var listed []request.Request
	decodeJSON(t, resp, &listed)
	for _, req := range listed {
		require.NotEqual(t, aliceID, req.RequesterID)
	}
}
