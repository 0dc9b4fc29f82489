package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/acceslab/acceslab-go/internal/domain/user"
	"github.com/stretchr/testify/require"
)

func TestLoginAndProfile(t *testing.T) {
	adminToken := loginUser(t, "admin", "adminsecret")

	resp := doRequest(t, "GET", "/auth/me", adminToken, nil, http.StatusOK)
	var me user.User
	decodeJSON(t, resp, &me)
	require.Equal(t, "admin", me.Username)
	require.Empty(t, me.Password)

	doRequest(t, "POST", "/login", "",
		map[string]string{"username": "admin", "password": "wrong"}, http.StatusUnauthorized)
}

func TestRegisterRequiresAdmin(t *testing.T) {
	adminToken := loginUser(t, "admin", "adminsecret")
	registerUser(t, adminToken, "plain-user", "plainsecret")
	plainToken := loginUser(t, "plain-user", "plainsecret")

	doRequest(t, "POST", "/register", plainToken, map[string]interface{}{
		"username":   "smuggled",
		"password":   "smuggledpw",
		"first_name": "S",
		"last_name":  "M",
		"email":      "smuggled@acceslab.test",
	}, http.StatusForbidden)

	// duplicate usernames are rejected
	doRequest(t, "POST", "/register", adminToken, map[string]interface{}{
		"username":   "plain-user",
		"password":   "whatever123",
		"first_name": "P",
		"last_name":  "U",
		"email":      "dup@acceslab.test",
	}, http.StatusConflict)
}

func TestUserListIsAdminOnly(t *testing.T) {
	adminToken := loginUser(t, "admin", "adminsecret")
	registerUser(t, adminToken, "curious", "curioussecret")
	curiousToken := loginUser(t, "curious", "curioussecret")

	doRequest(t, "GET", "/users", curiousToken, nil, http.StatusForbidden)

	resp := doRequest(t, "GET", "/users", adminToken, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "curious")
}

func TestChangePassword(t *testing.T) {
	adminToken := loginUser(t, "admin", "adminsecret")
	registerUser(t, adminToken, "rotator", "firstsecret")
	token := loginUser(t, "rotator", "firstsecret")

	doRequest(t, "PUT", "/auth/password", token, map[string]string{
		"old_password": "wrong",
		"new_password": "secondsecret",
	}, http.StatusUnauthorized)

	doRequest(t, "PUT", "/auth/password", token, map[string]string{
		"old_password": "firstsecret",
		"new_password": "secondsecret",
	}, http.StatusOK)

	loginUser(t, "rotator", "secondsecret")
}

func TestSelfOrAdminProfileAccess(t *testing.T) {
	adminToken := loginUser(t, "admin", "adminsecret")
	firstID := registerUser(t, adminToken, "first-profile", "firstprofile1")
	registerUser(t, adminToken, "second-profile", "secondprofile1")
	secondToken := loginUser(t, "second-profile", "secondprofile1")

	// another non-admin cannot read or edit the profile
	path := fmt.Sprintf("/users/%d", firstID)
	doRequest(t, "GET", path, secondToken, nil, http.StatusForbidden)

	// the admin can
	resp := doRequest(t, "GET", path, adminToken, nil, http.StatusOK)
	var fetched user.User
	decodeJSON(t, resp, &fetched)
	require.Equal(t, "first-profile", fetched.Username)
}
