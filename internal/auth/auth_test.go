package auth_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RohanMehta-11/festly/internal/testutil"
)

func TestRegisterLoginAndProfile(t *testing.T) {
	r, _, _ := testutil.NewRouter(t)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"username": "rhea",
		"email":    "rhea@example.com",
		"password": "supersecret1",
		"name":     "Rhea",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate username is rejected.
	w = testutil.DoJSON(t, r, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"username": "rhea",
		"email":    "other@example.com",
		"password": "supersecret1",
		"name":     "Other",
	}, "")
	require.Equal(t, http.StatusConflict, w.Code)

	// Login works with the username as well as the email.
	for _, identifier := range []string{"rhea", "rhea@example.com"} {
		w = testutil.DoJSON(t, r, http.MethodPost, "/api/auth/login", map[string]interface{}{
			"login_identifier": identifier,
			"password":         "supersecret1",
		}, "")
		require.Equal(t, http.StatusOK, w.Code, "login with %q", identifier)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	testutil.DecodeData(t, w, &payload)
	require.NotEmpty(t, payload.AccessToken)

	w = testutil.DoJSON(t, r, http.MethodGet, "/api/auth/me", nil, payload.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)

	var profile struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	testutil.DecodeData(t, w, &profile)
	require.Equal(t, "rhea", profile.Username)
	require.Equal(t, "rhea@example.com", profile.Email)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r, _, _ := testutil.NewRouter(t)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"username": "sam",
		"email":    "sam@example.com",
		"password": "supersecret1",
		"name":     "Sam",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = testutil.DoJSON(t, r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"login_identifier": "sam",
		"password":         "wrongpassword",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileRequiresToken(t *testing.T) {
	r, _, _ := testutil.NewRouter(t)

	w := testutil.DoJSON(t, r, http.MethodGet, "/api/auth/me", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
