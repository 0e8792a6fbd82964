package user_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/RohanMehta-11/festly/internal/event"
	"github.com/RohanMehta-11/festly/internal/registration"
	"github.com/RohanMehta-11/festly/internal/testutil"
	"github.com/RohanMehta-11/festly/internal/user"
)

func TestGrantAndRevokePermission(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)
	target := testutil.CreateUser(t, db, "organizer")

	w := testutil.DoJSON(t, r, http.MethodPost, fmt.Sprintf("/api/user/%d/permissions", target.ID),
		map[string]interface{}{"code": "registration.import", "description": "Bulk import access"}, tok)
	require.Equal(t, http.StatusOK, w.Code)

	var granted user.User
	require.NoError(t, db.Preload("Permissions").First(&granted, target.ID).Error)
	require.Len(t, granted.Permissions, 1)
	require.Equal(t, "registration.import", granted.Permissions[0].Code)

	w = testutil.DoJSON(t, r, http.MethodDelete,
		fmt.Sprintf("/api/user/%d/permissions/registration.import", target.ID), nil, tok)
	require.Equal(t, http.StatusOK, w.Code)

	var revoked user.User
	require.NoError(t, db.Preload("Permissions").First(&revoked, target.ID).Error)
	require.Empty(t, revoked.Permissions)
}

func TestUserAdministrationRequiresAdmin(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	plain := testutil.CreateUser(t, db, "plainuser")
	tok := testutil.TokenFor(t, plain.ID)

	w := testutil.DoJSON(t, r, http.MethodGet, "/api/user", nil, tok)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteUserCascadesRegistrations(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)
	target := testutil.CreateUser(t, db, "leaver")

	ev := event.Event{Name: "Open Mic", Locations: "Cafeteria", DateTime: time.Now().Add(24 * time.Hour)}
	require.NoError(t, db.Create(&ev).Error)
	reg := registration.Registration{EventID: ev.ID, ParticipantID: target.ID}
	require.NoError(t, db.Create(&reg).Error)

	w := testutil.DoJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/user/%d", target.ID), nil, tok)
	require.Equal(t, http.StatusOK, w.Code)

	var userCount, regCount int64
	require.NoError(t, db.Model(&user.User{}).Where("id = ?", target.ID).Count(&userCount).Error)
	require.NoError(t, db.Model(&registration.Registration{}).Where("participant_id = ?", target.ID).Count(&regCount).Error)
	require.Zero(t, userCount)
	require.Zero(t, regCount, "the user's registrations must be removed with the account")
}

func TestParticipantListOnlyIncludesRegisteredUsers(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	viewer := testutil.CreateUser(t, db, "viewer")
	tok := testutil.TokenFor(t, viewer.ID)

	registered := testutil.CreateUser(t, db, "registered")
	testutil.CreateUser(t, db, "bystander")

	ev := event.Event{Name: "Poetry Slam", Locations: "Library Lawn", DateTime: time.Now().Add(24 * time.Hour)}
	require.NoError(t, db.Create(&ev).Error)
	require.NoError(t, db.Create(&registration.Registration{EventID: ev.ID, ParticipantID: registered.ID}).Error)

	w := testutil.DoJSON(t, r, http.MethodGet, "/api/participant", nil, tok)
	require.Equal(t, http.StatusOK, w.Code)

	var participants []user.User
	testutil.DecodeData(t, w, &participants)
	require.Len(t, participants, 1)
	require.Equal(t, "registered", participants[0].Username)
}
