package winner_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/RohanMehta-11/festly/internal/event"
	"github.com/RohanMehta-11/festly/internal/testutil"
	"github.com/RohanMehta-11/festly/internal/winner"
)

func TestCreateDetailWinnerOncePerUser(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)
	u := testutil.CreateUser(t, db, "champ")

	payload := map[string]interface{}{
		"userId":            u.ID,
		"accountHolderName": "Champ Kumar",
		"accountNumber":     "1234567890",
		"ifsc":              "HDFC0001234",
	}
	w := testutil.DoJSON(t, r, http.MethodPost, "/api/winner/detail", payload, tok)
	require.Equal(t, http.StatusCreated, w.Code)

	var detail winner.DetailWinner
	testutil.DecodeData(t, w, &detail)
	require.Equal(t, u.ID, detail.UserID)
	require.False(t, detail.CreatedAt.IsZero())

	w = testutil.DoJSON(t, r, http.MethodPost, "/api/winner/detail", payload, tok)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteDetailWinnerBlockedWhileInTeam(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)
	u := testutil.CreateUser(t, db, "member01")

	detail := winner.DetailWinner{UserID: u.ID, AccountHolderName: "Member One"}
	require.NoError(t, db.Create(&detail).Error)

	team := winner.TeamWinner{TeamName: "Code Breakers", Members: []winner.DetailWinner{detail}}
	require.NoError(t, db.Create(&team).Error)

	w := testutil.DoJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/winner/detail/%d", detail.ID), nil, tok)
	require.Equal(t, http.StatusConflict, w.Code)

	var count int64
	require.NoError(t, db.Model(&winner.DetailWinner{}).Where("id = ?", detail.ID).Count(&count).Error)
	require.EqualValues(t, 1, count, "protected detail must survive the delete attempt")

	// Once the team is gone the detail can be removed.
	w = testutil.DoJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/winner/team/%d", team.ID), nil, tok)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.DoJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/winner/detail/%d", detail.ID), nil, tok)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteTeamWinnerBlockedWhileOnPodium(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)

	ev := event.Event{Name: "Treasure Hunt", Locations: "Campus", DateTime: time.Now().Add(24 * time.Hour)}
	require.NoError(t, db.Create(&ev).Error)

	team := winner.TeamWinner{TeamName: "Pathfinders"}
	require.NoError(t, db.Create(&team).Error)
	podium := winner.Winners{EventID: ev.ID, FirstWinnerID: team.ID}
	require.NoError(t, db.Create(&podium).Error)

	w := testutil.DoJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/winner/team/%d", team.ID), nil, tok)
	require.Equal(t, http.StatusConflict, w.Code)

	var count int64
	require.NoError(t, db.Model(&winner.TeamWinner{}).Where("id = ?", team.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)

	// Dropping the podium unblocks the team.
	w = testutil.DoJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/winner/%d", podium.ID), nil, tok)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.DoJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/winner/team/%d", team.ID), nil, tok)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestWinnersRecordIsUniquePerEvent(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)

	ev := event.Event{Name: "Debate", Locations: "Seminar Hall", DateTime: time.Now().Add(24 * time.Hour)}
	require.NoError(t, db.Create(&ev).Error)

	first := winner.TeamWinner{TeamName: "Affirmative"}
	second := winner.TeamWinner{TeamName: "Negative"}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/winner",
		map[string]interface{}{"eventId": ev.ID, "firstWinnerId": first.ID, "secondWinnerId": second.ID}, tok)
	require.Equal(t, http.StatusCreated, w.Code)

	w = testutil.DoJSON(t, r, http.MethodPost, "/api/winner",
		map[string]interface{}{"eventId": ev.ID, "firstWinnerId": second.ID}, tok)
	require.Equal(t, http.StatusConflict, w.Code)

	var count int64
	require.NoError(t, db.Model(&winner.Winners{}).Where("event_id = ?", ev.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCreateWinnersValidatesReferences(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)

	team := winner.TeamWinner{TeamName: "Lone Team"}
	require.NoError(t, db.Create(&team).Error)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/winner",
		map[string]interface{}{"eventId": 9999, "firstWinnerId": team.ID}, tok)
	require.Equal(t, http.StatusNotFound, w.Code)

	ev := event.Event{Name: "Fashion Show", Locations: "Stage 2", DateTime: time.Now().Add(24 * time.Hour)}
	require.NoError(t, db.Create(&ev).Error)

	w = testutil.DoJSON(t, r, http.MethodPost, "/api/winner",
		map[string]interface{}{"eventId": ev.ID, "firstWinnerId": 9999}, tok)
	require.Equal(t, http.StatusNotFound, w.Code)
}
