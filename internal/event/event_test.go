package event_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/RohanMehta-11/festly/internal/event"
	"github.com/RohanMehta-11/festly/internal/registration"
	"github.com/RohanMehta-11/festly/internal/testutil"
	"github.com/RohanMehta-11/festly/internal/winner"
)

func eventPayload(name string) map[string]interface{} {
	return map[string]interface{}{
		"name":      name,
		"locations": "Open Air Theatre",
		"date_time": time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC),
		"prize":     "50k",
		"min_team":  2,
		"max_team":  6,
	}
}

func TestCreateEventAndReadBack(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/event", eventPayload("Battle of Bands"), tok)
	require.Equal(t, http.StatusCreated, w.Code)

	var created event.Event
	testutil.DecodeData(t, w, &created)
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())
	require.False(t, created.UpdatedAt.IsZero())

	w = testutil.DoJSON(t, r, http.MethodGet, fmt.Sprintf("/api/event/%d", created.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var fetched event.Event
	testutil.DecodeData(t, w, &fetched)
	require.Equal(t, created.ID, fetched.ID)
	require.Equal(t, "Battle of Bands", fetched.Name)
	require.Equal(t, "Open Air Theatre", fetched.Locations)
	require.Equal(t, 2, fetched.MinTeam)
	require.Equal(t, 6, fetched.MaxTeam)
	require.Equal(t, "50k", fetched.Prize)
}

func TestCreateEventRejectsNegativeTeamSize(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)

	for _, field := range []string{"min_team", "max_team"} {
		payload := eventPayload("Bad Event")
		payload[field] = -1

		w := testutil.DoJSON(t, r, http.MethodPost, "/api/event", payload, tok)
		require.Equal(t, http.StatusBadRequest, w.Code, "negative %s must be rejected", field)
	}

	var count int64
	require.NoError(t, db.Model(&event.Event{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestUpdateEventRestampsOnlyUpdatedAt(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/event", eventPayload("Quiz Night"), tok)
	require.Equal(t, http.StatusCreated, w.Code)
	var created event.Event
	testutil.DecodeData(t, w, &created)

	time.Sleep(20 * time.Millisecond)

	w = testutil.DoJSON(t, r, http.MethodPut, fmt.Sprintf("/api/event/%d", created.ID),
		map[string]interface{}{"name": "Quiz Finals"}, tok)
	require.Equal(t, http.StatusOK, w.Code)

	var stored event.Event
	require.NoError(t, db.First(&stored, created.ID).Error)
	require.Equal(t, "Quiz Finals", stored.Name)
	require.True(t, stored.CreatedAt.Equal(created.CreatedAt), "CreatedAt must not change on update")
	require.True(t, stored.UpdatedAt.After(created.UpdatedAt), "UpdatedAt must be re-stamped on update")
}

func TestUpdateEventAppendsHistorySnapshots(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/event", eventPayload("Alpha"), tok)
	require.Equal(t, http.StatusCreated, w.Code)
	var created event.Event
	testutil.DecodeData(t, w, &created)

	for _, name := range []string{"Beta", "Gamma"} {
		w = testutil.DoJSON(t, r, http.MethodPut, fmt.Sprintf("/api/event/%d", created.ID),
			map[string]interface{}{"name": name}, tok)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = testutil.DoJSON(t, r, http.MethodGet, fmt.Sprintf("/api/event/%d/history", created.ID), nil, tok)
	require.Equal(t, http.StatusOK, w.Code)

	var history []event.EventHistory
	testutil.DecodeData(t, w, &history)
	require.Len(t, history, 3)

	require.Equal(t, event.HistoryCreate, history[0].ChangeType)
	require.Equal(t, "Alpha", history[0].Name)
	require.Equal(t, event.HistoryUpdate, history[1].ChangeType)
	require.Equal(t, "Beta", history[1].Name)
	require.Equal(t, event.HistoryUpdate, history[2].ChangeType)
	require.Equal(t, "Gamma", history[2].Name)

	for _, h := range history {
		require.Equal(t, admin.ID, h.ChangedByID)
		require.False(t, h.ChangedAt.IsZero())
	}
}

func TestDeleteEventCascadesRegistrations(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	participant := testutil.CreateUser(t, db, "dancer01")
	tok := testutil.TokenFor(t, admin.ID)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/event", eventPayload("Dance Off"), tok)
	require.Equal(t, http.StatusCreated, w.Code)
	var created event.Event
	testutil.DecodeData(t, w, &created)

	regs := []registration.Registration{
		{EventID: created.ID, ParticipantID: admin.ID},
		{EventID: created.ID, ParticipantID: participant.ID},
	}
	require.NoError(t, db.Create(&regs).Error)

	w = testutil.DoJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/event/%d", created.ID), nil, tok)
	require.Equal(t, http.StatusOK, w.Code)

	var eventCount, regCount int64
	require.NoError(t, db.Model(&event.Event{}).Where("id = ?", created.ID).Count(&eventCount).Error)
	require.NoError(t, db.Model(&registration.Registration{}).Where("event_id = ?", created.ID).Count(&regCount).Error)
	require.Zero(t, eventCount)
	require.Zero(t, regCount, "registrations must be removed with their event")
}

func TestDeleteEventBlockedByWinnersRecord(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/event", eventPayload("Hackathon"), tok)
	require.Equal(t, http.StatusCreated, w.Code)
	var created event.Event
	testutil.DecodeData(t, w, &created)

	team := winner.TeamWinner{TeamName: "Null Pointers"}
	require.NoError(t, db.Create(&team).Error)
	podium := winner.Winners{EventID: created.ID, FirstWinnerID: team.ID}
	require.NoError(t, db.Create(&podium).Error)

	w = testutil.DoJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/event/%d", created.ID), nil, tok)
	require.Equal(t, http.StatusConflict, w.Code)

	var eventCount, winnersCount int64
	require.NoError(t, db.Model(&event.Event{}).Where("id = ?", created.ID).Count(&eventCount).Error)
	require.NoError(t, db.Model(&winner.Winners{}).Where("id = ?", podium.ID).Count(&winnersCount).Error)
	require.EqualValues(t, 1, eventCount, "event must survive a blocked delete")
	require.EqualValues(t, 1, winnersCount, "winners record must survive a blocked delete")
}

func TestEventWritesRequireAdminRole(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	plain := testutil.CreateUser(t, db, "plainuser")
	tok := testutil.TokenFor(t, plain.ID)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/event", eventPayload("Rogue Event"), tok)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = testutil.DoJSON(t, r, http.MethodPost, "/api/event", eventPayload("Anonymous Event"), "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
