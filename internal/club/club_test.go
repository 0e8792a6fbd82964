package club_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/RohanMehta-11/festly/internal/club"
	"github.com/RohanMehta-11/festly/internal/event"
	"github.com/RohanMehta-11/festly/internal/testutil"
)

func TestClubCreateAndReadBack(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/club",
		map[string]interface{}{"name": "Music Club"}, tok)
	require.Equal(t, http.StatusCreated, w.Code)

	var created club.Club
	testutil.DecodeData(t, w, &created)
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	w = testutil.DoJSON(t, r, http.MethodGet, fmt.Sprintf("/api/club/%d", created.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var fetched club.Club
	testutil.DecodeData(t, w, &fetched)
	require.Equal(t, "Music Club", fetched.Name)
}

func TestDeleteClubDetachesEvents(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)

	c := club.Club{Name: "Drama Club"}
	require.NoError(t, db.Create(&c).Error)

	ev := event.Event{Name: "Mono Acting", Locations: "Mini Stage", DateTime: time.Now().Add(24 * time.Hour), ClubID: &c.ID}
	require.NoError(t, db.Create(&ev).Error)

	w := testutil.DoJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/club/%d", c.ID), nil, tok)
	require.Equal(t, http.StatusOK, w.Code)

	var stored event.Event
	require.NoError(t, db.First(&stored, ev.ID).Error)
	require.Nil(t, stored.ClubID, "event must survive with its club reference cleared")
}
