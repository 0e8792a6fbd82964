package taxonomy_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/RohanMehta-11/festly/internal/event"
	"github.com/RohanMehta-11/festly/internal/taxonomy"
	"github.com/RohanMehta-11/festly/internal/testutil"
)

func TestCategoryAndTypeCreateAndReadBack(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/category",
		map[string]interface{}{"name": "Cultural"}, tok)
	require.Equal(t, http.StatusCreated, w.Code)
	var category taxonomy.EventCategory
	testutil.DecodeData(t, w, &category)
	require.False(t, category.CreatedAt.IsZero())

	w = testutil.DoJSON(t, r, http.MethodPost, "/api/eventtype",
		map[string]interface{}{"name": "Dance", "event_category_id": category.ID}, tok)
	require.Equal(t, http.StatusCreated, w.Code)
	var etype taxonomy.EventType
	testutil.DecodeData(t, w, &etype)

	w = testutil.DoJSON(t, r, http.MethodGet, fmt.Sprintf("/api/eventtype/%d", etype.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var fetched taxonomy.EventType
	testutil.DecodeData(t, w, &fetched)
	require.Equal(t, "Dance", fetched.Name)
	require.NotNil(t, fetched.EventCategoryID)
	require.Equal(t, category.ID, *fetched.EventCategoryID)
}

func TestDeleteTypeDetachesEvents(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)

	etype := taxonomy.EventType{Name: "Quiz"}
	require.NoError(t, db.Create(&etype).Error)

	ev := event.Event{Name: "Tech Quiz", Locations: "Lecture Hall", DateTime: time.Now().Add(24 * time.Hour), EventTypeID: &etype.ID}
	require.NoError(t, db.Create(&ev).Error)

	w := testutil.DoJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/eventtype/%d", etype.ID), nil, tok)
	require.Equal(t, http.StatusOK, w.Code)

	var stored event.Event
	require.NoError(t, db.First(&stored, ev.ID).Error)
	require.Nil(t, stored.EventTypeID)
}

func TestDeleteCategoryRemovesTypesAndDetachesEvents(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)

	category := taxonomy.EventCategory{Name: "Technical"}
	require.NoError(t, db.Create(&category).Error)
	etype := taxonomy.EventType{Name: "Coding", EventCategoryID: &category.ID}
	require.NoError(t, db.Create(&etype).Error)

	ev := event.Event{Name: "Code Sprint", Locations: "Lab 3", DateTime: time.Now().Add(24 * time.Hour), EventTypeID: &etype.ID}
	require.NoError(t, db.Create(&ev).Error)

	w := testutil.DoJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/category/%d", category.ID), nil, tok)
	require.Equal(t, http.StatusOK, w.Code)

	var typeCount int64
	require.NoError(t, db.Model(&taxonomy.EventType{}).Where("id = ?", etype.ID).Count(&typeCount).Error)
	require.Zero(t, typeCount, "types must be removed with their category")

	var stored event.Event
	require.NoError(t, db.First(&stored, ev.ID).Error)
	require.Nil(t, stored.EventTypeID)
}
