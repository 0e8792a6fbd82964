package sponsor_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/RohanMehta-11/festly/internal/sponsor"
	"github.com/RohanMehta-11/festly/internal/testutil"
)

func TestSponsorCreateAndReadBack(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/sponsor",
		map[string]interface{}{"name": "Acme Corp", "tagline": "We make everything", "partnership": "Title Sponsor"}, tok)
	require.Equal(t, http.StatusCreated, w.Code)

	var created sponsor.Sponsor
	testutil.DecodeData(t, w, &created)
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())
	require.False(t, created.UpdatedAt.IsZero())

	w = testutil.DoJSON(t, r, http.MethodGet, fmt.Sprintf("/api/sponsor/%d", created.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var fetched sponsor.Sponsor
	testutil.DecodeData(t, w, &fetched)
	require.Equal(t, "Acme Corp", fetched.Name)
	require.Equal(t, "We make everything", fetched.Tagline)
	require.Equal(t, "Title Sponsor", fetched.Partnership)
}

func TestSponsorNameIsRequired(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/sponsor",
		map[string]interface{}{"tagline": "No name"}, tok)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSponsorUpdateRestampsOnlyUpdatedAt(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/sponsor",
		map[string]interface{}{"name": "Initech"}, tok)
	require.Equal(t, http.StatusCreated, w.Code)
	var created sponsor.Sponsor
	testutil.DecodeData(t, w, &created)

	time.Sleep(20 * time.Millisecond)

	w = testutil.DoJSON(t, r, http.MethodPut, fmt.Sprintf("/api/sponsor/%d", created.ID),
		map[string]interface{}{"name": "Initech Global"}, tok)
	require.Equal(t, http.StatusOK, w.Code)

	var stored sponsor.Sponsor
	require.NoError(t, db.First(&stored, created.ID).Error)
	require.Equal(t, "Initech Global", stored.Name)
	require.True(t, stored.CreatedAt.Equal(created.CreatedAt))
	require.True(t, stored.UpdatedAt.After(created.UpdatedAt))
}

func TestSponsorDelete(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/sponsor",
		map[string]interface{}{"name": "Hooli"}, tok)
	require.Equal(t, http.StatusCreated, w.Code)
	var created sponsor.Sponsor
	testutil.DecodeData(t, w, &created)

	w = testutil.DoJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/sponsor/%d", created.ID), nil, tok)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.DoJSON(t, r, http.MethodGet, fmt.Sprintf("/api/sponsor/%d", created.ID), nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
