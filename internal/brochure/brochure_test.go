package brochure_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RohanMehta-11/festly/internal/brochure"
	"github.com/RohanMehta-11/festly/internal/testutil"
)

func TestBrochureCreateRequiresName(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/brochure", map[string]interface{}{}, tok)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.DoJSON(t, r, http.MethodPost, "/api/brochure",
		map[string]interface{}{"name": "Schedule 2026"}, tok)
	require.Equal(t, http.StatusCreated, w.Code)

	var created brochure.Brochure
	testutil.DecodeData(t, w, &created)
	require.Equal(t, "Schedule 2026", created.Name)
	require.False(t, created.CreatedAt.IsZero())
}

func TestBrochureUploadRejectsNonPDF(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/brochure",
		map[string]interface{}{"name": "Rulebook"}, tok)
	require.Equal(t, http.StatusCreated, w.Code)
	var created brochure.Brochure
	testutil.DecodeData(t, w, &created)

	upload := func(filename string) *httptest.ResponseRecorder {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, err := mw.CreateFormFile("pdf", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 fake"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/brochure/%d/pdf", created.ID), &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+tok)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	require.Equal(t, http.StatusBadRequest, upload("schedule.txt").Code)

	resp := upload("schedule.pdf")
	require.Equal(t, http.StatusOK, resp.Code)

	var updated brochure.Brochure
	testutil.DecodeData(t, resp, &updated)
	require.NotEmpty(t, updated.BrochurePDF)
}
