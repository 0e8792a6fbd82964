package registration_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/RohanMehta-11/festly/internal/event"
	"github.com/RohanMehta-11/festly/internal/registration"
	"github.com/RohanMehta-11/festly/internal/testutil"
)

// buildSheet produces an xlsx with a header row followed by the given rows.
func buildSheet(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func doUpload(t *testing.T, r *gin.Engine, path string, content []byte, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "import.xlsx")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRegistrationDefaultsToCaller(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)
	u := testutil.CreateUser(t, db, "singer01")
	tok := testutil.TokenFor(t, u.ID)

	ev := event.Event{Name: "Solo Singing", Locations: "Auditorium", DateTime: time.Now().Add(24 * time.Hour)}
	require.NoError(t, db.Create(&ev).Error)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/registration",
		map[string]interface{}{"event_id": ev.ID}, tok)
	require.Equal(t, http.StatusCreated, w.Code)

	var reg registration.Registration
	testutil.DecodeData(t, w, &reg)
	require.Equal(t, ev.ID, reg.EventID)
	require.Equal(t, u.ID, reg.ParticipantID)
}

func TestImportRequiresDedicatedPermission(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)

	// Even an admin is rejected without the explicit import grant.
	admin := testutil.CreateUser(t, db, "admin", "admin")
	tok := testutil.TokenFor(t, admin.ID)

	sheet := buildSheet(t, [][]interface{}{{"username", "event_id"}})
	w := doUpload(t, r, "/api/registration/import", sheet, tok)
	require.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	require.NoError(t, db.Model(&registration.Registration{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestImportPersistsAllRows(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)

	importer := testutil.CreateUser(t, db, "importer")
	testutil.GrantPermission(t, db, importer, registration.PermImport)
	tok := testutil.TokenFor(t, importer.ID)

	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")

	ev := event.Event{Name: "Robo Wars", Locations: "Workshop", DateTime: time.Now().Add(48 * time.Hour)}
	require.NoError(t, db.Create(&ev).Error)

	sheet := buildSheet(t, [][]interface{}{
		{"username", "event_id"},
		{"alice", int(ev.ID)},
		{"bob", int(ev.ID)},
	})
	w := doUpload(t, r, "/api/registration/import", sheet, tok)
	require.Equal(t, http.StatusCreated, w.Code)

	var regs []registration.Registration
	require.NoError(t, db.Where("event_id = ?", ev.ID).Order("participant_id ASC").Find(&regs).Error)
	require.Len(t, regs, 2)
	require.Equal(t, alice.ID, regs[0].ParticipantID)
	require.Equal(t, bob.ID, regs[1].ParticipantID)
}

func TestImportIsAllOrNothing(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)

	importer := testutil.CreateUser(t, db, "importer")
	testutil.GrantPermission(t, db, importer, registration.PermImport)
	tok := testutil.TokenFor(t, importer.ID)

	testutil.CreateUser(t, db, "carol")
	ev := event.Event{Name: "Street Play", Locations: "Main Lawn", DateTime: time.Now().Add(72 * time.Hour)}
	require.NoError(t, db.Create(&ev).Error)

	sheet := buildSheet(t, [][]interface{}{
		{"username", "event_id"},
		{"carol", int(ev.ID)},
		{"ghost", int(ev.ID)}, // unknown participant poisons the whole import
	})
	w := doUpload(t, r, "/api/registration/import", sheet, tok)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&registration.Registration{}).Count(&count).Error)
	require.Zero(t, count, "a failed import must not leave partial rows")
}

func TestExportIsAdminOnly(t *testing.T) {
	r, db, _ := testutil.NewRouter(t)

	plain := testutil.CreateUser(t, db, "plainuser")
	w := testutil.DoJSON(t, r, http.MethodGet, "/api/registration/export", nil, testutil.TokenFor(t, plain.ID))
	require.Equal(t, http.StatusForbidden, w.Code)

	admin := testutil.CreateUser(t, db, "admin", "admin")
	w = testutil.DoJSON(t, r, http.MethodGet, "/api/registration/export", nil, testutil.TokenFor(t, admin.ID))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"), "registrations.xlsx")
}
