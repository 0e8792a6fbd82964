// Package testutil wires an in-memory database and a fully routed engine for
// handler-level tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/RohanMehta-11/festly/config"
	"github.com/RohanMehta-11/festly/internal/brochure"
	"github.com/RohanMehta-11/festly/internal/club"
	"github.com/RohanMehta-11/festly/internal/event"
	"github.com/RohanMehta-11/festly/internal/registration"
	"github.com/RohanMehta-11/festly/internal/sponsor"
	"github.com/RohanMehta-11/festly/internal/taxonomy"
	"github.com/RohanMehta-11/festly/internal/user"
	"github.com/RohanMehta-11/festly/internal/winner"
	"github.com/RohanMehta-11/festly/pkg/token"
	"github.com/RohanMehta-11/festly/routes"
	"github.com/RohanMehta-11/festly/utils"
)

const JWTSecret = "test-secret"

// NewTestDB opens an isolated in-memory database with the full schema.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&user.User{}, &user.Role{}, &user.Permission{},
		&club.Club{},
		&taxonomy.EventCategory{}, &taxonomy.EventType{},
		&event.Event{}, &event.EventHistory{},
		&registration.Registration{},
		&sponsor.Sponsor{}, &brochure.Brochure{},
		&winner.DetailWinner{}, &winner.TeamWinner{}, &winner.Winners{},
	))
	return db
}

// NewTestConfig builds a config pointing uploads at a per-test temp dir.
func NewTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "production" // keeps gin quiet
	cfg.App.Port = "0"
	cfg.App.UploadDir = t.TempDir()
	cfg.App.MediaURL = "/media"
	cfg.App.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.JWT.AccessTokenSecret = JWTSecret
	cfg.JWT.AccessTokenExpiryMinutes = 60
	return cfg
}

// NewRouter returns a routed engine over a fresh in-memory database.
func NewRouter(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	db := NewTestDB(t)
	cfg := NewTestConfig(t)
	return routes.SetupRoutes(db, cfg), db, cfg
}

// CreateUser persists a user with the given roles and returns it.
func CreateUser(t *testing.T, db *gorm.DB, username string, roleNames ...string) *user.User {
	t.Helper()

	hashed, err := utils.HashPassword("password123")
	require.NoError(t, err)

	u := &user.User{
		Username: username,
		Email:    username + "@example.com",
		Password: hashed,
		Name:     username,
	}
	require.NoError(t, db.Create(u).Error)

	for _, name := range roleNames {
		var role user.Role
		require.NoError(t, db.Where(user.Role{Name: name}).FirstOrCreate(&role).Error)
		require.NoError(t, db.Model(u).Association("Roles").Append(&role))
	}
	return u
}

// GrantPermission attaches a permission code to the user.
func GrantPermission(t *testing.T, db *gorm.DB, u *user.User, code string) {
	t.Helper()

	var perm user.Permission
	require.NoError(t, db.Where(user.Permission{Code: code}).FirstOrCreate(&perm).Error)
	require.NoError(t, db.Model(u).Association("Permissions").Append(&perm))
}

// TokenFor mints a bearer token for the user.
func TokenFor(t *testing.T, userID uint) string {
	t.Helper()

	jwt, err := token.GenerateJWT(userID, JWTSecret, 60)
	require.NoError(t, err)
	return jwt
}

// DoJSON performs a JSON request against the router. token may be empty for
// unauthenticated calls.
func DoJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// DecodeData unmarshals the "data" field of a standard success envelope into out.
func DecodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}
