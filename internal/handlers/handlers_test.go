package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/logitrack/internal/config"
	"github.com/example/logitrack/internal/database"
	"github.com/example/logitrack/internal/models"
	"github.com/example/logitrack/internal/routes"
	"github.com/example/logitrack/internal/storage"
	"github.com/example/logitrack/internal/utils"
)

type testEnv struct {
	app   *fiber.App
	store *storage.Store
	cfg   *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:      "test-secret",
		TokenExpires:   time.Hour,
		TrackingPrefix: "LTP",
		CookieName:     "logitrack_session",
	}

	store := storage.New(db, nil)
	app := fiber.New()
	routes.Register(app, store, cfg)

	return &testEnv{app: app, store: store, cfg: cfg}
}

// newAccount seeds a user with the given role and returns it with a session token.
func (e *testEnv) newAccount(t *testing.T, name, email, role string) (*models.User, string) {
	t.Helper()

	user := &models.User{
		OpenID:       "local:" + email,
		Name:         name,
		Email:        email,
		LoginMethod:  "password",
		Role:         role,
		LastSignedIn: time.Now(),
	}
	require.NoError(t, e.store.CreateUser(t.Context(), user))

	token, err := utils.GenerateToken(e.cfg.JWTSecret, user.ID, e.cfg.TokenExpires)
	require.NoError(t, err)
	return user, token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, resp *http.Response, out interface{}) envelope {
	t.Helper()

	defer resp.Body.Close()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}
