package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/linkfolio/internal/logging"
	"github.com/dmitrijs2005/linkfolio/internal/server/auth"
	"github.com/dmitrijs2005/linkfolio/internal/server/config"
	"github.com/dmitrijs2005/linkfolio/internal/server/credentials"
	"github.com/dmitrijs2005/linkfolio/internal/server/links"
	"github.com/dmitrijs2005/linkfolio/internal/server/profile"
	"github.com/dmitrijs2005/linkfolio/internal/server/storage"
	"github.com/dmitrijs2005/linkfolio/internal/server/theme"
	"github.com/dmitrijs2005/linkfolio/internal/server/users"
	"github.com/stretchr/testify/require"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "admin123"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	dataDir := t.TempDir()
	publicDir := t.TempDir()
	uploadsDir := t.TempDir()

	cfg := &config.Config{
		EndpointAddr:          ":0",
		DataDir:               dataDir,
		PublicDir:             publicDir,
		UploadsDir:            uploadsDir,
		SecretKey:             "test-secret",
		TokenValidityDuration: time.Hour,
		BcryptCost:            4,
	}

	hasher := &auth.BcryptHasher{Cost: cfg.BcryptCost}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	userRepo := users.NewFileRepository(storage.NewJSONFile(filepath.Join(dataDir, "users.json")))
	linkRepo := links.NewFileRepository(storage.NewJSONFile(filepath.Join(dataDir, "links.json")))
	profileRepo := profile.NewFileRepository(storage.NewJSONFile(filepath.Join(dataDir, "profile.json")))
	themeRepo := theme.NewFileRepository(storage.NewJSONFile(filepath.Join(dataDir, "theme.json")))
	credRepo := credentials.NewFileRepository(storage.NewJSONFile(filepath.Join(dataDir, "auth.json")))

	hash, err := hasher.Hash(testAdminPassword)
	require.NoError(t, err)
	require.NoError(t, credRepo.Write(context.Background(), &credentials.Credential{
		Username:     testAdminUser,
		PasswordHash: hash,
	}))

	return NewServer(cfg, logger,
		users.NewService(userRepo, hasher, cfg),
		links.NewService(linkRepo),
		profile.NewService(profileRepo),
		theme.NewService(themeRepo),
		credentials.NewService(credRepo, hasher),
	)
}

// doJSON performs a request with an optional JSON body and optional session
// cookie, returning the recorder.
func doJSON(t *testing.T, h http.Handler, method, target, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// loginAdmin authenticates with the seeded admin credential and returns the
// session cookie.
func loginAdmin(t *testing.T, h http.Handler) *http.Cookie {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/api/auth/login",
		`{"username":"admin","password":"admin123"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestHealth(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := doJSON(t, h, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAdminLogin(t *testing.T) {
	h := newTestServer(t).Handler()

	t.Run("valid credentials set a session cookie", func(t *testing.T) {
		cookie := loginAdmin(t, h)
		require.NotEmpty(t, cookie.Value)
		require.True(t, cookie.HttpOnly)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/auth/login",
			`{"username":"admin","password":"nope"}`, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown username is rejected", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/auth/login",
			`{"username":"root","password":"admin123"}`, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestChangePassword(t *testing.T) {
	h := newTestServer(t).Handler()

	t.Run("wrong current password is rejected", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPut, "/api/auth/password",
			`{"currentPassword":"nope","newPassword":"newpass123"}`, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rotation takes effect immediately", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPut, "/api/auth/password",
			`{"currentPassword":"admin123","newPassword":"newpass123"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, h, http.MethodPost, "/api/auth/login",
			`{"username":"admin","password":"admin123"}`, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = doJSON(t, h, http.MethodPost, "/api/auth/login",
			`{"username":"admin","password":"newpass123"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
