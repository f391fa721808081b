// Package httpapi exposes the stores over HTTP: the public page endpoints,
// the admin mutation surface behind the session-token gate, and static file
// serving for the site itself.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/linkfolio/internal/logging"
	"github.com/dmitrijs2005/linkfolio/internal/server/config"
	"github.com/dmitrijs2005/linkfolio/internal/server/credentials"
	"github.com/dmitrijs2005/linkfolio/internal/server/links"
	"github.com/dmitrijs2005/linkfolio/internal/server/profile"
	"github.com/dmitrijs2005/linkfolio/internal/server/theme"
	"github.com/dmitrijs2005/linkfolio/internal/server/users"
)

type Server struct {
	address       string
	logger        logging.Logger
	users         *users.Service
	links         *links.Service
	profile       *profile.Service
	theme         *theme.Service
	creds         *credentials.Service
	jwtSecret     []byte
	tokenValidity time.Duration
	publicDir     string
	uploadsDir    string
}

func NewServer(cfg *config.Config, l logging.Logger,
	us *users.Service, ls *links.Service, ps *profile.Service,
	ts *theme.Service, cs *credentials.Service) *Server {
	return &Server{
		address:       cfg.EndpointAddr,
		logger:        l.With("module", "http_server"),
		users:         us,
		links:         ls,
		profile:       ps,
		theme:         ts,
		creds:         cs,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		publicDir:     cfg.PublicDir,
		uploadsDir:    cfg.UploadsDir,
	}
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)

	// admin credential
	mux.HandleFunc("POST /api/auth/login", s.handleAdminLogin)
	mux.HandleFunc("PUT /api/auth/password", s.handleChangePassword)

	// user collection
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/user-login", s.handleUserLogin)
	mux.HandleFunc("POST /api/auth/logout", s.handleLogout)
	mux.HandleFunc("GET /api/auth/me", s.requireAuth(s.handleMe))

	// links
	mux.HandleFunc("GET /api/links", s.handleListLinks)
	mux.HandleFunc("POST /api/links", s.requireAuth(s.handleCreateLink))
	mux.HandleFunc("PUT /api/links/{id}", s.requireAuth(s.handleUpdateLink))
	mux.HandleFunc("DELETE /api/links/{id}", s.requireAuth(s.handleDeleteLink))
	mux.HandleFunc("POST /api/links/reorder", s.requireAuth(s.handleReorderLinks))

	// profile
	mux.HandleFunc("GET /api/profile", s.handleGetProfile)
	mux.HandleFunc("PUT /api/profile", s.requireAuth(s.handleUpdateProfile))
	mux.HandleFunc("POST /api/profile/image", s.requireAuth(s.handleUploadImage))
	mux.HandleFunc("GET /api/profile/{username}", s.handlePublicProfile)

	// theme
	mux.HandleFunc("GET /api/theme", s.handleGetTheme)
	mux.HandleFunc("PUT /api/theme", s.requireAuth(s.handleUpdateTheme))

	// static site
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(s.uploadsDir))))
	mux.HandleFunc("GET /", s.handleStatic)

	return s.loggingMiddleware(mux)
}

// Handler exposes the routed handler chain, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.routes()
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleStatic serves the single-page site: real files as-is, /admin as the
// admin page, everything else falls through to index.html.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/admin" {
		http.ServeFile(w, r, filepath.Join(s.publicDir, "admin.html"))
		return
	}

	path := filepath.Join(s.publicDir, filepath.Clean("/"+r.URL.Path))
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}

	http.ServeFile(w, r, filepath.Join(s.publicDir, "index.html"))
}
