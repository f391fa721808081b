// Package server wires the application together: configuration, storage
// files, domain services and the HTTP server, plus first-run bootstrap and
// graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/linkfolio/internal/filex"
	"github.com/dmitrijs2005/linkfolio/internal/logging"
	"github.com/dmitrijs2005/linkfolio/internal/server/auth"
	"github.com/dmitrijs2005/linkfolio/internal/server/config"
	"github.com/dmitrijs2005/linkfolio/internal/server/credentials"
	"github.com/dmitrijs2005/linkfolio/internal/server/httpapi"
	"github.com/dmitrijs2005/linkfolio/internal/server/links"
	"github.com/dmitrijs2005/linkfolio/internal/server/profile"
	"github.com/dmitrijs2005/linkfolio/internal/server/storage"
	"github.com/dmitrijs2005/linkfolio/internal/server/theme"
	"github.com/dmitrijs2005/linkfolio/internal/server/users"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	dataDir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir init error: %w", err)
	}
	if _, err := filex.EnsureDir(cfg.UploadsDir); err != nil {
		return nil, fmt.Errorf("uploads dir init error: %w", err)
	}

	hasher := &auth.BcryptHasher{Cost: cfg.BcryptCost}

	usersFile := storage.NewJSONFile(filepath.Join(dataDir, "users.json"))
	linksFile := storage.NewJSONFile(filepath.Join(dataDir, "links.json"))
	profileFile := storage.NewJSONFile(filepath.Join(dataDir, "profile.json"))
	themeFile := storage.NewJSONFile(filepath.Join(dataDir, "theme.json"))
	credFile := storage.NewJSONFile(filepath.Join(dataDir, "auth.json"))

	profileRepo := profile.NewFileRepository(profileFile)
	themeRepo := theme.NewFileRepository(themeFile)
	credRepo := credentials.NewFileRepository(credFile)

	if err := bootstrap(hasher, linksFile, profileFile, themeFile, credFile,
		profileRepo, themeRepo, credRepo); err != nil {
		return nil, fmt.Errorf("bootstrap error: %w", err)
	}

	srv := httpapi.NewServer(cfg, logger,
		users.NewService(users.NewFileRepository(usersFile), hasher, cfg),
		links.NewService(links.NewFileRepository(linksFile)),
		profile.NewService(profileRepo),
		theme.NewService(themeRepo),
		credentials.NewService(credRepo, hasher),
	)

	return &App{config: cfg, logger: logger, server: srv}, nil
}

// bootstrap materializes the default data files on first run so the page is
// usable before the owner has configured anything. Existing files are never
// touched.
func bootstrap(hasher auth.PasswordHasher,
	linksFile, profileFile, themeFile, credFile *storage.JSONFile,
	profileRepo *profile.FileRepository, themeRepo *theme.FileRepository,
	credRepo *credentials.FileRepository) error {

	ctx := context.Background()

	if exists, err := linksFile.Exists(); err != nil {
		return err
	} else if !exists {
		if err := linksFile.Store([]links.Link{}); err != nil {
			return err
		}
	}

	if exists, err := credFile.Exists(); err != nil {
		return err
	} else if !exists {
		hash, err := hasher.Hash(credentials.DefaultPassword)
		if err != nil {
			return err
		}
		err = credRepo.Write(ctx, &credentials.Credential{
			Username:     credentials.DefaultUsername,
			PasswordHash: hash,
		})
		if err != nil {
			return err
		}
	}

	if exists, err := profileFile.Exists(); err != nil {
		return err
	} else if !exists {
		p := profile.Default()
		if err := profileRepo.Write(ctx, &p); err != nil {
			return err
		}
	}

	if exists, err := themeFile.Exists(); err != nil {
		return err
	} else if !exists {
		t := theme.Default()
		if err := themeRepo.Write(ctx, &t); err != nil {
			return err
		}
	}

	return nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
