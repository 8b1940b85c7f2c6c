package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"event-portal/core/backend"
	"event-portal/core/cache"
	"event-portal/core/config"
	"event-portal/core/database"
	"event-portal/core/logger"
	"event-portal/core/middleware"
	"event-portal/core/queue"
	"event-portal/core/storage"
	"event-portal/core/utils"
	"event-portal/modules/access"
	"event-portal/modules/auth"
	"event-portal/modules/company"
	"event-portal/modules/event"
	"event-portal/modules/participation"
	"event-portal/modules/session"
	"event-portal/modules/user"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sourcegraph/conc/pool"
)

// Run starts the HTTP server and the background worker and blocks until SIGINT or SIGTERM.
func Run() error {
	if err := config.Init(); err != nil {
		return err
	}
	cfg := config.Get()
	logger.SetLevel(cfg.Server.LogLevel)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	redisCache, err := cache.NewRedisCache(cfg.Redis.URL)
	if err != nil {
		return err
	}
	defer redisCache.Close()

	api, err := backend.NewClient(cfg.Backend)
	if err != nil {
		return err
	}

	// left as a nil interface when uploads are disabled
	var uploader storage.Uploader
	if cfg.Storage.Enabled {
		s3Storage, err := storage.NewS3Storage(cfg.Storage)
		if err != nil {
			return err
		}
		uploader = s3Storage
	} else {
		logger.Info("Server:Run:StorageDisabled")
	}

	queueClient, err := queue.NewAsynqClient(cfg.Redis.URL, cfg.Queue)
	if err != nil {
		return err
	}
	defer queueClient.Close()

	worker, err := queue.NewAsynqServer(cfg.Redis.URL, cfg.Queue)
	if err != nil {
		return err
	}

	e := newEcho(cfg)
	sessions := session.GetService(db, redisCache, cfg.Session)
	if err := session.RegisterTasks(worker, sessions); err != nil {
		return err
	}
	mw := middleware.NewMiddleware(sessions, cfg.Session)

	guard := access.Init(e, mw)
	pages := e.Group("", mw.SessionMiddleware(), guard)

	companies := company.Init(e, pages, mw, api, api, sessions, queueClient, worker)
	event.Init(e, pages, mw, api, sessions, companies, uploader, queueClient, worker, cfg.Backend.ServiceToken)
	participation.Init(e, pages, api, mw)
	user.Init(e, mw, api, sessions, companies)
	auth.Init(e, pages, mw, api, api, sessions)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		logger.Info("Server:Run:Listening", "addr", addr, "backend", cfg.Backend.BaseURL)
		if err := e.Start(addr); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		return worker.Run(ctx)
	})
	p.Go(func(ctx context.Context) error {
		<-ctx.Done()
		logger.Info("Server:Run:ShuttingDown")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return stderrors.Join(e.Shutdown(shutdownCtx), worker.Stop(shutdownCtx))
	})
	return p.Wait()
}

func newEcho(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger = logger.Echo()

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: utils.GenerateRequestID}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	return e
}
