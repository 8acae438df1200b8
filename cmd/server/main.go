package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"jobmatrix/docs"
	"jobmatrix/internal/auth"
	"jobmatrix/internal/cache"
	"jobmatrix/internal/config"
	"jobmatrix/internal/db"
	"jobmatrix/internal/dto"
	"jobmatrix/internal/handler"
	"jobmatrix/internal/logger"
	"jobmatrix/internal/repository"
	"jobmatrix/internal/router"
	"jobmatrix/internal/service"
	"jobmatrix/internal/storage"
)

// @title JobMatrix API
// @version 1.0
// @description Job board API with applicants, recruiters, companies and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	gormDB, err := db.Open(cfg.Database)
	if err != nil {
		return err
	}

	if cfg.ResetDB {
		zlog.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			return err
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		return err
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer cacheClient.Close()
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		zlog.Warn("redis unavailable, running without cache", zap.Error(err))
	}
	cancel()

	backend, err := storage.New(cfg.Storage)
	if err != nil {
		return err
	}
	resolver := storage.NewResolver(backend, cfg.Storage.PlaceholderURL)

	repos := repository.New(gormDB)

	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.ExpirationDays)
	if err != nil {
		return err
	}
	authn := auth.NewAuthenticator(jwtService, repos.Users)

	authService := service.NewAuthService(repos, authn, backend, cacheClient, service.NewLogNotifier(zlog), service.AuthSettings{
		AdminSecretKey: cfg.Admin.SecretKey,
		ResetTTL:       cfg.PasswordReset.TTL,
	}, zlog)
	userService := service.NewUserService(repos, backend, cacheClient, zlog)
	profileService := service.NewProfileService(repos)
	companyService := service.NewCompanyService(repos, backend, cacheClient, cfg.Cache.TTL, zlog)
	jobService := service.NewJobService(repos, cacheClient, cfg.Cache.TTL, zlog)
	applicationService := service.NewApplicationService(repos, zlog)
	bookmarkService := service.NewBookmarkService(repos)
	adminService := service.NewAdminService(repos, resolver, zlog)

	mapper := dto.NewMapper(resolver)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, zlog, authn, router.Handlers{
		Auth:        handler.NewAuthHandler(authService, mapper, zlog),
		User:        handler.NewUserHandler(userService, mapper, zlog),
		Profile:     handler.NewProfileHandler(profileService, mapper, zlog),
		Company:     handler.NewCompanyHandler(companyService, mapper, zlog),
		Job:         handler.NewJobHandler(jobService, mapper, zlog),
		Application: handler.NewApplicationHandler(applicationService, mapper, zlog),
		Bookmark:    handler.NewBookmarkHandler(bookmarkService, mapper, zlog),
		Admin:       handler.NewAdminHandler(adminService, mapper, zlog),
	})

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	zlog.Info("swagger documentation available", zap.String("url", strings.TrimSuffix(cfg.Server.BaseURL, "/")+"/swagger/index.html"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
