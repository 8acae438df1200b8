package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"jobmatrix/internal/auth"
	"jobmatrix/internal/cache"
	"jobmatrix/internal/config"
	"jobmatrix/internal/db"
	apperrors "jobmatrix/internal/errors"
	"jobmatrix/internal/logger"
	"jobmatrix/internal/model"
	"jobmatrix/internal/repository"
	"jobmatrix/internal/service"
	"jobmatrix/internal/storage"
)

// seed creates the first admin account through the regular registration
// path so the admin secret and SSN rules still apply.
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	email := flag.String("email", os.Getenv("SEED_ADMIN_EMAIL"), "admin email")
	password := flag.String("password", os.Getenv("SEED_ADMIN_PASSWORD"), "admin password")
	firstName := flag.String("first-name", "Site", "admin first name")
	lastName := flag.String("last-name", "Admin", "admin last name")
	ssn := flag.String("ssn", os.Getenv("SEED_ADMIN_SSN"), "admin SSN")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zlog, err := logger.New(cfg.Log.Level, "console")
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	gormDB, err := db.Open(cfg.Database)
	if err != nil {
		zlog.Fatal("connect database", zap.Error(err))
	}
	if err := db.Migrate(gormDB); err != nil {
		zlog.Fatal("migrate", zap.Error(err))
	}
	zlog.Info("database ready")

	backend, err := storage.New(cfg.Storage)
	if err != nil {
		zlog.Fatal("storage", zap.Error(err))
	}
	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer cacheClient.Close()

	repos := repository.New(gormDB)
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.ExpirationDays)
	if err != nil {
		zlog.Fatal("jwt", zap.Error(err))
	}
	authService := service.NewAuthService(
		repos,
		auth.NewAuthenticator(jwtService, repos.Users),
		backend,
		cacheClient,
		service.NewLogNotifier(zlog),
		service.AuthSettings{AdminSecretKey: cfg.Admin.SecretKey, ResetTTL: cfg.PasswordReset.TTL},
		zlog,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user, err := authService.Register(ctx, service.RegisterInput{
		FirstName:      *firstName,
		LastName:       *lastName,
		Email:          *email,
		Password:       *password,
		Role:           model.RoleAdmin,
		AdminSecretKey: cfg.Admin.SecretKey,
		AdminSSN:       *ssn,
	})
	switch {
	case errors.Is(err, apperrors.ErrEmailTaken):
		zlog.Info("admin already exists", zap.String("email", *email))
		return
	case err != nil:
		zlog.Fatal("seed admin", zap.Error(err))
	}
	zlog.Info("admin created", zap.Uint("user_id", user.ID), zap.String("email", user.Email))
}
