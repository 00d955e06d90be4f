package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/dbgeneral/construction-api/internal/config"
	"github.com/dbgeneral/construction-api/internal/database"
	"github.com/dbgeneral/construction-api/internal/handler"
	"github.com/dbgeneral/construction-api/internal/repository"
	"github.com/dbgeneral/construction-api/internal/router"
	"github.com/dbgeneral/construction-api/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("database migrate failed: %v", err)
	}

	files, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload dir init failed: %v", err)
	}

	// Nil client disables the login rate limiter.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, login rate limiting disabled")
	}

	users := repository.NewAdminUserRepo(db, cfg.BcryptCost)
	h := router.Handlers{
		Auth:     handler.NewAuthHandler(cfg, users),
		Projects: handler.NewProjectHandler(cfg.Env, repository.NewProjectRepo(db)),
		Services: handler.NewServiceHandler(cfg.Env, repository.NewServiceRepo(db)),
		Company:  handler.NewCompanyHandler(cfg.Env, repository.NewCompanyRepo(db)),
		Inquiry:  handler.NewInquiryHandler(cfg.Env, repository.NewInquiryRepo(db)),
		Media:    handler.NewMediaHandler(cfg.Env, cfg.MaxUploadSize, repository.NewMediaRepo(db), files),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	router.Register(e, cfg, config.LoadRateLimitConfig(), rdb, h)

	addr := ":" + cfg.Port
	go func() {
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Printf("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}
}
