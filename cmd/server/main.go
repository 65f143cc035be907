package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"violation-tracker/internal/config"
	"violation-tracker/internal/database"
	"violation-tracker/internal/logger"
	"violation-tracker/internal/qrcode"
	"violation-tracker/internal/server"
	"violation-tracker/internal/services"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	gin.SetMode(cfg.GinMode)

	db, err := database.Open(cfg, zlog)
	if err != nil {
		zlog.Fatalw("database init failed", "err", err)
	}

	users := database.NewUserRepository(db)
	violations := database.NewViolationRepository(db)
	audit := database.NewAuditRepository(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.SeedOfficer(ctx, users, cfg.AdminUsername, cfg.AdminPassword, zlog); err != nil {
		zlog.Fatalw("seed officer failed", "err", err)
	}

	issuer := qrcode.NewIssuer(cfg.PublicBaseURL, cfg.StaticDir, cfg.QRSize)

	r, err := server.NewRouter(server.Deps{
		Config:     cfg,
		Users:      users,
		Auth:       services.NewAuthService(users, zlog),
		Violations: services.NewViolationService(violations, audit, issuer, zlog),
		Log:        zlog,
	})
	if err != nil {
		zlog.Fatalw("router init failed", "err", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Infow("starting server", "addr", srv.Addr, "public_base_url", cfg.PublicBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatalw("server error", "err", err)
		}
	}()

	<-ctx.Done()
	zlog.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Errorw("graceful shutdown failed", "err", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
