package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mueed25/new-nahcon/internal/config"
	"github.com/mueed25/new-nahcon/internal/database"
	httpapi "github.com/mueed25/new-nahcon/internal/http"
	"github.com/mueed25/new-nahcon/internal/logger"
	"github.com/mueed25/new-nahcon/internal/repository"
	"github.com/mueed25/new-nahcon/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "new-nahcon")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// The store is externally owned; if it is unreachable at startup the
	// API still comes up with an empty in-memory directory and the health
	// endpoint reports disconnected.
	var repo repository.ContactsRepo
	var db *sql.DB
	if d, err := database.NewPostgresDB(&cfg.Database); err == nil {
		db = d
		repo = repository.NewPostgresContactsRepository(db)
		log.Info("Connected to contact store",
			zap.String("host", cfg.Database.Host),
			zap.String("database", cfg.Database.Database),
		)
	} else {
		log.Warn("Store connection failed, serving empty in-memory directory", zap.Error(err))
		mem := repository.NewMemoryContactsRepository()
		mem.SetPingError(err)
		repo = mem
	}

	contacts := service.NewContactService(repo, log)

	router := httpapi.NewRouter(log)
	router.RegisterContactRoutes(httpapi.NewContactHandler(contacts, cfg.Env, log))
	router.RegisterHealthRoutes(httpapi.NewHealthHandler(contacts, log))

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
	case err := <-errCh:
		log.Error("HTTP server stopped", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	if db != nil {
		_ = db.Close()
	}
}
