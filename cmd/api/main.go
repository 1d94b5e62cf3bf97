package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planner/internal/config"
	"planner/internal/handlers"
	"planner/internal/logger"
	"planner/internal/repository/postgres"
	"planner/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("config.yml")
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Logging.Development); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	storage, err := postgres.New(ctx, postgres.Config{
		ConnString:      cfg.Database.URL,
		MaxConns:        cfg.Database.MaxConnections,
		MinConns:        cfg.Database.MinConnections,
		MaxConnIdleTime: cfg.Database.IdleTimeout,
	})
	if err != nil {
		logger.Error("Startup: failed to connect to database", err)
		os.Exit(1)
	}
	defer storage.Close()

	if err := storage.Migrate(); err != nil {
		logger.Error("Startup: failed to apply migrations", err)
		os.Exit(1)
	}

	userService := service.NewUserService(storage)
	projectService := service.NewProjectService(storage)
	taskService := service.NewTaskService(storage)
	subtaskService := service.NewSubtaskService(storage)
	noteService := service.NewNoteService(storage)
	reportService := service.NewReportService(storage)

	h := handlers.Handlers{
		Users:    handlers.NewUserHandler(&userService, &projectService, &noteService),
		Projects: handlers.NewProjectHandler(&projectService),
		Tasks:    handlers.NewTaskHandler(&taskService, &subtaskService),
		Subtasks: handlers.NewSubtaskHandler(&subtaskService),
		Notes:    handlers.NewNoteHandler(&noteService),
		Reports:  handlers.NewReportHandler(&reportService),
		Health:   handlers.NewHealthHandler(storage),
	}

	server := &http.Server{
		Addr:    cfg.ServerAddr(),
		Handler: h.Routes(),
	}

	go func() {
		logger.Info("Server started", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped unexpectedly", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown: server did not stop cleanly", err)
	}
}
