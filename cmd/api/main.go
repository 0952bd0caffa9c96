package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"duedate-service/config"
	_ "duedate-service/docs" // Swagger docs
	"duedate-service/internal/httpserver"
	"duedate-service/internal/middleware"
	taskHTTP "duedate-service/internal/task/delivery/http"
	"duedate-service/internal/task/usecase"
	"duedate-service/pkg/duedate"
	"duedate-service/pkg/log"
)

// @title       Due Date Extraction API
// @description Natural-language due-date extraction for task titles.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Due Date Extraction service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Reference calendar
	firstWeekday, ok := duedate.ParseWeekday(cfg.Parser.FirstWeekday)
	if !ok {
		logger.Warnf(ctx, "Invalid first weekday %q, falling back to Monday", cfg.Parser.FirstWeekday)
		firstWeekday = time.Monday
	}
	calendar, err := duedate.NewCalendar(cfg.Parser.Timezone, firstWeekday)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Parser.Timezone, err)
		calendar, _ = duedate.NewCalendar("UTC", firstWeekday)
	}

	// 4. Task domain
	parser := duedate.NewParser(calendar)
	taskUC := usecase.New(logger, parser, cfg.Parser.CacheSize, cfg.Parser.CacheTTL)
	taskHandler := taskHTTP.New(logger, taskUC)

	mw := middleware.New(logger, cfg.RateLimit)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		TaskHandler: taskHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
