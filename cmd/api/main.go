package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/eventify/eventify-go/internal/client"
	"github.com/eventify/eventify-go/internal/config"
	"github.com/eventify/eventify-go/internal/handler"
	"github.com/eventify/eventify-go/internal/repository"
	"github.com/eventify/eventify-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.RunMigrations(db); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)

	cepClient := client.NewCEPClient(cfg.CepBaseURL, cfg.ExternalTimeout)
	weatherClient := client.NewWeatherClient(cfg.WeatherBaseURL, cfg.ExternalTimeout)

	userService := service.NewUserService(userRepo, eventRepo)
	eventService := service.NewEventService(eventRepo, userService, cepClient)
	participationService := service.NewParticipationService(eventRepo, userService)
	forecastService := service.NewForecastService(cepClient, weatherClient)

	userHandler := handler.NewUserHandler(userService)
	eventHandler := handler.NewEventHandler(eventService, participationService, forecastService)

	r := handler.NewRouter(userHandler, eventHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
