package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"networth/src/api"
	"networth/src/config"
	"networth/src/scheduler"
	"networth/src/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Optional .env for local overrides
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./settings")
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}
	errC, err := run(cfg)
	if err != nil {
		log.Println(err, "Couldn't run")
		return
	}

	if err := <-errC; err != nil {
		log.Println(err, "Error while running")
	}
}

func run(cfg *config.Config) (<-chan error, error) {
	errC := make(chan error, 1)

	logLevel, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger := utils.NewLogger(logLevel, cfg.Log.ToFile, cfg.Log.File)

	server, err := api.NewServer(cfg, logger)
	if err != nil {
		return nil, err
	}

	port := cfg.Service.Port
	if port == "" {
		port = "8000"
	}
	httpServer := api.NewHTTPServer(server, port)

	// Optional server-side refresh; without a cron spec the UI's polling
	// is the only refresh trigger
	if cfg.Refresh.Cron != "" {
		_, err := scheduler.NewScheduledTask(cfg.Refresh.Cron, func() {
			ctx, cancel := context.WithTimeout(utils.WithLogger(context.Background(), logger), 60*time.Second)
			defer cancel()
			result, err := server.Refresh.RefreshAll(ctx)
			if err != nil {
				logger.WithError(err).Error("scheduled price refresh failed")
				return
			}
			logger.WithField("updated", result.Updated).WithField("failed", result.Failed).Info("scheduled price refresh done")
		})
		if err != nil {
			return nil, err
		}
	}

	go func() {
		logger.Info("Starting server on port ", port)

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("An error raised while setting up server: ", err)
			errC <- err
		}
	}()
	return errC, nil
}
