package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gofiber/fiber/v3"

	"member-profile/internal/app"
	"member-profile/internal/config"
	"member-profile/internal/infrastructure/cache"
	"member-profile/internal/infrastructure/jobs"
	"member-profile/internal/usecase"
	"member-profile/internal/ws"
)

// The notifier tails the job stream and fans events out to websocket
// subscribers. It runs beside the API server so slow websocket peers never
// sit on the import path.
func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	defer func() {
		_ = redisCache.Close()
	}()
	if redisCache.Client() == nil {
		log.Fatalf("notifier requires Redis | host=%s port=%s", cfg.Redis.Host, cfg.Redis.Port)
	}

	hub := ws.NewHub(logger)
	go hub.Run()

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()

	consumer := jobs.NewConsumer(redisCache.Client(), cfg.Redis.JobStream, logger)
	go func() {
		err := consumer.Run(consumerCtx, func(ctx context.Context, evt jobs.Event) {
			dispatch(hub, logger, evt)
		})
		if err != nil && consumerCtx.Err() == nil {
			logger.Printf("[Notifier] consumer stopped | err=%v", err)
		}
	}()

	fiberApp := fiber.New(fiber.Config{AppName: cfg.App.AppName + " notifier"})
	wsHandler := ws.NewHandler(hub, logger)
	fiberApp.Get("/ws/notifications", wsHandler.HandleNotificationsWS)

	addr, err := app.ListenAddr(cfg.App.WSPort)
	if err != nil {
		log.Fatalf("invalid WS port: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- fiberApp.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("notifier error: %v", err)
		}
	case <-sigCh:
		stopConsumer()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := fiberApp.ShutdownWithContext(ctx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}

func dispatch(hub *ws.Hub, logger *log.Logger, evt jobs.Event) {
	switch evt.Name {
	case usecase.EventWorkExperienceAdded:
		var payload struct {
			StudentID        string `json:"studentId"`
			WorkExperienceID string `json:"workExperienceId"`
		}
		if err := json.Unmarshal(evt.Payload, &payload); err != nil {
			logger.Printf("[Notifier] malformed %s payload | err=%v", evt.Name, err)
			return
		}
		hub.NotifyWorkExperienceAdded(payload.StudentID, payload.WorkExperienceID)
	default:
		logger.Printf("[Notifier] ignoring event | name=%s", evt.Name)
	}
}
