package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eshift/cmd"
	httpin "eshift/internal/adapters/in/http"
	"eshift/internal/adapters/out/rabbitmq"
	"eshift/internal/core/ports"

	"github.com/labstack/gommon/log"
)

type eventPublisher interface {
	ports.EventPublisher
	Close() error
}

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	level, _ := configs.Log.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := cmd.OpenDatabase(ctx, configs.Database, logger)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	publisher := newPublisher(configs.RabbitMQ, logger)
	defer func() {
		if closeErr := publisher.Close(); closeErr != nil {
			logger.Error("closing event publisher", "error", closeErr)
		}
	}()

	app := cmd.NewCompositionRoot(configs, db, publisher, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err = startWebServer(ctx, &app, configs, logger); err != nil {
		logger.Error("web server stopped", "error", err)
	}
}

func newPublisher(cfg cmd.RabbitMQConfig, logger *slog.Logger) eventPublisher {
	if cfg.URL == "" {
		logger.Info("rabbitmq url not set, domain events are not published")
		return rabbitmq.NopPublisher{}
	}

	p, err := rabbitmq.Dial(cfg.URL, cfg.Exchange, logger)
	if err != nil {
		log.Fatalf("Error connecting to rabbitmq: %v", err)
	}
	return p
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) error {
	auth, err := httpin.NewAuthenticator(configs.Auth.JWTSecret, configs.Auth.Issuer)
	if err != nil {
		return err
	}
	doc, err := httpin.LoadAPIDocument(ctx)
	if err != nil {
		return err
	}

	server := httpin.NewServer(app.CreateHTTPHandlers(), logger)
	e := httpin.NewRouter(server, auth, doc)
	e.Logger.SetLevel(log.INFO)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
			e.Logger.Error(shutdownErr)
		}
	}()

	logger.Info("http server listening", "port", configs.HTTP.Port, "api_version", doc.Version())
	if err = e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTP.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
