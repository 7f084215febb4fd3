package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wb-go/wbf/zlog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"techfest/internal/api/api"
	"techfest/internal/config"
	rabbitReader "techfest/internal/consumerWorker"
	"techfest/internal/rabbit"
	"techfest/internal/repo"
	"techfest/internal/service"
)

func main() {
	zlog.Init()
	log := zlog.Logger

	cfg := config.Load()

	connectCtx, connectCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer connectCancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		log.Fatal().Msgf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		log.Fatal().Msgf("MongoDB ping failed: %v", err)
	}
	log.Info().Msg("MongoDB connected successfully")
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Msgf("error disconnecting from MongoDB: %v", err)
		}
	}()

	repository, err := repo.NewRepository(client.Database(cfg.MongoDB), &log)
	if err != nil {
		log.Fatal().Msgf("failed to initialize repository: %v", err)
	}
	if err := repository.EnsureIndexes(connectCtx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	var rmq *rabbit.Client
	var reader *rabbitReader.Reader
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	if cfg.RabbitURL != "" {
		rmq, err = rabbit.NewRabbit(cfg.RabbitURL, cfg.RabbitExchange, cfg.RabbitQueue)
		if err != nil {
			log.Fatal().Msgf("failed to connect to RabbitMQ: %v", err)
		}
		defer rmq.Close()

		reader = rabbitReader.NewReader(rmq, cfg)
		reader.Start(workerCtx)
	} else {
		log.Warn().Msg("RABBIT_URL not set, registration notifications disabled")
	}

	serviceInstance := service.NewService(repository, &log, rmq)
	app := api.NewRouters(&api.Routers{
		Service:        serviceInstance,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	serverErrChan := make(chan error, 1)
	go func() {
		log.Info().Msgf("Starting server on %s", cfg.Port)
		if err := app.Run(":" + cfg.Port); err != nil {
			serverErrChan <- fmt.Errorf("failed to start server: %w", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-signalChan:
		log.Info().Msgf("Received signal %s. Initiating shutdown...", sig)
	case err := <-serverErrChan:
		log.Error().Msgf("Server error: %v", err)
	}

	cancelWorkers()
	if reader != nil {
		reader.Stop()
	}

	log.Info().Msg("Shutdown complete")
}
