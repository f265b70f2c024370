package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/railbooking/config"
	"github.com/Domenick1991/railbooking/internal/bootstrap"
	"github.com/Domenick1991/railbooking/internal/cache"
	"github.com/Domenick1991/railbooking/internal/kafka"
	"github.com/Domenick1991/railbooking/internal/logging"
	"github.com/Domenick1991/railbooking/internal/repository"
	"github.com/Domenick1991/railbooking/internal/service/booking"
	"github.com/Domenick1991/railbooking/internal/service/trains"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "railbooking",
		Usage: "Train schedule search and booking API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yaml",
				Usage:   "path to the YAML config file",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func run(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	logging.Setup(cfg.Log)
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := repository.LoadTrainCatalog(cfg.Catalog.SeedFile)
	if err != nil {
		return err
	}
	log.Info().Int("trains", len(catalog.List())).Msg("train catalog loaded")

	var bookingRepo *repository.MemoryBookingRepository
	if cfg.Booking.SeedDemoEnabled() {
		if bookingRepo, err = repository.NewSeededBookingRepository(ctx); err != nil {
			return err
		}
	} else {
		bookingRepo = repository.NewBookingRepository()
	}

	var searchCache trains.SearchCache
	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis)
		defer redisCache.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, searches will miss the cache")
		}
		cancel()
		searchCache = redisCache
	}

	opts := []booking.BookingServiceOption{}
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()

		if err := producer.CheckConnection(ctx); err != nil {
			log.Warn().Err(err).Msg("kafka unavailable, booking events may be lost")
		}
		opts = append(opts,
			booking.WithEvents(producer, cfg.Kafka.BookingTopic),
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
			booking.WithPublishTimeout(cfg.Kafka.PublishTimeout()),
		)
	}

	trainService := trains.NewTrainService(catalog, searchCache)
	bookingService := booking.NewBookingService(bookingRepo, catalog, opts...)

	return bootstrap.Run(ctx, cfg, trainService, bookingService)
}
