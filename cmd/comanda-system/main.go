package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"comanda-system/internal/common/httpx"
	"comanda-system/internal/common/logger"
	"comanda-system/internal/config"
	"comanda-system/internal/connections/database"
	"comanda-system/internal/connections/rabbitmq"
	"comanda-system/internal/menu"
	"comanda-system/internal/notify"
	"comanda-system/internal/orders/handlers"
	"comanda-system/internal/orders/repository"
	"comanda-system/internal/orders/service"
)

func main() {
	mode := flag.String("mode", "", "api | notification-subscriber")
	port := flag.Int("port", 0, "api: http port (overrides HTTP_PORT)")
	flag.Parse()

	lg := logger.New("bootstrap")
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		lg.Error("config_load_failed", err, nil)
		os.Exit(1)
	}

	switch *mode {
	case "api":
		if *port == 0 {
			*port = cfg.HTTP.Port
		}
		lg.Info("service_started", map[string]any{"service": "api", "port": *port})
		if err := runAPI(ctx, cfg, *port); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "notification-subscriber":
		lg.Info("service_started", map[string]any{"service": "notification-subscriber"})
		if err := runSubscriber(ctx, cfg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "--mode is required: api | notification-subscriber")
		os.Exit(2)
	}
}

func runAPI(ctx context.Context, cfg *config.Config, port int) error {
	lg := logger.New("api")

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	rmq, err := rabbitmq.Dial(cfg.RabbitMQ)
	if err != nil {
		return err
	}
	defer rmq.Close()
	if err := notify.Declare(rmq.Channel()); err != nil {
		return err
	}

	menuSvc := menu.NewService(menu.NewRepository(db), notify.NewPublisher(rmq), lg)
	ordersSvc := service.NewOrdersService(repository.NewOrdersRepository(db), notify.NewPublisher(rmq), lg)

	if err := menuSvc.SeedIfEmpty(ctx); err != nil {
		return err
	}

	hub := notify.NewHub(lg)
	go hub.Run(ctx)

	bridge, err := rabbitmq.Dial(cfg.RabbitMQ)
	if err != nil {
		return err
	}
	defer bridge.Close()
	go func() {
		if err := notify.BridgeToHub(ctx, bridge, hub, lg); err != nil {
			lg.Error("bridge_stopped", err, nil)
		}
	}()

	h := handlers.New(ordersSvc, menuSvc)
	srv := httpx.New(":"+strconv.Itoa(port), handlers.Router(h, hub.HandleWebSocket))
	return srv.Run(ctx)
}

func runSubscriber(ctx context.Context, cfg *config.Config) error {
	lg := logger.New("notification-subscriber")

	rmq, err := rabbitmq.Dial(cfg.RabbitMQ)
	if err != nil {
		return err
	}
	defer rmq.Close()

	return notify.RunLogger(ctx, rmq, lg)
}
