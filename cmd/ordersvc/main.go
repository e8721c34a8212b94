package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/nikmy/multitx/internal/api"
	"github.com/nikmy/multitx/internal/orders"
	"github.com/nikmy/multitx/internal/pubsub"
	"github.com/nikmy/multitx/pkg/coordinator"
	"github.com/nikmy/multitx/pkg/errors"
	"github.com/nikmy/multitx/pkg/logger"
	"github.com/nikmy/multitx/pkg/txn/mongotxn"
)

const defaultShutdownTimeout = 10 * time.Second

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	ordersDB, err := mongotxn.Connect(ctx, cfg.Connections.Orders)
	if err != nil {
		log.Panic(errors.WrapFail(err, "connect to orders db"))
	}

	inventoryDB, err := mongotxn.Connect(ctx, cfg.Connections.Inventory)
	if err != nil {
		log.Panic(errors.WrapFail(err, "connect to inventory db"))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	coord, err := coordinator.New(log, cfg.Coordinator, coordinator.WithMetrics(coordinator.NewMetrics(reg)))
	if err != nil {
		log.Panic(errors.WrapFail(err, "init coordinator"))
	}

	// registration order is commit order
	err = coord.AddConnection(orders.ConnOrders, ordersDB)
	if err == nil {
		err = coord.AddConnection(orders.ConnInventory, inventoryDB)
	}
	if err != nil {
		log.Panic(errors.WrapFail(err, "register connections"))
	}

	stock, err := orders.NewMongoInventory(ctx, inventoryDB.Database(), cfg.Collections.Inventory)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init inventory repo"))
	}

	events := pubsub.NewNoop()
	if cfg.Events.Enabled() {
		events = pubsub.NewKafkaProducer(cfg.Events, log)
	}

	svc := orders.NewService(
		log,
		coord,
		orders.NewMongoOrders(ordersDB.Database(), cfg.Collections.Orders),
		stock,
		events,
		orders.Topics{Placed: cfg.Events.Topics.Placed, Reconcile: cfg.Events.Topics.Reconcile},
	)

	var srv api.Server = api.NewServer(cfg.API, log, svc, reg)

	log.Infof("Serving on %s", cfg.API.HTTP.Addr)
	err = srv.Serve(ctx)
	if err != nil {
		log.Error(err)
	}

	stdlog.Println("Graceful shutdown...")

	timeout := cfg.API.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	shutdownCtx, done := context.WithTimeout(context.Background(), timeout)
	defer done()

	log.Error(srv.Shutdown(shutdownCtx))
	log.Error(events.Close())
	log.Error(ordersDB.Close(shutdownCtx))
	log.Error(inventoryDB.Close(shutdownCtx))

	stdlog.Println("Shutdown complete")
}
