package api

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nikmy/multitx/internal/orders"
	"github.com/nikmy/multitx/pkg/coordinator"
	"github.com/nikmy/multitx/pkg/errors"
	"github.com/nikmy/multitx/pkg/logger"
)

func NewServer(cfg Config, log logger.Logger, svc ordersService, metrics prometheus.Gatherer) *server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: len(cfg.Proxy.Trusted) > 0,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
		RequestMethods:          []string{fiber.MethodHead, fiber.MethodGet, fiber.MethodPost},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		serveLog.Warn(errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).JSON(errorBody("internal error"))
	}

	s := &server{
		svc:  svc,
		http: fiber.New(fiberCfg),
		addr: cfg.HTTP.Addr,
		log:  serveLog,
	}

	s.setupRoutes(metrics)

	return s
}

type server struct {
	svc  ordersService
	http *fiber.App
	addr string
	log  logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return errors.WrapFail(err, "listen")
	case <-ctx.Done():
		return nil
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return errors.WrapFail(s.http.ShutdownWithContext(ctx), "shutdown http server")
}

func (s *server) setupRoutes(metrics prometheus.Gatherer) {
	s.http.Post("/orders", s.handlePlace)
	s.http.Get("/orders/:id", s.handleGet)

	if metrics != nil {
		s.http.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics, promhttp.HandlerOpts{})))
	}
}

func (s *server) handlePlace(c *fiber.Ctx) error {
	var o orders.Order
	err := c.BodyParser(&o)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal order payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	receipt, err := s.svc.Place(c.UserContext(), o)

	var ce *coordinator.CommitError
	switch {
	case err == nil:
		return c.Status(http.StatusCreated).JSON(receipt)
	case errors.Is(err, orders.ErrInvalidOrder):
		return s.sendError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, orders.ErrInsufficientInventory):
		return s.sendError(c, http.StatusConflict, "insufficient inventory")
	case errors.Is(err, coordinator.ErrTimeout):
		return s.sendError(c, http.StatusGatewayTimeout, "transaction timeout")
	case errors.As(err, &ce) && ce.RequiresIntervention():
		s.log.Error(err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"status":    "ERROR",
			"message":   "order partially committed",
			"committed": ce.Succeeded,
			"failed":    ce.Failed,
		})
	default:
		return errors.WrapFail(err, "place order")
	}
}

func (s *server) handleGet(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return s.sendError(c, http.StatusBadRequest, "missing required parameter \"id\"")
	}

	o, err := s.svc.Get(c.UserContext(), id)
	if err != nil {
		return errors.WrapFail(err, "get order")
	}
	if o == nil {
		return s.sendError(c, http.StatusNotFound, "order not found")
	}

	return c.Status(http.StatusOK).JSON(o)
}

func (s *server) sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(errorBody(msg))
}

func errorBody(msg string) fiber.Map {
	return fiber.Map{"status": "ERROR", "message": msg}
}
