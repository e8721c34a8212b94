package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nikmy/multitx/pkg/coordinator"
	"github.com/nikmy/multitx/pkg/errors"
	"github.com/nikmy/multitx/pkg/logger"
)

type ordersRepo interface {
	Insert(ctx context.Context, o Order) error
	Get(ctx context.Context, id string) (*Order, error)
}

type eventBus interface {
	Broadcast(ctx context.Context, topics []string, key string, data any) error
}

type stockRepo interface {
	// Reserve takes qty items of sku if at least qty are left.
	Reserve(ctx context.Context, sku string, qty int) (bool, error)
}

func NewService(
	log logger.Logger,
	c *coordinator.Coordinator,
	orders ordersRepo,
	stock stockRepo,
	events eventBus,
	topics Topics,
) *Service {
	return &Service{
		log:    log.With("orders"),
		coord:  c,
		orders: orders,
		stock:  stock,
		events: events,
		topics: topics,
	}
}

type Service struct {
	log    logger.Logger
	coord  *coordinator.Coordinator
	orders ordersRepo
	stock  stockRepo
	events eventBus
	topics Topics
}

// Place stores the order and reserves its stock as one cross-database transaction.
func (s *Service) Place(ctx context.Context, o Order) (Receipt, error) {
	err := o.validate()
	if err != nil {
		return Receipt{}, err
	}

	// the id is fixed before the first attempt, so retries insert the same document
	o.ID = uuid.NewString()
	o.PlacedAt = time.Now().UTC()

	res := coordinator.Execute(ctx, s.coord, func(ctx context.Context, c *coordinator.Coordinator) (string, error) {
		inventory, err := c.Session(ConnInventory)
		if err != nil {
			return "", err
		}

		reserved, err := s.stock.Reserve(inventory.BindContext(ctx), o.SKU, o.Quantity)
		if err != nil {
			return "", errors.WrapFail(err, "reserve stock")
		}
		if !reserved {
			return "", ErrInsufficientInventory
		}

		orders, err := c.Session(ConnOrders)
		if err != nil {
			return "", err
		}

		err = s.orders.Insert(orders.BindContext(ctx), o)
		if err != nil {
			return "", errors.WrapFail(err, "insert order")
		}

		return o.ID, nil
	})

	if !res.Success {
		if ce, ok := res.CommitFailure(); ok && ce.RequiresIntervention() {
			s.log.Errorf("order %s of %q needs reconciliation: %s", o.ID, o.Customer, res.Err)
			s.publish(ctx, s.topics.Reconcile, o.ID, ReconcileEvent{
				OrderID:   o.ID,
				Committed: ce.Succeeded,
				Failed:    ce.Failed,
				Cause:     res.Err.Error(),
			})
		}
		return Receipt{Attempts: res.Attempts}, errors.WrapFailf(res.Err, "place order of %d %q", o.Quantity, o.SKU)
	}

	s.log.Infof("order %s placed after %d attempt(s)", res.Data, res.Attempts)
	s.publish(ctx, s.topics.Placed, o.ID, PlacedEvent{
		OrderID:  o.ID,
		Customer: o.Customer,
		SKU:      o.SKU,
		Quantity: o.Quantity,
		Attempts: res.Attempts,
	})

	return Receipt{OrderID: res.Data, Attempts: res.Attempts}, nil
}

// publish never fails the order: it is already committed.
func (s *Service) publish(ctx context.Context, topic, key string, event any) {
	if s.events == nil || topic == "" {
		return
	}

	err := s.events.Broadcast(context.WithoutCancel(ctx), []string{topic}, key, event)
	if err != nil {
		s.log.Warn(errors.WrapFailf(err, "publish event for order %s", key))
	}
}

// Get reads a committed order. It returns nil if there is none.
func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	o, err := s.orders.Get(ctx, id)
	return o, errors.WrapFailf(err, "get order %s", id)
}
