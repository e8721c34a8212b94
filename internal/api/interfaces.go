package api

import (
	"context"

	"github.com/nikmy/multitx/internal/orders"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type ordersService interface {
	Place(ctx context.Context, o orders.Order) (orders.Receipt, error)
	Get(ctx context.Context, id string) (*orders.Order, error)
}
