package orders

import (
	"time"

	"github.com/nikmy/multitx/pkg/errors"
)

const (
	// ConnOrders and ConnInventory name the coordinator connections.
	// Orders are committed first.
	ConnOrders    = "ORDERS"
	ConnInventory = "INVENTORY"
)

var (
	ErrInsufficientInventory = errors.Error("insufficient inventory")
	ErrInvalidOrder          = errors.Error("invalid order")
)

const (
	StockFieldSKU  = "sku"
	StockFieldLeft = "stock"
)

type Order struct {
	ID       string    `json:"id"       bson:"_id"`
	Customer string    `json:"customer" bson:"customer"`
	SKU      string    `json:"sku"      bson:"sku"`
	Quantity int       `json:"quantity" bson:"quantity"`
	PlacedAt time.Time `json:"placedAt" bson:"placed_at"`
}

func (o Order) validate() error {
	switch {
	case o.Customer == "":
		return errors.Wrap(ErrInvalidOrder, "customer is empty")
	case o.SKU == "":
		return errors.Wrap(ErrInvalidOrder, "sku is empty")
	case o.Quantity <= 0:
		return errors.Wrapf(ErrInvalidOrder, "quantity must be positive, got %d", o.Quantity)
	}
	return nil
}

type Receipt struct {
	OrderID  string `json:"id"`
	Attempts int    `json:"attempts"`
}

type Topics struct {
	Placed    string
	Reconcile string
}

type PlacedEvent struct {
	OrderID  string `json:"id"`
	Customer string `json:"customer"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	Attempts int    `json:"attempts"`
}

// ReconcileEvent reports an order committed in some databases only.
type ReconcileEvent struct {
	OrderID   string   `json:"id"`
	Committed []string `json:"committed"`
	Failed    []string `json:"failed"`
	Cause     string   `json:"cause"`
}
