package orders

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/multitx/pkg/errors"
	"github.com/nikmy/multitx/pkg/mongotools"
)

var stockIndex = mongo.IndexModel{
	Keys:    bson.D{{Key: StockFieldSKU, Value: 1}},
	Options: options.Index().SetName("sku").SetUnique(true),
}

func NewMongoOrders(db *mongo.Database, collection string) *MongoOrders {
	return &MongoOrders{coll: db.Collection(collection)}
}

type MongoOrders struct {
	coll *mongo.Collection
}

func (m *MongoOrders) Insert(ctx context.Context, o Order) error {
	_, err := m.coll.InsertOne(ctx, o)
	return errors.WrapFail(err, "insert order document")
}

func (m *MongoOrders) Get(ctx context.Context, id string) (*Order, error) {
	r := m.coll.FindOne(ctx, mongotools.FilterByID(id))

	err := r.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "find order by id")
	}

	var o Order
	err = r.Decode(&o)
	if err != nil {
		return nil, errors.WrapFail(err, "decode order")
	}

	return &o, nil
}

func NewMongoInventory(ctx context.Context, db *mongo.Database, collection string) (*MongoInventory, error) {
	coll := db.Collection(collection)

	_, err := coll.Indexes().CreateOne(ctx, stockIndex)
	if err != nil {
		return nil, errors.WrapFail(err, "create sku index")
	}

	return &MongoInventory{coll: coll}, nil
}

type MongoInventory struct {
	coll *mongo.Collection
}

func (m *MongoInventory) Reserve(ctx context.Context, sku string, qty int) (bool, error) {
	r, err := m.coll.UpdateOne(
		ctx,
		mongotools.Merge(
			mongotools.Field(StockFieldSKU, sku),
			mongotools.AtLeast(StockFieldLeft, qty),
		),
		mongotools.Inc(StockFieldLeft, -qty),
	)
	if err != nil {
		return false, errors.WrapFail(err, "decrement stock")
	}

	return r.ModifiedCount == 1, nil
}
