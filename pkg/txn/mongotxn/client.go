package mongotxn

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/multitx/pkg/errors"
	"github.com/nikmy/multitx/pkg/txn"
)

// Connect opens a client to one replica set. Every Connection
// is an independent transactional backend for the coordinator.
func Connect(ctx context.Context, cfg Config) (*Connection, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}
	if cfg.Pool.MinSize > 0 {
		opts.SetMinPoolSize(cfg.Pool.MinSize)
	}
	if cfg.Pool.MaxSize > 0 {
		opts.SetMaxPoolSize(cfg.Pool.MaxSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	return &Connection{
		c:  client,
		db: client.Database(cfg.Database),
	}, nil
}

type Connection struct {
	c  *mongo.Client
	db *mongo.Database
}

func (c *Connection) Database() *mongo.Database {
	return c.db
}

func (c *Connection) Ping(ctx context.Context) error {
	return errors.WrapFail(c.c.Ping(ctx, nil), "ping mongo db")
}

func (c *Connection) Close(ctx context.Context) error {
	return errors.WrapFail(c.c.Disconnect(ctx), "close mongo db connection")
}

func (c *Connection) StartSession(context.Context) (txn.Session, error) {
	s, err := c.c.StartSession(options.Session())
	if err != nil {
		return nil, errors.WrapFail(err, "start mongo session")
	}

	return &session{s: s}, nil
}
