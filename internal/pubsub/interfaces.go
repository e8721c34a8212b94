package pubsub

import "context"

type Producer interface {
	Broadcast(ctx context.Context, topics []string, key string, data any) error
	Close() error
}
