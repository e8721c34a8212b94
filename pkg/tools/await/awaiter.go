package await

import (
	"context"
	"reflect"
)

// Awaiter is a single-use wait on some event.
type Awaiter interface {
	// Value returns the received value and whether
	// Await finished because of the awaited event.
	Value() (any, bool)
	Await(ctx context.Context) (waited bool)

	// Stop releases resources held by the awaiter.
	// It is safe to call Stop more than once.
	Stop()

	bind() reflect.SelectCase
	done(val reflect.Value)
}
