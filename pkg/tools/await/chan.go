package await

import (
	"context"
	"reflect"
)

func FromChan[T any](ch chan T) Awaiter {
	return &chanAwaiter[T]{ch: ch}
}

type chanAwaiter[T any] struct {
	ch  chan T
	val T
	got bool
}

func (a *chanAwaiter[T]) Await(ctx context.Context) (waited bool) {
	select {
	case <-ctx.Done():
		return false
	case a.val = <-a.ch:
		a.got = true
		return true
	}
}

func (a *chanAwaiter[T]) Value() (any, bool) {
	return a.val, a.got
}

func (a *chanAwaiter[T]) Stop() {}

func (a *chanAwaiter[T]) bind() reflect.SelectCase {
	return reflect.SelectCase{
		Dir:  reflect.SelectRecv,
		Chan: reflect.ValueOf(a.ch),
	}
}

func (a *chanAwaiter[T]) done(val reflect.Value) {
	if val.IsValid() {
		a.val, _ = val.Interface().(T)
	}
	a.got = true
}
