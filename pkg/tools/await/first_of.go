package await

import (
	"context"
	"reflect"
)

// FirstOf waits for whichever of waiters completes first.
// All waiters are stopped when Await returns, whatever the outcome.
func FirstOf(waiters ...Awaiter) Awaiter {
	return &firstOfAwaiter{waiters: waiters, chosen: -1}
}

type firstOfAwaiter struct {
	waiters []Awaiter
	chosen  int
	val     any
}

func (a *firstOfAwaiter) Await(ctx context.Context) (waited bool) {
	defer a.Stop()

	cases := make([]reflect.SelectCase, 0, len(a.waiters)+1)
	for _, w := range a.waiters {
		cases = append(cases, w.bind())
	}
	cases = append(cases, reflect.SelectCase{
		Dir:  reflect.SelectRecv,
		Chan: reflect.ValueOf(ctx.Done()),
	})

	choice, val, _ := reflect.Select(cases)
	if choice == len(a.waiters) {
		return false
	}

	a.chosen = choice
	a.waiters[choice].done(val)
	a.val, _ = a.waiters[choice].Value()
	return true
}

// Value returns the value received by the winning waiter.
func (a *firstOfAwaiter) Value() (any, bool) {
	return a.val, a.chosen >= 0
}

func (a *firstOfAwaiter) Stop() {
	for _, w := range a.waiters {
		w.Stop()
	}
}

func (a *firstOfAwaiter) bind() reflect.SelectCase {
	panic("await: avoid combine combinators")
}

func (a *firstOfAwaiter) done(reflect.Value) {}
