package await

import (
	"context"
	"reflect"
	"sync"
	"time"
)

var timerPool = sync.Pool{
	New: newTimer,
}

func newTimer() any {
	t := time.NewTimer(time.Hour)
	t.Stop()
	return t
}

// After waits for d to elapse. The timer goes back to the pool
// once the awaiter is stopped or has fired.
func After(d time.Duration) Awaiter {
	timer := timerPool.Get().(*time.Timer)
	timer.Reset(d)
	return &timerAwaiter{timer: timer}
}

type timerAwaiter struct {
	timer *time.Timer
	fired bool
	once  sync.Once
}

func (t *timerAwaiter) Await(ctx context.Context) bool {
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.timer.C:
		t.fired = true
		return true
	}
}

func (t *timerAwaiter) Value() (any, bool) {
	return struct{}{}, t.fired
}

func (t *timerAwaiter) Stop() {
	t.once.Do(func() {
		if !t.timer.Stop() && !t.fired {
			// drain a tick nobody received so the pooled timer starts clean
			select {
			case <-t.timer.C:
			default:
			}
		}
		timerPool.Put(t.timer)
	})
}

func (t *timerAwaiter) bind() reflect.SelectCase {
	return reflect.SelectCase{
		Dir:  reflect.SelectRecv,
		Chan: reflect.ValueOf(t.timer.C),
	}
}

func (t *timerAwaiter) done(reflect.Value) {
	t.fired = true
}
