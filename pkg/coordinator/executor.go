package coordinator

import (
	"context"

	"github.com/nikmy/multitx/pkg/errors"
	"github.com/nikmy/multitx/pkg/tools/await"
	"github.com/nikmy/multitx/pkg/txn"
)

type outcome[T any] struct {
	data T
	err  error
}

// operate runs op against the configured deadline. The operation
// context is cancelled and the timer released on every return path.
func operate[T any](ctx context.Context, c *Coordinator, op Operation[T]) (T, error) {
	var zero T

	opCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan outcome[T], 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome[T]{err: errors.Errorf("operation panicked: %v", r)}
			}
		}()

		data, err := op(opCtx, c)
		done <- outcome[T]{data: data, err: err}
	}()

	race := await.FirstOf(await.FromChan(done), await.After(c.cfg.Timeout))
	if !race.Await(ctx) {
		return zero, errors.WrapFail(ctx.Err(), "run operation")
	}

	v, _ := race.Value()
	res, ok := v.(outcome[T])
	if !ok {
		return zero, errors.WrapFailf(ErrTimeout, "finish operation within %s", c.cfg.Timeout)
	}

	return res.data, res.err
}

// prepare asks every session able to vote. Sessions without a
// prepare primitive are ready as soon as the operation succeeded.
func (c *Coordinator) prepare(ctx context.Context, names []string) error {
	found, sessions := c.snapshot(names)
	for i, s := range sessions {
		p, ok := s.(txn.Preparer)
		if !ok {
			continue
		}

		err := p.Prepare(ctx)
		if err != nil {
			return errors.Wrapf(errors.Collapse([]error{ErrPrepareRejected, err}), "prepare %q", found[i])
		}
	}
	return nil
}
