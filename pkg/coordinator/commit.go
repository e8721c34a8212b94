package coordinator

import (
	"context"
	"slices"
	"sync"

	"github.com/nikmy/multitx/pkg/errors"
)

func (c *Coordinator) commit(ctx context.Context, names []string) error {
	// A cancelled commit leaves the participant state unknown,
	// so commits always run to a definite outcome.
	ctx = context.WithoutCancel(ctx)

	if c.cfg.CommitMode == Parallel {
		return c.commitParallel(ctx, names)
	}
	return c.commitSequential(ctx, names)
}

// commitSequential commits in registration order and stops at the first
// failure. The failed connection and every one after it are aborted.
func (c *Coordinator) commitSequential(ctx context.Context, names []string) error {
	committed := make([]string, 0, len(names))

	for i, name := range names {
		s, err := c.Session(name)
		if err == nil {
			err = s.CommitTransaction(ctx)
		}

		if err != nil {
			c.abort(ctx, names[i:])
			return &CommitError{
				Mode:      Sequential,
				Succeeded: committed,
				Failed:    slices.Clone(names[i:]),
				FailedAt:  name,
				Cause:     err,
			}
		}

		committed = append(committed, name)
	}

	return nil
}

// commitParallel commits every connection at once and collects each
// outcome on its own. Connections that failed to commit are aborted.
func (c *Coordinator) commitParallel(ctx context.Context, names []string) error {
	found, sessions := c.snapshot(names)
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		idx := slices.Index(found, name)
		if idx < 0 {
			errs[i] = errors.Errorf("%w for connection %q", ErrNoSession, name)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = errors.WrapFailf(sessions[idx].CommitTransaction(ctx), "commit %q", name)
		}()
	}
	wg.Wait()

	var succeeded, failed []string
	var causes []error
	for i, name := range names {
		if errs[i] == nil {
			succeeded = append(succeeded, name)
			continue
		}
		failed = append(failed, name)
		causes = append(causes, errs[i])
	}

	if len(failed) == 0 {
		return nil
	}

	c.abort(ctx, failed)
	return &CommitError{
		Mode:      Parallel,
		Succeeded: succeeded,
		Failed:    failed,
		Cause:     errors.Collapse(causes),
	}
}
