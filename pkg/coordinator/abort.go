package coordinator

import (
	"context"
	"sync"

	"github.com/nikmy/multitx/pkg/errors"
)

// abort rolls back the sessions of names concurrently. Abort is best
// effort: failures are logged and dropped, and never stop the others.
func (c *Coordinator) abort(ctx context.Context, names []string) {
	c.setState(StateAborting)

	found, sessions := c.snapshot(names)

	ctx, cancel := c.cleanupContext(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for i, s := range sessions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.log.Debug(errors.WrapFailf(s.AbortTransaction(ctx), "abort transaction on %q", found[i]))
		}()
	}
	wg.Wait()

	c.setState(StateAborted)
}
