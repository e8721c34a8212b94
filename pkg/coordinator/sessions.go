package coordinator

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/nikmy/multitx/pkg/errors"
	"github.com/nikmy/multitx/pkg/txn"
)

// startSessions opens one session per connection concurrently.
// Sessions that did open are kept for cleanup even if others failed.
func (c *Coordinator) startSessions(ctx context.Context, names []string) error {
	opened := make([]txn.Session, len(names))

	var g errgroup.Group
	for i, name := range names {
		conn := c.conns[name]
		g.Go(func() error {
			s, err := conn.StartSession(ctx)
			if err != nil {
				return errors.WrapFailf(err, "start session on %q", name)
			}
			opened[i] = s
			return nil
		})
	}
	err := g.Wait()

	c.mu.Lock()
	for i, s := range opened {
		if s != nil {
			c.sessions[names[i]] = s
		}
	}
	c.mu.Unlock()

	return err
}

func (c *Coordinator) startTransactions(ctx context.Context, names []string) error {
	for _, name := range names {
		s, err := c.Session(name)
		if err != nil {
			return err
		}

		err = s.StartTransaction(ctx, c.cfg.Txn)
		if err != nil {
			return errors.WrapFailf(err, "start transaction on %q", name)
		}
	}
	return nil
}

// endSessions ends every session of the attempt and empties the session map.
func (c *Coordinator) endSessions(ctx context.Context) {
	c.mu.Lock()
	sessions := c.sessions
	c.sessions = make(map[string]txn.Session, len(sessions))
	c.mu.Unlock()

	ctx, cancel := c.cleanupContext(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for _, s := range sessions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.EndSession(ctx)
		}()
	}
	wg.Wait()
}

// cleanupContext survives cancellation of the execution context,
// so sessions are released even when the caller gave up.
func (c *Coordinator) cleanupContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), c.cfg.CleanupTimeout)
}

// snapshot returns the sessions of names in the given order, skipping missing ones.
func (c *Coordinator) snapshot(names []string) ([]string, []txn.Session) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	found := make([]string, 0, len(names))
	sessions := make([]txn.Session, 0, len(names))
	for _, name := range names {
		if s, ok := c.sessions[name]; ok {
			found = append(found, name)
			sessions = append(sessions, s)
		}
	}
	return found, sessions
}
