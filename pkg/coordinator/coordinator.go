// Package coordinator runs one unit of work across several independently
// transactional databases and commits or aborts all of them together.
//
// The databases have no shared atomic-commit primitive. Commits are
// issued one connection at a time, and a failure in the middle of the
// commit phase is reported with the exact set of committed connections
// instead of being retried or silently reconciled.
//
// A Coordinator runs one execution at a time. Overlapping calls to
// Execute are rejected with ErrInFlight.
package coordinator

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/nikmy/multitx/pkg/errors"
	"github.com/nikmy/multitx/pkg/logger"
	"github.com/nikmy/multitx/pkg/tools/await"
	"github.com/nikmy/multitx/pkg/txn"
)

// Operation is the unit of work. It gets per-connection sessions
// from c.Session and must stop when ctx is done.
type Operation[T any] func(ctx context.Context, c *Coordinator) (T, error)

type Option func(*Coordinator)

func WithMetrics(m *Metrics) Option {
	return func(c *Coordinator) {
		c.metrics = m
	}
}

func New(log logger.Logger, cfg Config, opts ...Option) (*Coordinator, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapFail(err, "validate coordinator config")
	}

	c := &Coordinator{
		log:      log.With("coordinator"),
		cfg:      cfg,
		conns:    make(map[string]txn.Connection),
		sessions: make(map[string]txn.Session),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type Coordinator struct {
	log     logger.Logger
	cfg     Config
	metrics *Metrics

	mu       sync.RWMutex
	names    []string
	conns    map[string]txn.Connection
	sessions map[string]txn.Session
	frozen   bool

	active atomic.Bool
	state  atomic.Int32
}

func (c *Coordinator) Config() Config {
	return c.cfg
}

// AddConnection registers a backend under name. Commits follow the
// registration order. The registry is frozen once the first execution starts.
func (c *Coordinator) AddConnection(name string, conn txn.Connection) error {
	if name == "" {
		return errors.Error("connection name is empty")
	}
	if conn == nil {
		return errors.Errorf("connection %q is nil", name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.frozen {
		return errors.Wrapf(ErrRegistryFrozen, "add connection %q", name)
	}
	if _, ok := c.conns[name]; ok {
		return errors.Errorf("connection %q already registered", name)
	}

	c.names = append(c.names, name)
	c.conns[name] = conn
	return nil
}

// Session returns the session of the running attempt for the named connection.
func (c *Coordinator) Session(name string) (txn.Session, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.sessions[name]
	if !ok {
		return nil, errors.Errorf("%w for connection %q", ErrNoSession, name)
	}
	return s, nil
}

// Execute runs op inside transactions on every registered connection,
// retrying whole attempts on transient failures. It never panics and
// reports every failure through the Result.
func Execute[T any](ctx context.Context, c *Coordinator, op Operation[T]) Result[T] {
	if !c.active.CompareAndSwap(false, true) {
		return Result[T]{Err: ErrInFlight}
	}
	defer c.active.Store(false)

	names := c.freeze()
	if len(names) == 0 {
		return Result[T]{Err: ErrNoConnections}
	}

	id := uuid.NewString()
	started := time.Now()

	var res Result[T]
	for attempt := 1; ; attempt++ {
		c.setState(StateIdle)
		c.metrics.attempt()
		c.log.Debugf("execution %s: attempt %d/%d on %v", id, attempt, c.cfg.MaxRetries, names)

		data, phase, err := runAttempt(ctx, c, names, op)
		res = Result[T]{Attempts: attempt, Phase: phase}

		if err == nil {
			res.Success, res.Data = true, data
			break
		}
		res.Err = err

		if attempt >= c.cfg.MaxRetries || !Retryable(err) {
			c.setState(StateFailed)
			break
		}

		delay := c.backoff(attempt)
		c.log.Warnf("execution %s: attempt %d failed, retrying in %s: %s", id, attempt, delay, err)

		if !await.After(delay).Await(ctx) {
			res.Err = errors.Collapse([]error{errors.WrapFail(ctx.Err(), "wait before retry"), err})
			c.setState(StateFailed)
			break
		}
	}

	c.report(id, res.Success, res.Attempts, res.Err)
	c.metrics.observe(res.outcome(), time.Since(started))

	return res
}

func (c *Coordinator) freeze() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.frozen = true
	return c.names
}

func (c *Coordinator) report(id string, success bool, attempts int, err error) {
	if success {
		c.log.Debugf("execution %s: committed after %d attempt(s)", id, attempts)
		return
	}

	var ce *CommitError
	if errors.As(err, &ce) && ce.RequiresIntervention() {
		c.log.Errorf("execution %s: %s", id, err)
		return
	}
	c.log.Infof("execution %s: aborted after %d attempt(s): %s", id, attempts, err)
}

// runAttempt is one pass through the protocol on fresh sessions.
// Sessions never outlive the attempt.
func runAttempt[T any](ctx context.Context, c *Coordinator, names []string, op Operation[T]) (T, Phase, error) {
	var zero T

	defer c.endSessions(ctx)

	err := c.startSessions(ctx, names)
	if err != nil {
		c.abort(ctx, names)
		return zero, PhaseAbort, err
	}
	c.setState(StateSessionsStarted)

	err = c.startTransactions(ctx, names)
	if err != nil {
		c.abort(ctx, names)
		return zero, PhaseAbort, err
	}
	c.setState(StateTransactionsActive)

	c.setState(StateOperating)
	data, err := operate(ctx, c, op)
	if err != nil {
		c.abort(ctx, names)
		return zero, PhaseAbort, err
	}

	err = c.prepare(ctx, names)
	if err != nil {
		c.abort(ctx, names)
		return zero, PhasePrepare, err
	}
	c.setState(StatePrepared)

	c.setState(StateCommitting)
	err = c.commit(ctx, names)
	if err != nil {
		c.setState(StateAborted)
		return zero, PhaseAbort, err
	}
	c.setState(StateCommitted)

	return data, PhaseCommit, nil
}
