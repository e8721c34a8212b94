package coordinator

import (
	"context"
	"sync"

	"github.com/nikmy/multitx/pkg/txn"
)

// journal records backend calls across connections in call order.
type journal struct {
	mu     sync.Mutex
	events []string
}

func (j *journal) add(event string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, event)
}

func (j *journal) all() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.events...)
}

type counts struct {
	started, ended, txns, commits, aborts int
}

type fakeConn struct {
	name    string
	journal *journal

	startErr  error
	txnErr    error
	commitErr error
	abortErr  error
	vote      error
	canVote   bool

	mu   sync.Mutex
	c    counts
	opts []txn.Options
}

func newFakeConn(name string, j *journal) *fakeConn {
	return &fakeConn{name: name, journal: j}
}

func (f *fakeConn) counts() counts {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.c
}

func (f *fakeConn) inc(field *int, event string) {
	f.mu.Lock()
	*field++
	f.mu.Unlock()
	f.journal.add(f.name + "." + event)
}

func (f *fakeConn) StartSession(context.Context) (txn.Session, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	f.inc(&f.c.started, "start")

	s := &fakeSession{conn: f}
	if f.canVote {
		return &votingSession{s}, nil
	}
	return s, nil
}

type fakeSession struct {
	conn *fakeConn
}

func (s *fakeSession) BindContext(ctx context.Context) context.Context {
	return ctx
}

func (s *fakeSession) StartTransaction(_ context.Context, opts txn.Options) error {
	s.conn.mu.Lock()
	s.conn.opts = append(s.conn.opts, opts)
	s.conn.mu.Unlock()

	s.conn.inc(&s.conn.c.txns, "txn")
	return s.conn.txnErr
}

func (s *fakeSession) CommitTransaction(context.Context) error {
	s.conn.inc(&s.conn.c.commits, "commit")
	return s.conn.commitErr
}

func (s *fakeSession) AbortTransaction(context.Context) error {
	s.conn.inc(&s.conn.c.aborts, "abort")
	return s.conn.abortErr
}

func (s *fakeSession) EndSession(context.Context) {
	s.conn.inc(&s.conn.c.ended, "end")
}

type votingSession struct {
	*fakeSession
}

func (s *votingSession) Prepare(context.Context) error {
	s.conn.journal.add(s.conn.name + ".prepare")
	return s.conn.vote
}
