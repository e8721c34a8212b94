package mongotxn

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/nikmy/multitx/pkg/txn"
)

type session struct {
	s mongo.Session
}

func (s *session) BindContext(ctx context.Context) context.Context {
	return mongo.NewSessionContext(ctx, s.s)
}

func (s *session) StartTransaction(_ context.Context, opts txn.Options) error {
	return s.s.StartTransaction(TransactionOptions(opts))
}

func (s *session) CommitTransaction(ctx context.Context) error {
	return s.s.CommitTransaction(ctx)
}

func (s *session) AbortTransaction(ctx context.Context) error {
	return s.s.AbortTransaction(ctx)
}

func (s *session) EndSession(ctx context.Context) {
	s.s.EndSession(ctx)
}

func TransactionOptions(opts txn.Options) *options.TransactionOptions {
	return options.Transaction().
		SetReadConcern(ReadConcern(opts.ReadConcern)).
		SetWriteConcern(WriteConcern(opts.WriteConcern))
}

func ReadConcern(rc txn.ReadConcern) *readconcern.ReadConcern {
	switch rc {
	case txn.ReadLocal:
		return readconcern.Local()
	case txn.ReadMajority:
		return readconcern.Majority()
	default:
		return readconcern.Snapshot()
	}
}

func WriteConcern(wc txn.WriteConcern) *writeconcern.WriteConcern {
	if wc.IsMajority() {
		return writeconcern.Majority()
	}
	return &writeconcern.WriteConcern{W: wc.Nodes}
}
