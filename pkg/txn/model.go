package txn

import (
	"context"
	"strconv"

	"github.com/nikmy/multitx/pkg/errors"
)

// Connection is a named handle to one transactional backend.
type Connection interface {
	StartSession(ctx context.Context) (Session, error)
}

// Session binds one sequence of operations to one transaction.
// A session serves exactly one transaction attempt and is never reused.
type Session interface {
	// BindContext returns a context that makes backend calls
	// issued with it part of the session's transaction.
	BindContext(ctx context.Context) context.Context

	StartTransaction(ctx context.Context, opts Options) error
	CommitTransaction(ctx context.Context) error
	AbortTransaction(ctx context.Context) error
	EndSession(ctx context.Context)
}

// Preparer is implemented by sessions whose backend can vote
// on the outcome before commit. A non-nil error is a "no" vote.
type Preparer interface {
	Prepare(ctx context.Context) error
}

type Options struct {
	ReadConcern  ReadConcern  `yaml:"readConcern"`
	WriteConcern WriteConcern `yaml:"writeConcern"`
}

type ReadConcern int

const (
	// ReadSnapshot means that reads observe
	// majority-committed data as of a single
	// point in time chosen at transaction start
	ReadSnapshot ReadConcern = iota

	// ReadMajority means that reads observe
	// data acknowledged by a majority of nodes
	ReadMajority

	// ReadLocal means that reads observe the
	// most recent data of the node, which may
	// be rolled back later
	ReadLocal
)

var readConcernNames = map[ReadConcern]string{
	ReadSnapshot: "snapshot",
	ReadMajority: "majority",
	ReadLocal:    "local",
}

func ParseReadConcern(s string) (ReadConcern, error) {
	for rc, name := range readConcernNames {
		if name == s {
			return rc, nil
		}
	}
	return 0, errors.Errorf("unknown read concern %q", s)
}

func (rc ReadConcern) String() string {
	if name, ok := readConcernNames[rc]; ok {
		return name
	}
	return "unknown"
}

func (rc *ReadConcern) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string

	err := unmarshal(&raw)
	if err != nil {
		return err
	}

	*rc, err = ParseReadConcern(raw)
	return err
}

// WriteConcern is either "majority" (the zero value)
// or an explicit number of acknowledging nodes.
type WriteConcern struct {
	Nodes int
}

func WriteMajority() WriteConcern {
	return WriteConcern{}
}

func WriteNodes(n int) WriteConcern {
	return WriteConcern{Nodes: n}
}

func (wc WriteConcern) IsMajority() bool {
	return wc.Nodes == 0
}

func (wc WriteConcern) String() string {
	if wc.IsMajority() {
		return "majority"
	}
	return strconv.Itoa(wc.Nodes)
}

func ParseWriteConcern(s string) (WriteConcern, error) {
	if s == "majority" {
		return WriteMajority(), nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return WriteConcern{}, errors.Errorf("write concern must be \"majority\" or a positive number, got %q", s)
	}

	return WriteNodes(n), nil
}

func (wc *WriteConcern) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string

	err := unmarshal(&raw)
	if err != nil {
		return err
	}

	*wc, err = ParseWriteConcern(raw)
	return err
}
