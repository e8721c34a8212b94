package coordinator

import (
	"time"

	"github.com/nikmy/multitx/pkg/errors"
	"github.com/nikmy/multitx/pkg/txn"
)

const (
	DefaultMaxRetries     = 3
	DefaultTimeout        = 30 * time.Second
	DefaultBaseBackoff    = 100 * time.Millisecond
	DefaultMaxBackoff     = 5 * time.Second
	DefaultCleanupTimeout = 5 * time.Second
)

type Config struct {
	// MaxRetries is the total number of attempts, the first one included.
	MaxRetries int `yaml:"maxRetries"`

	// Timeout bounds the operation phase of every attempt.
	// Commits are never cancelled.
	Timeout time.Duration `yaml:"timeout"`

	Txn txn.Options `yaml:",inline"`

	CommitMode CommitMode `yaml:"commitMode"`

	BaseBackoff time.Duration `yaml:"baseBackoff"`
	MaxBackoff  time.Duration `yaml:"maxBackoff"`

	// CleanupTimeout bounds abort and end session calls.
	CleanupTimeout time.Duration `yaml:"cleanupTimeout"`
}

func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.MaxRetries == 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.BaseBackoff == 0 {
		c.BaseBackoff = DefaultBaseBackoff
	}
	if c.MaxBackoff == 0 {
		c.MaxBackoff = max(DefaultMaxBackoff, c.BaseBackoff)
	}
	if c.CleanupTimeout == 0 {
		c.CleanupTimeout = DefaultCleanupTimeout
	}
	return c
}

func (c Config) Validate() error {
	var errs []error

	if c.MaxRetries < 0 {
		errs = append(errs, errors.Errorf("maxRetries must not be negative, got %d", c.MaxRetries))
	}
	if c.Timeout < 0 {
		errs = append(errs, errors.Errorf("timeout must not be negative, got %s", c.Timeout))
	}
	if c.BaseBackoff < 0 || c.MaxBackoff < 0 {
		errs = append(errs, errors.Error("backoff must not be negative"))
	}
	if c.MaxBackoff > 0 && c.BaseBackoff > c.MaxBackoff {
		errs = append(errs, errors.Errorf("baseBackoff %s exceeds maxBackoff %s", c.BaseBackoff, c.MaxBackoff))
	}
	if c.CleanupTimeout < 0 {
		errs = append(errs, errors.Errorf("cleanupTimeout must not be negative, got %s", c.CleanupTimeout))
	}
	if c.CommitMode != Sequential && c.CommitMode != Parallel {
		errs = append(errs, errors.Errorf("unknown commit mode %d", c.CommitMode))
	}
	if c.Txn.ReadConcern.String() == "unknown" {
		errs = append(errs, errors.Errorf("unknown read concern %d", c.Txn.ReadConcern))
	}
	if c.Txn.WriteConcern.Nodes < 0 {
		errs = append(errs, errors.Errorf("write concern nodes must not be negative, got %d", c.Txn.WriteConcern.Nodes))
	}

	return errors.Collapse(errs)
}

type CommitMode int

const (
	// Sequential commits one connection at a time in registration
	// order, so a failure exposes only the already committed prefix.
	Sequential CommitMode = iota

	// Parallel commits all connections at once. Use it only for
	// best-effort writes where a partial commit is acceptable.
	Parallel
)

func (m CommitMode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	default:
		return "unknown"
	}
}

func (m *CommitMode) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string

	err := unmarshal(&raw)
	if err != nil {
		return err
	}

	switch raw {
	case "", "sequential":
		*m = Sequential
	case "parallel":
		*m = Parallel
	default:
		return errors.Errorf("unknown commit mode %q", raw)
	}
	return nil
}
