package coordinator

import (
	"time"

	"github.com/nikmy/multitx/pkg/errors"
)

const (
	LabelTransientTransaction = "TransientTransactionError"
	LabelUnknownCommitResult  = "UnknownTransactionCommitResult"
	LabelWriteConflict        = "WriteConflict"

	CodeWriteConflict     = 112
	CodeNoSuchTransaction = 251
)

var (
	retryableLabels = [...]string{
		LabelTransientTransaction,
		LabelUnknownCommitResult,
		LabelWriteConflict,
	}
	retryableCodes = [...]int{
		CodeWriteConflict,
		CodeNoSuchTransaction,
	}
)

// Retryable reports whether a whole attempt may be replayed after err.
// Commit phase failures are never retryable: replaying the operation
// after some connection committed would duplicate durable writes.
func Retryable(err error) bool {
	if err == nil {
		return false
	}

	var ce *CommitError
	if errors.As(err, &ce) {
		return false
	}

	for _, label := range retryableLabels {
		if errors.HasLabel(err, label) {
			return true
		}
	}

	for _, code := range retryableCodes {
		if errors.HasCode(err, code) {
			return true
		}
	}

	return false
}

// backoff returns the delay before attempt+1.
func (c *Coordinator) backoff(attempt int) time.Duration {
	d := c.cfg.BaseBackoff
	for i := 1; i < attempt && d < c.cfg.MaxBackoff; i++ {
		d *= 2
	}
	return min(d, c.cfg.MaxBackoff)
}
