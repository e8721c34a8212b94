package coordinator

import (
	"fmt"
	"strings"

	"github.com/nikmy/multitx/pkg/errors"
)

var (
	ErrTimeout         = errors.Error("transaction timeout")
	ErrNoSession       = errors.Error("no active session")
	ErrNoConnections   = errors.Error("no connections registered")
	ErrRegistryFrozen  = errors.Error("connections can't be added after execution has started")
	ErrInFlight        = errors.Error("another execution is in flight")
	ErrPrepareRejected = errors.Error("prepare rejected")
)

// CommitError is returned when the commit phase failed for at least
// one connection. Connections listed in Succeeded are durably committed
// and can't be rolled back, so the error is never retried.
type CommitError struct {
	Mode      CommitMode
	Succeeded []string
	Failed    []string

	// FailedAt is the connection whose commit failed in sequential mode.
	FailedAt string
	Cause    error
}

// RequiresIntervention reports whether data is left
// inconsistent across connections.
func (e *CommitError) RequiresIntervention() bool {
	return len(e.Succeeded) > 0 && len(e.Failed) > 0
}

func (e *CommitError) Error() string {
	var b strings.Builder

	switch {
	case e.Mode == Parallel:
		fmt.Fprintf(&b, "parallel commit: %d succeeded [%s], %d failed [%s]",
			len(e.Succeeded), strings.Join(e.Succeeded, ", "),
			len(e.Failed), strings.Join(e.Failed, ", "))
	case len(e.Succeeded) == 0:
		fmt.Fprintf(&b, "commit failed at %q, nothing committed, aborted [%s]",
			e.FailedAt, strings.Join(e.Failed, ", "))
	default:
		fmt.Fprintf(&b, "partial commit: committed [%s], not committed [%s], failed at %q",
			strings.Join(e.Succeeded, ", "), strings.Join(e.Failed, ", "), e.FailedAt)
	}

	if e.RequiresIntervention() {
		b.WriteString(": manual intervention required")
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *CommitError) Unwrap() error {
	return e.Cause
}
