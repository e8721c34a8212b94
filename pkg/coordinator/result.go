package coordinator

import "github.com/nikmy/multitx/pkg/errors"

// Phase is the last protocol phase an execution reached.
type Phase string

const (
	PhaseNone    Phase = ""
	PhasePrepare Phase = "prepare"
	PhaseCommit  Phase = "commit"
	PhaseAbort   Phase = "abort"
)

// Result is the outcome of Execute. Failures are never
// returned any other way.
type Result[T any] struct {
	Success  bool
	Data     T
	Err      error
	Attempts int
	Phase    Phase
}

// CommitFailure returns the commit phase failure, if any.
func (r Result[T]) CommitFailure() (*CommitError, bool) {
	var ce *CommitError
	if errors.As(r.Err, &ce) {
		return ce, true
	}
	return nil, false
}

// PartialCommit reports whether some connections committed while
// others did not. Such results need an operator to reconcile data.
func (r Result[T]) PartialCommit() bool {
	ce, ok := r.CommitFailure()
	return ok && ce.RequiresIntervention()
}

func (r Result[T]) outcome() string {
	ce, commitFailed := r.CommitFailure()

	switch {
	case r.Success:
		return "committed"
	case commitFailed && ce.Mode == Parallel:
		return "parallel_commit_failure"
	case commitFailed && ce.RequiresIntervention():
		return "partial_commit"
	case r.Attempts == 0:
		return "rejected"
	default:
		return "aborted"
	}
}
