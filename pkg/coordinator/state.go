package coordinator

type State int32

const (
	StateIdle State = iota
	StateSessionsStarted
	StateTransactionsActive
	StateOperating
	StatePrepared
	StateCommitting
	StateCommitted
	StateAborting
	StateAborted
	StateFailed
)

var stateNames = [...]string{
	"IDLE",
	"SESSIONS_STARTED",
	"TRANSACTIONS_ACTIVE",
	"OPERATING",
	"PREPARED",
	"COMMITTING",
	"COMMITTED",
	"ABORTING",
	"ABORTED",
	"FAILED",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "UNKNOWN"
}

func (c *Coordinator) State() State {
	return State(c.state.Load())
}

func (c *Coordinator) setState(s State) {
	prev := State(c.state.Swap(int32(s)))
	if prev != s {
		c.log.Debugf("state %s -> %s", prev, s)
	}
}
