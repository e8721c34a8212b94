package coordinator

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/nikmy/multitx/pkg/errors"
	"github.com/nikmy/multitx/pkg/logger"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	j := &journal{}
	a, b := newFakeConn("A", j), newFakeConn("B", j)
	b.commitErr = errors.Error("commit failed")

	c, err := New(logger.NewStub(), fastConfig(), WithMetrics(m))
	require.NoError(t, err)
	require.NoError(t, c.AddConnection("A", a))
	require.NoError(t, c.AddConnection("B", b))

	transient := errors.WithLabels(errors.Error("conflict"), LabelTransientTransaction)

	calls := 0
	res := Execute(context.Background(), c, func(context.Context, *Coordinator) (int, error) {
		calls++
		if calls == 1 {
			return 0, transient
		}
		return 0, nil
	})
	require.True(t, res.PartialCommit())

	require.Equal(t, 2.0, testutil.ToFloat64(m.attempts))
	require.Equal(t, 1.0, testutil.ToFloat64(m.outcomes.WithLabelValues("partial_commit")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.outcomes.WithLabelValues("committed")))
	require.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	m.attempt()
	m.observe("committed", 0)
}
