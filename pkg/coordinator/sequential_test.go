package coordinator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nikmy/multitx/pkg/errors"
	"github.com/nikmy/multitx/pkg/logger"
	"github.com/nikmy/multitx/pkg/txn"
)

func TestCommitSequential(t *testing.T) {
	type want struct {
		success   bool
		succeeded []string
	}

	type testcase struct {
		name     string
		failAt   int
		want     want
		sessions int
	}

	tests := [...]testcase{
		{
			name:     "all committed",
			failAt:   -1,
			sessions: 3,
			want:     want{success: true},
		},
		{
			name:     "second commit fails",
			failAt:   1,
			sessions: 3,
			want:     want{succeeded: []string{"s0"}},
		},
		{
			name:     "last commit fails",
			failAt:   2,
			sessions: 3,
			want:     want{succeeded: []string{"s0", "s1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			c, err := New(logger.NewStub(), fastConfig())
			require.NoError(t, err)

			var prev *gomock.Call
			for i := 0; i < tt.sessions; i++ {
				name := []string{"s0", "s1", "s2"}[i]

				s := NewMocksessionImpl(ctrl)
				s.EXPECT().StartTransaction(gomock.Any(), txn.Options{}).Return(nil)
				s.EXPECT().EndSession(gomock.Any()).Times(1)

				var commitErr error
				if i == tt.failAt {
					commitErr = errors.Error("commit failed")
				}

				switch {
				case tt.failAt < 0 || i <= tt.failAt:
					call := s.EXPECT().CommitTransaction(gomock.Any()).Return(commitErr).Times(1)
					if prev != nil {
						call.After(prev)
					}
					prev = call
				default:
					s.EXPECT().CommitTransaction(gomock.Any()).Times(0)
				}

				if tt.failAt >= 0 && i >= tt.failAt {
					s.EXPECT().AbortTransaction(gomock.Any()).Return(nil).Times(1)
				}

				conn := NewMockconnectionImpl(ctrl)
				conn.EXPECT().StartSession(gomock.Any()).Return(s, nil).Times(1)

				require.NoError(t, c.AddConnection(name, conn))
			}

			res := Execute(context.Background(), c, func(context.Context, *Coordinator) (int, error) {
				return 1, nil
			})

			require.Equal(t, tt.want.success, res.Success)
			require.Equal(t, 1, res.Attempts)
			if tt.want.success {
				return
			}

			ce, ok := res.CommitFailure()
			require.True(t, ok)
			require.Equal(t, tt.want.succeeded, ce.Succeeded)
		})
	}
}
