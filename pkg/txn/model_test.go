package txn

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOptions_UnmarshalYAML(t *testing.T) {
	type testcase struct {
		name string
		raw  string

		want    Options
		wantErr bool
	}

	tests := [...]testcase{
		{
			name: "empty uses snapshot and majority",
			raw:  "{}",
			want: Options{ReadConcern: ReadSnapshot, WriteConcern: WriteMajority()},
		},
		{
			name: "local and numeric",
			raw:  "readConcern: local\nwriteConcern: 2\n",
			want: Options{ReadConcern: ReadLocal, WriteConcern: WriteNodes(2)},
		},
		{
			name: "majority both",
			raw:  "readConcern: majority\nwriteConcern: majority\n",
			want: Options{ReadConcern: ReadMajority, WriteConcern: WriteMajority()},
		},
		{
			name:    "bad read concern",
			raw:     "readConcern: linearizable\n",
			wantErr: true,
		},
		{
			name:    "zero nodes",
			raw:     "writeConcern: 0\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Options
			err := yaml.Unmarshal([]byte(tt.raw), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestConcern_String(t *testing.T) {
	require.Equal(t, "snapshot", ReadSnapshot.String())
	require.Equal(t, "unknown", ReadConcern(42).String())
	require.Equal(t, "majority", WriteMajority().String())
	require.Equal(t, "3", WriteNodes(3).String())
}
