package environment

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFromString(t *testing.T) {
	type testcase struct {
		raw  string
		want Env
	}

	tests := [...]testcase{
		{raw: "dev", want: Development},
		{raw: "development", want: Development},
		{raw: "prod", want: Production},
		{raw: "production", want: Production},
		{raw: "", want: Unknown},
		{raw: "staging", want: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			require.Equal(t, tt.want, FromString(tt.raw))
		})
	}
}

func TestEnv_UnmarshalYAML(t *testing.T) {
	var cfg struct {
		Env Env `yaml:"env"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("env: prod"), &cfg))
	require.Equal(t, Production, cfg.Env)
	require.Equal(t, "prod", cfg.Env.String())
}
