package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anhncs/CommunityDetectionCodes/config"
	"github.com/anhncs/CommunityDetectionCodes/randomize"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	c := config.Default()
	assert.Equal(t, 10, c.Rounds)
	assert.Equal(t, 15, c.Limit)
	assert.Equal(t, randomize.DefaultMaxProposals, c.MaxProposals)
	assert.Equal(t, config.ModeRandomize, c.Mode)
	require.NoError(t, c.Validate())
}

func TestDecode(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Decode(strings.NewReader("rounds: 100\nmode: confmodel\nweighted: true\n")))
	assert.Equal(t, 100, c.Rounds)
	assert.Equal(t, config.ModeConfModel, c.Mode)
	assert.True(t, c.Weighted)
	assert.Equal(t, 15, c.Limit, "untouched keys keep defaults")

	require.NoError(t, config.Default().Decode(strings.NewReader("")))
	require.Error(t, config.Default().Decode(strings.NewReader("bogus: 1\n")))
}

func TestApplyEnv(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.ApplyEnv(lookupFrom(map[string]string{
		"NETRAND_ROUNDS":    " 3",
		"NETRAND_SEED":      "-9",
		"NETRAND_WEIGHTED":  "true",
		"NETRAND_LOG_LEVEL": "debug",
		"OTHER_ROUNDS":      "77",
	})))
	assert.Equal(t, 3, c.Rounds)
	assert.Equal(t, int64(-9), c.Seed)
	assert.True(t, c.Weighted)
	assert.Equal(t, "debug", c.LogLevel)

	for _, key := range []string{"NETRAND_LIMIT", "NETRAND_SEED", "NETRAND_WEIGHTED"} {
		err := config.Default().ApplyEnv(lookupFrom(map[string]string{key: "x"}))
		require.ErrorIs(t, err, config.ErrInvalidConfig, key)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*config.Config)
	}{
		{"rounds", func(c *config.Config) { c.Rounds = -1 }},
		{"limit", func(c *config.Config) { c.Limit = 0 }},
		{"max proposals", func(c *config.Config) { c.MaxProposals = 0 }},
		{"attempts", func(c *config.Config) { c.AttemptsPerEdge = -1 }},
		{"mode", func(c *config.Config) { c.Mode = "shuffle" }},
		{"samples", func(c *config.Config) { c.Samples = 0 }},
		{"workers", func(c *config.Config) { c.Workers = -2 }},
		{"log format", func(c *config.Config) { c.LogFormat = "xml" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := config.Default()
			tc.edit(c)
			require.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "netrand.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("rounds: 20\nlimit: 8\n"), 0o600))
	env := filepath.Join(dir, "netrand.env")
	require.NoError(t, os.WriteFile(env, []byte("NETRAND_SAMPLES=4\n"), 0o600))
	t.Setenv("NETRAND_LIMIT", "9")
	t.Cleanup(func() { os.Unsetenv("NETRAND_SAMPLES") })

	c, err := config.Load(yml, env)
	require.NoError(t, err)
	assert.Equal(t, 20, c.Rounds)
	assert.Equal(t, 9, c.Limit, "environment beats the file")
	assert.Equal(t, 4, c.Samples, "dotenv feeds the environment")

	_, err = config.Load(filepath.Join(dir, "missing.yaml"), "")
	require.Error(t, err)
	_, err = config.Load("", filepath.Join(dir, "missing.env"))
	require.Error(t, err)
}

func TestClampLimit(t *testing.T) {
	c := config.Default()
	assert.Equal(t, 15, c.ClampLimit(100))
	assert.Equal(t, 6, c.ClampLimit(6))
	assert.Equal(t, 1, c.ClampLimit(0))
}
