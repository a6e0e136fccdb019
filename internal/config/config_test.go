package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	c, err := LoadFromEnv()
	require.NoError(t, err)

	require.Equal(t, "dev", c.Env)
	require.Equal(t, "text", c.Log.Format)
	require.Equal(t, "info", c.Log.Level)
	require.Empty(t, c.Countries.Extra)
	require.False(t, c.Demo.Enabled)
	require.Equal(t, 4, c.Demo.Workers)
	require.True(t, c.Console.Colours)
	require.Equal(t, "> ", c.Console.Prompt)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "stage")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SCOREBOARD_EXTRA_COUNTRIES", "Scotland,Wales")
	t.Setenv("SCOREBOARD_DEMO", "true")
	t.Setenv("SCOREBOARD_DEMO_WORKERS", "8")
	t.Setenv("CONSOLE_COLOURS", "false")

	c, err := LoadFromEnv()
	require.NoError(t, err)

	require.Equal(t, "stage", c.Env)
	require.Equal(t, "json", c.Log.Format)
	require.Equal(t, "debug", c.Log.Level)
	require.Equal(t, []string{"Scotland", "Wales"}, c.Countries.Extra)
	require.True(t, c.Demo.Enabled)
	require.Equal(t, 8, c.Demo.Workers)
	require.False(t, c.Console.Colours)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown log format", env: map[string]string{"LOG_FORMAT": "xml"}},
		{name: "unknown log level", env: map[string]string{"LOG_LEVEL": "trace"}},
		{name: "unknown env", env: map[string]string{"APP_ENV": "qa"}},
		{name: "zero workers", env: map[string]string{"SCOREBOARD_DEMO_WORKERS": "0"}},
		{name: "workers not a number", env: map[string]string{"SCOREBOARD_DEMO_WORKERS": "many"}},
		{name: "demo in prod", env: map[string]string{"APP_ENV": "prod", "SCOREBOARD_DEMO": "true"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := LoadFromEnv()
			require.Error(t, err)
		})
	}
}
