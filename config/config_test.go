package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func lookupIn(env map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
}

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, DefaultBaseURL, c.BaseURL)
	assert.Equal(t, DefaultTimeout, c.Timeout.Duration())
	assert.Equal(t, DefaultLatencyBudget, c.LatencyBudget.Duration())
	assert.Equal(t, Credentials{Username: "mor_2314", Password: "83r5^_"}, c.Credentials)
	assert.False(t, c.AcceptBrotli)
	assert.NoError(t, c.Validate())
}

func TestReadFile(t *testing.T) {
	path := writeFile(t, `
base_url: http://localhost:8080
timeout: 5s
credentials:
  username: johnd
headers:
  X-Run-Id: abc
`)
	c := Default()
	require.NoError(t, c.readFile(path))

	assert.Equal(t, "http://localhost:8080", c.BaseURL)
	assert.Equal(t, time.Second*5, c.Timeout.Duration())
	assert.Equal(t, DefaultLatencyBudget, c.LatencyBudget.Duration())
	assert.Equal(t, "johnd", c.Credentials.Username)
	assert.Equal(t, map[string]string{"X-Run-Id": "abc"}, c.Headers)
}

func TestReadFileErrors(t *testing.T) {
	c := Default()
	assert.Error(t, c.readFile(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, c.readFile(writeFile(t, "timeout: soon\n")))
	assert.Error(t, c.readFile(writeFile(t, "base_url: [\n")))
}

func TestDurationRoundTripsInYAML(t *testing.T) {
	data, err := yaml.Marshal(Default())
	require.NoError(t, err)
	assert.Contains(t, string(data), "timeout: 30s")

	var c Config
	require.NoError(t, yaml.Unmarshal(data, &c))
	assert.Equal(t, DefaultTimeout, c.Timeout.Duration())
}

func TestApplyEnv(t *testing.T) {
	c := Default()
	require.NoError(t, c.applyEnv(lookupIn(map[string]string{
		EnvBaseURL:       "https://staging.example.com",
		EnvTimeout:       "10s",
		EnvLatencyBudget: "500ms",
		EnvUsername:      "johnd",
		EnvPassword:      "m38rmF$",
		EnvBrotli:        "true",
	})))

	assert.Equal(t, "https://staging.example.com", c.BaseURL)
	assert.Equal(t, time.Second*10, c.Timeout.Duration())
	assert.Equal(t, time.Millisecond*500, c.LatencyBudget.Duration())
	assert.Equal(t, Credentials{Username: "johnd", Password: "m38rmF$"}, c.Credentials)
	assert.True(t, c.AcceptBrotli)
}

func TestApplyEnvIgnoresEmptyValues(t *testing.T) {
	c := Default()
	require.NoError(t, c.applyEnv(lookupIn(map[string]string{
		EnvBaseURL: "",
		EnvTimeout: "",
	})))
	assert.Equal(t, Default(), c)
}

func TestApplyEnvErrors(t *testing.T) {
	for _, env := range []map[string]string{
		{EnvTimeout: "thirty"},
		{EnvLatencyBudget: "1 second"},
		{EnvBrotli: "maybe"},
	} {
		assert.Error(t, Default().applyEnv(lookupIn(env)))
	}
}

func TestLoadUsesEnvironmentOverFile(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://from-env:9000")
	path := writeFile(t, "base_url: http://from-file:8000\nlatency_budget: 2s\n")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:9000", c.BaseURL)
	assert.Equal(t, time.Second*2, c.LatencyBudget.Duration())
}

func TestValidate(t *testing.T) {
	for name, modify := range map[string]func(*Config){
		"empty URL":       func(c *Config) { c.BaseURL = "" },
		"relative URL":    func(c *Config) { c.BaseURL = "fakestoreapi.com" },
		"unsupported URL": func(c *Config) { c.BaseURL = "ftp://fakestoreapi.com" },
		"zero timeout":    func(c *Config) { c.Timeout = 0 },
		"negative budget": func(c *Config) { c.LatencyBudget = Duration(-time.Second) },
	} {
		t.Run(name, func(t *testing.T) {
			c := Default()
			modify(c)
			assert.Error(t, c.Validate())
		})
	}
}
