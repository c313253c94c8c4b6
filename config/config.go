// Package config loads the settings for a test run.
//
// Settings come from, in increasing order of precedence: built-in defaults, an optional YAML
// file, a .env file in the working directory, environment variables, and finally command-line
// flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL       = "https://fakestoreapi.com"
	DefaultTimeout       = time.Second * 30
	DefaultLatencyBudget = time.Second * 3

	// These are the credentials of a user that the public service ships with.
	DefaultUsername = "mor_2314"
	DefaultPassword = "83r5^_"
)

const (
	EnvBaseURL       = "FAKESTORE_BASE_URL"
	EnvTimeout       = "FAKESTORE_TIMEOUT"
	EnvLatencyBudget = "FAKESTORE_LATENCY_BUDGET"
	EnvUsername      = "FAKESTORE_USERNAME"
	EnvPassword      = "FAKESTORE_PASSWORD"
	EnvBrotli        = "FAKESTORE_BROTLI"
)

type Config struct {
	BaseURL string `yaml:"base_url"`

	// Timeout bounds each request. There is no retry.
	Timeout Duration `yaml:"timeout"`

	// LatencyBudget is the limit for the tests that assert on response time.
	LatencyBudget Duration `yaml:"latency_budget"`

	Credentials Credentials `yaml:"credentials"`

	AcceptBrotli bool `yaml:"accept_brotli"`

	// Headers are extra headers for every request.
	Headers map[string]string `yaml:"headers,omitempty"`
}

// Credentials are for the valid-login test.
type Credentials struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Duration is a time.Duration written as a string like "30s" in YAML.
type Duration time.Duration

func (d Duration) Duration() time.Duration { return time.Duration(d) }

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func Default() *Config {
	return &Config{
		BaseURL:       DefaultBaseURL,
		Timeout:       Duration(DefaultTimeout),
		LatencyBudget: Duration(DefaultLatencyBudget),
		Credentials: Credentials{
			Username: DefaultUsername,
			Password: DefaultPassword,
		},
	}
}

// Load builds a Config from the defaults, the YAML file at path if path is not empty, a .env
// file if one exists, and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	// Load .env file if it exists; variables already set in the environment win
	_ = godotenv.Load()

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		c.BaseURL = v
	}
	for name, target := range map[string]*Duration{
		EnvTimeout:       &c.Timeout,
		EnvLatencyBudget: &c.LatencyBudget,
	} {
		if v, ok := lookup(name); ok && v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", name, err)
			}
			*target = Duration(d)
		}
	}
	if v, ok := lookup(EnvUsername); ok {
		c.Credentials.Username = v
	}
	if v, ok := lookup(EnvPassword); ok {
		c.Credentials.Password = v
	}
	if v, ok := lookup(EnvBrotli); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvBrotli, err)
		}
		c.AcceptBrotli = b
	}
	return nil
}

// Validate reports a configuration that cannot be used to start a test run.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base URL %q: must be an absolute http or https URL", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout.Duration())
	}
	if c.LatencyBudget <= 0 {
		return fmt.Errorf("latency budget must be positive, got %s", c.LatencyBudget.Duration())
	}
	return nil
}
