package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fakestore-qa/store-contract-tests/config"
	"github.com/fakestore-qa/store-contract-tests/framework"
)

type commandParams struct {
	configFile    string
	baseURL       string
	timeout       time.Duration
	latencyBudget time.Duration
	brotli        bool
	filters       framework.RegexFilters
	debug         bool
	debugAll      bool
	setFlags      map[string]bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.StringVar(&c.configFile, "config", "", "YAML configuration file")
	fs.StringVar(&c.baseURL, "url", config.DefaultBaseURL, "base URL of the store API")
	fs.DurationVar(&c.timeout, "timeout", config.DefaultTimeout, "timeout for each request")
	fs.DurationVar(&c.latencyBudget, "latency-budget", config.DefaultLatencyBudget,
		"maximum acceptable response time in performance tests")
	fs.BoolVar(&c.brotli, "brotli", false, "ask the service for brotli-compressed responses")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return false
	}
	c.setFlags = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { c.setFlags[f.Name] = true })
	return true
}

// applyTo overrides configuration values with any flags that were given explicitly.
func (c *commandParams) applyTo(cfg *config.Config) {
	if c.setFlags["url"] {
		cfg.BaseURL = c.baseURL
	}
	if c.setFlags["timeout"] {
		cfg.Timeout = config.Duration(c.timeout)
	}
	if c.setFlags["latency-budget"] {
		cfg.LatencyBudget = config.Duration(c.latencyBudget)
	}
	if c.setFlags["brotli"] {
		cfg.AcceptBrotli = c.brotli
	}
}
