package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fakestore-qa/store-contract-tests/client"
	"github.com/fakestore-qa/store-contract-tests/config"
	"github.com/fakestore-qa/store-contract-tests/framework"
	"github.com/fakestore-qa/store-contract-tests/storedef"
	"github.com/fakestore-qa/store-contract-tests/storetests"
)

const (
	exitTestsFailed = 1
	exitBadConfig   = 2
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(exitBadConfig)
	}

	cfg, err := config.Load(params.configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		os.Exit(exitBadConfig)
	}
	params.applyTo(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		os.Exit(exitBadConfig)
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	template, err := client.NewRequest(client.Config{
		BaseURL:      cfg.BaseURL,
		Timeout:      cfg.Timeout.Duration(),
		AcceptBrotli: cfg.AcceptBrotli,
		Headers:      cfg.Headers,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		os.Exit(exitBadConfig)
	}
	mainDebugLogger.Printf("Request headers: %v", template.Headers())
	mainDebugLogger.Printf("Request timeout: %s, latency budget: %s", template.Timeout(), cfg.LatencyBudget.Duration())

	fmt.Printf("Running contract tests against %s\n\n", template.BaseURL())
	framework.PrintFilterDescription(os.Stdout, params.filters)

	testLogger := &ConsoleTestLogger{
		Out:                  os.Stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := storetests.RunTestSuite(
		storetests.Params{
			Template: template,
			User: storedef.User{
				Username: cfg.Credentials.Username,
				Password: cfg.Credentials.Password,
			},
			LatencyBudget: cfg.LatencyBudget.Duration(),
		},
		params.filters.AsFilter,
		testLogger,
	)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		os.Exit(exitTestsFailed)
	}
}
