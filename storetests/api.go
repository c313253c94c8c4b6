package storetests

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fakestore-qa/store-contract-tests/client"
	"github.com/fakestore-qa/store-contract-tests/framework"
	"github.com/fakestore-qa/store-contract-tests/storedef"
)

// Params is the configuration shared by every test in a run. It is created once and is not
// modified by the tests.
type Params struct {
	// Template is the base request configuration; tests specialize it per call.
	Template *client.RequestTemplate

	// User holds the credentials that the service should accept.
	User storedef.User

	// LatencyBudget is the limit for the tests that assert on response time.
	LatencyBudget time.Duration
}

// T represents a test or subtest in our store API test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is outside
// of the Go test runner, and with some extra features such as debug logging that are convenient for
// our use case. Those features are provided by our lower-level framework package.
//
// To make test assertions, you can use the assert and require packages, or the validate package,
// passing the *T as if it were a *testing.T. The request methods such as Get have a built-in check:
// if the API could not be reached at all, the test stops immediately and is reported as an error
// rather than a failure.
type T struct {
	context *framework.Context
	params  *Params
	api     *client.RequestTemplate
}

func newTestScope(c *framework.Context, params *Params) *T {
	return &T{
		context: c,
		params:  params,
		api:     params.Template.WithLogger(c.DebugLogger()),
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.params))
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

func (t *T) Defer(fn func()) {
	t.context.Defer(fn)
}

func (t *T) ID() framework.TestID {
	return t.context.ID()
}

// User returns the user whose credentials the service should accept.
func (t *T) User() storedef.User {
	return t.params.User
}

// LatencyBudgetMillis is the response-time limit, in milliseconds.
func (t *T) LatencyBudgetMillis() int64 {
	return t.params.LatencyBudget.Milliseconds()
}

// Call sends a request built from the shared template. If the request could not be completed,
// the test exits immediately: as an error for a transport failure, or as a failure if the
// request itself could not be built.
func (t *T) Call(method, path string, body interface{}) *client.Response {
	resp, err := t.api.Execute(context.Background(), method, path, body)
	if err != nil {
		var te *client.TransportError
		if errors.As(err, &te) {
			t.context.Abort(te)
		}
		t.Errorf("could not make request: %s", err)
		t.FailNow()
	}
	return resp
}

func (t *T) Get(path string) *client.Response {
	return t.Call(http.MethodGet, path, nil)
}

func (t *T) Post(path string, body interface{}) *client.Response {
	return t.Call(http.MethodPost, path, body)
}

func (t *T) Put(path string, body interface{}) *client.Response {
	return t.Call(http.MethodPut, path, body)
}

func (t *T) Delete(path string) *client.Response {
	return t.Call(http.MethodDelete, path, nil)
}
