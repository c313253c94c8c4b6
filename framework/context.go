package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the state of a single test or subtest.
//
// It is used much like Go's *testing.T: assertions call Errorf to record a failure and FailNow
// to stop the test. Abort stops the test and records it as an error rather than a failure, which
// is how a test reports that it never got an answer it could make assertions about.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	errored     bool
	skipped     bool
	skipReason  string
	errors      []error
	deferred    []func()
	hasSubtests bool
}

// Run starts a test run. The action receives the root Context, and should call Run on it for
// each top-level test.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if !c.skipped {
				var addError error
				if _, ok := r.(*Context); ok {
					if len(c.errors) == 0 {
						addError = errors.New("test failed with no failure message")
					}
				} else {
					c.errored = true
					addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
				}
				if !c.errored {
					c.failed = true
				}
				if addError != nil {
					c.errors = append(c.errors, addError)
					c.env.testLogger.TestError(c.id, addError)
				}
			}
		}
		c.runDeferred()
		if len(c.id.Path) == 0 || (c.hasSubtests && c.outcome() == Passed) {
			return // only tests that made assertions of their own are counted
		}
		result := TestResult{TestID: c.id, Errors: c.errors, Outcome: c.outcome()}
		c.env.results.add(result)
	}()

	action(c)
}

func (c *Context) runDeferred() {
	for i := len(c.deferred) - 1; i >= 0; i-- {
		c.deferred[i]()
	}
	c.deferred = nil
}

func (c *Context) outcome() Outcome {
	switch {
	case c.skipped:
		return Skipped
	case c.errored:
		return Errored
	case c.failed:
		return Failed
	default:
		return Passed
	}
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest. Subtests are run in the order in which Run is called, and a failure in one
// subtest does not prevent the next one from running.
func (c *Context) Run(name string, action func(*Context)) {
	id := c.id.Plus(name)
	c.hasSubtests = true

	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		c.env.results.add(TestResult{TestID: id, Outcome: Skipped})
		return
	}
	c.env.testLogger.TestStarted(id)
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.outcome(), c1.debugLogger.Output())
	}
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, reformatError(err))
}

func (c *Context) FailNow() {
	panic(c)
}

// Abort records err as the reason this test could not be completed and exits the test.
// The test is reported as an error rather than a failure.
func (c *Context) Abort(err error) {
	c.errored = true
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Defer schedules a function to be run when the test ends, whether or not it passed. Deferred
// functions run in reverse order.
func (c *Context) Defer(fn func()) {
	c.deferred = append(c.deferred, fn)
}

func (c *Context) Failed() bool {
	return c.failed || c.errored
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

// testify's assertion messages start with a newline and are indented with tabs, which looks
// odd in our console output.
func reformatError(err error) error {
	s := err.Error()
	for len(s) > 0 && (s[0] == '\n' || s[0] == '\t') {
		s = s[1:]
	}
	if s == err.Error() {
		return err
	}
	return errors.New(s)
}
