package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loggedEvent struct {
	kind    string
	id      string
	outcome Outcome
	detail  string
}

type recordingTestLogger struct {
	events []loggedEvent
}

func (r *recordingTestLogger) TestStarted(id TestID) {
	r.events = append(r.events, loggedEvent{kind: "started", id: id.String()})
}

func (r *recordingTestLogger) TestError(id TestID, err error) {
	r.events = append(r.events, loggedEvent{kind: "error", id: id.String(), detail: err.Error()})
}

func (r *recordingTestLogger) TestFinished(id TestID, outcome Outcome, debugOutput CapturedOutput) {
	e := loggedEvent{kind: "finished", id: id.String(), outcome: outcome}
	if len(debugOutput) != 0 {
		e.detail = debugOutput[0].Message
	}
	r.events = append(r.events, e)
}

func (r *recordingTestLogger) TestSkipped(id TestID, reason string) {
	r.events = append(r.events, loggedEvent{kind: "skipped", id: id.String(), detail: reason})
}

func runOne(action func(*Context)) (Results, *recordingTestLogger) {
	logger := &recordingTestLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("test", action)
	})
	return results, logger
}

func requireSingleResult(t *testing.T, results Results) TestResult {
	require.Len(t, results.Tests, 1)
	return results.Tests[0]
}

func TestPassingTest(t *testing.T) {
	results, logger := runOne(func(c *Context) {
		c.Debug("hello %s", "world")
	})

	assert.True(t, results.OK())
	r := requireSingleResult(t, results)
	assert.Equal(t, Passed, r.Outcome)
	assert.Equal(t, []loggedEvent{
		{kind: "started", id: "test"},
		{kind: "finished", id: "test", outcome: Passed, detail: "hello world"},
	}, logger.events)
}

func TestErrorfFailsTestButContinues(t *testing.T) {
	reachedEnd := false
	results, _ := runOne(func(c *Context) {
		c.Errorf("first %d", 1)
		c.Errorf("second")
		reachedEnd = true
	})

	assert.True(t, reachedEnd)
	assert.False(t, results.OK())
	r := requireSingleResult(t, results)
	assert.Equal(t, Failed, r.Outcome)
	require.Len(t, r.Errors, 2)
	assert.Equal(t, "first 1", r.Errors[0].Error())
	assert.Equal(t, results.Tests, results.Failures)
}

func TestFailNowStopsTest(t *testing.T) {
	reachedEnd := false
	results, _ := runOne(func(c *Context) {
		c.Errorf("bad")
		c.FailNow()
		reachedEnd = true
	})

	assert.False(t, reachedEnd)
	assert.Equal(t, Failed, requireSingleResult(t, results).Outcome)
}

func TestFailNowWithoutMessage(t *testing.T) {
	results, _ := runOne(func(c *Context) { c.FailNow() })

	r := requireSingleResult(t, results)
	assert.Equal(t, Failed, r.Outcome)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0].Error(), "no failure message")
}

func TestAbortIsErrorNotFailure(t *testing.T) {
	reachedEnd := false
	results, _ := runOne(func(c *Context) {
		c.Abort(errors.New("connection refused"))
		reachedEnd = true
	})

	assert.False(t, reachedEnd)
	assert.False(t, results.OK())
	r := requireSingleResult(t, results)
	assert.Equal(t, Errored, r.Outcome)
	assert.Equal(t, []error{errors.New("connection refused")}, r.Errors)
}

func TestAbortAfterAssertionFailureIsStillError(t *testing.T) {
	results, _ := runOne(func(c *Context) {
		c.Errorf("wrong status")
		c.Abort(errors.New("timed out"))
	})

	r := requireSingleResult(t, results)
	assert.Equal(t, Errored, r.Outcome)
	assert.Len(t, r.Errors, 2)
}

func TestUnexpectedPanicIsError(t *testing.T) {
	results, _ := runOne(func(c *Context) {
		var m map[string]int
		m["x"] = 1
	})

	r := requireSingleResult(t, results)
	assert.Equal(t, Errored, r.Outcome)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0].Error(), "unexpected panic")
}

func TestSkip(t *testing.T) {
	results, logger := runOne(func(c *Context) {
		c.SkipWithReason("not today")
	})

	assert.True(t, results.OK())
	assert.Equal(t, Skipped, requireSingleResult(t, results).Outcome)
	assert.Equal(t, loggedEvent{kind: "skipped", id: "test", detail: "not today"}, logger.events[len(logger.events)-1])
}

func TestDeferredFunctionsRunInReverseOrderAfterFailure(t *testing.T) {
	var calls []string
	runOne(func(c *Context) {
		c.Defer(func() { calls = append(calls, "first") })
		c.Defer(func() { calls = append(calls, "second") })
		c.FailNow()
	})

	assert.Equal(t, []string{"second", "first"}, calls)
}

func TestSubtestsRunInOrderAndIndependently(t *testing.T) {
	var order []string
	results := Run(nil, nil, func(c *Context) {
		c.Run("group", func(c *Context) {
			c.Run("a", func(c *Context) {
				order = append(order, "a")
				c.FailNow()
			})
			c.Run("b", func(c *Context) {
				order = append(order, "b")
			})
		})
	})

	assert.Equal(t, []string{"a", "b"}, order)
	require.Len(t, results.Tests, 2)
	assert.Equal(t, "group/a", results.Tests[0].TestID.String())
	assert.Equal(t, Failed, results.Tests[0].Outcome)
	assert.Equal(t, "group/b", results.Tests[1].TestID.String())
	assert.Equal(t, Passed, results.Tests[1].Outcome)
}

func TestGroupThatFailsItselfIsCounted(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("group", func(c *Context) {
			c.Run("a", func(c *Context) {})
			c.Errorf("setup problem")
		})
	})

	require.Len(t, results.Tests, 2)
	assert.Equal(t, "group", results.Tests[1].TestID.String())
	assert.Equal(t, Failed, results.Tests[1].Outcome)
}

func TestFilterSkipsExcludedTests(t *testing.T) {
	ran := map[string]bool{}
	filter := func(id TestID) bool { return id.String() != "group/b" }
	results := Run(filter, nil, func(c *Context) {
		c.Run("group", func(c *Context) {
			c.Run("a", func(c *Context) { ran["a"] = true })
			c.Run("b", func(c *Context) { ran["b"] = true })
		})
	})

	assert.Equal(t, map[string]bool{"a": true}, ran)
	assert.Equal(t, 1, results.Count(Passed))
	assert.Equal(t, 1, results.Count(Skipped))
}

func TestErrorfStripsLeadingWhitespaceForLogger(t *testing.T) {
	_, logger := runOne(func(c *Context) {
		c.Errorf("\n\tError Trace:\tx")
	})

	require.Len(t, logger.events, 3)
	assert.Equal(t, "error", logger.events[1].kind)
	assert.Equal(t, "Error Trace:\tx", logger.events[1].detail)
}

func TestTestIDPlusDoesNotShareArray(t *testing.T) {
	base := TestID{Path: make([]string, 1, 10)}
	base.Path[0] = "products"
	a := base.Plus("a")
	b := base.Plus("b")

	assert.Equal(t, "products/a", a.String())
	assert.Equal(t, "products/b", b.String())
}
