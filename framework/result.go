package framework

import (
	"fmt"
	"io"
	"strings"
)

// Outcome is how a single test ended.
type Outcome int

const (
	Passed Outcome = iota
	Failed
	Errored
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Passed:
		return "PASSED"
	case Failed:
		return "FAILED"
	case Errored:
		return "ERROR"
	case Skipped:
		return "SKIPPED"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Outcome Outcome
}

func (r *Results) add(result TestResult) {
	r.Tests = append(r.Tests, result)
	if result.Outcome == Failed || result.Outcome == Errored {
		r.Failures = append(r.Failures, result)
	}
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Count returns the number of tests that ended with the specified outcome.
func (r Results) Count(outcome Outcome) int {
	n := 0
	for _, t := range r.Tests {
		if t.Outcome == outcome {
			n++
		}
	}
	return n
}

type TestID struct {
	Path []string
}

// Plus returns a new TestID for a subtest of this one. It never shares the Path array.
func (t TestID) Plus(name string) TestID {
	path := make([]string, 0, len(t.Path)+1)
	return TestID{Path: append(append(path, t.Path...), name)}
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

// PrintResults writes a summary of the test run: a line per failed or errored test, followed
// by the totals.
func PrintResults(out io.Writer, results Results) {
	if results.OK() {
		fmt.Fprintln(out, "All tests passed")
	} else {
		fmt.Fprintf(out, "Some tests did not pass (%d):\n", len(results.Failures))
		for _, f := range results.Failures {
			fmt.Fprintf(out, "  %s: %s\n", f.Outcome, f.TestID)
			for _, e := range f.Errors {
				for _, line := range strings.Split(e.Error(), "\n") {
					fmt.Fprintf(out, "    %s\n", line)
				}
			}
		}
	}
	fmt.Fprintf(out, "\n%d passed, %d failed, %d errored, %d skipped\n",
		results.Count(Passed), results.Count(Failed), results.Count(Errored), results.Count(Skipped))
}
