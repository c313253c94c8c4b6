// Package validate contains assertions about responses from the API under test.
//
// The functions take a TestingT, which both *testing.T and our own test scope satisfy. Functions
// whose names start with Require stop the test when they fail, as the require package does; the
// others record the failure, return false, and let the test go on to make unrelated assertions.
package validate

import (
	"errors"
	"fmt"

	"github.com/fakestore-qa/store-contract-tests/client"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// TestingT is the subset of *testing.T used by assertions. It is the same as require.TestingT.
type TestingT interface {
	Errorf(format string, args ...interface{})
	FailNow()
}

type debugger interface {
	Debug(format string, args ...interface{})
}

func report(t TestingT, err error) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	t.Errorf("%s", err)
}

func debugDump(t TestingT, label string, value interface{}) {
	if d, ok := t.(debugger); ok {
		d.Debug("%s: %s", label, spew.Sdump(value))
	}
}

// Status checks the response status code.
func Status(t TestingT, resp *client.Response, expected int, msgAndArgs ...interface{}) bool {
	if resp.StatusCode == expected {
		return true
	}
	report(t, &AssertionFailure{
		Message:  formatMessage("unexpected status code", msgAndArgs),
		Expected: expected,
		Actual:   resp.StatusCode,
	})
	return false
}

func RequireStatus(t TestingT, resp *client.Response, expected int, msgAndArgs ...interface{}) {
	if !Status(t, resp, expected, msgAndArgs...) {
		t.FailNow()
	}
}

// IsNull reports whether the body was the literal JSON null. The service uses a null body with a
// 200 status in place of an error status in some cases, so this is a normal outcome, not a
// parsing problem.
func IsNull(resp *client.Response) bool {
	return resp.Body.IsNull()
}

// Null checks that the body is exactly the text "null". An empty body does not qualify.
func Null(t TestingT, resp *client.Response, msgAndArgs ...interface{}) bool {
	if resp.RawBody == "null" {
		return true
	}
	actual := fmt.Sprintf("%s body %q", resp.Body.Kind(), truncate(resp.RawBody))
	report(t, &AssertionFailure{
		Message:  formatMessage("expected literal null body", msgAndArgs),
		Expected: `"null"`,
		Actual:   actual,
	})
	return false
}

// Decode reads a JSON object body into a value of type S.
//
// A null body is reported as an assertion failure, since the request succeeded but did not
// return the resource. A body that is not valid JSON, or is valid JSON of the wrong shape, is
// reported as a DeserializationFailure. Fields missing from the body are not an error here.
func Decode[S any](t TestingT, resp *client.Response) (S, bool) {
	var result S
	shape := fmt.Sprintf("%T", result)
	if !checkDecodable(t, resp, shape, ldvalue.ObjectType) {
		return result, false
	}
	if err := resp.Body.Decode(&result); err != nil {
		report(t, &DeserializationFailure{Shape: shape, RawBody: resp.RawBody, Err: err})
		return result, false
	}
	return result, true
}

func RequireDecode[S any](t TestingT, resp *client.Response) S {
	result, ok := Decode[S](t, resp)
	if !ok {
		t.FailNow()
	}
	return result
}

// DecodeList reads a JSON array body into a slice of S. The slice always has one element for
// each element of the array; if it somehow does not, that is reported as a failure.
func DecodeList[S any](t TestingT, resp *client.Response) ([]S, bool) {
	var result []S
	shape := fmt.Sprintf("%T", result)
	if !checkDecodable(t, resp, shape, ldvalue.ArrayType) {
		return nil, false
	}
	if err := resp.Body.Decode(&result); err != nil {
		report(t, &DeserializationFailure{Shape: shape, RawBody: resp.RawBody, Err: err})
		return nil, false
	}
	if expected := resp.Body.Value().Count(); len(result) != expected {
		report(t, &AssertionFailure{
			Message:  "decoded list length does not match JSON array length",
			Expected: expected,
			Actual:   len(result),
		})
		return result, false
	}
	return result, true
}

func RequireDecodeList[S any](t TestingT, resp *client.Response) []S {
	result, ok := DecodeList[S](t, resp)
	if !ok {
		t.FailNow()
	}
	return result
}

func checkDecodable(t TestingT, resp *client.Response, shape string, wantType ldvalue.ValueType) bool {
	switch resp.Body.Kind() {
	case client.NullBody:
		report(t, &AssertionFailure{Message: fmt.Sprintf("expected %s but response body was null", shape)})
		return false
	case client.MalformedBody:
		report(t, &DeserializationFailure{Shape: shape, RawBody: resp.RawBody, Err: errors.New("not valid JSON")})
		return false
	}
	if actualType := resp.Body.Value().Type(); actualType != wantType {
		report(t, &DeserializationFailure{
			Shape:   shape,
			RawBody: resp.RawBody,
			Err:     fmt.Errorf("expected a JSON %s but got a JSON %s", wantType, actualType),
		})
		return false
	}
	return true
}

// MeasureLatency returns the time the request took, in milliseconds. The time was recorded by
// the client when the request was made.
func MeasureLatency(resp *client.Response) int64 {
	return resp.ElapsedMillis()
}

// Latency checks that the request took less than budgetMillis milliseconds.
func Latency(t TestingT, resp *client.Response, budgetMillis int64, msgAndArgs ...interface{}) bool {
	actual := MeasureLatency(resp)
	if actual < budgetMillis {
		return true
	}
	report(t, &AssertionFailure{
		Message:  formatMessage("response took too long", msgAndArgs),
		Expected: fmt.Sprintf("< %dms", budgetMillis),
		Actual:   fmt.Sprintf("%dms", actual),
	})
	return false
}
