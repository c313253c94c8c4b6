// Package framework contains the low-level implementation of test harness infrastructure
// that is not specific to the API being tested.
//
// The general model is:
//
// 1. The test harness talks to a remote HTTP service that it does not control. It only
// observes the service's responses.
//
// 2. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results.
//
// 3. A test can end in one of four ways: it passes, it fails because an assertion did not
// hold, it is aborted with an error because the harness could not get an answer from the
// service at all, or it is skipped.
//
// The domain-specific code that knows what is being tested is responsible for building the
// requests, deciding what a correct response looks like, and providing a domain-specific
// test API on top of the test context.
package framework
