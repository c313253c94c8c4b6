// Package storetests contains the store API contract tests themselves and their supporting API.
//
// Test harness infrastructure that is not specific to this API, such as the test context and
// result reporting, is in the lower-level framework package. Building and sending requests is
// in the client package, and generic assertions about responses are in the validate package.
package storetests
