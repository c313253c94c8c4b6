package validate

import (
	"fmt"
	"strings"
)

// maxBodyInMessage keeps a huge response from flooding the console; the full body is always
// in the debug log.
const maxBodyInMessage = 2000

// AssertionFailure means that a response was received and understood, but something about it
// was not what the test expected.
type AssertionFailure struct {
	Message  string
	Expected interface{}
	Actual   interface{}
}

func (f *AssertionFailure) Error() string {
	if f.Expected == nil && f.Actual == nil {
		return f.Message
	}
	return fmt.Sprintf("%s: expected %v, got %v", f.Message, f.Expected, f.Actual)
}

// DeserializationFailure means that a response body could not be turned into the shape the
// test asked for. The raw body is part of the message.
type DeserializationFailure struct {
	Shape   string
	RawBody string
	Err     error
}

func (f *DeserializationFailure) Error() string {
	return fmt.Sprintf("response body could not be read as %s: %s\nbody: %s",
		f.Shape, f.Err, truncate(f.RawBody))
}

func (f *DeserializationFailure) Unwrap() error {
	return f.Err
}

func truncate(s string) string {
	if s == "" {
		return "(empty)"
	}
	if len(s) <= maxBodyInMessage {
		return s
	}
	return s[:maxBodyInMessage] + "..."
}

func formatMessage(defaultMessage string, msgAndArgs []interface{}) string {
	if len(msgAndArgs) == 0 {
		return defaultMessage
	}
	if format, ok := msgAndArgs[0].(string); ok {
		if len(msgAndArgs) == 1 {
			return format
		}
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	parts := make([]string, 0, len(msgAndArgs))
	for _, a := range msgAndArgs {
		parts = append(parts, fmt.Sprint(a))
	}
	return strings.Join(parts, " ")
}
