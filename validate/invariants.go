package validate

import (
	"fmt"
	"math"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Predicate is a named condition on a value.
type Predicate[V any] struct {
	Description string
	Test        func(V) bool
}

// Field checks that value satisfies the predicate. msgAndArgs describe which value is being
// checked, e.g. ("price of product %d", id).
func Field[V any](t TestingT, value V, p Predicate[V], msgAndArgs ...interface{}) bool {
	if p.Test(value) {
		return true
	}
	report(t, &AssertionFailure{
		Message:  formatMessage("invariant did not hold", msgAndArgs),
		Expected: p.Description,
		Actual:   describe(value),
	})
	debugDump(t, "value that failed "+p.Description, value)
	return false
}

// Describe a value for a failure message. Undefined optionals are shown as "absent", so that a
// missing field reads differently from one that is present but wrong.
func describe(value interface{}) string {
	switch v := value.(type) {
	case ldvalue.OptionalString:
		if s, ok := v.Get(); ok {
			return fmt.Sprintf("%q", s)
		}
		return "absent"
	case ldvalue.OptionalInt:
		if n, ok := v.Get(); ok {
			return fmt.Sprint(n)
		}
		return "absent"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

type number interface {
	~int | ~int64 | ~float64
}

func Positive[N number]() Predicate[N] {
	return Predicate[N]{Description: "> 0", Test: func(n N) bool { return n > 0 }}
}

func NonNegative[N number]() Predicate[N] {
	return Predicate[N]{Description: ">= 0", Test: func(n N) bool { return n >= 0 }}
}

// Between is an inclusive range.
func Between[N number](lo, hi N) Predicate[N] {
	return Predicate[N]{
		Description: fmt.Sprintf("between %v and %v", lo, hi),
		Test:        func(n N) bool { return n >= lo && n <= hi },
	}
}

func LessThan[N number](limit N) Predicate[N] {
	return Predicate[N]{
		Description: fmt.Sprintf("< %v", limit),
		Test:        func(n N) bool { return n < limit },
	}
}

func ApproxEquals(expected, delta float64) Predicate[float64] {
	return Predicate[float64]{
		Description: fmt.Sprintf("%v (within %v)", expected, delta),
		Test:        func(n float64) bool { return math.Abs(n-expected) <= delta },
	}
}

func Equals[V comparable](expected V) Predicate[V] {
	return Predicate[V]{
		Description: describe(expected),
		Test:        func(v V) bool { return v == expected },
	}
}

// OneOf is set membership.
func OneOf[V comparable](values ...V) Predicate[V] {
	set := make(map[V]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return Predicate[V]{
		Description: fmt.Sprintf("one of %v", values),
		Test: func(v V) bool {
			_, ok := set[v]
			return ok
		},
	}
}

func NonEmpty() Predicate[string] {
	return Predicate[string]{Description: "a non-empty string", Test: func(s string) bool { return s != "" }}
}

// Present is for a string field the service must include, even though it may be "".
func Present() Predicate[ldvalue.OptionalString] {
	return Predicate[ldvalue.OptionalString]{
		Description: "present",
		Test:        func(s ldvalue.OptionalString) bool { return s.IsDefined() },
	}
}

// HasString is for a string field that must be present with an exact value.
func HasString(expected string) Predicate[ldvalue.OptionalString] {
	return Predicate[ldvalue.OptionalString]{
		Description: fmt.Sprintf("%q", expected),
		Test: func(s ldvalue.OptionalString) bool {
			v, ok := s.Get()
			return ok && v == expected
		},
	}
}

func PresentInt() Predicate[ldvalue.OptionalInt] {
	return Predicate[ldvalue.OptionalInt]{
		Description: "present",
		Test:        func(n ldvalue.OptionalInt) bool { return n.IsDefined() },
	}
}

func HasInt(expected int) Predicate[ldvalue.OptionalInt] {
	return Predicate[ldvalue.OptionalInt]{
		Description: fmt.Sprint(expected),
		Test: func(n ldvalue.OptionalInt) bool {
			v, ok := n.Get()
			return ok && v == expected
		},
	}
}

// NotNil is for pointer fields, such as an optional nested object.
func NotNil[P any]() Predicate[*P] {
	return Predicate[*P]{Description: "present", Test: func(p *P) bool { return p != nil }}
}

// NotEmptySlice is for lists that must have at least one element.
func NotEmptySlice[E any]() Predicate[[]E] {
	return Predicate[[]E]{Description: "not empty", Test: func(s []E) bool { return len(s) > 0 }}
}

// PresentSlice is for a list field that must be in the body, even if it is empty.
func PresentSlice[E any]() Predicate[[]E] {
	return Predicate[[]E]{Description: "present", Test: func(s []E) bool { return s != nil }}
}
