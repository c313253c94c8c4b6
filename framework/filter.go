package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

// RegexFilters is the parsed form of the -run and -skip command-line options.
//
// A -run pattern is split on "/" and each element is matched against the corresponding level
// of the test path, as "go test -run" does, so "products/category" selects the category
// tests while still entering the "products" group. Levels deeper than the pattern always
// match. A -skip pattern is matched against the whole test path.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) AsFilter(id TestID) bool {
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatchPath(id.Path)) &&
		!r.MustNotMatch.AnyMatch(id.String())
}

// RegexList is a flag.Value that accumulates one regex per occurrence of the flag.
type RegexList struct {
	patterns []regexPattern
}

type regexPattern struct {
	whole  *regexp.Regexp
	levels []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.whole.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	whole, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	p := regexPattern{whole: whole}
	for _, level := range strings.Split(value, "/") {
		rx, err := regexp.Compile(level)
		if err != nil {
			return fmt.Errorf("invalid regex %q in %q: %w", level, value, err)
		}
		p.levels = append(p.levels, rx)
	}
	r.patterns = append(r.patterns, p)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.whole.MatchString(s) {
			return true
		}
	}
	return false
}

func (r RegexList) AnyMatchPath(path []string) bool {
	for _, p := range r.patterns {
		if p.matchesPath(path) {
			return true
		}
	}
	return false
}

func (p regexPattern) matchesPath(path []string) bool {
	for i, elem := range path {
		if i >= len(p.levels) {
			break
		}
		if !p.levels[i].MatchString(elem) {
			return false
		}
	}
	return true
}

func PrintFilterDescription(out io.Writer, filters RegexFilters) {
	if filters.MustMatch.IsDefined() || filters.MustNotMatch.IsDefined() {
		fmt.Fprintln(out, "Some tests will be skipped based on the filter criteria for this test run:")
		if filters.MustMatch.IsDefined() {
			fmt.Fprintf(out, "  skip any not matching %s\n", filters.MustMatch)
		}
		if filters.MustNotMatch.IsDefined() {
			fmt.Fprintf(out, "  skip any matching %s\n", filters.MustNotMatch)
		}
		fmt.Fprintln(out)
	}
}
