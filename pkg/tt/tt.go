// Package tt supports table-driven tests with little boilerplate.
//
// See the test case for this package for example usage.
package tt

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Table represents a test table.
type Table []*Case

// Case represents a test case. It is created by the Args function, and
// offers setters that augment and return itself, so calls can be chained like
// Args(...).Rets(...).
type Case struct {
	args     []any
	wantRets []any
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets modifies the test case so that it requires the return values to match
// the given values, and returns the receiver. A want value may implement the
// Matcher interface, in which case its Match method decides; errors are
// matched by message; everything else is compared with cmp.Equal, treating
// nil and empty slices and maps as equal.
func (c *Case) Rets(rets ...any) *Case {
	c.wantRets = rets
	return c
}

// FnToTest describes a function to test.
type FnToTest struct {
	name string
	body any
}

// Fn makes a new FnToTest with the given function name and body. The body
// must not be variadic; wrap variadic functions in a fixed-arity closure.
func Fn(name string, body any) *FnToTest {
	return &FnToTest{name: name, body: body}
}

// T is the interface for accessing testing.T.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test tests a function against test cases.
func Test(t T, fn *FnToTest, tests Table) {
	t.Helper()
	for _, test := range tests {
		rets := call(fn.body, test.args)
		if !match(test.wantRets, rets) {
			t.Errorf("%s(%s) -> %s, want %s", fn.name,
				sprintCommaDelimited(test.args...),
				sprintRets(rets...), sprintRets(test.wantRets...))
		}
	}
}

// RetValue is an empty interface used in the Matcher interface.
type RetValue any

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match. The
	// argument is of type RetValue so that it cannot be implemented
	// accidentally.
	Match(RetValue) bool
}

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }

// ErrorWithMsg returns a Matcher that matches a non-nil error whose message
// is exactly msg.
func ErrorWithMsg(msg string) Matcher { return errorMatcher{msg} }

type errorMatcher struct{ msg string }

func (m errorMatcher) Match(ret RetValue) bool {
	err, ok := ret.(error)
	return ok && err != nil && err.Error() == m.msg
}

func match(wants, actuals []any) bool {
	if len(wants) != len(actuals) {
		return false
	}
	for i, want := range wants {
		if !matchOne(want, actuals[i]) {
			return false
		}
	}
	return true
}

func matchOne(want, actual any) bool {
	if m, ok := want.(Matcher); ok {
		return m.Match(actual)
	}
	if wantErr, ok := want.(error); ok {
		actualErr, ok := actual.(error)
		if !ok {
			return false
		}
		if wantErr == nil || actualErr == nil {
			return wantErr == actualErr
		}
		return wantErr.Error() == actualErr.Error()
	}
	return cmp.Equal(want, actual, cmpopts.EquateEmpty())
}

func sprintRets(rets ...any) string {
	if len(rets) == 1 {
		return fmt.Sprint(rets[0])
	}
	return "(" + sprintCommaDelimited(rets...) + ")"
}

func sprintCommaDelimited(args ...any) string {
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, arg)
	}
	return sb.String()
}

func call(fn any, args []any) []any {
	fnReflect := reflect.ValueOf(fn)
	fnType := fnReflect.Type()
	argsReflect := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			// An untyped nil argument must take on the type of the
			// corresponding parameter; reflect.ValueOf(nil) would lose it.
			argsReflect[i] = reflect.Zero(fnType.In(i))
		} else {
			argsReflect[i] = reflect.ValueOf(arg)
		}
	}
	retsReflect := fnReflect.Call(argsReflect)
	rets := make([]any, len(retsReflect))
	for i, retReflect := range retsReflect {
		rets[i] = retReflect.Interface()
	}
	return rets
}
