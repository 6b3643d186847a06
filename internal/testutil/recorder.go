package testutil

import (
	"fmt"
	"strings"

	"github.com/roach88/criteria/internal/convert"
	"github.com/roach88/criteria/internal/criteria"
)

// Call is one recorded builder call. Nested holds the calls issued inside
// a WhereGroup scope.
type Call struct {
	Method    string
	Field     string
	Operator  string
	Value     criteria.Value
	Connector convert.Connector
	Direction criteria.Direction
	N         int
	Nested    []Call
}

// String renders the call in the compact form used by Recorder.Script.
func (c Call) String() string {
	switch c.Method {
	case "Where", "OrWhere":
		return fmt.Sprintf("%s(%s %s %s)", c.Method, c.Field, c.Operator, c.Value.Text())
	case "WhereGroup":
		parts := make([]string, len(c.Nested))
		for i, n := range c.Nested {
			parts[i] = n.String()
		}
		return fmt.Sprintf("WhereGroup(%s){%s}", c.Connector, strings.Join(parts, " "))
	case "OrderBy":
		return fmt.Sprintf("OrderBy(%s %s)", c.Field, c.Direction)
	default:
		return fmt.Sprintf("%s(%d)", c.Method, c.N)
	}
}

// Recorder is a convert.QueryBuilder that records every call it receives.
//
// Tests assert on the call sequence rather than on backend syntax:
//
//	rec := testutil.NewRecorder()
//	_, err := convert.Convert(rec, c)
//	assert.Equal(t, []string{"Where(age > 18)", "Limit(10)"}, rec.Script())
//
// Not safe for concurrent use.
type Recorder struct {
	calls []Call
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Calls returns the recorded top-level calls.
func (r *Recorder) Calls() []Call {
	return r.calls
}

// Script returns the recorded top-level calls rendered with Call.String.
func (r *Recorder) Script() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.String()
	}
	return out
}

// Count returns the number of calls with the given method, including calls
// issued inside nested scopes.
func (r *Recorder) Count(method string) int {
	return countCalls(r.calls, method)
}

func countCalls(calls []Call, method string) int {
	n := 0
	for _, c := range calls {
		if c.Method == method {
			n++
		}
		n += countCalls(c.Nested, method)
	}
	return n
}

func (r *Recorder) Where(field, operator string, value criteria.Value) {
	r.calls = append(r.calls, Call{Method: "Where", Field: field, Operator: operator, Value: value})
}

func (r *Recorder) OrWhere(field, operator string, value criteria.Value) {
	r.calls = append(r.calls, Call{Method: "OrWhere", Field: field, Operator: operator, Value: value})
}

func (r *Recorder) WhereGroup(connector convert.Connector, scope func(convert.Predicates)) {
	nested := &Recorder{}
	scope(nested)
	r.calls = append(r.calls, Call{Method: "WhereGroup", Connector: connector, Nested: nested.calls})
}

func (r *Recorder) OrderBy(field string, direction criteria.Direction) {
	r.calls = append(r.calls, Call{Method: "OrderBy", Field: field, Direction: direction})
}

func (r *Recorder) Offset(n int) {
	r.calls = append(r.calls, Call{Method: "Offset", N: n})
}

func (r *Recorder) Limit(n int) {
	r.calls = append(r.calls, Call{Method: "Limit", N: n})
}

var _ convert.QueryBuilder = (*Recorder)(nil)
