package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/markjessn/mini-pms/internal/app/api/graphql"
	"go.uber.org/zap"
)

// Call is one operation the fake API received.
type Call struct {
	Operation string
	Variables map[string]any
}

// FakeAPI is a scripted stand-in for the remote API, keyed by operation
// name. It records every call, so tests can assert not just what a handler
// returned but which queries it re-ran after a mutation.
type FakeAPI struct {
	mu        sync.Mutex
	data      map[string]json.RawMessage
	errors    map[string][]string
	calls     []Call
	srv       *httptest.Server
	unmatched func(op string)
}

// NewFakeAPI starts the fake server. It is shut down when the test ends.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	f := &FakeAPI{
		data:   make(map[string]json.RawMessage),
		errors: make(map[string][]string),
		unmatched: func(op string) {
			t.Errorf("fake API received unscripted operation %q", op)
		},
	}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

// URL is the fake server's HTTP endpoint.
func (f *FakeAPI) URL() string { return f.srv.URL }

// Client builds an API client pointed at the fake server.
func (f *FakeAPI) Client() *graphql.Client {
	return graphql.New(f.srv.URL, "ws://unused.invalid/graphql", f.srv.Client(), zap.NewNop())
}

// Stub scripts the data returned for an operation name. The value is
// marshaled once and replayed for every matching call.
func (f *FakeAPI) Stub(operation string, data any) *FakeAPI {
	raw, err := json.Marshal(data)
	if err != nil {
		panic(fmt.Sprintf("testutil: stub %s: %v", operation, err))
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[operation] = raw
	return f
}

// StubErrors scripts server-reported errors for an operation name.
func (f *FakeAPI) StubErrors(operation string, messages ...string) *FakeAPI {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors[operation] = messages
	return f
}

// Calls returns every call received so far, in order.
func (f *FakeAPI) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// Operations returns just the operation names, in call order.
func (f *FakeAPI) Operations() []string {
	calls := f.Calls()
	ops := make([]string, len(calls))
	for i, c := range calls {
		ops[i] = c.Operation
	}
	return ops
}

// CallCount returns how many times the named operation was invoked.
func (f *FakeAPI) CallCount(operation string) int {
	n := 0
	for _, c := range f.Calls() {
		if c.Operation == operation {
			n++
		}
	}
	return n
}

// ResetCalls clears the recorded calls, keeping the scripted responses.
// Useful between the arrange and act halves of a test.
func (f *FakeAPI) ResetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OperationName string         `json:"operationName"`
		Variables     map[string]any `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.calls = append(f.calls, Call{Operation: req.OperationName, Variables: req.Variables})
	data, hasData := f.data[req.OperationName]
	msgs, hasErrs := f.errors[req.OperationName]
	f.mu.Unlock()

	if !hasData && !hasErrs {
		f.unmatched(req.OperationName)
		http.Error(w, fmt.Sprintf("unscripted operation %q", req.OperationName), http.StatusBadRequest)
		return
	}

	type gqlError struct {
		Message string `json:"message"`
	}
	resp := struct {
		Data   json.RawMessage `json:"data,omitempty"`
		Errors []gqlError      `json:"errors,omitempty"`
	}{Data: data}
	for _, m := range msgs {
		resp.Errors = append(resp.Errors, gqlError{Message: m})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
