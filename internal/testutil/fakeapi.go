package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RecordedRequest is one call received by a FakeAPI.
type RecordedRequest struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
	Body          []byte
}

// FakeAPI stands in for the remote invoice API. Routes are registered per
// method and path; anything unregistered answers 404.
type FakeAPI struct {
	server *httptest.Server

	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	requests []RecordedRequest
	auth     string
}

func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()

	f := &FakeAPI{routes: make(map[string]http.HandlerFunc)}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func (f *FakeAPI) URL() string { return f.server.URL }

// Close shuts the server down early, leaving its URL unreachable.
func (f *FakeAPI) Close() { f.server.Close() }

// RequireAuth makes every route answer 401 unless the request carries
// exactly header as its Authorization value.
func (f *FakeAPI) RequireAuth(header string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auth = header
}

func (f *FakeAPI) Handle(method, path string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = h
}

// JSON registers a route that always answers status with body.
func (f *FakeAPI) JSON(method, path string, status int, body string) {
	f.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

func (f *FakeAPI) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// Count reports how many requests hit method and path.
func (f *FakeAPI) Count(method, path string) int {
	n := 0
	for _, r := range f.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, RecordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Authorization: r.Header.Get("Authorization"),
		RequestID:     r.Header.Get("X-Request-ID"),
		Body:          body,
	})
	h, ok := f.routes[r.Method+" "+r.URL.Path]
	required := f.auth
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if required != "" && r.Header.Get("Authorization") != required {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Unauthorized"}`)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Not found"}`)
		return
	}
	h(w, r)
}
