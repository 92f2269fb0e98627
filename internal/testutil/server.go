// Package testutil provides testing utilities for the planear project.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Capture records the generate requests a test server received.
type Capture struct {
	mu           sync.Mutex
	bodies       [][]byte
	contentTypes []string
}

// Count returns how many generate requests arrived.
func (c *Capture) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.bodies)
}

// Body decodes the body of request i into v.
func (c *Capture) Body(t *testing.T, i int, v any) {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	if i >= len(c.bodies) {
		t.Fatalf("no request %d recorded (got %d)", i, len(c.bodies))
	}
	if err := json.Unmarshal(c.bodies[i], v); err != nil {
		t.Fatalf("failed to decode request body: %v", err)
	}
}

// ContentType returns the Content-Type header of request i.
func (c *Capture) ContentType(t *testing.T, i int) string {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	if i >= len(c.contentTypes) {
		t.Fatalf("no request %d recorded (got %d)", i, len(c.contentTypes))
	}
	return c.contentTypes[i]
}

func (c *Capture) record(r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bodies = append(c.bodies, body)
	c.contentTypes = append(c.contentTypes, r.Header.Get("Content-Type"))
}

// StreamServer starts a test planning service whose generate endpoint
// answers with the given raw response lines, one per line. Callers build
// frames with Frame, or pass malformed/non-frame lines verbatim to
// exercise the skip paths. The server is shut down with the test.
func StreamServer(t *testing.T, lines ...string) *httptest.Server {
	t.Helper()

	srv, _ := CapturingStreamServer(t, lines...)
	return srv
}

// CapturingStreamServer is StreamServer plus a record of every generate
// request that arrived, for asserting on request count, body, and headers.
func CapturingStreamServer(t *testing.T, lines ...string) (*httptest.Server, *Capture) {
	t.Helper()

	capture := &Capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/generate-plan":
			if r.Method != http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			capture.record(r)
			for _, line := range lines {
				if _, err := w.Write([]byte(line + "\n")); err != nil {
					return
				}
				if f, ok := w.(http.Flusher); ok {
					f.Flush()
				}
			}
		case "/api/health":
			w.Header().Set("Content-Type", "application/json")
			if _, err := w.Write([]byte(`{"status": "healthy"}`)); err != nil {
				return
			}
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	t.Cleanup(srv.Close)
	return srv, capture
}

// ErrorServer starts a test server that answers every request with the
// given status code and no body.
func ErrorServer(t *testing.T, code int) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
	}))

	t.Cleanup(srv.Close)
	return srv
}

// Frame encodes v as JSON and wraps it in the stream frame prefix.
func Frame(t *testing.T, v any) string {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal frame payload: %v", err)
	}
	return "data: " + string(data)
}
