package scryfall

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Path      string
	Query     map[string][]string
	UserAgent string
	Accept    string
}

type fixtureServer struct {
	*httptest.Server
	mu       sync.Mutex
	requests []recordedRequest
}

// newFixtureServer serves testdata/<fixture> with the given status for every request.
func newFixtureServer(t *testing.T, status int, fixture string) *fixtureServer {
	t.Helper()

	var body []byte
	if fixture != "" {
		var err error
		body, err = os.ReadFile(filepath.Join("testdata", fixture))
		require.NoError(t, err)
	}

	fs := &fixtureServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.mu.Lock()
		fs.requests = append(fs.requests, recordedRequest{
			Path:      r.URL.Path,
			Query:     r.URL.Query(),
			UserAgent: r.Header.Get("User-Agent"),
			Accept:    r.Header.Get("Accept"),
		})
		fs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if status == http.StatusTooManyRequests {
			w.Header().Set("Retry-After", "2")
		}
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(fs.Close)

	return fs
}

func (fs *fixtureServer) Requests() []recordedRequest {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]recordedRequest(nil), fs.requests...)
}

func newTestClient(fs *fixtureServer, opts ...Option) *Client {
	base := []Option{WithBaseURL(fs.URL + "/"), WithWaitTime(0)}
	return NewClient(append(base, opts...)...)
}
