// Package testutil provides shared test helpers for config files and a fake translation service.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a minimal config file pointing at baseURL and the
// directories it refers to. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, baseURL string) string {
	t.Helper()

	dirs := []string{"audio", "preferences"}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`api:
  base_url: %s
languages:
  source: en
  target: vi
preferences:
  file: %s
audio:
  temp_directory: %s
`,
		baseURL,
		filepath.Join(tmpDir, "preferences", "preferences.yml"),
		filepath.Join(tmpDir, "audio"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithDictionaryCache also mirrors word details into tmpDir/dictionary.
func SetupTestConfigWithDictionaryCache(t *testing.T, tmpDir string, baseURL string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir, baseURL)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte(fmt.Sprintf("dictionary:\n  cache_directory: %s\n", filepath.Join(tmpDir, "dictionary")))...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// Handler answers one endpoint of the fake service with a status and a JSON body.
type Handler func(t *testing.T, body map[string]any) (int, any)

// BackendServer is a fake translation service that counts requests per endpoint.
type BackendServer struct {
	*httptest.Server

	mu    sync.Mutex
	calls map[string]int
}

// NewBackendServer starts a fake service. Requests to endpoints without a
// handler fail the test.
func NewBackendServer(t *testing.T, handlers map[string]Handler) *BackendServer {
	t.Helper()
	server := &BackendServer{
		calls: make(map[string]int),
	}
	server.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		server.mu.Lock()
		server.calls[r.URL.Path]++
		server.mu.Unlock()

		handler, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request to %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var body map[string]any
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&body)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		status, response := handler(t, body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		assert.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	t.Cleanup(server.Close)
	return server
}

// Calls returns how many requests reached path.
func (server *BackendServer) Calls(path string) int {
	server.mu.Lock()
	defer server.mu.Unlock()
	return server.calls[path]
}
