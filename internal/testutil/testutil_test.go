package testutil

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir, "http://localhost:4000")

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(content), "base_url: http://localhost:4000")
	assert.NotContains(t, string(content), "cache_directory")

	for _, d := range []string{"audio", "preferences"} {
		info, err := os.Stat(filepath.Join(tmpDir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestSetupTestConfigWithDictionaryCache(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfigWithDictionaryCache(t, tmpDir, "http://localhost:4000")

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(content), "cache_directory: "+filepath.Join(tmpDir, "dictionary"))
	assert.Contains(t, string(content), "base_url: http://localhost:4000")
}

func TestNewBackendServer(t *testing.T) {
	server := NewBackendServer(t, map[string]Handler{
		"/api/translate-text": func(t *testing.T, body map[string]any) (int, any) {
			assert.Equal(t, "hello", body["text"])
			return http.StatusOK, map[string]string{"translatedText": "xin chào"}
		},
	})

	response, err := http.Post(server.URL+"/api/translate-text", "application/json", bytes.NewBufferString(`{"text":"hello"}`))
	require.NoError(t, err)
	defer func() {
		_ = response.Body.Close()
	}()

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "application/json", response.Header.Get("Content-Type"))
	assert.Equal(t, 1, server.Calls("/api/translate-text"))
	assert.Equal(t, 0, server.Calls("/api/enhance-text"))
}
