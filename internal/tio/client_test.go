package tio

import (
	"bytes"
	"compress/flate"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientLanguages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/languages.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"python3": {"name": "Python 3"},
			"c-clang": {"name": "C (clang)"},
			"go": {"name": "Go"}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	languages, err := client.Languages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"c-clang", "go", "python3"}, languages)
}

func TestClientLanguagesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Languages(context.Background())
	assert.Error(t, err)
}

func TestClientRun(t *testing.T) {
	const token = "fedcba9876543210"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, runPath, r.URL.Path)

		// Verify the request decompresses to the wire records.
		plain, err := io.ReadAll(flate.NewReader(r.Body))
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(plain, []byte("Vlang\x001\x00python3\x00")))
		assert.True(t, bytes.HasSuffix(plain, []byte("R")))

		_, _ = w.Write(gzipResponse(t, token, "42\n", "Real time: 0.02 s\nExit code: 0\n"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	result, err := client.Run(context.Background(), Request{
		Code:     "print(42)",
		Language: "python3",
	})
	require.NoError(t, err)
	assert.Equal(t, "42\n", result.Output)
	assert.Equal(t, 0, result.ExitStatus)
}

func TestNewClientDefaultsToPublicInstance(t *testing.T) {
	client := NewClient("")
	assert.Equal(t, DefaultBaseURL, client.baseURL)

	// A trailing slash must not produce double slashes in request URLs.
	client = NewClient("https://example.test/")
	assert.Equal(t, "https://example.test", client.baseURL)
}
