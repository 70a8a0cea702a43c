package download

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quazii/quaziiui-installer/internal/core/domain"
	"github.com/quazii/quaziiui-installer/internal/infrastructure/logging"
)

func newTestDownloader() (*Downloader, *bytes.Buffer) {
	var console bytes.Buffer
	return NewDownloader(logging.New(&console, "")), &console
}

// TestDownloader_Fetch_WritesArchiveAndReportsSize tests the happy path
func TestDownloader_Fetch_WritesArchiveAndReportsSize(t *testing.T) {
	payload := []byte("PK\x03\x04 pretend archive content")
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write(payload)
	}))
	defer server.Close()

	downloader, console := newTestDownloader()
	destination := filepath.Join(t.TempDir(), "downloads", "QuaziiUI.zip")

	dest, err := downloader.Fetch(context.Background(), server.URL, destination)
	require.NoError(t, err)

	assert.Equal(t, destination, dest.String())
	assert.Equal(t, userAgent, gotUserAgent, "Transfer should identify the client")

	content, err := os.ReadFile(destination)
	require.NoError(t, err)
	assert.Equal(t, payload, content, "File content should match the response body")

	assert.Contains(t, console.String(), "Downloading", "Start of transfer should be logged")
	assert.Contains(t, console.String(), fmt.Sprintf("Downloaded %d bytes", len(payload)), "Byte size should be reported on success")
}

// TestDownloader_Fetch_CreatesParentDirectories tests parent creation for fresh destinations
func TestDownloader_Fetch_CreatesParentDirectories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("content"))
	}))
	defer server.Close()

	downloader, _ := newTestDownloader()
	destination := filepath.Join(t.TempDir(), "a", "b", "c", "QuaziiUI.zip")

	_, err := downloader.Fetch(context.Background(), server.URL, destination)
	require.NoError(t, err)

	_, err = os.Stat(destination)
	assert.NoError(t, err, "Missing parent directories should be created")
}

// TestDownloader_Fetch_EmptyBody_IsNetworkFailure tests the zero-byte post-check
func TestDownloader_Fetch_EmptyBody_IsNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	downloader, _ := newTestDownloader()
	destination := filepath.Join(t.TempDir(), "QuaziiUI.zip")

	_, err := downloader.Fetch(context.Background(), server.URL, destination)

	require.Error(t, err, "An empty file after a 200 response is not success")
	assert.Contains(t, err.Error(), "empty")
	assert.Equal(t, domain.ExitNetworkError, domain.ExitCodeFor(err), "Empty downloads classify as network errors")
}

// TestDownloader_Fetch_ErrorStatus_IsNetworkFailure tests non-2xx handling
func TestDownloader_Fetch_ErrorStatus_IsNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	downloader, _ := newTestDownloader()
	destination := filepath.Join(t.TempDir(), "QuaziiUI.zip")

	_, err := downloader.Fetch(context.Background(), server.URL, destination)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Equal(t, domain.ExitNetworkError, domain.ExitCodeFor(err))
}

// TestDownloader_Fetch_InvalidDestination_SkipsTransfer tests the validation-first ordering
func TestDownloader_Fetch_InvalidDestination_SkipsTransfer(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	downloader, _ := newTestDownloader()

	_, err := downloader.Fetch(context.Background(), server.URL, filepath.Join(t.TempDir(), "evil..name.zip"))

	require.Error(t, err)
	assert.Equal(t, domain.ExitValidationError, domain.ExitCodeFor(err), "Destination validation failures keep their kind")
	assert.Zero(t, requests, "No network transfer should happen for an invalid destination")
}
