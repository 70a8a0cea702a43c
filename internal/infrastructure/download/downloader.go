package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/quazii/quaziiui-installer/internal/core/domain"
	"github.com/quazii/quaziiui-installer/internal/infrastructure/logging"
)

const userAgent = "quaziiui-installer/1.0"

// DownloadTimeout bounds a single archive transfer.
const DownloadTimeout = 5 * time.Minute

// Downloader fetches release archives to local files.
type Downloader struct {
	httpClient *http.Client
	log        *logging.Logger
}

// NewDownloader creates a Downloader with the transfer timeout.
func NewDownloader(log *logging.Logger) *Downloader {
	return &Downloader{
		httpClient: &http.Client{
			Timeout: DownloadTimeout, // longer timeout for large archives
		},
		log: log,
	}
}

// Fetch downloads url into destination. The destination is validated
// before any filesystem work and parent directories are created. A
// file that is missing or empty after a reported-successful transfer
// is a network failure, not success.
func (d *Downloader) Fetch(ctx context.Context, url, destination string) (domain.ValidatedPath, error) {
	dest, err := domain.NewValidatedPath(destination)
	if err != nil {
		return "", fmt.Errorf("invalid download destination: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dest.String()), 0755); err != nil {
		return "", domain.NewFilesystemFailure("failed to create download directory: %w", err)
	}

	d.log.Infof("🔄 Downloading %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create download request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", domain.NewNetworkFailure("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domain.NewNetworkFailure("download failed with status %d", resp.StatusCode)
	}

	out, err := os.Create(dest.String())
	if err != nil {
		return "", domain.NewFilesystemFailure("failed to create %s: %w", dest, err)
	}

	written, err := io.Copy(out, resp.Body)
	closeErr := out.Close()
	if err != nil {
		return "", domain.NewNetworkFailure("transfer interrupted after %d bytes: %w", written, err)
	}
	if closeErr != nil {
		return "", domain.NewFilesystemFailure("failed to finalize %s: %w", dest, closeErr)
	}

	info, err := os.Stat(dest.String())
	if err != nil {
		return "", domain.NewNetworkFailure("downloaded file missing after transfer: %w", err)
	}
	if info.Size() == 0 {
		return "", domain.NewNetworkFailure("downloaded file is empty")
	}

	d.log.Successf("✅ Downloaded %d bytes to %s", info.Size(), dest)

	return dest, nil
}
