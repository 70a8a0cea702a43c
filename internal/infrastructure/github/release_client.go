package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/quazii/quaziiui-installer/internal/core/domain"
)

// UserAgent identifies the installer to the release API.
const UserAgent = "quaziiui-installer/1.0"

const metadataTimeout = 30 * time.Second

// ReleaseClient resolves the latest QuaziiUI release from the GitHub
// releases API.
type ReleaseClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewReleaseClient creates a client against the given API origin
// (https://api.github.com in production, a test server otherwise).
func NewReleaseClient(baseURL string) *ReleaseClient {
	return &ReleaseClient{
		httpClient: &http.Client{Timeout: metadataTimeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// ResolveLatest queries the latest-release endpoint. A non-2xx
// status, an undecodable body, or a body missing the artifact URL or
// version tag is a failed resolution, never silently defaulted; the
// pipeline decides whether to substitute the fallback descriptor.
func (c *ReleaseClient) ResolveLatest(ctx context.Context) (domain.ReleaseDescriptor, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, domain.ProjectOwner, domain.ProjectRepo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.ReleaseDescriptor{}, fmt.Errorf("failed to create release request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.ReleaseDescriptor{}, domain.NewNetworkFailure("failed to query latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.ReleaseDescriptor{}, domain.NewNetworkFailure("release query returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var release struct {
		ZipballURL  string `json:"zipball_url"`
		TagName     string `json:"tag_name"`
		PublishedAt string `json:"published_at"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return domain.ReleaseDescriptor{}, domain.NewNetworkFailure("failed to decode release response: %w", err)
	}

	// published_at is optional and an unparsable value is dropped.
	var publishedAt *time.Time
	if release.PublishedAt != "" {
		if parsed, parseErr := time.Parse(time.RFC3339, release.PublishedAt); parseErr == nil {
			publishedAt = &parsed
		}
	}

	descriptor, err := domain.NewReleaseDescriptor(release.ZipballURL, release.TagName, publishedAt)
	if err != nil {
		return domain.ReleaseDescriptor{}, domain.NewNetworkFailure("malformed release response: %w", err)
	}

	return descriptor, nil
}
