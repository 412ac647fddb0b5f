package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// MaxArtifactBytes caps the size of a downloaded model artifact
const MaxArtifactBytes = 64 << 20

// ErrArtifactTooLarge is returned when an artifact exceeds MaxArtifactBytes
var ErrArtifactTooLarge = errors.New("model artifact exceeds size limit")

// HubClient is an HTTP client for a model hub that serves files as
// {base}/{repository}/resolve/{revision}/{filename}
type HubClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHubClient creates a new model hub client
func NewHubClient(baseURL, token string, timeout time.Duration) *HubClient {
	return &HubClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ArtifactURL returns the download URL for a file in a repository revision
func (c *HubClient) ArtifactURL(repository, revision, filename string) string {
	return fmt.Sprintf("%s/%s/resolve/%s/%s",
		c.baseURL,
		strings.Trim(repository, "/"),
		url.PathEscape(revision),
		strings.TrimLeft(filename, "/"),
	)
}

// Download fetches a file from the hub
func (c *HubClient) Download(ctx context.Context, repository, revision, filename string) ([]byte, error) {
	if repository == "" || filename == "" {
		return nil, errors.New("repository and filename are required")
	}
	if revision == "" {
		revision = "main"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ArtifactURL(repository, revision, filename), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, err := io.ReadAll(io.LimitReader(resp.Body, 512))
		if err != nil || len(respBody) == 0 {
			return nil, fmt.Errorf("model hub returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("model hub returned status %d: %s", resp.StatusCode, string(respBody))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxArtifactBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}
	if len(body) > MaxArtifactBytes {
		return nil, ErrArtifactTooLarge
	}

	return body, nil
}
