// Package contentful is a thin REST client for the Contentful Management
// API, limited to the entry/asset/release operations the publish flow uses.
package contentful

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/seoforge/seoforge/internal/config"
	"github.com/seoforge/seoforge/internal/mapping"
)

const defaultBaseURL = "https://api.contentful.com"

// DefaultTimeout bounds every management call. There are no retries: a
// timeout or non-2xx response fails the step immediately.
const DefaultTimeout = 30 * time.Second

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	spaceID    string
	env        string
	locale     string
}

// NewClient builds a management client from configuration. Returns nil when
// the space or token is missing, mirroring the degraded (not fatal) startup
// behavior reported by the health endpoint.
func NewClient(cfg config.ContentfulConfig) *Client {
	if cfg.SpaceID == "" || cfg.ManagementToken == "" {
		return nil
	}
	return &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    defaultBaseURL,
		token:      cfg.ManagementToken,
		spaceID:    cfg.SpaceID,
		env:        cfg.Environment,
		locale:     cfg.Locale,
	}
}

func (c *Client) envURL(path string) string {
	return fmt.Sprintf("%s/spaces/%s/environments/%s%s", c.baseURL, c.spaceID, c.env, path)
}

// CheckConnection verifies the space environment is reachable with the
// configured credentials.
func (c *Client) CheckConnection(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, c.envURL(""), nil, nil)
	return err
}

// CreateEntry creates a draft entry of the given content type and returns
// its id. Entries are never published here; review happens in the CMS.
func (c *Client) CreateEntry(ctx context.Context, contentTypeID string, entry *mapping.MappedEntry) (string, error) {
	headers := map[string]string{"X-Contentful-Content-Type": contentTypeID}

	body, err := c.do(ctx, http.MethodPost, c.envURL("/entries"), entry, headers)
	if err != nil {
		return "", fmt.Errorf("create entry %s: %w", contentTypeID, err)
	}

	var resp entryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("create entry %s: decode response: %w", contentTypeID, err)
	}
	return resp.Sys.ID, nil
}

// CreateAsset creates an image asset from a public URL and triggers
// processing for the configured locale. Returns the asset id.
func (c *Client) CreateAsset(ctx context.Context, imageURL, title, description string) (string, error) {
	fields := map[string]map[string]interface{}{
		"title": {c.locale: title},
		"file": {c.locale: map[string]interface{}{
			"contentType": "image/jpeg",
			"fileName":    assetFileName(title),
			"upload":      imageURL,
		}},
	}
	if description != "" {
		fields["description"] = map[string]interface{}{c.locale: description}
	}

	body, err := c.do(ctx, http.MethodPost, c.envURL("/assets"), map[string]interface{}{"fields": fields}, nil)
	if err != nil {
		return "", fmt.Errorf("create asset: %w", err)
	}

	var resp entryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("create asset: decode response: %w", err)
	}

	processURL := c.envURL(fmt.Sprintf("/assets/%s/files/%s/process", resp.Sys.ID, c.locale))
	headers := map[string]string{"X-Contentful-Version": strconv.Itoa(resp.Sys.Version)}
	if _, err := c.do(ctx, http.MethodPut, processURL, nil, headers); err != nil {
		return "", fmt.Errorf("process asset %s: %w", resp.Sys.ID, err)
	}

	return resp.Sys.ID, nil
}

// CreateRelease creates a draft release holding the given entry references.
func (c *Client) CreateRelease(ctx context.Context, title string, entryIDs []string) (*Release, error) {
	payload := releasePayload{
		Title: title,
		Entities: releaseEntities{
			Sys:   sys{Type: "Array"},
			Items: mapping.EntryLinks(entryIDs),
		},
	}

	body, err := c.do(ctx, http.MethodPost, c.envURL("/releases"), payload, nil)
	if err != nil {
		return nil, fmt.Errorf("create release: %w", err)
	}
	return decodeRelease(body)
}

func (c *Client) GetRelease(ctx context.Context, releaseID string) (*Release, error) {
	body, err := c.do(ctx, http.MethodGet, c.envURL("/releases/"+releaseID), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("get release %s: %w", releaseID, err)
	}
	return decodeRelease(body)
}

// AddToRelease merges entry ids into an existing release, deduplicating
// against the ids already present.
func (c *Client) AddToRelease(ctx context.Context, releaseID string, entryIDs []string) (*Release, error) {
	release, err := c.GetRelease(ctx, releaseID)
	if err != nil {
		return nil, err
	}

	merged := release.EntryIDs
	present := map[string]bool{}
	for _, id := range merged {
		present[id] = true
	}
	for _, id := range entryIDs {
		if !present[id] {
			present[id] = true
			merged = append(merged, id)
		}
	}

	payload := releasePayload{
		Title: release.Title,
		Entities: releaseEntities{
			Sys:   sys{Type: "Array"},
			Items: mapping.EntryLinks(merged),
		},
	}
	headers := map[string]string{"X-Contentful-Version": strconv.Itoa(release.Version)}

	body, err := c.do(ctx, http.MethodPut, c.envURL("/releases/"+releaseID), payload, headers)
	if err != nil {
		return nil, fmt.Errorf("update release %s: %w", releaseID, err)
	}
	return decodeRelease(body)
}

// PublishRelease publishes every entry in the release. The publish flow
// never calls this automatically; it exists for operator tooling.
func (c *Client) PublishRelease(ctx context.Context, releaseID string) (*Release, error) {
	release, err := c.GetRelease(ctx, releaseID)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{"X-Contentful-Version": strconv.Itoa(release.Version)}
	if _, err := c.do(ctx, http.MethodPut, c.envURL("/releases/"+releaseID+"/published"), nil, headers); err != nil {
		return nil, fmt.Errorf("publish release %s: %w", releaseID, err)
	}
	return c.GetRelease(ctx, releaseID)
}

func (c *Client) ListReleases(ctx context.Context) ([]Release, error) {
	body, err := c.do(ctx, http.MethodGet, c.envURL("/releases"), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list releases: %w", err)
	}

	var list releaseList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("list releases: decode response: %w", err)
	}

	releases := make([]Release, 0, len(list.Items))
	for _, item := range list.Items {
		releases = append(releases, *item.toRelease())
	}
	return releases, nil
}

// EntryURL returns the web app URL of a created entry for operator review.
func (c *Client) EntryURL(entryID string) string {
	return fmt.Sprintf("https://app.contentful.com/spaces/%s/environments/%s/entries/%s", c.spaceID, c.env, entryID)
}

// ReleaseURL returns the web app URL of a release.
func (c *Client) ReleaseURL(releaseID string) string {
	return fmt.Sprintf("https://app.contentful.com/spaces/%s/environments/%s/releases/%s", c.spaceID, c.env, releaseID)
}

func (c *Client) do(ctx context.Context, method, url string, payload interface{}, headers map[string]string) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/vnd.contentful.management.v1+json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, apiErrorMessage(body))
	}
	return body, nil
}

func decodeRelease(body []byte) (*Release, error) {
	var resp releaseResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	return resp.toRelease(), nil
}

func apiErrorMessage(body []byte) string {
	var apiErr struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	if len(body) > 200 {
		body = body[:200]
	}
	return string(body)
}

func assetFileName(title string) string {
	name := strings.ToLower(strings.TrimSpace(title))
	name = strings.Join(strings.Fields(name), "-")
	if name == "" {
		name = "asset"
	}
	return name + ".jpg"
}
