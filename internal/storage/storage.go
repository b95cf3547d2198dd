// Package storage talks to a Supabase-compatible object storage API over
// REST. Uploaded objects land in a single configured bucket and are
// addressed by their public URL.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"storefront_service/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	cacheControl   = "max-age=3600"
)

type Client struct {
	storageURL string
	apiKey     string
	bucket     string
	httpClient *http.Client
	log        *logrus.Logger

	now func() time.Time
}

func NewClient(projectURL, apiKey, bucket string, logger *logrus.Logger) (*Client, error) {
	if projectURL == "" {
		return nil, fmt.Errorf("storage URL is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("storage key is required")
	}
	if bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}
	if _, err := url.Parse(projectURL); err != nil {
		return nil, fmt.Errorf("invalid storage URL: %w", err)
	}

	return &Client{
		storageURL: strings.TrimRight(projectURL, "/") + "/storage/v1",
		apiKey:     apiKey,
		bucket:     bucket,
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        logger,
		now:        time.Now,
	}, nil
}

// Upload stores the image under a collision-resistant object name and
// returns the object's public URL. No retries are performed.
func (c *Client) Upload(ctx context.Context, image *domain.UploadedImage) (string, error) {
	name := objectName(image.Filename, c.now())
	urlStr := fmt.Sprintf("%s/object/%s/%s", c.storageURL, c.bucket, url.PathEscape(name))

	contentType := image.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	headers := map[string]string{
		"Content-Type":  contentType,
		"Cache-Control": cacheControl,
	}
	respBody, statusCode, err := c.request(ctx, http.MethodPost, urlStr, image.Data, headers)
	if err != nil {
		return "", &domain.StorageError{Op: "upload", Err: err}
	}
	if statusCode >= 400 {
		return "", &domain.StorageError{Op: "upload", Err: parseError(respBody, statusCode)}
	}

	c.log.Infof("Uploaded object %s to bucket %s", name, c.bucket)
	return c.PublicURL(name), nil
}

// Remove deletes a previously uploaded object, addressed by its public
// URL. The object name is the trailing path segment of that URL.
func (c *Client) Remove(ctx context.Context, publicURL string) error {
	name := path.Base(strings.TrimRight(publicURL, "/"))
	if name == "" || name == "." || name == "/" {
		return domain.ErrInvalidImageRef
	}

	urlStr := fmt.Sprintf("%s/object/%s", c.storageURL, c.bucket)
	body, err := json.Marshal(map[string]interface{}{
		"prefixes": []string{name},
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	respBody, statusCode, err := c.request(ctx, http.MethodDelete, urlStr, body, map[string]string{
		"Content-Type": "application/json",
	})
	if err != nil {
		return &domain.StorageError{Op: "remove", Err: err}
	}
	if statusCode >= 400 {
		return &domain.StorageError{Op: "remove", Err: parseError(respBody, statusCode)}
	}

	c.log.Infof("Removed object %s from bucket %s", name, c.bucket)
	return nil
}

// PublicURL returns the publicly resolvable URL for an object name.
func (c *Client) PublicURL(name string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.storageURL, c.bucket, url.PathEscape(name))
}

func (c *Client) request(ctx context.Context, method, urlStr string, body []byte, headers map[string]string) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, urlStr, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("apikey", c.apiKey)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	return respBody, resp.StatusCode, nil
}

// parseError extracts the provider's message from an error response body.
func parseError(body []byte, statusCode int) error {
	var apiErr struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil {
		if apiErr.Message != "" {
			return fmt.Errorf("%s (status %d)", apiErr.Message, statusCode)
		}
		if apiErr.Error != "" {
			return fmt.Errorf("%s (status %d)", apiErr.Error, statusCode)
		}
	}
	return fmt.Errorf("storage request failed with status %d", statusCode)
}

// objectName derives "<epoch-ms>-<sanitized-basename><ext>" from the
// original filename: non-alphanumeric characters become underscores and
// the base name is lower-cased, so the name is safe inside a URL path.
func objectName(filename string, now time.Time) string {
	ext := path.Ext(filename)
	base := strings.TrimSuffix(path.Base(filename), ext)
	if base == "" {
		base = "upload"
	}

	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, base)

	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), sanitized, strings.ToLower(ext))
}
