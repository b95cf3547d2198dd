// Package clients holds thin clients for the external collaborators the
// storefront depends on but does not own.
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"storefront_service/internal/domain"
)

const defaultTimeout = 10 * time.Second

// identityHTTPClient resolves bearer tokens against the external identity
// provider's session-verification endpoint.
type identityHTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewIdentityClient(baseURL string, logger *logrus.Logger) (domain.IdentityResolver, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("identity provider URL is required")
	}
	return &identityHTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        logger,
	}, nil
}

func (c *identityHTTPClient) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrUnauthenticated
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/sessions/me", nil)
	if err != nil {
		return "", fmt.Errorf("build identity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorf("IdentityClient: request failed: %v", err)
		return "", fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.log.Debug("IdentityClient: token rejected by identity provider")
		return "", domain.ErrUnauthenticated
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var session struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", fmt.Errorf("decode identity response: %w", err)
	}
	if session.UserID == "" {
		return "", domain.ErrUnauthenticated
	}

	c.log.Debugf("IdentityClient: resolved user %s", session.UserID)
	return session.UserID, nil
}
