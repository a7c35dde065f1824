// internal/provider/mpesa/token.go
package mpesa

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

const oauthPath = "/oauth/v1/generate?grant_type=client_credentials"

// tokenSafetyMargin forces renewal this long before the reported expiry,
// so a token is never handed out moments before Daraja invalidates it.
const tokenSafetyMargin = 30 * time.Second

// tokenCache holds the one process-wide bearer token. The mutex covers
// concurrent pushes: two simultaneous misses serialize into one fetch.
type tokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// accessToken returns the cached bearer token, fetching a fresh one when
// none is cached or the cached one is inside its safety margin.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.tokens.mu.Lock()
	defer c.tokens.mu.Unlock()

	if c.tokens.token != "" && c.now().Before(c.tokens.expiresAt.Add(-tokenSafetyMargin)) {
		return c.tokens.token, nil
	}

	token, expiresIn, err := c.fetchToken(ctx)
	if err != nil {
		return "", err
	}

	c.tokens.token = token
	c.tokens.expiresAt = c.now().Add(expiresIn)

	c.logger.Debug("mpesa access token refreshed",
		zap.Duration("expires_in", expiresIn))

	return token, nil
}

func (c *Client) fetchToken(ctx context.Context) (string, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+oauthPath, nil)
	if err != nil {
		c.logger.Error("failed to build token request", zap.Error(err))
		return "", 0, ErrAuth
	}

	auth := base64.StdEncoding.EncodeToString([]byte(
		c.config.ConsumerKey + ":" + c.config.ConsumerSecret,
	))
	req.Header.Set("Authorization", "Basic "+auth)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("token request failed", zap.Error(err))
		return "", 0, ErrAuth
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("token request rejected", zap.Int("status", resp.StatusCode))
		return "", 0, ErrAuth
	}

	// Daraja reports expires_in as a decimal string ("3599").
	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   string `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Error("failed to parse token response", zap.Error(err))
		return "", 0, ErrAuth
	}

	if result.AccessToken == "" {
		c.logger.Error("token response missing access_token")
		return "", 0, ErrAuth
	}

	seconds, err := strconv.Atoi(result.ExpiresIn)
	if err != nil || seconds <= 0 {
		seconds = 3599
	}

	return result.AccessToken, time.Duration(seconds) * time.Second, nil
}
