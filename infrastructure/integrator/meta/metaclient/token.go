package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	metadomain "github.com/rfwatson44/MindfulAI-sub001/infrastructure/integrator/meta/domain"
)

// TokenInfo is the debug_token response payload.
type TokenInfo struct {
	AppID     string   `json:"app_id"`
	IsValid   bool     `json:"is_valid"`
	ExpiresAt int64    `json:"expires_at"`
	Scopes    []string `json:"scopes"`
}

type debugTokenResponse struct {
	Data TokenInfo `json:"data"`
}

type exchangeTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// DebugToken validates the configured access token against debug_token.
func (c *MetaClient) DebugToken(ctx context.Context) (*TokenInfo, error) {
	params := url.Values{}
	params.Set("input_token", c.cfg.Meta.AccessToken)
	params.Set("access_token", fmt.Sprintf("%s|%s", c.cfg.Meta.AppID, c.cfg.Meta.AppSecret))

	requestURL := fmt.Sprintf("%s/debug_token?%s", c.cfg.Meta.URL, params.Encode())

	body, err := c.rawGet(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	response := &debugTokenResponse{}
	if err := json.Unmarshal(body, response); err != nil {
		return nil, fmt.Errorf("meta: decoding debug_token response: %w", err)
	}

	return &response.Data, nil
}

// ExchangeLongLivedToken trades a short-lived token for a long-lived one.
func (c *MetaClient) ExchangeLongLivedToken(ctx context.Context, shortLivedToken string) (string, int64, error) {
	params := url.Values{}
	params.Set("grant_type", "fb_exchange_token")
	params.Set("client_id", c.cfg.Meta.AppID)
	params.Set("client_secret", c.cfg.Meta.AppSecret)
	params.Set("fb_exchange_token", shortLivedToken)

	requestURL := fmt.Sprintf("%s/oauth/access_token?%s", c.cfg.Meta.URL, params.Encode())

	body, err := c.rawGet(ctx, requestURL)
	if err != nil {
		return "", 0, err
	}

	response := &exchangeTokenResponse{}
	if err := json.Unmarshal(body, response); err != nil {
		return "", 0, fmt.Errorf("meta: decoding token exchange response: %w", err)
	}

	return response.AccessToken, response.ExpiresIn, nil
}

// rawGet is a plain GET outside the pagination/pacing path, used only by
// the token endpoints which do not count against ad account limits.
func (c *MetaClient) rawGet(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
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

	if resp.StatusCode != http.StatusOK {
		errResponse := &metadomain.ErrorResponse{}
		if err := json.Unmarshal(body, errResponse); err != nil {
			return nil, fmt.Errorf("meta: unexpected status %d: %s", resp.StatusCode, string(body))
		}
		return nil, errResponse.Err()
	}

	return body, nil
}
