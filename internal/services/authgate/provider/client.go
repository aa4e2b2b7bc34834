// Package provider implements the outbound HTTP client for the upstream
// OAuth2 identity provider. Every call is a one-shot network operation
// against the configured authorize, token, and userinfo endpoints; the
// client itself holds no per-request state.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/northreach/authgate/internal/platform/timeouts"
)

// Yandex OAuth endpoints, the default upstream provider.
const (
	DefaultAuthorizeURL = "https://oauth.yandex.com/authorize"
	DefaultTokenURL     = "https://oauth.yandex.com/token"
	DefaultUserinfoURL  = "https://login.yandex.ru/info"
	DefaultScope        = "login:info login:email login:avatar"

	avatarURLFormat = "https://avatars.yandex.net/get-yapic/%s/islands-200"

	// Providers are not required to report expires_in; assume an hour.
	defaultExpiresIn = 3600
)

// Config holds the provider endpoints and client credentials. Values are
// fixed at startup; request handling never reads ambient state.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scope        string
	AuthorizeURL string
	TokenURL     string
	UserinfoURL  string
}

// Validate reports the first malformed configuration value.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" {
		return fmt.Errorf("provider client id is required")
	}
	if strings.TrimSpace(c.RedirectURI) == "" {
		return fmt.Errorf("provider redirect uri is required")
	}
	for _, endpoint := range []struct {
		name  string
		value string
	}{
		{"authorize", c.AuthorizeURL},
		{"token", c.TokenURL},
		{"userinfo", c.UserinfoURL},
	} {
		parsed, err := url.Parse(strings.TrimSpace(endpoint.value))
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("provider %s url %q is invalid", endpoint.name, endpoint.value)
		}
	}
	return nil
}

// Error is a provider-reported failure: a non-success response or an error
// body from the token or userinfo endpoints. Transport faults are returned
// as plain errors instead.
type Error struct {
	Status int
	Reason string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("provider responded with status %d", e.Status)
	}
	return fmt.Sprintf("provider error: %s", e.Reason)
}

// Token is one issued access/refresh pair with its provider-reported
// lifetime in seconds.
type Token struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// Profile is the provider's view of the authenticated user, assembled fresh
// per request and never persisted.
type Profile struct {
	ID          string `json:"id"`
	Email       string `json:"default_email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	AvatarID    string `json:"default_avatar_id"`
}

// AvatarURL renders the provider's avatar id as a fetchable image URL.
func (p Profile) AvatarURL() string {
	if p.AvatarID == "" {
		return ""
	}
	return fmt.Sprintf(avatarURLFormat, p.AvatarID)
}

// Client issues the outbound provider calls. Safe for concurrent use.
type Client struct {
	config       Config
	authorizeURL *url.URL
	httpClient   *http.Client
}

// NewClient validates the configuration and builds a provider client.
// A nil httpClient gets a default with a bounded timeout so a hung provider
// cannot hang a serving worker indefinitely.
func NewClient(cfg Config, httpClient *http.Client) (*Client, error) {
	if strings.TrimSpace(cfg.AuthorizeURL) == "" {
		cfg.AuthorizeURL = DefaultAuthorizeURL
	}
	if strings.TrimSpace(cfg.TokenURL) == "" {
		cfg.TokenURL = DefaultTokenURL
	}
	if strings.TrimSpace(cfg.UserinfoURL) == "" {
		cfg.UserinfoURL = DefaultUserinfoURL
	}
	if strings.TrimSpace(cfg.Scope) == "" {
		cfg.Scope = DefaultScope
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	authorizeURL, err := url.Parse(cfg.AuthorizeURL)
	if err != nil {
		return nil, fmt.Errorf("parse authorize url: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeouts.ProviderHTTP}
	}
	return &Client{
		config:       cfg,
		authorizeURL: authorizeURL,
		httpClient:   httpClient,
	}, nil
}

// AuthorizeURL builds the browser redirect URL for the authorization-code
// flow. Pure string construction; the caller's state is embedded verbatim.
func (c *Client) AuthorizeURL(state string) string {
	query := url.Values{}
	query.Set("response_type", "code")
	query.Set("client_id", c.config.ClientID)
	query.Set("redirect_uri", c.config.RedirectURI)
	query.Set("scope", c.config.Scope)
	query.Set("state", state)

	authorizeURL := *c.authorizeURL
	authorizeURL.RawQuery = query.Encode()
	return authorizeURL.String()
}

// Exchange trades an authorization code for a token pair.
func (c *Client) Exchange(ctx context.Context, code string) (Token, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", c.config.ClientID)
	form.Set("client_secret", c.config.ClientSecret)
	return c.requestToken(ctx, form)
}

// Refresh trades a refresh token for a new token pair. The provider may
// omit the refresh token when the old one is still valid.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (Token, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	form.Set("client_id", c.config.ClientID)
	form.Set("client_secret", c.config.ClientSecret)
	return c.requestToken(ctx, form)
}

func (c *Client) requestToken(ctx context.Context, form url.Values) (Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Token{}, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Token{}, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Token{}, fmt.Errorf("read token response: %w", err)
	}

	var payload struct {
		AccessToken      string `json:"access_token"`
		RefreshToken     string `json:"refresh_token"`
		ExpiresIn        int64  `json:"expires_in"`
		ErrorCode        string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	// Yandex reports grant failures in the body, sometimes under a 200.
	if jsonErr := json.Unmarshal(body, &payload); jsonErr == nil && payload.ErrorCode != "" {
		return Token{}, &Error{Status: resp.StatusCode, Reason: errorReason(payload.ErrorCode, payload.ErrorDescription)}
	}
	if resp.StatusCode != http.StatusOK {
		return Token{}, &Error{Status: resp.StatusCode, Reason: strings.TrimSpace(string(body))}
	}
	if payload.AccessToken == "" {
		return Token{}, &Error{Status: resp.StatusCode, Reason: "missing access token"}
	}
	if payload.ExpiresIn <= 0 {
		payload.ExpiresIn = defaultExpiresIn
	}
	return Token{
		AccessToken:  payload.AccessToken,
		RefreshToken: payload.RefreshToken,
		ExpiresIn:    payload.ExpiresIn,
	}, nil
}

// FetchProfile resolves an access token to the provider profile. The
// provider is the final authority on token liveness.
func (c *Client) FetchProfile(ctx context.Context, accessToken string) (Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.UserinfoURL, nil)
	if err != nil {
		return Profile{}, fmt.Errorf("build profile request: %w", err)
	}
	// Yandex uses the OAuth scheme rather than Bearer on userinfo.
	req.Header.Set("Authorization", "OAuth "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Profile{}, fmt.Errorf("profile request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return Profile{}, &Error{Status: resp.StatusCode, Reason: strings.TrimSpace(string(body))}
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return Profile{}, fmt.Errorf("decode profile response: %w", err)
	}
	return profile, nil
}

func errorReason(code, description string) string {
	if description == "" {
		return code
	}
	return code + ": " + description
}
