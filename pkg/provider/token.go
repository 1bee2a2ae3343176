package provider

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/oauth2"
)

// TokenUpdateFunc is a callback invoked when a refreshed token should be
// persisted back to the workspace record.
type TokenUpdateFunc func(token *oauth2.Token) error

// TokenSource yields the credential to send with each provider request
type TokenSource interface {
	Token() (string, error)
}

// StaticToken wraps an API key that never expires
type StaticToken string

func (s StaticToken) Token() (string, error) {
	if s == "" {
		return "", fmt.Errorf("no provider credential configured")
	}
	return string(s), nil
}

// notifyTokenSource wraps an oauth2 token source and persists refreshed
// tokens through the callback so a restarted run picks up the new credential.
type notifyTokenSource struct {
	src      oauth2.TokenSource
	current  *oauth2.Token
	callback TokenUpdateFunc
}

func (s *notifyTokenSource) Token() (string, error) {
	t, err := s.src.Token()
	if err != nil {
		return "", err
	}
	if s.callback != nil && s.current.AccessToken != t.AccessToken {
		s.current = t
		if err := s.callback(t); err != nil {
			log.Printf("[Provider] Failed to persist refreshed token: %v", err)
		}
	}
	return t.AccessToken, nil
}

// OAuthConfig holds the provider's token-endpoint settings for workspaces
// connected via OAuth rather than a raw API key.
type OAuthConfig struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
}

// NewOAuthTokenSource builds an auto-refreshing token source from stored
// access/refresh tokens. Refreshed tokens are handed to onRefresh.
func NewOAuthTokenSource(ctx context.Context, cfg OAuthConfig, accessToken, refreshToken string, onRefresh TokenUpdateFunc) TokenSource {
	token := &oauth2.Token{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	}

	// Only force refresh if we have a refresh token
	if refreshToken != "" {
		token.Expiry = time.Now()
	}

	conf := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: cfg.TokenURL},
	}

	return &notifyTokenSource{
		src:      conf.TokenSource(ctx, token),
		current:  token,
		callback: onRefresh,
	}
}
