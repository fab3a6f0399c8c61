// Package google implements the Google OAuth provider.
package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/feedrecap/appcore/provider"
)

const providerName = "google"

const issuerURL = "https://accounts.google.com"

// Provider exchanges Google authorization codes for verified identities.
type Provider struct {
	oauthConfig *oauth2.Config
	verifier    *oidc.IDTokenVerifier
}

// New builds the provider, discovering the Google OIDC endpoints.
func New(ctx context.Context, clientID, clientSecret, redirectURL string) (*Provider, error) {
	if clientID == "" || clientSecret == "" || redirectURL == "" {
		return nil, errors.New("google oauth config missing required fields")
	}

	oidcProvider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init google oidc provider: %w", err)
	}

	verifier := oidcProvider.Verifier(&oidc.Config{ClientID: clientID})

	oauthCfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     oidcProvider.Endpoint(),
		Scopes: []string{
			oidc.ScopeOpenID,
			"profile",
			"email",
		},
	}

	return &Provider{
		oauthConfig: oauthCfg,
		verifier:    verifier,
	}, nil
}

// Name returns the provider identifier used by the registry.
func (p *Provider) Name() string {
	return providerName
}

// AuthCodeURL builds the OAuth authorization URL.
func (p *Provider) AuthCodeURL(state string) string {
	return p.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the authorization code for a verified identity.
func (p *Provider) Exchange(ctx context.Context, code string) (*provider.Identity, error) {
	token, err := p.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google token exchange failed: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("google did not return id_token")
	}

	idToken, err := p.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("google id_token verification failed: %w", err)
	}

	var claims struct {
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		GivenName     string `json:"given_name"`
		FamilyName    string `json:"family_name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("google id_token claims parse failed: %w", err)
	}
	if claims.Email == "" {
		return nil, errors.New("google id_token missing email claim")
	}

	return &provider.Identity{
		Provider:      providerName,
		Email:         claims.Email,
		FirstName:     claims.GivenName,
		LastName:      claims.FamilyName,
		EmailVerified: claims.EmailVerified,
	}, nil
}
