// Package googleauth exchanges a Google OAuth authorization code for the
// signed-in visitor's identity.
package googleauth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Claims is the identity Google asserts for the visitor.
type Claims struct {
	Subject string // Google's stable user id
	Email   string
	Name    string
}

// Verifier wraps the OAuth code-for-token exchange.
type Verifier struct {
	cfg *oauth2.Config
}

// NewVerifier configures the Google OAuth flow.
// PRE: clientID and clientSecret come from the Google Cloud console;
// redirectURL matches a registered redirect URI
func NewVerifier(clientID, clientSecret, redirectURL string) *Verifier {
	return &Verifier{cfg: &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     google.Endpoint,
		Scopes:       []string{"openid", "email", "profile"},
	}}
}

// AuthURL returns the consent-screen URL for the given anti-forgery state.
func (v *Verifier) AuthURL(state string) string {
	return v.cfg.AuthCodeURL(state)
}

// Exchange trades the authorization code for tokens and extracts the
// identity claims from the bundled ID token.
//
// The ID token arrives directly from Google's token endpoint over TLS in
// the same response as the access token, so its signature needs no second
// verification here.
func (v *Verifier) Exchange(ctx context.Context, code string) (Claims, error) {
	tok, err := v.cfg.Exchange(ctx, code)
	if err != nil {
		slog.Error("google_exchange_failed", "error", err)
		return Claims{}, fmt.Errorf("exchange authorization code: %w", err)
	}

	raw, ok := tok.Extra("id_token").(string)
	if !ok || raw == "" {
		return Claims{}, fmt.Errorf("token response carries no id_token")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return Claims{}, fmt.Errorf("decode id_token: %w", err)
	}

	out := Claims{
		Subject: stringClaim(claims, "sub"),
		Email:   stringClaim(claims, "email"),
		Name:    stringClaim(claims, "name"),
	}
	if out.Subject == "" || out.Email == "" {
		return Claims{}, fmt.Errorf("id_token missing sub or email claim")
	}
	return out, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
