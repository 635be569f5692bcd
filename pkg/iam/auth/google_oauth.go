package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Abraxas-365/careersync/pkg/logx"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleUserInfoURL is Google's OAuth2 v2 userinfo endpoint
const GoogleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// IdentityProvider turns an authorization code into a user identity
type IdentityProvider interface {
	Exchange(ctx context.Context, code string) (*GoogleUser, error)
}

// GoogleUser is the userinfo payload returned by Google
type GoogleUser struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name,omitempty"`
	FamilyName    string `json:"family_name,omitempty"`
	Picture       string `json:"picture"`
	Locale        string `json:"locale,omitempty"`
}

func (u *GoogleUser) User() User {
	return User{ID: u.ID, Email: u.Email, Name: u.Name, Picture: u.Picture}
}

type GoogleProvider struct {
	config      *oauth2.Config
	userInfoURL string
}

var _ IdentityProvider = (*GoogleProvider)(nil)

// NewGoogleProvider configures the code exchange against Google's token endpoint
func NewGoogleProvider(clientID, clientSecret, redirectURL string) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
		userInfoURL: GoogleUserInfoURL,
	}
}

// Exchange redeems code for an access token and fetches the user's profile
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*GoogleUser, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		logx.Errorf("Google token error: %v", err)
		return nil, ErrCodeExchangeFailed().WithCause(err)
	}

	resp, err := p.config.Client(ctx, token).Get(p.userInfoURL)
	if err != nil {
		logx.Errorf("Google user info error: %v", err)
		return nil, ErrUserInfoFailed().WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		logx.Errorf("Google user info error: status %d: %s", resp.StatusCode, string(body))
		return nil, ErrUserInfoFailed().WithCause(fmt.Errorf("userinfo returned status %d", resp.StatusCode))
	}

	var user GoogleUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, ErrUserInfoFailed().WithCause(err)
	}
	if user.ID == "" {
		return nil, ErrUserInfoFailed().WithReason("userinfo has no id")
	}
	return &user, nil
}
