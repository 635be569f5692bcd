package auth

import (
	"context"
	"strings"

	"github.com/Abraxas-365/careersync/pkg/logx"
)

// LoginResponse is returned after a successful code exchange
type LoginResponse struct {
	Token string      `json:"token"`
	User  *GoogleUser `json:"user"`
}

// Service exchanges OAuth codes for session tokens
type Service struct {
	provider IdentityProvider
	tokens   TokenService
}

func NewService(provider IdentityProvider, tokens TokenService) *Service {
	return &Service{
		provider: provider,
		tokens:   tokens,
	}
}

// LoginWithGoogle redeems an authorization code and issues a session token
func (s *Service) LoginWithGoogle(ctx context.Context, code string) (*LoginResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrCodeRequired()
	}

	googleUser, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(googleUser.User())
	if err != nil {
		return nil, ErrTokenGenerationFailed().WithCause(err)
	}

	logx.Infof("User signed in with Google: %s", googleUser.Email)

	return &LoginResponse{
		Token: token,
		User:  googleUser,
	}, nil
}
