package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/careersync/pkg/errx"
	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long issued session tokens stay valid
const DefaultTokenTTL = 7 * 24 * time.Hour

// User is the identity carried in session tokens
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Claims are the JWT claims of a session token
type Claims struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() kernel.UserID {
	return kernel.NewUserID(c.ID)
}

func (c *Claims) User() User {
	return User{ID: c.ID, Email: c.Email, Name: c.Name, Picture: c.Picture}
}

// TokenService issues and validates session tokens
type TokenService interface {
	GenerateToken(user User) (string, error)
	ValidateToken(token string) (*Claims, error)
}

// JWTService signs HS256 tokens with a shared secret
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ TokenService = (*JWTService)(nil)

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// GenerateToken signs a token for user expiring after the configured TTL
func (s *JWTService) GenerateToken(user User) (string, error) {
	now := s.now()
	claims := Claims{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Picture: user.Picture,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errx.Wrap(err, "failed to sign token", errx.TypeInternal)
	}
	return token, nil
}

// ValidateToken parses token and checks its signature and expiry
func (s *JWTService) ValidateToken(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrInvalidToken().WithReason("token expired")
		}
		return nil, ErrInvalidToken().WithCause(err)
	}
	if !parsed.Valid || claims.ID == "" {
		return nil, ErrInvalidToken().WithCause(fmt.Errorf("token has no user id"))
	}
	return claims, nil
}
