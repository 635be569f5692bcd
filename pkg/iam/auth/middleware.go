package auth

import (
	"strings"

	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

const (
	localsUserID = "user_id"
	localsClaims = "claims"
)

// TokenMiddleware validates bearer tokens and stores the caller in Locals
type TokenMiddleware struct {
	tokens TokenService
}

func NewTokenMiddleware(tokens TokenService) *TokenMiddleware {
	return &TokenMiddleware{tokens: tokens}
}

// Authenticate rejects requests without a valid bearer token
func (m *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return ErrMissingToken()
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			return err
		}

		setClaims(c, claims)
		return c.Next()
	}
}

// Optional accepts anonymous requests as the demo user. A token that is
// present but invalid is still rejected.
func (m *TokenMiddleware) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			c.Locals(localsUserID, kernel.DemoUserID)
			return c.Next()
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			return err
		}

		setClaims(c, claims)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func setClaims(c *fiber.Ctx, claims *Claims) {
	c.Locals(localsUserID, claims.UserID())
	c.Locals(localsClaims, claims)
}

// GetUserID returns the caller set by the middleware
func GetUserID(c *fiber.Ctx) (kernel.UserID, bool) {
	userID, ok := c.Locals(localsUserID).(kernel.UserID)
	return userID, ok && !userID.IsEmpty()
}

// GetClaims returns the token claims, absent for demo-user requests
func GetClaims(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(localsClaims).(*Claims)
	return claims, ok
}

// RateLimitKey keys rate limits by user when authenticated, by IP otherwise
func RateLimitKey(c *fiber.Ctx) string {
	if userID, ok := GetUserID(c); ok && !userID.IsDemo() {
		return "user:" + userID.String()
	}
	return "ip:" + c.IP()
}
