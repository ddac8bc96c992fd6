package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/session"
)

// SessionAuth bridges the session store and the HTTP transport: it issues and
// clears the signed session cookie and gates protected routes. The cookie
// value is verified before any store lookup, so forged cookies never touch
// Redis.
type SessionAuth struct {
	store      session.Store
	codec      *session.Codec
	cookieName string
	ttl        time.Duration
}

// NewSessionAuth creates the cookie-based session transport.
func NewSessionAuth(store session.Store, codec *session.Codec, cookieName string, ttl time.Duration) *SessionAuth {
	return &SessionAuth{store: store, codec: codec, cookieName: cookieName, ttl: ttl}
}

// IsAuthenticated reports whether the request carries a valid admin session.
func (s *SessionAuth) IsAuthenticated(c *fiber.Ctx) bool {
	token, ok := s.codec.Verify(c.Cookies(s.cookieName))
	if !ok {
		return false
	}
	return s.store.Valid(c.UserContext(), token)
}

// Establish creates a new session and sets the signed cookie on the response.
func (s *SessionAuth) Establish(c *fiber.Ctx) error {
	token, err := s.store.Create(c.UserContext())
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     s.cookieName,
		Value:    s.codec.Sign(token),
		Expires:  time.Now().Add(s.ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return nil
}

// Destroy removes the session from the store and expires the cookie.
// Destroying an anonymous request is a no-op.
func (s *SessionAuth) Destroy(c *fiber.Ctx) error {
	if token, ok := s.codec.Verify(c.Cookies(s.cookieName)); ok {
		if err := s.store.Destroy(c.UserContext(), token); err != nil {
			return err
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return nil
}

// RequireAPI gates JSON endpoints: anonymous requests get 401 with the
// documented body and no partial data.
func (s *SessionAuth) RequireAPI() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !s.IsAuthenticated(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		return c.Next()
	}
}

// RequirePage gates HTML pages: anonymous requests are redirected to the
// login form.
func (s *SessionAuth) RequirePage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !s.IsAuthenticated(c) {
			return c.Redirect("/login", fiber.StatusFound)
		}
		return c.Next()
	}
}
