// Package session keeps the admin's bearer token in a signed HTTP-only
// cookie and exposes the signed-in user per request.
package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/imrishuroy/go-ecom-admin/internal/remote"
	"go.uber.org/zap"
)

const (
	tokenValue = "token"
	userKey    = "current_user"
)

// ErrNoSession is returned when the request carries no usable token.
var ErrNoSession = errors.New("no session")

// ProfileFetcher resolves the token in ctx to a user.
type ProfileFetcher interface {
	Profile(ctx context.Context) (*remote.User, error)
}

// Manager reads and writes the session cookie.
type Manager struct {
	store *sessions.CookieStore
	name  string
}

// Options configures the cookie.
type Options struct {
	Name   string
	Secret string
	TTL    time.Duration
	Secure bool
}

func NewManager(opts Options) *Manager {
	store := sessions.NewCookieStore([]byte(opts.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(opts.TTL / time.Second),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store, name: opts.Name}
}

// Token returns the stored bearer token, or "" when there is none or the
// cookie fails verification.
func (m *Manager) Token(r *http.Request) string {
	s, err := m.store.Get(r, m.name)
	if err != nil {
		return ""
	}
	tok, _ := s.Values[tokenValue].(string)
	return tok
}

// SetToken stores token in the session cookie.
func (m *Manager) SetToken(w http.ResponseWriter, r *http.Request, token string) error {
	// a tampered cookie yields an error and a fresh session, which is fine to overwrite
	s, _ := m.store.Get(r, m.name)
	s.Values[tokenValue] = token
	return s.Save(r, w)
}

// Clear expires the cookie. It succeeds when there is no cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	s, _ := m.store.Get(r, m.name)
	delete(s.Values, tokenValue)
	s.Options.MaxAge = -1
	return s.Save(r, w)
}

// Middleware threads the session token into the request context so remote
// calls made while serving it carry the bearer.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok := m.Token(c.Request); tok != "" {
			c.Request = c.Request.WithContext(remote.WithToken(c.Request.Context(), tok))
		}
		c.Next()
	}
}

// RequireUser resolves the signed-in user once per request and stores it
// for CurrentUser. Requests without a valid session get 401.
func RequireUser(profiles ProfileFetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		if remote.TokenFrom(c.Request.Context()) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized!"})
			return
		}
		u, err := profiles.Profile(c.Request.Context())
		if err != nil {
			var apiErr *remote.APIError
			if errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized!"})
				return
			}
			zap.L().Warn("profile lookup failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"success": false, "message": err.Error()})
			return
		}
		if u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized!"})
			return
		}
		c.Set(userKey, u)
		c.Next()
	}
}

// CurrentUser returns the user resolved by RequireUser for this request.
func CurrentUser(c *gin.Context) (*remote.User, error) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, ErrNoSession
	}
	u, ok := v.(*remote.User)
	if !ok || u == nil {
		return nil, ErrNoSession
	}
	return u, nil
}

// Actor names the current user for audit records, or "" when anonymous.
func Actor(c *gin.Context) string {
	u, err := CurrentUser(c)
	if err != nil {
		return ""
	}
	if u.Email != "" {
		return u.Email
	}
	return u.ID
}
