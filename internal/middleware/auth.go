package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/services"
)

// Context keys set by LoadSession.
const (
	UserIDKey  = "userID"
	UserKey    = "user"
	SessionKey = "session"
)

// SessionCookie describes the cookie carrying the session token.
type SessionCookie struct {
	Name   string
	Secure bool
}

// Set writes token as the session cookie, valid until expiresAt. Only
// Expires is sent, so the lifetime follows the session service's clock.
func (sc SessionCookie) Set(c *gin.Context, token string, expiresAt time.Time) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     sc.Name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear writes a blank cookie that makes the browser drop the session.
func (sc SessionCookie) Clear(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     sc.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token returns the session token from the cookie, falling back to an
// "Authorization: Bearer" header.
func (sc SessionCookie) Token(c *gin.Context) string {
	if token, err := c.Cookie(sc.Name); err == nil && token != "" {
		return token
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// LoadSession resolves the request's session, if any, and stores the user
// and session in the context. Requests without a valid session pass through
// untouched. An extended session gets a fresh cookie.
func LoadSession(sessions services.SessionServicer, cookie SessionCookie) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, session, err := sessions.ValidateSession(cookie.Token(c))
		if err != nil {
			abortWithError(c, err)
			return
		}

		if user != nil && session != nil {
			c.Set(UserIDKey, user.ID)
			c.Set(UserKey, user)
			c.Set(SessionKey, session)

			if session.Fresh {
				token, err := sessions.IssueToken(session)
				if err != nil {
					abortWithError(c, err)
					return
				}
				cookie.Set(c, token, session.ExpiresAt)
			}
		}

		c.Next()
	}
}

// RequireAuth rejects requests that LoadSession did not authenticate.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(UserIDKey); !ok {
			abortWithError(c, apperrors.ErrUnauthorized)
			return
		}
		c.Next()
	}
}

// CurrentSession returns the user and session stored by LoadSession.
func CurrentSession(c *gin.Context) (*models.User, *models.Session) {
	var (
		user    *models.User
		session *models.Session
	)
	if v, ok := c.Get(UserKey); ok {
		user, _ = v.(*models.User)
	}
	if v, ok := c.Get(SessionKey); ok {
		session, _ = v.(*models.Session)
	}
	return user, session
}
