package middleware

import (
	"net/http"

	"licenca_flow_go/db"
	"licenca_flow_go/models"
	"licenca_flow_go/services"

	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName is the name of the session cookie
	SessionCookieName = "licenca_flow_session"
	// ContextKeyProfile is the context key for the authenticated profile
	ContextKeyProfile = "profile"
	// ContextKeySession is the context key for the session
	ContextKeySession = "session"
)

// RequireAuth is middleware that requires an authenticated session
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Usuário não autenticado")
			}

			session, err := services.ValidateSession(db.DB, cookie.Value)
			if err != nil {
				clearSessionCookie(c)
				return echo.NewHTTPError(http.StatusUnauthorized, "Usuário não autenticado")
			}

			if !session.Profile.IsActive {
				clearSessionCookie(c)
				return echo.NewHTTPError(http.StatusUnauthorized, "Usuário inativo")
			}

			c.Set(ContextKeyProfile, &session.Profile)
			c.Set(ContextKeySession, session)

			return next(c)
		}
	}
}

// GetCurrentProfile retrieves the authenticated profile from context.
// Returns nil when the request carries no valid session.
func GetCurrentProfile(c echo.Context) *models.Profile {
	profile, ok := c.Get(ContextKeyProfile).(*models.Profile)
	if !ok {
		return nil
	}
	return profile
}

// GetCurrentSession retrieves the session from context
func GetCurrentSession(c echo.Context) *models.Session {
	session, ok := c.Get(ContextKeySession).(*models.Session)
	if !ok {
		return nil
	}
	return session
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
