package middleware

import (
	"net/http"
	"slices"
	"time"

	"event-portal/core/backend"
	"event-portal/core/config"
	"event-portal/core/constants"
	"event-portal/core/controller"
	"event-portal/core/errors"
	"event-portal/core/logger"
	"event-portal/core/utils"
	"event-portal/modules/session/entity"
	sessionservice "event-portal/modules/session/service"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	sessions     sessionservice.SessionServiceInterface
	cookieName   string
	cookieSecure bool
	cookieTTL    time.Duration
}

func NewMiddleware(sessions sessionservice.SessionServiceInterface, cfg config.SessionConfig) *Middleware {
	return &Middleware{
		sessions:     sessions,
		cookieName:   cfg.CookieName,
		cookieSecure: cfg.CookieSecure,
		cookieTTL:    cfg.TTL,
	}
}

// SessionToken returns the portal token from the session cookie or the Authorization header.
func (m *Middleware) SessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return utils.GetTokenFromHeader(c.Request().Header.Get(echo.HeaderAuthorization))
}

// SessionMiddleware hydrates the caller's session before any handler runs.
// A store failure leaves the session unhydrated so guards can answer with a loading state.
func (m *Middleware) SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := m.SessionToken(c)
			if token == "" {
				SetSession(c, entity.Session{Hydrated: true})
				return next(c)
			}

			id, err := m.sessions.ParseToken(token)
			if err != nil {
				logger.Debug("Middleware:Session:InvalidToken", "error", err)
				SetSession(c, entity.Session{Hydrated: true})
				return next(c)
			}

			sess, err := m.sessions.Load(c.Request().Context(), id)
			if err != nil {
				SetSession(c, entity.Session{ID: id})
				return next(c)
			}
			SetSession(c, *sess)
			return next(c)
		}
	}
}

// AuthMiddleware requires a signed-in user.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := GetSession(c)
			if !sess.Hydrated {
				c.Response().Header().Set("Retry-After", "1")
				return controller.NewErrorResponse(http.StatusServiceUnavailable, errors.ErrSessionLoading, "session is still loading")
			}
			if !sess.SignedIn() {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "User not authenticated")
			}
			return next(c)
		}
	}
}

// RequireRoles must run after AuthMiddleware.
func (m *Middleware) RequireRoles(roles ...backend.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := GetSession(c)
			if !slices.Contains(roles, sess.Role()) {
				return controller.NewErrorResponse(http.StatusForbidden, errors.ErrForbidden, "role not allowed")
			}
			return next(c)
		}
	}
}

// GetSession returns the hydrated session, or an unhydrated zero value when the middleware did not run.
func GetSession(c echo.Context) entity.Session {
	if s, ok := c.Get(constants.ContextSession).(entity.Session); ok {
		return s
	}
	return entity.Session{}
}

func SetSession(c echo.Context, s entity.Session) {
	c.Set(constants.ContextSession, s)
}
