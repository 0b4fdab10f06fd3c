package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shopease/console-gateway/internal/api/metrics"
	"github.com/shopease/console-gateway/internal/core/domain"
	"github.com/shopease/console-gateway/internal/core/ports"
	"github.com/shopease/console-gateway/internal/core/service"
)

// Redirect targets for guarded navigation. Unauthenticated operators land on
// the login page, unauthorized ones on the access-denied page; protected
// content is never partially rendered before the redirect resolves.
const (
	LoginPath        = "/"
	UnauthorizedPath = "/unauthorized"
)

// Guard gates every console page route on the current session. Evaluation is
// synchronous over a session snapshot; it never triggers a session load.
func Guard(sessions ports.SessionService, guard *service.Guard, audit ports.AuditRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			sess := sessions.Current()
			decision := guard.Authorize(sess, path)
			metrics.GuardDecisionsTotal.WithLabelValues(string(decision)).Inc()

			switch decision {
			case domain.DecisionAllow:
				return next(c)
			case domain.DecisionRedirectLogin:
				return c.Redirect(http.StatusFound, LoginPath)
			default:
				audit.Record(c.Request().Context(), domain.AuditEvent{
					Action:     domain.AuditGuardDenied,
					Role:       sess.Role,
					Path:       path,
					Decision:   string(decision),
					OccurredAt: time.Now().UTC(),
				})
				return c.Redirect(http.StatusFound, UnauthorizedPath)
			}
		}
	}
}

// GuardComponent gates a route on the policy table's component allow-list
// rather than its path list, for surfaces reachable through more than one
// path.
func GuardComponent(sessions ports.SessionService, guard *service.Guard, audit ports.AuditRecorder, component string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := sessions.Current()
			decision := guard.AuthorizeComponent(sess, component)
			metrics.GuardDecisionsTotal.WithLabelValues(string(decision)).Inc()

			switch decision {
			case domain.DecisionAllow:
				return next(c)
			case domain.DecisionRedirectLogin:
				return domain.ErrSessionNotValid
			default:
				audit.Record(c.Request().Context(), domain.AuditEvent{
					Action:     domain.AuditGuardDenied,
					Role:       sess.Role,
					Path:       c.Path(),
					Decision:   string(decision),
					OccurredAt: time.Now().UTC(),
				})
				return domain.ErrPathNotPermitted
			}
		}
	}
}
