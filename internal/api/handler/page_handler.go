package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopease/console-gateway/internal/core/policy"
	"github.com/shopease/console-gateway/internal/core/ports"
)

// PageHandler answers for the guarded console routes themselves. By the time
// a request reaches it the route guard has already allowed the navigation;
// the handler confirms the page descriptor the console should render.
type PageHandler struct {
	sessions ports.SessionService
}

func NewPageHandler(sessions ports.SessionService) *PageHandler {
	return &PageHandler{sessions: sessions}
}

type pageResponse struct {
	Path  string `json:"path"`
	Title string `json:"title"`
	Role  string `json:"role"`
}

func (h *PageHandler) Page(c echo.Context) error {
	sess := h.sessions.Current()
	path := c.Path()

	title := path
	if entry, ok := policy.For(sess.Role); ok {
		for _, r := range entry.Routes {
			if r.Path == path {
				title = r.Label
				break
			}
		}
	}

	return c.JSON(http.StatusOK, pageResponse{Path: path, Title: title, Role: sess.Role})
}

// Login is the unauthenticated landing page redirect target.
func (h *PageHandler) Login(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"page": "login"})
}

// Unauthorized is the access-denied redirect target. The session (when one
// exists) stays intact: an operator with no console access is still logged in.
func (h *PageHandler) Unauthorized(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"page": "unauthorized"})
}
