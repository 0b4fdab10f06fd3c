package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopease/console-gateway/internal/core/domain"
	"github.com/shopease/console-gateway/internal/core/policy"
	"github.com/shopease/console-gateway/internal/core/ports"
)

// NavigationHandler renders the caller's permission entry as the sidebar
// payload: top-level items with their grouped children, plus the component
// allow-list the console uses to decide which widgets to mount.
type NavigationHandler struct {
	sessions ports.SessionService
}

func NewNavigationHandler(sessions ports.SessionService) *NavigationHandler {
	return &NavigationHandler{sessions: sessions}
}

type menuItem struct {
	Path     string     `json:"path"`
	Label    string     `json:"label"`
	Icon     string     `json:"icon,omitempty"`
	Children []menuItem `json:"children,omitempty"`
}

type navigationResponse struct {
	Role       string     `json:"role"`
	Menu       []menuItem `json:"menu"`
	Components []string   `json:"components"`
}

func (h *NavigationHandler) Navigation(c echo.Context) error {
	sess := h.sessions.Current()
	if !sess.Authenticated() {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	entry, ok := policy.For(sess.Role)
	if !ok {
		return domain.ErrRoleUnrecognized
	}

	return c.JSON(http.StatusOK, navigationResponse{
		Role:       sess.Role,
		Menu:       buildMenu(entry.Routes),
		Components: entry.AllowedComponents,
	})
}

// buildMenu nests routes under their parent while preserving the table's
// declared order. A route whose parent is not in the list falls back to the
// top level rather than disappearing.
func buildMenu(routes []domain.RouteDescriptor) []menuItem {
	children := make(map[string][]menuItem)
	listed := make(map[string]bool, len(routes))
	for _, r := range routes {
		listed[r.Path] = true
	}

	var top []menuItem
	for _, r := range routes {
		item := menuItem{Path: r.Path, Label: r.Label, Icon: r.Icon}
		if r.Parent != "" && listed[r.Parent] {
			children[r.Parent] = append(children[r.Parent], item)
			continue
		}
		top = append(top, item)
	}

	for i := range top {
		top[i].Children = children[top[i].Path]
	}
	return top
}
