package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shopease/console-gateway/internal/core/domain"
	"github.com/shopease/console-gateway/internal/core/policy"
)

func TestNavigation_RequiresAuthentication(t *testing.T) {
	h := NewNavigationHandler(&stubSessionService{
		current: domain.Session{Status: domain.SessionIdle},
	})

	c, _ := newTestContext(http.MethodGet, "/v1/navigation", "")
	err := h.Navigation(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestNavigation_UnrecognizedRole(t *testing.T) {
	h := NewNavigationHandler(&stubSessionService{
		current: domain.Session{Status: domain.SessionValid, Role: "User"},
	})

	c, _ := newTestContext(http.MethodGet, "/v1/navigation", "")
	if err := h.Navigation(c); err != domain.ErrRoleUnrecognized {
		t.Fatalf("expected ErrRoleUnrecognized, got %v", err)
	}
}

func TestNavigation_CoversEveryPolicyRoute(t *testing.T) {
	for _, role := range policy.Roles() {
		entry, _ := policy.For(role)
		h := NewNavigationHandler(&stubSessionService{
			current: domain.Session{Status: domain.SessionValid, Role: role},
		})

		c, rec := newTestContext(http.MethodGet, "/v1/navigation", "")
		if err := h.Navigation(c); err != nil {
			t.Fatalf("role %s: %v", role, err)
		}

		var resp navigationResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("role %s: decode: %v", role, err)
		}
		if resp.Role != role {
			t.Fatalf("role %s: response role %q", role, resp.Role)
		}

		got := make(map[string]bool)
		var walk func(items []menuItem)
		walk = func(items []menuItem) {
			for _, item := range items {
				got[item.Path] = true
				walk(item.Children)
			}
		}
		walk(resp.Menu)

		for _, r := range entry.Routes {
			if !got[r.Path] {
				t.Fatalf("role %s: route %s missing from menu", role, r.Path)
			}
		}
		if len(got) != len(entry.Routes) {
			t.Fatalf("role %s: menu has %d paths, policy lists %d", role, len(got), len(entry.Routes))
		}
	}
}

func TestBuildMenu_NestsChildrenUnderParent(t *testing.T) {
	routes := []domain.RouteDescriptor{
		{Path: "/admin", Label: "Dashboard"},
		{Path: "/admin/category", Label: "Categories", Parent: "/admin"},
		{Path: "/admin/order-management", Label: "Orders"},
	}

	menu := buildMenu(routes)
	if len(menu) != 2 {
		t.Fatalf("expected 2 top-level items, got %d", len(menu))
	}
	if menu[0].Path != "/admin" || menu[1].Path != "/admin/order-management" {
		t.Fatalf("top-level order not preserved: %+v", menu)
	}
	if len(menu[0].Children) != 1 || menu[0].Children[0].Path != "/admin/category" {
		t.Fatalf("child not nested under parent: %+v", menu[0].Children)
	}
}

func TestBuildMenu_DanglingParentStaysTopLevel(t *testing.T) {
	routes := []domain.RouteDescriptor{
		{Path: "/vendor/inventory", Label: "Inventory", Parent: "/vendor/missing"},
	}

	menu := buildMenu(routes)
	if len(menu) != 1 || menu[0].Path != "/vendor/inventory" {
		t.Fatalf("route with unknown parent must not disappear: %+v", menu)
	}
}
