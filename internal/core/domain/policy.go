package domain

// RouteDescriptor declares one navigable console location. Parent is a pure
// grouping key for menu nesting: it matches another descriptor's Path and
// never grants or implies access in either direction.
type RouteDescriptor struct {
	Path   string `json:"path"`
	Label  string `json:"label"`
	Icon   string `json:"icon,omitempty"`
	Parent string `json:"parent,omitempty"`
}

// PermissionEntry is the static policy for one role: the ordered routes the
// role may navigate to and the UI components it may render.
type PermissionEntry struct {
	Role              string            `json:"role"`
	Routes            []RouteDescriptor `json:"routes"`
	AllowedComponents []string          `json:"allowed_components"`
}

// AllowsPath reports whether path appears literally in the entry's routes.
// Exact string match only; a detail page under a listed parent is not
// automatically authorized.
func (e PermissionEntry) AllowsPath(path string) bool {
	for _, r := range e.Routes {
		if r.Path == path {
			return true
		}
	}
	return false
}

// AllowsComponent reports whether the named UI component is in the entry's
// allow-list.
func (e PermissionEntry) AllowsComponent(name string) bool {
	for _, c := range e.AllowedComponents {
		if c == name {
			return true
		}
	}
	return false
}

// Decision is the outcome of a route-guard evaluation.
type Decision string

const (
	DecisionAllow                Decision = "allow"
	DecisionRedirectLogin        Decision = "redirect_login"
	DecisionRedirectUnauthorized Decision = "redirect_unauthorized"
)
