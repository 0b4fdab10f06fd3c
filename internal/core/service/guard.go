package service

import (
	"github.com/shopease/console-gateway/internal/core/domain"
	"github.com/shopease/console-gateway/internal/core/policy"
)

// Guard decides whether the current session may render a requested console
// path. Evaluation is synchronous over an already-resolved session snapshot:
// it never triggers a session load, and a session still loading is denied
// pessimistically rather than allowed on a stale role.
//
// This is UX gating, not a security boundary — every backend endpoint
// re-checks the role server-side on each request.
type Guard struct{}

func NewGuard() *Guard {
	return &Guard{}
}

// Authorize maps (session, requestedPath) to a decision:
//
//	no usable role            → redirect to login
//	role without policy entry → redirect to unauthorized
//	path listed for the role  → allow
//	anything else             → redirect to unauthorized
//
// Path membership is an exact string match. Parent grouping in the policy
// table is menu metadata only and grants nothing in either direction.
func (g *Guard) Authorize(session domain.Session, requestedPath string) domain.Decision {
	if !session.Authenticated() {
		return domain.DecisionRedirectLogin
	}

	entry, ok := policy.For(session.Role)
	if !ok {
		return domain.DecisionRedirectUnauthorized
	}

	if entry.AllowsPath(requestedPath) {
		return domain.DecisionAllow
	}
	return domain.DecisionRedirectUnauthorized
}

// AuthorizeComponent is the component-level enforcement layer over the
// policy table's allow-list, for components reachable through more than one
// path.
func (g *Guard) AuthorizeComponent(session domain.Session, component string) domain.Decision {
	if !session.Authenticated() {
		return domain.DecisionRedirectLogin
	}

	entry, ok := policy.For(session.Role)
	if !ok {
		return domain.DecisionRedirectUnauthorized
	}

	if entry.AllowsComponent(component) {
		return domain.DecisionAllow
	}
	return domain.DecisionRedirectUnauthorized
}
