// Package policy holds the static role → routes/components table that drives
// the route guard and the sidebar. It is the single auditable surface for the
// console's authorization policy: onboarding a new screen is one table edit.
package policy

import "github.com/shopease/console-gateway/internal/core/domain"

// table is built once at process start and never mutated afterwards.
//
// The "User" role that appears in the backend's registration flow has no entry
// here on purpose: it is an incomplete upstream feature, and inventing routes
// for it would silently widen the authorization surface. The guard degrades an
// unknown role to an unauthorized redirect.
var table = map[string]domain.PermissionEntry{
	domain.RoleAdmin: {
		Role: domain.RoleAdmin,
		Routes: []domain.RouteDescriptor{
			{Path: "/admin", Label: "Dashboard", Icon: "dashboard"},
			{Path: "/admin/user-management", Label: "Users", Icon: "people", Parent: "/admin"},
			{Path: "/admin/category", Label: "Categories", Icon: "category", Parent: "/admin"},
			{Path: "/admin/product-management", Label: "Products", Icon: "inventory", Parent: "/admin"},
			{Path: "/admin/order-management", Label: "Orders", Icon: "receipt", Parent: "/admin"},
			{Path: "/admin/vendor-management", Label: "Vendors", Icon: "store", Parent: "/admin"},
		},
		AllowedComponents: []string{
			"AdminDashboard",
			"UserTable",
			"CategoryTable",
			"ProductTable",
			"OrderTable",
			"VendorTable",
			"AuditTrail",
		},
	},
	domain.RoleVendor: {
		Role: domain.RoleVendor,
		Routes: []domain.RouteDescriptor{
			{Path: "/vendor", Label: "Dashboard", Icon: "dashboard"},
			{Path: "/vendor/product-management", Label: "Products", Icon: "inventory", Parent: "/vendor"},
			{Path: "/vendor/inventory", Label: "Inventory", Icon: "warehouse", Parent: "/vendor"},
			{Path: "/vendor/order-management", Label: "Orders", Icon: "receipt", Parent: "/vendor"},
		},
		AllowedComponents: []string{
			"VendorDashboard",
			"ProductTable",
			"InventoryTable",
			"OrderTable",
		},
	},
	domain.RoleCSR: {
		Role: domain.RoleCSR,
		Routes: []domain.RouteDescriptor{
			{Path: "/csr", Label: "Dashboard", Icon: "dashboard"},
			{Path: "/csr/order-management", Label: "Orders", Icon: "receipt", Parent: "/csr"},
			{Path: "/csr/customer-support", Label: "Support", Icon: "headset", Parent: "/csr"},
		},
		AllowedComponents: []string{
			"CSRDashboard",
			"OrderTable",
			"TicketTable",
		},
	},
}

// For returns the permission entry for role. The boolean distinguishes an
// unrecognized role (a meaningful unauthorized outcome) from having no role
// at all (an unauthenticated outcome) — callers must not conflate the two.
func For(role string) (domain.PermissionEntry, bool) {
	entry, ok := table[role]
	return entry, ok
}

// Roles returns the roles that have a policy entry, in stable order.
func Roles() []string {
	return []string{domain.RoleAdmin, domain.RoleVendor, domain.RoleCSR}
}

// AllPaths returns every distinct guarded path across all entries, in stable
// order. The router uses it to register one guarded route per path.
func AllPaths() []string {
	seen := make(map[string]struct{})
	var paths []string
	for _, role := range Roles() {
		for _, r := range table[role].Routes {
			if _, ok := seen[r.Path]; ok {
				continue
			}
			seen[r.Path] = struct{}{}
			paths = append(paths, r.Path)
		}
	}
	return paths
}
