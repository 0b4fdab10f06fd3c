package domain

import "time"

// Role names are assigned by the backend and embedded in the access token.
// The gateway only ever reads them; it never grants or mutates a role.
const (
	RoleAdmin  = "Admin"
	RoleVendor = "Vendor"
	RoleCSR    = "CSR"
)

// Claims is the structured view of an access token's payload. The token is
// untrusted client-side input: its signature is verified by the backend on
// every authenticated request, so decoding here is convenience parsing for
// navigation decisions, not a trust boundary.
type Claims struct {
	Role      string
	ExpiresAt time.Time
	Subject   string
	UserID    string
	VendorID  string
}

// Expired reports whether the claims are expired at the given instant.
// The boundary is inclusive: exp <= now counts as expired.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}
