package domain

// UserProfile is the account detail fetched from the backend once a stored
// token has been decoded and found unexpired.
type UserProfile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role"`
	VendorID string `json:"vendor_id,omitempty"`
}
