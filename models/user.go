package models

// UserRole is the permission tier carried in the token's role claim
type UserRole string

const (
	RoleCustomer UserRole = "Customer"
	RoleDriver   UserRole = "Driver"
	RoleAdmin    UserRole = "Admin"
)

var roleLabels = map[UserRole]string{
	RoleCustomer: "Customer",
	RoleDriver:   "Driver",
	RoleAdmin:    "Administrator",
}

// Label is the human readable role name shown in the header badge.
// Unknown roles are printed as-is.
func (r UserRole) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return string(r)
}

// Identity is what the client knows about the signed-in user, decoded from the token
type Identity struct {
	Role     UserRole `json:"role"`
	FullName string   `json:"fullName"`
	Email    string   `json:"email"`
}

// DefaultIdentity is returned whenever a token cannot be decoded
func DefaultIdentity() Identity {
	return Identity{Role: RoleCustomer}
}

// Session is the in-memory authenticated state of the running client
type Session struct {
	Token string `json:"-"`
	Identity
}

// DisplayName picks the full name, then the email, then a generic label
func (s *Session) DisplayName() string {
	if s.FullName != "" {
		return s.FullName
	}
	if s.Email != "" {
		return s.Email
	}
	return "User"
}
