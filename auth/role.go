package auth

// Role is the closed set of identities the API distinguishes. Guest is the
// zero value and never appears inside a signed token.
type Role string

const (
	RoleGuest  Role = "guest"
	RoleViewer Role = "viewer"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleViewer, RoleGuest:
		return true
	}
	return false
}
