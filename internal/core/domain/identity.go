package domain

// Role is an authorization role carried as a token claim.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleBuyer Role = "BUYER"
)

// Identity is the authenticated principal decoded from a capability token.
// It carries exactly what was signed: username plus the role set.
type Identity struct {
	Username string `json:"username"`
	Roles    []Role `json:"roles"`
}

// HasRole reports whether the identity holds the given role.
func (i Identity) HasRole(role Role) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User is a stored credential record. The password is kept only as a bcrypt
// hash; the plaintext never survives authentication.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Roles        []Role `json:"roles"`
}

// Identity projects the user onto its token claims.
func (u User) Identity() Identity {
	return Identity{Username: u.Username, Roles: u.Roles}
}
