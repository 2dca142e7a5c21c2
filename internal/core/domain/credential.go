package domain

// Role is the closed set of staff roles. Each role owns exactly one dashboard.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleProvider Role = "provider"
)

// Roles lists every valid role in display order.
var Roles = []Role{RoleAdmin, RoleManager, RoleProvider}

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleProvider:
		return true
	}
	return false
}

// Credential is a stored account record. Password holds the stored secret
// form (a bcrypt hash), never the submitted plaintext.
type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}

// Profile is the credential without its secret, safe to echo back to clients.
type Profile struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
}

func (c Credential) Profile() Profile {
	return Profile{Email: c.Email, Role: c.Role, Name: c.Name}
}
