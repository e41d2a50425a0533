package entities

// Role is the single role carried by an authenticated principal.

type Role string

const (
	RoleClient   Role = "CLIENT"
	RoleOperator Role = "OPERATOR"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) IsValid() bool {
	return r == RoleClient || r == RoleOperator || r == RoleAdmin
}

// IsStaff reports whether the role is a privileged back-office role.
func (r Role) IsStaff() bool {
	return r == RoleOperator || r == RoleAdmin
}

// Principal is the authenticated actor making a request. It is produced by
// the identity provider (verified JWT) and is immutable for the request.

type Principal struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}
