package shared

// Principal describes the authenticated actor resolved from the session
// cookie against the users table.
type Principal struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission reports whether the principal's role grants the capability.
// The "all" tag is a super-capability matching any check.
func (p Principal) HasPermission(permission string) bool {
	for _, granted := range p.Permissions {
		if granted == "all" || granted == permission {
			return true
		}
	}
	return false
}
