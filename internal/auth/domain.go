package auth

// Account is a user row joined with its role, as needed for credential
// checks.
type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	Permissions  []string
}
