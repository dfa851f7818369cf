package users

// User is a user row joined with its role name, as listed by the API.
// Password hashes never leave the repository layer.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
