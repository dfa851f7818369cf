package roles

// Role groups a set of capability tags. The "all" tag matches any check.
type Role struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}
