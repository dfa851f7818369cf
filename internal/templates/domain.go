package templates

// Template is a stored HTML document with {{tag}} placeholders.
type Template struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Content   string `json:"content"`
	CreatedBy int64  `json:"created_by"`
}
