package protocols

import "time"

// Protocol is an immutable record identified by a temporal id. Only status
// may ever change.
type Protocol struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DocType     string    `json:"doc_type"`
	Data        *string   `json:"data"`
	TemplateID  *int64    `json:"template_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   int64     `json:"created_by"`
}

// DefaultDocType is used when no template is chosen or the lookup misses.
const DefaultDocType = "Geral"

// DefaultStatus is the status of a freshly created protocol.
const DefaultStatus = "Aberto"
