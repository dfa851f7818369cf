package audit

import "time"

// Entry represents a row in the append-only logs table, joined with the
// acting user's name for listings.
type Entry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
}

// Log action tags written by the API handlers.
const (
	ActionLogin          = "Login"
	ActionLogout         = "Logout"
	ActionCreateProtocol = "Criação de Protocolo"
	ActionCreateTemplate = "Criação de Modelo"
	ActionCreateRole     = "Criação de Perfil"
	ActionCreateUser     = "Criação de Usuário"
)
